package courseService

import (
	"context"

	courseModels "github.com/zalakuldip2011/edemy-sub001/models/course"
)

// CatalogFilter narrows a public catalog search. Zero values mean "no
// constraint" (nil for the price bounds).
type CatalogFilter struct {
	Category string
	Level    string
	Language string
	Tag      string
	Query    string // free text over title/description/tags
	MinPrice *float64
	MaxPrice *float64
}

// CatalogPage is one page of published courses plus pagination metadata.
type CatalogPage struct {
	Courses    []courseModels.Course `json:"courses"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	TotalPages int                   `json:"total_pages"`
}

// CourseRepository is the persistence boundary of the course engine. Any
// store that gives atomic single-document writes on the course row can
// implement it; the services never touch the database directly.
type CourseRepository interface {
	// Insert stores a new course and fills in its id.
	Insert(ctx context.Context, course *courseModels.Course) error
	// Replace overwrites the stored document with the given aggregate.
	Replace(ctx context.Context, course *courseModels.Course) error
	// FindByID returns the course row whether or not it is soft-deleted.
	FindByID(ctx context.Context, id uint) (*courseModels.Course, error)
	// FindByOwner returns all non-deleted courses of one owner, most
	// recently updated first.
	FindByOwner(ctx context.Context, ownerID uint) ([]courseModels.Course, error)
	// FindPublished searches non-deleted published courses.
	FindPublished(ctx context.Context, filter CatalogFilter, offset, limit int, orderBy string) ([]courseModels.Course, int64, error)
	// SlugExists reports whether any course (deleted ones included, since
	// their slugs stay reserved) already uses the exact slug.
	SlugExists(ctx context.Context, slug string) (bool, error)
}
