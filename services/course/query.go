package courseService

import (
	"context"

	courseModels "github.com/zalakuldip2011/edemy-sub001/models/course"
)

// Sort keys accepted by the public catalog; anything else falls back to
// newest-first.
var catalogSortKeys = map[string]string{
	"newest":     "created_at desc",
	"oldest":     "created_at asc",
	"price-low":  "price asc",
	"price-high": "price desc",
	"title":      "title asc",
}

// QueryService owns the read paths. It never mutates anything.
type QueryService struct {
	repo CourseRepository
}

func NewQueryService(repo CourseRepository) *QueryService {
	return &QueryService{repo: repo}
}

// ListByOwner returns every non-deleted course of one instructor, most
// recently updated first. Unpaginated: bounded by one instructor's catalog.
func (s *QueryService) ListByOwner(ctx context.Context, ownerID uint) ([]courseModels.Course, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

// GetByID fetches a single non-deleted course. When ownerID is non-nil the
// caller must own the course (the path instructors use to open their own
// drafts); the public detail path passes nil and is filtered to published
// courses by its controller.
func (s *QueryService) GetByID(ctx context.Context, id uint, ownerID *uint) (*courseModels.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil || course.IsDeleted {
		return nil, ErrCourseNotFound
	}
	if ownerID != nil && course.OwnerID != *ownerID {
		return nil, ErrNotCourseOwner
	}
	return course, nil
}

// GetByIDAdmin is the direct-by-id administrative lookup: it returns the
// row even after a soft delete, for audit and support tooling.
func (s *QueryService) GetByIDAdmin(ctx context.Context, id uint) (*courseModels.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	return course, nil
}

// SearchPublished pages through the public catalog. Only published,
// non-deleted courses are reachable from here.
func (s *QueryService) SearchPublished(ctx context.Context, filter CatalogFilter, page, limit int, sortKey string) (*CatalogPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	orderBy, ok := catalogSortKeys[sortKey]
	if !ok {
		orderBy = catalogSortKeys["newest"]
	}

	offset := (page - 1) * limit
	courses, total, err := s.repo.FindPublished(ctx, filter, offset, limit, orderBy)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &CatalogPage{
		Courses:    courses,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}
