package database

import (
	"context"
	"encoding/json"
	"errors"

	courseModels "github.com/zalakuldip2011/edemy-sub001/models/course"
	courseService "github.com/zalakuldip2011/edemy-sub001/services/course"

	"gorm.io/gorm"
)

// CourseRepo is the GORM/Postgres implementation of the course persistence
// boundary. Every write is a single-row write, so the aggregate updates
// atomically without explicit locking.
type CourseRepo struct {
	db *gorm.DB
}

func NewCourseRepo(db *gorm.DB) *CourseRepo {
	return &CourseRepo{db: db}
}

func (r *CourseRepo) Insert(ctx context.Context, course *courseModels.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *CourseRepo) Replace(ctx context.Context, course *courseModels.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

// FindByID returns the row whether or not it is soft-deleted; callers decide
// what a deleted course means for them. A missing row is (nil, nil).
func (r *CourseRepo) FindByID(ctx context.Context, id uint) (*courseModels.Course, error) {
	var course courseModels.Course
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepo) FindByOwner(ctx context.Context, ownerID uint) ([]courseModels.Course, error) {
	var courses []courseModels.Course
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND is_deleted = ?", ownerID, false).
		Order("updated_at desc").
		Find(&courses).Error
	return courses, err
}

func (r *CourseRepo) FindPublished(ctx context.Context, filter courseService.CatalogFilter, offset, limit int, orderBy string) ([]courseModels.Course, int64, error) {
	db := r.db.WithContext(ctx).Model(&courseModels.Course{}).
		Where("state = ? AND is_deleted = ?", courseModels.StatePublished, false)

	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}
	if filter.Level != "" {
		db = db.Where("level = ?", filter.Level)
	}
	if filter.Language != "" {
		db = db.Where("language = ?", filter.Language)
	}
	if filter.Tag != "" {
		// jsonb containment: tags @> '["go"]'
		tagJSON, _ := json.Marshal([]string{filter.Tag})
		db = db.Where("tags @> ?", string(tagJSON))
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		db = db.Where("title ILIKE ? OR description ILIKE ? OR tags::text ILIKE ?", pattern, pattern, pattern)
	}
	if filter.MinPrice != nil {
		db = db.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		db = db.Where("price <= ?", *filter.MaxPrice)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var courses []courseModels.Course
	if err := db.Order(orderBy).Offset(offset).Limit(limit).Find(&courses).Error; err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

func (r *CourseRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&courseModels.Course{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}
