// Package repos provides database access for the persistent entities
package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/coursehub/coursehub/internal/db/models"
)

// ErrCourseNotFoundOrDenied is returned when a course does not exist or the
// requesting creator is not allowed to mutate it. The two cases are not
// distinguished so a denied caller learns nothing about the catalog.
var ErrCourseNotFoundOrDenied = errors.New("course not found or access denied")

// CourseRepository handles database operations for course entities
type CourseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository instance
func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create creates a new course in the database
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

// GetByID retrieves a course by its ID
func (r *CourseRepository) GetByID(ctx context.Context, id uint) (*models.Course, error) {
	var course models.Course
	err := r.db.WithContext(ctx).First(&course, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("course not found: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return &course, nil
}

// applyFilters applies the course listing filters to the given query
func (r *CourseRepository) applyFilters(query *gorm.DB, filters *models.CourseFilters) *gorm.DB {
	if filters == nil {
		return query
	}
	if filters.CreatorID != "" {
		query = query.Where("creator_id = ?", filters.CreatorID)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("(LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?))", pattern, pattern)
	}
	return query
}

// List returns a page of courses matching the filters together with the
// total number of matching rows
func (r *CourseRepository) List(ctx context.Context, filters *models.CourseFilters, opts *models.ListOptions) ([]models.Course, int64, error) {
	var (
		courses []models.Course
		total   int64
	)

	query := r.applyFilters(r.db.WithContext(ctx).Model(&models.Course{}), filters)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count courses: %w", err)
	}

	if opts != nil {
		if opts.Limit > 0 {
			query = query.Limit(opts.Limit)
		}
		if opts.Offset > 0 {
			query = query.Offset(opts.Offset)
		}
	}

	err := query.Order("created_at DESC").Find(&courses).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, total, nil
}

// UpdateStatus updates the status of a course owned by requestorID. When
// admin is true the ownership predicate is dropped. Existence and ownership
// are checked by the UPDATE itself: zero affected rows means
// ErrCourseNotFoundOrDenied.
func (r *CourseRepository) UpdateStatus(ctx context.Context, courseID uint, status models.CourseStatus, requestorID string, admin bool) (*models.Course, error) {
	query := r.db.WithContext(ctx).Model(&models.Course{}).Where("id = ?", courseID)
	if !admin {
		query = query.Where("creator_id = ?", requestorID)
	}

	result := query.Update("status", status)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update course status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrCourseNotFoundOrDenied
	}

	return r.GetByID(ctx, courseID)
}
