package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/coursehub/coursehub/internal/db/models"
)

// EnrollmentRepository handles database operations for enrollment entities
type EnrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository creates a new enrollment repository instance
func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Create inserts a new enrollment. The insert is attempted without a prior
// existence check; a uniqueness violation on (user_id, course_id) is
// returned as-is for the caller to classify.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

// GetByUserAndCourse retrieves the enrollment for a (user, course) pair.
// Returns gorm.ErrRecordNotFound wrapped when no enrollment exists.
func (r *EnrollmentRepository) GetByUserAndCourse(ctx context.Context, userID string, courseID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("enrollment not found: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}
	return &enrollment, nil
}

// ListByUser returns a page of the user's enrollments with their courses
// preloaded, together with the total number of enrollments for that user
func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID string, opts *models.ListOptions) ([]models.Enrollment, int64, error) {
	var (
		enrollments []models.Enrollment
		total       int64
	)

	query := r.db.WithContext(ctx).Model(&models.Enrollment{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count enrollments: %w", err)
	}

	if opts != nil {
		if opts.Limit > 0 {
			query = query.Limit(opts.Limit)
		}
		if opts.Offset > 0 {
			query = query.Offset(opts.Offset)
		}
	}

	err := query.Preload("Course").Order("enrolled_at DESC").Find(&enrollments).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list enrollments: %w", err)
	}
	return enrollments, total, nil
}
