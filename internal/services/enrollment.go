package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/coursehub/coursehub/internal/db"
	"github.com/coursehub/coursehub/internal/db/models"
	"github.com/coursehub/coursehub/internal/db/repos"
	"github.com/coursehub/coursehub/internal/types"
)

// Enrollment service errors
var (
	ErrCourseIDRequired     = errors.New("course id is required")
	ErrCourseNotPublished   = errors.New("course is not open for enrollment")
	ErrAlreadyEnrolled      = errors.New("already enrolled in this course")
	ErrEnrollmentFailed     = errors.New("failed to create enrollment")
	ErrEnrollmentListFailed = errors.New("failed to list enrollments")
)

// Enrollment provides business logic for enrollment operations
type Enrollment struct {
	repo       *repos.EnrollmentRepository
	courseRepo *repos.CourseRepository
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(repo *repos.EnrollmentRepository, courseRepo *repos.CourseRepository) *Enrollment {
	return &Enrollment{repo: repo, courseRepo: courseRepo}
}

// Create enrolls userID in courseID. The course must exist and be
// published. The insert is attempted without a prior existence check; the
// race between two concurrent attempts for the same pair resolves in the
// database's unique index, surfaced here as ErrAlreadyEnrolled.
func (s *Enrollment) Create(ctx context.Context, userID string, courseID uint) (*models.Enrollment, error) {
	if courseID == 0 {
		return nil, ErrCourseIDRequired
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, errors.Join(ErrCourseNotFound, err)
	}
	if course.Status != models.CourseStatusPublished {
		return nil, ErrCourseNotPublished
	}

	enrollment := &models.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, enrollment); err != nil {
		if db.IsDuplicateKeyError(err) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, errors.Join(ErrEnrollmentFailed, err)
	}
	return enrollment, nil
}

// Status reports whether userID is enrolled in courseID and, if so, when.
// A never-enrolled pair is not an error.
func (s *Enrollment) Status(ctx context.Context, userID string, courseID uint) (bool, *time.Time, error) {
	if courseID == 0 {
		return false, nil, ErrCourseIDRequired
	}

	enrollment, err := s.repo.GetByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil, nil
		}
		return false, nil, err
	}
	enrolledAt := enrollment.EnrolledAt
	return true, &enrolledAt, nil
}

// List returns a page of the user's enrollments with their courses preloaded
func (s *Enrollment) List(ctx context.Context, userID string, page, limit int) ([]models.Enrollment, types.Pagination, error) {
	if err := validatePagination(page, limit, models.MaxEnrollmentLimit); err != nil {
		return nil, types.Pagination{}, err
	}

	opts := &models.ListOptions{
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
	enrollments, total, err := s.repo.ListByUser(ctx, userID, opts)
	if err != nil {
		return nil, types.Pagination{}, errors.Join(ErrEnrollmentListFailed, err)
	}
	return enrollments, types.NewPagination(page, limit, total), nil
}
