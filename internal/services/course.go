// Package services provides business logic for course and enrollment operations
package services

import (
	"context"
	"errors"

	"github.com/coursehub/coursehub/internal/auth"
	"github.com/coursehub/coursehub/internal/db/models"
	"github.com/coursehub/coursehub/internal/db/repos"
	"github.com/coursehub/coursehub/internal/types"
)

// Course service errors
var (
	ErrInvalidPagination      = errors.New("invalid pagination parameters")
	ErrInvalidCourseStatus    = errors.New("invalid course status")
	ErrCourseNotFound         = errors.New("course not found")
	ErrCourseNotFoundOrDenied = errors.New("course not found or access denied")
	ErrCourseCreateFailed     = errors.New("failed to create course")
)

// Course provides business logic for course operations
type Course struct {
	repo *repos.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(repo *repos.CourseRepository) *Course {
	return &Course{repo: repo}
}

// validatePagination checks the pagination bounds before any query is
// issued. maxLimit differs per listing surface.
func validatePagination(page, limit, maxLimit int) error {
	if page < 1 {
		return ErrInvalidPagination
	}
	if limit < 1 || limit > maxLimit {
		return ErrInvalidPagination
	}
	return nil
}

// List returns a page of courses matching the filters. The service applies
// no role logic: a creator-scoped listing is expressed by the caller through
// filters.CreatorID.
func (s *Course) List(ctx context.Context, page, limit int, filters *models.CourseFilters) ([]models.Course, types.Pagination, error) {
	if err := validatePagination(page, limit, models.MaxCourseLimit); err != nil {
		return nil, types.Pagination{}, err
	}

	opts := &models.ListOptions{
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
	courses, total, err := s.repo.List(ctx, filters, opts)
	if err != nil {
		return nil, types.Pagination{}, err
	}
	return courses, types.NewPagination(page, limit, total), nil
}

// Get retrieves a single course by id
func (s *Course) Get(ctx context.Context, id uint) (*models.Course, error) {
	course, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Join(ErrCourseNotFound, err)
	}
	return course, nil
}

// Create creates a new course owned by creatorID. The thumbnail defaults to
// the platform constant when none is supplied; required-field validation is
// the caller's responsibility (per-field messages belong to the HTTP layer).
func (s *Course) Create(ctx context.Context, params types.CreateCourseParams, thumbnailURL, creatorID string) (*models.Course, error) {
	if thumbnailURL == "" {
		thumbnailURL = models.DefaultThumbnailURL
	}

	course := &models.Course{
		Title:        params.Title,
		Description:  params.Description,
		Category:     params.Category,
		ThumbnailURL: thumbnailURL,
		Status:       models.CourseStatusDraft,
		CreatorID:    creatorID,
	}
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, errors.Join(ErrCourseCreateFailed, err)
	}
	return course, nil
}

// UpdateStatus moves a course to the given status on behalf of the
// requesting identity. Ownership is enforced here, not in the caller: the
// course must belong to the requestor unless the requestor is an admin.
// A missing course and a denied one yield the same error so callers cannot
// probe the catalog. Any enumerated status may move to any other.
func (s *Course) UpdateStatus(ctx context.Context, courseID uint, newStatus string, requestor *auth.Identity) (*models.Course, error) {
	status, err := models.ParseCourseStatus(newStatus)
	if err != nil {
		return nil, errors.Join(ErrInvalidCourseStatus, err)
	}

	course, err := s.repo.UpdateStatus(ctx, courseID, status, requestor.UserID, requestor.IsAdmin())
	if errors.Is(err, repos.ErrCourseNotFoundOrDenied) {
		return nil, ErrCourseNotFoundOrDenied
	}
	if err != nil {
		return nil, err
	}
	return course, nil
}
