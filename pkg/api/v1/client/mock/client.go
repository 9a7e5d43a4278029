// Package mock provides a mock implementation of the API client for testing
package mock

import (
	"context"

	"github.com/coursehub/coursehub/internal/db/models"
	"github.com/coursehub/coursehub/internal/types"
	"github.com/coursehub/coursehub/pkg/api/v1/client"
)

// MockClient implements the Client interface for testing
type MockClient struct {
	// Function fields that can be set to mock behavior
	ListCoursesFn         func(ctx context.Context, params types.ListCoursesParams) (*types.CourseListData, error)
	GetCourseFn           func(ctx context.Context, id uint) (*models.Course, error)
	CreateCourseFn        func(ctx context.Context, params types.CreateCourseParams) (*models.Course, error)
	UpdateCourseStatusFn  func(ctx context.Context, id uint, status string) (*models.Course, error)
	CreateEnrollmentFn    func(ctx context.Context, courseID uint) (*models.Enrollment, error)
	ListEnrollmentsFn     func(ctx context.Context, page, limit int) (*types.EnrollmentListData, error)
	GetEnrollmentStatusFn func(ctx context.Context, courseID uint) (*types.EnrollmentStatusResponse, error)
	HealthCheckFn         func(ctx context.Context) error

	// Call tracking for verification
	ListCoursesCalls []struct {
		Ctx    context.Context
		Params types.ListCoursesParams
	}
	GetCourseCalls []struct {
		Ctx context.Context
		ID  uint
	}
	CreateCourseCalls []struct {
		Ctx    context.Context
		Params types.CreateCourseParams
	}
	UpdateCourseStatusCalls []struct {
		Ctx    context.Context
		ID     uint
		Status string
	}
	CreateEnrollmentCalls []struct {
		Ctx      context.Context
		CourseID uint
	}
	ListEnrollmentsCalls []struct {
		Ctx   context.Context
		Page  int
		Limit int
	}
	GetEnrollmentStatusCalls []struct {
		Ctx      context.Context
		CourseID uint
	}
	HealthCheckCalls []struct {
		Ctx context.Context
	}
}

// Ensure MockClient implements Client interface
var _ client.Client = (*MockClient)(nil)

// ListCourses mocks the ListCourses method
func (m *MockClient) ListCourses(ctx context.Context, params types.ListCoursesParams) (*types.CourseListData, error) {
	m.ListCoursesCalls = append(m.ListCoursesCalls, struct {
		Ctx    context.Context
		Params types.ListCoursesParams
	}{
		Ctx:    ctx,
		Params: params,
	})

	if m.ListCoursesFn != nil {
		return m.ListCoursesFn(ctx, params)
	}

	return &types.CourseListData{
		Courses:    []models.Course{},
		Pagination: types.NewPagination(1, 10, 0),
	}, nil
}

// GetCourse mocks the GetCourse method
func (m *MockClient) GetCourse(ctx context.Context, id uint) (*models.Course, error) {
	m.GetCourseCalls = append(m.GetCourseCalls, struct {
		Ctx context.Context
		ID  uint
	}{
		Ctx: ctx,
		ID:  id,
	})

	if m.GetCourseFn != nil {
		return m.GetCourseFn(ctx, id)
	}

	return &models.Course{
		Title:  "Mock Course",
		Status: models.CourseStatusPublished,
	}, nil
}

// CreateCourse mocks the CreateCourse method
func (m *MockClient) CreateCourse(ctx context.Context, params types.CreateCourseParams) (*models.Course, error) {
	m.CreateCourseCalls = append(m.CreateCourseCalls, struct {
		Ctx    context.Context
		Params types.CreateCourseParams
	}{
		Ctx:    ctx,
		Params: params,
	})

	if m.CreateCourseFn != nil {
		return m.CreateCourseFn(ctx, params)
	}

	return &models.Course{
		Title:       params.Title,
		Description: params.Description,
		Category:    params.Category,
		Status:      models.CourseStatusDraft,
	}, nil
}

// UpdateCourseStatus mocks the UpdateCourseStatus method
func (m *MockClient) UpdateCourseStatus(ctx context.Context, id uint, status string) (*models.Course, error) {
	m.UpdateCourseStatusCalls = append(m.UpdateCourseStatusCalls, struct {
		Ctx    context.Context
		ID     uint
		Status string
	}{
		Ctx:    ctx,
		ID:     id,
		Status: status,
	})

	if m.UpdateCourseStatusFn != nil {
		return m.UpdateCourseStatusFn(ctx, id, status)
	}

	return &models.Course{
		Title:  "Mock Course",
		Status: models.CourseStatus(status),
	}, nil
}

// CreateEnrollment mocks the CreateEnrollment method
func (m *MockClient) CreateEnrollment(ctx context.Context, courseID uint) (*models.Enrollment, error) {
	m.CreateEnrollmentCalls = append(m.CreateEnrollmentCalls, struct {
		Ctx      context.Context
		CourseID uint
	}{
		Ctx:      ctx,
		CourseID: courseID,
	})

	if m.CreateEnrollmentFn != nil {
		return m.CreateEnrollmentFn(ctx, courseID)
	}

	return &models.Enrollment{
		CourseID: courseID,
	}, nil
}

// ListEnrollments mocks the ListEnrollments method
func (m *MockClient) ListEnrollments(ctx context.Context, page, limit int) (*types.EnrollmentListData, error) {
	m.ListEnrollmentsCalls = append(m.ListEnrollmentsCalls, struct {
		Ctx   context.Context
		Page  int
		Limit int
	}{
		Ctx:   ctx,
		Page:  page,
		Limit: limit,
	})

	if m.ListEnrollmentsFn != nil {
		return m.ListEnrollmentsFn(ctx, page, limit)
	}

	return &types.EnrollmentListData{
		Enrollments: []models.Enrollment{},
		Pagination:  types.NewPagination(page, limit, 0),
	}, nil
}

// GetEnrollmentStatus mocks the GetEnrollmentStatus method
func (m *MockClient) GetEnrollmentStatus(ctx context.Context, courseID uint) (*types.EnrollmentStatusResponse, error) {
	m.GetEnrollmentStatusCalls = append(m.GetEnrollmentStatusCalls, struct {
		Ctx      context.Context
		CourseID uint
	}{
		Ctx:      ctx,
		CourseID: courseID,
	})

	if m.GetEnrollmentStatusFn != nil {
		return m.GetEnrollmentStatusFn(ctx, courseID)
	}

	return &types.EnrollmentStatusResponse{
		Success:    true,
		IsEnrolled: false,
	}, nil
}

// HealthCheck mocks the HealthCheck method
func (m *MockClient) HealthCheck(ctx context.Context) error {
	m.HealthCheckCalls = append(m.HealthCheckCalls, struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	})

	if m.HealthCheckFn != nil {
		return m.HealthCheckFn(ctx)
	}

	return nil
}
