// Package client provides a Go client for the CourseHub API
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/coursehub/coursehub/internal/db/models"
	"github.com/coursehub/coursehub/internal/types"
	"github.com/coursehub/coursehub/pkg/api/v1/routes"
)

// DefaultTimeout is the default timeout for API requests
const DefaultTimeout = 30 * time.Second

// Client defines the interface for interacting with the CourseHub API
type Client interface {
	// Course methods
	ListCourses(ctx context.Context, params types.ListCoursesParams) (*types.CourseListData, error)
	GetCourse(ctx context.Context, id uint) (*models.Course, error)
	CreateCourse(ctx context.Context, params types.CreateCourseParams) (*models.Course, error)
	UpdateCourseStatus(ctx context.Context, id uint, status string) (*models.Course, error)

	// Enrollment methods
	CreateEnrollment(ctx context.Context, courseID uint) (*models.Enrollment, error)
	ListEnrollments(ctx context.Context, page, limit int) (*types.EnrollmentListData, error)
	GetEnrollmentStatus(ctx context.Context, courseID uint) (*types.EnrollmentStatusResponse, error)

	// Health check
	HealthCheck(ctx context.Context) error
}

// Options contains configuration options for the API client
type Options struct {
	// BaseURL is the base URL of the API
	BaseURL string

	// Token is the bearer session token presented to the API
	Token string

	// Timeout is the request timeout
	Timeout time.Duration
}

// DefaultOptions returns the default client options
func DefaultOptions() *Options {
	return &Options{
		BaseURL: routes.DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// APIClient implements the Client interface
type APIClient struct {
	baseURL string
	token   string
	timeout time.Duration
}

// NewClient creates a new API client with the given options
func NewClient(opts *Options) (Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if _, err := url.Parse(opts.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &APIClient{
		baseURL: opts.BaseURL,
		token:   opts.Token,
		timeout: timeout,
	}, nil
}

// createAgent creates a new Fiber Agent for the given method and endpoint
func (c *APIClient) createAgent(ctx context.Context, method, endpoint string) *fiber.Agent {
	fullURL := c.baseURL + endpoint

	var agent *fiber.Agent
	switch method {
	case fiber.MethodGet:
		agent = fiber.Get(fullURL)
	case fiber.MethodPost:
		agent = fiber.Post(fullURL)
	case fiber.MethodPatch:
		agent = fiber.Patch(fullURL)
	default:
		agent = fiber.Get(fullURL)
	}

	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	} else {
		agent.Timeout(c.timeout)
	}

	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if c.token != "" {
		agent.Set(fiber.HeaderAuthorization, "Bearer "+c.token)
	}
	return agent
}

// envelope mirrors the API response wrapper with a raw data payload
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Details interface{}     `json:"details,omitempty"`
}

// do executes the agent and decodes the envelope into out (when non-nil)
func (c *APIClient) do(agent *fiber.Agent, out interface{}) error {
	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("request failed: %w", errs[0])
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("invalid response (status %d): %w", status, err)
	}
	if status >= 400 || !env.Success {
		if env.Error != "" {
			return fmt.Errorf("api error (status %d): %s", status, env.Error)
		}
		return fmt.Errorf("api error: status %d", status)
	}

	if out == nil || env.Data == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// ListCourses retrieves a page of courses matching the filters
func (c *APIClient) ListCourses(ctx context.Context, params types.ListCoursesParams) (*types.CourseListData, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.CreatorID != "" {
		query.Set("creatorId", params.CreatorID)
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	if params.Status != "" {
		query.Set("status", params.Status)
	}
	if params.Category != "" {
		query.Set("category", params.Category)
	}

	agent := c.createAgent(ctx, fiber.MethodGet, routes.GetCoursesURL(query))
	var data types.CourseListData
	if err := c.do(agent, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetCourse retrieves a single course by id
func (c *APIClient) GetCourse(ctx context.Context, id uint) (*models.Course, error) {
	agent := c.createAgent(ctx, fiber.MethodGet, routes.GetCourseURL(strconv.FormatUint(uint64(id), 10)))
	var course models.Course
	if err := c.do(agent, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// CreateCourse creates a new course owned by the authenticated creator
func (c *APIClient) CreateCourse(ctx context.Context, params types.CreateCourseParams) (*models.Course, error) {
	agent := c.createAgent(ctx, fiber.MethodPost, routes.CreateCourseURL())

	args := fiber.AcquireArgs()
	defer fiber.ReleaseArgs(args)
	args.Set("title", params.Title)
	args.Set("description", params.Description)
	args.Set("category", params.Category)
	agent.Form(args)

	var course models.Course
	if err := c.do(agent, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// UpdateCourseStatus moves a course to the given status
func (c *APIClient) UpdateCourseStatus(ctx context.Context, id uint, status string) (*models.Course, error) {
	agent := c.createAgent(ctx, fiber.MethodPatch, routes.UpdateCourseStatusURL(strconv.FormatUint(uint64(id), 10)))
	agent.JSON(types.UpdateCourseStatusParams{Status: status})

	var course models.Course
	if err := c.do(agent, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// CreateEnrollment enrolls the authenticated user in the course
func (c *APIClient) CreateEnrollment(ctx context.Context, courseID uint) (*models.Enrollment, error) {
	agent := c.createAgent(ctx, fiber.MethodPost, routes.CreateEnrollmentURL())
	agent.JSON(types.CreateEnrollmentParams{CourseID: courseID})

	var enrollment models.Enrollment
	if err := c.do(agent, &enrollment); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// ListEnrollments retrieves a page of the authenticated user's enrollments
func (c *APIClient) ListEnrollments(ctx context.Context, page, limit int) (*types.EnrollmentListData, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	agent := c.createAgent(ctx, fiber.MethodGet, routes.GetEnrollmentsURL(query))
	var data types.EnrollmentListData
	if err := c.do(agent, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetEnrollmentStatus reports the authenticated user's enrollment in the course
func (c *APIClient) GetEnrollmentStatus(ctx context.Context, courseID uint) (*types.EnrollmentStatusResponse, error) {
	agent := c.createAgent(ctx, fiber.MethodGet, routes.GetEnrollmentStatusURL(strconv.FormatUint(uint64(courseID), 10)))

	// This endpoint extends the envelope with top-level fields, so it is
	// decoded directly rather than through the data payload
	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("request failed: %w", errs[0])
	}
	if status >= 400 {
		var env envelope
		if err := json.Unmarshal(body, &env); err == nil && env.Error != "" {
			return nil, fmt.Errorf("api error (status %d): %s", status, env.Error)
		}
		return nil, fmt.Errorf("api error: status %d", status)
	}

	var resp types.EnrollmentStatusResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("invalid response: %w", err)
	}
	return &resp, nil
}

// HealthCheck verifies the API is reachable
func (c *APIClient) HealthCheck(ctx context.Context) error {
	agent := c.createAgent(ctx, fiber.MethodGet, routes.HealthCheckURL())
	status, _, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("health check failed: %w", errs[0])
	}
	if status != fiber.StatusOK {
		return fmt.Errorf("health check failed: status %d", status)
	}
	return nil
}
