package types

import (
	"time"

	"github.com/coursehub/coursehub/internal/db/models"
)

// Envelope is the uniform response wrapper used across the HTTP surface
type Envelope struct {
	// Whether the request succeeded
	Success bool `json:"success"`

	// Payload of a successful response
	Data interface{} `json:"data,omitempty"`

	// Error message describing what went wrong
	Error string `json:"error,omitempty"`

	// Optional additional details, such as per-field validation messages
	Details interface{} `json:"details,omitempty"`
}

// Pagination represents pagination information for list endpoints
type Pagination struct {
	// Current page number (1-based)
	Page int `json:"page"`

	// Maximum number of items per page
	Limit int `json:"limit"`

	// Total number of items available across all pages
	Total int64 `json:"total"`

	// Number of pages needed to cover Total at the current limit
	TotalPages int64 `json:"totalPages"`
}

// NewPagination builds pagination info for a page of results.
// TotalPages is ceil(total/limit).
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int64(0)
	if limit > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// CourseListData is the payload of the course listing endpoint
type CourseListData struct {
	Courses    []models.Course `json:"courses"`
	Pagination Pagination      `json:"pagination"`
}

// EnrollmentListData is the payload of the enrollment listing endpoint
type EnrollmentListData struct {
	Enrollments []models.Enrollment `json:"enrollments"`
	Pagination  Pagination          `json:"pagination"`
}

// EnrollmentStatusResponse is the response of the enrollment status
// endpoint. EnrollmentDate is omitted when the user is not enrolled.
type EnrollmentStatusResponse struct {
	Success        bool       `json:"success"`
	IsEnrolled     bool       `json:"isEnrolled"`
	EnrollmentDate *time.Time `json:"enrollmentDate,omitempty"`
}
