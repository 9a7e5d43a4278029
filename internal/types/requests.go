// Package types defines the request and response shapes of the API surface
package types

import "strings"

// ListCoursesParams represents the query parameters accepted by the course
// listing endpoint
type ListCoursesParams struct {
	Page      int    `json:"page" query:"page"`
	Limit     int    `json:"limit" query:"limit"`
	CreatorID string `json:"creator_id,omitempty" query:"creatorId"`
	Search    string `json:"search,omitempty" query:"search"`
	Status    string `json:"status,omitempty" query:"status"`
	Category  string `json:"category,omitempty" query:"category"`
}

// ListEnrollmentsParams represents the query parameters accepted by the
// enrollment listing endpoint
type ListEnrollmentsParams struct {
	Page  int `json:"page" query:"page"`
	Limit int `json:"limit" query:"limit"`
}

// CreateCourseParams represents the form fields accepted when creating a
// course. The thumbnail file is handled separately by the handler.
type CreateCourseParams struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Category    string `json:"category" form:"category"`
}

// Validate returns one message per missing required field, or nil when the
// params are complete
func (p CreateCourseParams) Validate() []string {
	var details []string
	if strings.TrimSpace(p.Title) == "" {
		details = append(details, "title is required")
	}
	if strings.TrimSpace(p.Description) == "" {
		details = append(details, "description is required")
	}
	if strings.TrimSpace(p.Category) == "" {
		details = append(details, "category is required")
	}
	return details
}

// UpdateCourseStatusParams represents the body of a course status update
type UpdateCourseStatusParams struct {
	Status string `json:"status"`
}

// CreateEnrollmentParams represents the body of an enrollment creation request
type CreateEnrollmentParams struct {
	CourseID uint `json:"courseId"`
}
