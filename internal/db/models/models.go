// Package models defines the persistent entities and list options
package models

const (
	// DefaultLimit is the number of rows returned per listing call when
	// the caller does not specify one
	DefaultLimit = 10

	// MaxCourseLimit is the maximum page size for course listings
	MaxCourseLimit = 50

	// MaxEnrollmentLimit is the maximum page size for enrollment listings
	MaxEnrollmentLimit = 100
)

// ListOptions represents pagination options for list operations
type ListOptions struct {
	Limit  int `json:"limit"`  // Number of items to return
	Offset int `json:"offset"` // Number of items to skip
}

// CourseFilters represents the optional narrowing applied to course listings.
// Role-based scoping is expressed by the caller through CreatorID; the
// repository applies no role logic of its own.
type CourseFilters struct {
	CreatorID string        `json:"creator_id,omitempty"`
	Search    string        `json:"search,omitempty"`
	Status    *CourseStatus `json:"status,omitempty"`
	Category  string        `json:"category,omitempty"`
}
