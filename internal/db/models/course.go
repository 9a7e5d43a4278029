package models

import (
	"fmt"

	"gorm.io/gorm"
)

// CourseStatus represents the publication state of a course
type CourseStatus string

// Course status constants
const (
	// CourseStatusDraft represents a course that is not yet visible to learners
	CourseStatusDraft CourseStatus = "DRAFT"
	// CourseStatusPublished represents a course open for enrollment
	CourseStatusPublished CourseStatus = "PUBLISHED"
	// CourseStatusArchived represents a course retired from the catalog
	CourseStatusArchived CourseStatus = "ARCHIVED"
)

// DefaultThumbnailURL is the platform thumbnail used when a course is
// created without one
const DefaultThumbnailURL = "/assets/course-placeholder.png"

// ParseCourseStatus converts a string representation of a course status to
// CourseStatus type
func ParseCourseStatus(str string) (CourseStatus, error) {
	switch CourseStatus(str) {
	case CourseStatusDraft, CourseStatusPublished, CourseStatusArchived:
		return CourseStatus(str), nil
	}
	return "", fmt.Errorf("invalid course status: %s", str)
}

// String returns the string representation of the course status
func (s CourseStatus) String() string {
	return string(s)
}

// Course represents a course in the catalog. A course is owned by the
// creator identified by CreatorID; only that creator or an admin may
// mutate its status.
type Course struct {
	gorm.Model
	Title        string       `json:"title" gorm:"not null"`
	Description  string       `json:"description" gorm:"not null"`
	ThumbnailURL string       `json:"thumbnail_url"`
	Category     string       `json:"category" gorm:"index;not null"`
	Status       CourseStatus `json:"status" gorm:"index;not null;default:DRAFT"`
	CreatorID    string       `json:"creator_id" gorm:"index;not null"`
}
