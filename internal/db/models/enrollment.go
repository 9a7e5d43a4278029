package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment represents a user joining a course. At most one enrollment
// exists per (user_id, course_id) pair; the composite unique index is the
// authority on that invariant and concurrent inserts resolve there, not in
// application logic. Enrollments are immutable once created.
type Enrollment struct {
	gorm.Model
	UserID     string    `json:"user_id" gorm:"uniqueIndex:idx_enrollments_user_course;not null"`
	CourseID   uint      `json:"course_id" gorm:"uniqueIndex:idx_enrollments_user_course;not null"`
	EnrolledAt time.Time `json:"enrolled_at"`

	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
