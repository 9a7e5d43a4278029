// Package handlers provides HTTP request handling
package handlers

// Common error messages
const (
	ErrMsgInvalidReqBody    = "Invalid request body"
	ErrMsgUnauthenticated   = "Authentication required"
	ErrMsgForbidden         = "You do not have permission to perform this action"
	ErrMsgInternal          = "Internal server error"
	ErrMsgInvalidPagination = "Page must be at least 1 and limit within the allowed range"
)

// Course error messages
const (
	ErrMsgInvalidCourseID     = "Invalid course id"
	ErrMsgCourseNotFound      = "Course not found"
	ErrMsgCourseNotFoundOrDen = "Course not found or access denied"
	ErrMsgCourseValidation    = "Course validation failed"
	ErrMsgInvalidCourseStatus = "Status must be one of DRAFT, PUBLISHED or ARCHIVED"
	ErrMsgCourseCreateFailed  = "Failed to create course"
	ErrMsgCourseListFailed    = "Failed to list courses"
	ErrMsgThumbnailUpload     = "Failed to store thumbnail upload"
)

// Enrollment error messages
const (
	ErrMsgCourseIDRequired      = "Course id is required"
	ErrMsgCourseNotPublished    = "Course is not open for enrollment"
	ErrMsgAlreadyEnrolled       = "You are already enrolled in this course"
	ErrMsgEnrollmentFailed      = "Failed to create enrollment"
	ErrMsgEnrollmentListFailed  = "Failed to list enrollments"
	ErrMsgEnrollmentStatusCheck = "Failed to check enrollment status"
)
