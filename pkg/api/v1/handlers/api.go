package handlers

import "github.com/coursehub/coursehub/internal/services"

// APIHandler is a handler for the API
type APIHandler struct {
	course     *services.Course
	enrollment *services.Enrollment
	uploadDir  string
}

// NewAPIHandler creates a new API handler. uploadDir is where course
// thumbnail uploads are stored.
func NewAPIHandler(course *services.Course, enrollment *services.Enrollment, uploadDir string) *APIHandler {
	return &APIHandler{
		course:     course,
		enrollment: enrollment,
		uploadDir:  uploadDir,
	}
}
