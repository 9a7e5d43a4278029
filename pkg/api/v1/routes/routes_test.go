package routes

import (
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRoute(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{GetCourses, "/api/v1/courses/"},
		{GetCourse, "/api/v1/courses/:id"},
		{CreateCourse, "/api/v1/courses/"},
		{UpdateCourseStatus, "/api/v1/courses/:id/status"},
		{GetEnrollmentStatus, "/api/v1/courses/:id/enrollment-status"},
		{GetEnrollments, "/api/v1/enrollments/"},
		{CreateEnrollment, "/api/v1/enrollments/"},
		{HealthCheck, "/health"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetRoute(tt.name))
		})
	}

	assert.Empty(t, GetRoute("NoSuchRoute"))
}

// TestGetRouteConcurrent exercises cache initialization from many goroutines
// at once; the race detector fails this test if the cache is written outside
// the once guard.
func TestGetRouteConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "/api/v1/courses/:id", GetRoute(GetCourse))
		}()
	}
	wg.Wait()
}

func TestBuildURL(t *testing.T) {
	t.Run("path params substituted", func(t *testing.T) {
		assert.Equal(t, "/api/v1/courses/42/status", UpdateCourseStatusURL("42"))
		assert.Equal(t, "/api/v1/courses/7/enrollment-status", GetEnrollmentStatusURL("7"))
	})

	t.Run("trailing slash trimmed", func(t *testing.T) {
		assert.Equal(t, "/api/v1/courses", CreateCourseURL())
		assert.Equal(t, "/api/v1/enrollments", CreateEnrollmentURL())
	})

	t.Run("query params encoded", func(t *testing.T) {
		query := url.Values{}
		query.Set("page", "2")
		query.Set("limit", "25")
		assert.Equal(t, "/api/v1/courses?limit=25&page=2", GetCoursesURL(query))
	})

	t.Run("unknown route yields empty url", func(t *testing.T) {
		assert.Empty(t, BuildURL("NoSuchRoute", nil, nil))
	})
}
