// Package routes defines the API routes and URL structure
package routes

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/coursehub/coursehub/internal/api/middleware"
	"github.com/coursehub/coursehub/internal/auth"
	"github.com/coursehub/coursehub/pkg/api/v1/handlers"
)

// API base configuration
const (
	// DefaultPort is the default port for the API
	DefaultPort = "8080"
	// APIv1Prefix is the prefix for all API endpoints
	APIv1Prefix = "/api/v1"
)

// DefaultBaseURL is the default base URL for the API
var DefaultBaseURL = fmt.Sprintf("http://localhost:%s", DefaultPort)

// Route names for lookup
const (
	// Health check
	HealthCheck = "HealthCheck"

	// Course routes
	GetCourses          = "GetCourses"
	GetCourse           = "GetCourse"
	CreateCourse        = "CreateCourse"
	UpdateCourseStatus  = "UpdateCourseStatus"
	GetEnrollmentStatus = "GetEnrollmentStatus"

	// Enrollment routes
	GetEnrollments   = "GetEnrollments"
	CreateEnrollment = "CreateEnrollment"
)

// routeCache stores extracted routes for use prior to compilation. It is
// written once inside routeCacheInit and read-only afterwards.
var (
	routeCache     map[string]string
	routeCacheInit sync.Once
)

// RegisterRoutes configures all the v1 routes plus the guarded web surfaces.
//
// NOTE: route ordering matters because routes match in registration order;
// param routes (/:id) go after their literal siblings.
func RegisterRoutes(
	app *fiber.App,
	courseHandler *handlers.CourseHandler,
	enrollmentHandler *handlers.EnrollmentHandler,
) {
	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	}).Name(HealthCheck)

	// Web surfaces the edge guard redirects to
	app.Get(middleware.SignInPath, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"surface": "signin", "from": c.Query(middleware.AttemptedParam)})
	})
	app.Get(middleware.UnauthorizedPath, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"surface": "unauthorized", "from": c.Query(middleware.AttemptedParam)})
	})

	// Edge-guarded dashboard surfaces. The guard here is the first of the
	// two authorization layers; data handlers re-check on their own.
	admin := app.Group("/admin", middleware.RequireRoles(auth.Roles(auth.RoleAdmin)))
	admin.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"surface": "admin"})
	})
	creator := app.Group("/creator", middleware.RequireRoles(auth.Roles(auth.RoleAdmin, auth.RoleCreator)))
	creator.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"surface": "creator"})
	})

	// API v1 routes
	v1 := app.Group(APIv1Prefix)

	// Course endpoints
	courses := v1.Group("/courses")
	courses.Get("/", courseHandler.ListCourses).Name(GetCourses)
	courses.Get("/:id/enrollment-status", enrollmentHandler.GetEnrollmentStatus).Name(GetEnrollmentStatus)
	courses.Get("/:id", courseHandler.GetCourse).Name(GetCourse)
	courses.Post("/", courseHandler.CreateCourse).Name(CreateCourse)
	courses.Patch("/:id/status", courseHandler.UpdateCourseStatus).Name(UpdateCourseStatus)

	// Enrollment endpoints
	enrollments := v1.Group("/enrollments")
	enrollments.Get("/", enrollmentHandler.ListEnrollments).Name(GetEnrollments)
	enrollments.Post("/", enrollmentHandler.CreateEnrollment).Name(CreateEnrollment)
}

// initRouteCache initializes the route cache by creating a mock app and extracting routes
func initRouteCache() {
	routeCacheInit.Do(func() {
		routeCache = make(map[string]string)

		app := fiber.New()
		mockCourseHandler := &handlers.CourseHandler{}
		mockEnrollmentHandler := &handlers.EnrollmentHandler{}
		RegisterRoutes(app, mockCourseHandler, mockEnrollmentHandler)

		for _, route := range app.GetRoutes() {
			if route.Name != "" {
				routeCache[route.Name] = route.Path
			}
		}
	})
}

// GetRoute returns the route pattern for the given route name
func GetRoute(name string) string {
	initRouteCache()
	return routeCache[name]
}

// BuildURL builds a URL for the given route name and parameters
func BuildURL(routeName string, params map[string]string, queryParams url.Values) string {
	route := GetRoute(routeName)
	if route == "" {
		return ""
	}

	for param, value := range params {
		route = strings.ReplaceAll(route, ":"+param, value)
	}

	if strings.HasSuffix(route, "/") && !strings.Contains(route, ":") {
		route = strings.TrimSuffix(route, "/")
	}

	if len(queryParams) > 0 {
		route = fmt.Sprintf("%s?%s", route, queryParams.Encode())
	}

	return route
}

// Health check route helper

// HealthCheckURL returns the URL for the health check endpoint
func HealthCheckURL() string {
	return BuildURL(HealthCheck, nil, nil)
}

// Course route helpers

// GetCoursesURL returns the URL for listing courses
func GetCoursesURL(queryParams url.Values) string {
	return BuildURL(GetCourses, nil, queryParams)
}

// GetCourseURL returns the URL for getting a course by ID
func GetCourseURL(id string) string {
	return BuildURL(GetCourse, map[string]string{"id": id}, nil)
}

// CreateCourseURL returns the URL for creating a course
func CreateCourseURL() string {
	return BuildURL(CreateCourse, nil, nil)
}

// UpdateCourseStatusURL returns the URL for updating a course's status
func UpdateCourseStatusURL(id string) string {
	return BuildURL(UpdateCourseStatus, map[string]string{"id": id}, nil)
}

// GetEnrollmentStatusURL returns the URL for checking enrollment in a course
func GetEnrollmentStatusURL(id string) string {
	return BuildURL(GetEnrollmentStatus, map[string]string{"id": id}, nil)
}

// Enrollment route helpers

// GetEnrollmentsURL returns the URL for listing the caller's enrollments
func GetEnrollmentsURL(queryParams url.Values) string {
	return BuildURL(GetEnrollments, nil, queryParams)
}

// CreateEnrollmentURL returns the URL for creating an enrollment
func CreateEnrollmentURL() string {
	return BuildURL(CreateEnrollment, nil, nil)
}
