package handlers

import (
	"errors"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/coursehub/coursehub/internal/auth"
	"github.com/coursehub/coursehub/internal/db/models"
	"github.com/coursehub/coursehub/internal/services"
	"github.com/coursehub/coursehub/internal/types"
)

// CourseHandler handles HTTP requests for course operations
type CourseHandler struct {
	*APIHandler
}

// NewCourseHandler creates a new CourseHandler instance
func NewCourseHandler(api *APIHandler) *CourseHandler {
	return &CourseHandler{APIHandler: api}
}

// ListCourses returns a page of courses matching the query filters.
// The listing is public; creator scoping happens through the creatorId
// filter, not through the caller's role.
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	params := types.ListCoursesParams{Page: 1, Limit: models.DefaultLimit}
	if err := c.QueryParser(&params); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody, err.Error())
	}

	filters := &models.CourseFilters{
		CreatorID: params.CreatorID,
		Search:    params.Search,
		Category:  params.Category,
	}
	if params.Status != "" {
		status, err := models.ParseCourseStatus(params.Status)
		if err != nil {
			return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidCourseStatus, nil)
		}
		filters.Status = &status
	}

	courses, pagination, err := h.course.List(c.Context(), params.Page, params.Limit, filters)
	if errors.Is(err, services.ErrInvalidPagination) {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidPagination, nil)
	}
	if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgCourseListFailed, nil)
	}

	return respondWithData(c, fiber.StatusOK, types.CourseListData{
		Courses:    courses,
		Pagination: pagination,
	})
}

// GetCourse returns a single course by id
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidCourseID, nil)
	}

	course, err := h.course.Get(c.Context(), uint(id))
	if errors.Is(err, services.ErrCourseNotFound) {
		return respondWithError(c, fiber.StatusNotFound, ErrMsgCourseNotFound, nil)
	}
	if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgInternal, nil)
	}

	return respondWithData(c, fiber.StatusOK, course)
}

// CreateCourse creates a course from a multipart form on behalf of the
// authenticated creator or admin. The optional thumbnail file is stored
// under the upload directory with a generated name.
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	identity, err := requireRoles(c, auth.Roles(auth.RoleCreator, auth.RoleAdmin))
	if identity == nil {
		return err
	}

	params := types.CreateCourseParams{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
	}
	if details := params.Validate(); details != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgCourseValidation, details)
	}

	thumbnailURL := ""
	if file, fErr := c.FormFile("thumbnail"); fErr == nil && file != nil {
		name := uuid.NewString() + filepath.Ext(file.Filename)
		if err := c.SaveFile(file, filepath.Join(h.uploadDir, name)); err != nil {
			return respondWithError(c, fiber.StatusBadRequest, ErrMsgThumbnailUpload, err.Error())
		}
		thumbnailURL = "/uploads/" + name
	}

	course, err := h.course.Create(c.Context(), params, thumbnailURL, identity.UserID)
	if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgCourseCreateFailed, nil)
	}

	return respondWithData(c, fiber.StatusCreated, course)
}

// UpdateCourseStatus moves a course to a new status. Ownership and the
// admin bypass are enforced by the course service; a denied caller receives
// the same 404 as a missing course.
func (h *CourseHandler) UpdateCourseStatus(c *fiber.Ctx) error {
	identity, err := requireRoles(c, auth.Roles(auth.RoleCreator, auth.RoleAdmin))
	if identity == nil {
		return err
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidCourseID, nil)
	}

	var params types.UpdateCourseStatusParams
	if err := c.BodyParser(&params); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody, err.Error())
	}

	course, err := h.course.UpdateStatus(c.Context(), uint(id), params.Status, identity)
	if errors.Is(err, services.ErrInvalidCourseStatus) {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidCourseStatus, nil)
	}
	if errors.Is(err, services.ErrCourseNotFoundOrDenied) {
		return respondWithError(c, fiber.StatusNotFound, ErrMsgCourseNotFoundOrDen, nil)
	}
	if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgInternal, nil)
	}

	return respondWithData(c, fiber.StatusOK, course)
}
