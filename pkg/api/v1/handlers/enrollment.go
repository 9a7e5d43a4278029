package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/coursehub/coursehub/internal/auth"
	"github.com/coursehub/coursehub/internal/db/models"
	"github.com/coursehub/coursehub/internal/services"
	"github.com/coursehub/coursehub/internal/types"
)

// EnrollmentHandler handles HTTP requests for enrollment operations
type EnrollmentHandler struct {
	*APIHandler
}

// NewEnrollmentHandler creates a new EnrollmentHandler instance
func NewEnrollmentHandler(api *APIHandler) *EnrollmentHandler {
	return &EnrollmentHandler{APIHandler: api}
}

// CreateEnrollment enrolls the authenticated user in a course
func (h *EnrollmentHandler) CreateEnrollment(c *fiber.Ctx) error {
	identity, err := requireRoles(c, auth.Roles(auth.RoleUser))
	if identity == nil {
		return err
	}

	var params types.CreateEnrollmentParams
	if err := c.BodyParser(&params); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody, err.Error())
	}

	enrollment, err := h.enrollment.Create(c.Context(), identity.UserID, params.CourseID)
	switch {
	case errors.Is(err, services.ErrCourseIDRequired):
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgCourseIDRequired, nil)
	case errors.Is(err, services.ErrCourseNotFound):
		return respondWithError(c, fiber.StatusNotFound, ErrMsgCourseNotFound, nil)
	case errors.Is(err, services.ErrCourseNotPublished):
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgCourseNotPublished, nil)
	case errors.Is(err, services.ErrAlreadyEnrolled):
		return respondWithError(c, fiber.StatusConflict, ErrMsgAlreadyEnrolled, nil)
	case err != nil:
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgEnrollmentFailed, nil)
	}

	return respondWithData(c, fiber.StatusCreated, enrollment)
}

// ListEnrollments returns a page of the authenticated user's enrollments
func (h *EnrollmentHandler) ListEnrollments(c *fiber.Ctx) error {
	identity, err := requireRoles(c, auth.Roles(auth.RoleUser))
	if identity == nil {
		return err
	}

	params := types.ListEnrollmentsParams{Page: 1, Limit: models.DefaultLimit}
	if err := c.QueryParser(&params); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody, err.Error())
	}

	enrollments, pagination, err := h.enrollment.List(c.Context(), identity.UserID, params.Page, params.Limit)
	if errors.Is(err, services.ErrInvalidPagination) {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidPagination, nil)
	}
	if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgEnrollmentListFailed, nil)
	}

	return respondWithData(c, fiber.StatusOK, types.EnrollmentListData{
		Enrollments: enrollments,
		Pagination:  pagination,
	})
}

// GetEnrollmentStatus reports whether the authenticated user is enrolled in
// the course and, if so, since when
func (h *EnrollmentHandler) GetEnrollmentStatus(c *fiber.Ctx) error {
	identity, err := requireRoles(c, auth.Roles(auth.RoleUser))
	if identity == nil {
		return err
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidCourseID, nil)
	}

	enrolled, date, err := h.enrollment.Status(c.Context(), identity.UserID, uint(id))
	if errors.Is(err, services.ErrCourseIDRequired) {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgCourseIDRequired, nil)
	}
	if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgEnrollmentStatusCheck, nil)
	}

	return c.JSON(types.EnrollmentStatusResponse{
		Success:        true,
		IsEnrolled:     enrolled,
		EnrollmentDate: date,
	})
}
