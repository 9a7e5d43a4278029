package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coursehub/coursehub/internal/api/middleware"
	"github.com/coursehub/coursehub/internal/auth"
	"github.com/coursehub/coursehub/internal/types"
)

// respondWithError writes the error envelope with the given status
func respondWithError(c *fiber.Ctx, status int, message string, details interface{}) error {
	return c.Status(status).JSON(types.Envelope{
		Success: false,
		Error:   message,
		Details: details,
	})
}

// respondWithData writes the success envelope with the given status
func respondWithData(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(types.Envelope{
		Success: true,
		Data:    data,
	})
}

// requireRoles enforces the role gate inside a data handler. Handlers must
// not trust the edge guard alone, so every gated handler calls this first.
// On denial the 401/403 envelope has already been written and the returned
// identity is nil; the handler just returns the error.
func requireRoles(c *fiber.Ctx, required auth.RoleSet) (*auth.Identity, error) {
	identity := middleware.IdentityFromCtx(c)
	decision := auth.Authorize(required, identity)
	if decision.Allowed {
		return identity, nil
	}

	if decision.Reason == auth.DenyUnauthenticated {
		return nil, respondWithError(c, fiber.StatusUnauthorized, ErrMsgUnauthenticated, nil)
	}
	return nil, respondWithError(c, fiber.StatusForbidden, ErrMsgForbidden, nil)
}
