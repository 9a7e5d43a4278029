package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/coursehub/coursehub/internal/auth"
	"github.com/coursehub/coursehub/internal/logger"
)

// identityKey is the request-locals key under which the resolved identity is stored
const identityKey = "identity"

// Session returns a middleware that resolves the caller's identity from the
// Authorization bearer token via the external identity provider. A missing
// or unverifiable token leaves the request unauthenticated; whether that is
// acceptable is decided by the guards and handlers downstream, never here.
func Session(verifier auth.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Next()
		}

		identity, err := verifier.Verify(c.Context(), token)
		if err != nil {
			logger.WarnWithFields("session verification failed", map[string]interface{}{
				"path":  c.Path(),
				"error": err.Error(),
			})
			return c.Next()
		}

		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// IdentityFromCtx returns the identity resolved for this request, or nil
// when the request is unauthenticated
func IdentityFromCtx(c *fiber.Ctx) *auth.Identity {
	identity, _ := c.Locals(identityKey).(*auth.Identity)
	return identity
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
