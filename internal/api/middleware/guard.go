package middleware

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/coursehub/coursehub/internal/auth"
)

// Web surfaces the edge guard redirects to
const (
	// SignInPath is where unauthenticated visitors are sent
	SignInPath = "/signin"
	// UnauthorizedPath is where authenticated but forbidden visitors are sent
	UnauthorizedPath = "/unauthorized"
	// AttemptedParam carries the originally attempted path through the redirect
	AttemptedParam = "from"
)

// RequireRoles returns an edge guard for web path groups. Unauthenticated
// visitors are redirected to the sign-in surface, authenticated visitors
// whose role is outside the required set to the unauthorized surface; both
// redirects carry the attempted path. Data endpoints must not use this
// guard — they re-check inside the handler and answer 401/403.
func RequireRoles(required auth.RoleSet) fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision := auth.Authorize(required, IdentityFromCtx(c))
		if decision.Allowed {
			return c.Next()
		}

		attempted := url.QueryEscape(c.OriginalURL())
		switch decision.Reason {
		case auth.DenyUnauthenticated:
			return c.Redirect(SignInPath+"?"+AttemptedParam+"="+attempted, fiber.StatusFound)
		default:
			return c.Redirect(UnauthorizedPath+"?"+AttemptedParam+"="+attempted, fiber.StatusFound)
		}
	}
}
