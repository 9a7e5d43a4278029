package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// DefaultVerifyTimeout is the default timeout for session verification calls
const DefaultVerifyTimeout = 10 * time.Second

// Verifier resolves a session token into an Identity. The identity provider
// is an external collaborator; this interface is the whole of what the
// application knows about it.
type Verifier interface {
	// Verify resolves the given session token. Returns an error when the
	// token is invalid, expired, or the provider is unreachable.
	Verify(ctx context.Context, token string) (*Identity, error)
}

// sessionClaims is the wire shape of the provider's session endpoint
type sessionClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// HTTPVerifier verifies session tokens against the identity provider's
// session endpoint
type HTTPVerifier struct {
	baseURL string
	timeout time.Duration
}

// NewHTTPVerifier creates a verifier that introspects tokens at
// baseURL + "/session"
func NewHTTPVerifier(baseURL string) *HTTPVerifier {
	return &HTTPVerifier{
		baseURL: baseURL,
		timeout: DefaultVerifyTimeout,
	}
}

// Verify implements the Verifier interface
func (v *HTTPVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	agent := fiber.Get(v.baseURL + "/session")
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	} else {
		agent.Timeout(v.timeout)
	}
	agent.Set("Authorization", "Bearer "+token)
	agent.Set("Accept", "application/json")

	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("session verification request failed: %w", errs[0])
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("session rejected by identity provider: status %d", status)
	}

	var claims sessionClaims
	if err := json.Unmarshal(body, &claims); err != nil {
		return nil, fmt.Errorf("invalid session response: %w", err)
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("session response missing user id")
	}
	role, err := ParseRole(claims.Role)
	if err != nil {
		return nil, err
	}

	return &Identity{UserID: claims.UserID, Role: role}, nil
}

// StaticVerifier resolves tokens from a fixed map. Used in tests and local
// development where no identity provider is running.
type StaticVerifier struct {
	sessions map[string]Identity
}

// NewStaticVerifier creates a verifier backed by the given token to identity map
func NewStaticVerifier(sessions map[string]Identity) *StaticVerifier {
	return &StaticVerifier{sessions: sessions}
}

// Verify implements the Verifier interface
func (v *StaticVerifier) Verify(_ context.Context, token string) (*Identity, error) {
	identity, ok := v.sessions[token]
	if !ok {
		return nil, fmt.Errorf("unknown session token")
	}
	return &identity, nil
}
