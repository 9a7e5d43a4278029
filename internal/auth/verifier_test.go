package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSessionServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/session" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		switch r.Header.Get("Authorization") {
		case "Bearer valid-token":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"user_id": "creator-1", "role": "creator"}`))
		case "Bearer malformed-token":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{not json`))
		case "Bearer no-subject-token":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"role": "user"}`))
		case "Bearer bad-role-token":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"user_id": "user-1", "role": "superuser"}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error": "invalid session"}`))
		}
	}))
}

func TestHTTPVerifier(t *testing.T) {
	server := setupSessionServer()
	defer server.Close()

	verifier := NewHTTPVerifier(server.URL)
	ctx := context.Background()

	t.Run("valid session", func(t *testing.T) {
		identity, err := verifier.Verify(ctx, "valid-token")
		require.NoError(t, err)
		assert.Equal(t, "creator-1", identity.UserID)
		assert.Equal(t, RoleCreator, identity.Role)
	})

	t.Run("rejected session", func(t *testing.T) {
		identity, err := verifier.Verify(ctx, "expired-token")
		assert.Error(t, err)
		assert.Nil(t, identity)
		assert.Contains(t, err.Error(), "status 401")
	})

	t.Run("malformed claims", func(t *testing.T) {
		identity, err := verifier.Verify(ctx, "malformed-token")
		assert.Error(t, err)
		assert.Nil(t, identity)
		assert.Contains(t, err.Error(), "invalid session response")
	})

	t.Run("missing user id", func(t *testing.T) {
		identity, err := verifier.Verify(ctx, "no-subject-token")
		assert.Error(t, err)
		assert.Nil(t, identity)
		assert.Contains(t, err.Error(), "missing user id")
	})

	t.Run("unknown role", func(t *testing.T) {
		identity, err := verifier.Verify(ctx, "bad-role-token")
		assert.Error(t, err)
		assert.Nil(t, identity)
	})

	t.Run("unreachable provider", func(t *testing.T) {
		down := NewHTTPVerifier("http://127.0.0.1:1")
		identity, err := down.Verify(ctx, "valid-token")
		assert.Error(t, err)
		assert.Nil(t, identity)
	})
}
