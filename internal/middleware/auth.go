package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"echocare/internal/model"
	"echocare/internal/session"
)

type tokenVerifier interface {
	Verify(tokenString string) (*model.Identity, error)
}

type contextKey string

const identityContextKey contextKey = "identity"

// AuthMiddleware gates protected routes. Validation is purely cryptographic:
// no store lookup happens here, so a token outlives deletion of its identity
// until it expires.
type AuthMiddleware struct {
	codec    tokenVerifier
	sessions *session.Transport
}

func NewAuthMiddleware(codec tokenVerifier, sessions *session.Transport) *AuthMiddleware {
	return &AuthMiddleware{codec: codec, sessions: sessions}
}

func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := m.sessions.Extract(r)
		if err != nil {
			writeRejection(w, http.StatusUnauthorized, "NO_CREDENTIAL", "authentication required")
			return
		}

		identity, err := m.codec.Verify(token)
		if err != nil {
			// Malformed, expired and forged tokens all reject the same way;
			// the cause is only interesting in logs.
			slog.Debug("session token rejected", "error", err)
			writeRejection(w, http.StatusForbidden, "BAD_CREDENTIAL", "invalid or expired session")
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func IdentityFromContext(ctx context.Context) (*model.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(*model.Identity)
	return identity, ok
}

func writeRejection(w http.ResponseWriter, status int, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: false,
		Error: &model.APIError{
			Code:    code,
			Message: message,
		},
	})
}
