package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"echocare/internal/service"
	"echocare/internal/session"
)

func newGate(t *testing.T) (*AuthMiddleware, *service.TokenCodec) {
	t.Helper()

	codec := service.NewTokenCodec("test-secret", 24*time.Hour)
	return NewAuthMiddleware(codec, session.New(false)), codec
}

func TestRequireAuthNoCookie(t *testing.T) {
	t.Parallel()

	gate, _ := newGate(t)

	handlerRan := false
	handler := gate.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerRan = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reminders", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, handlerRan)
	require.Contains(t, rec.Body.String(), "NO_CREDENTIAL")
}

func TestRequireAuthTamperedToken(t *testing.T) {
	t.Parallel()

	gate, codec := newGate(t)

	token, err := codec.Issue(1, "alice")
	require.NoError(t, err)

	handlerRan := false
	handler := gate.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerRan = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/reminders", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token + "x"})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.False(t, handlerRan)
	require.Contains(t, rec.Body.String(), "BAD_CREDENTIAL")
}

func TestRequireAuthValidToken(t *testing.T) {
	t.Parallel()

	gate, codec := newGate(t)

	token, err := codec.Issue(42, "alice")
	require.NoError(t, err)

	handler := gate.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		require.True(t, ok)
		require.Equal(t, int64(42), identity.UserID)
		require.Equal(t, "alice", identity.Username)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/reminders", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	t.Parallel()

	expiredCodec := service.NewTokenCodec("test-secret", -time.Minute)
	gate := NewAuthMiddleware(expiredCodec, session.New(false))

	token, err := expiredCodec.Issue(1, "alice")
	require.NoError(t, err)

	handler := gate.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for an expired token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/reminders", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}
