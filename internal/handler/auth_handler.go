package handler

import (
	"encoding/json"
	"net/http"

	"echocare/internal/middleware"
	"echocare/internal/model"
	"echocare/internal/service"
	"echocare/internal/session"
	"echocare/pkg/apierror"
)

type AuthHandler struct {
	service  *service.AuthService
	sessions *session.Transport
}

func NewAuthHandler(service *service.AuthService, sessions *session.Transport) *AuthHandler {
	return &AuthHandler{service: service, sessions: sessions}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, model.ErrInvalidInput)
		return
	}

	profile, token, err := h.service.Register(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	h.sessions.Attach(w, token)
	writeSuccess(w, http.StatusOK, map[string]any{"user": profile})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, model.ErrInvalidInput)
		return
	}

	profile, token, err := h.service.Login(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	h.sessions.Attach(w, token)
	writeSuccess(w, http.StatusOK, map[string]any{"user": profile})
}

// Logout clears the cookie unconditionally. There is nothing server-side to
// revoke, so it is idempotent and needs no valid session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	writeSuccess(w, http.StatusOK, nil)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("NO_CREDENTIAL", "authentication required", "", http.StatusUnauthorized))
		return
	}

	profile, err := h.service.Profile(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"user": profile})
}
