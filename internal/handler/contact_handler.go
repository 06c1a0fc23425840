package handler

import (
	"encoding/json"
	"net/http"

	"echocare/internal/middleware"
	"echocare/internal/model"
	"echocare/internal/service"
	"echocare/pkg/apierror"
)

type ContactHandler struct {
	service *service.ContactService
}

func NewContactHandler(service *service.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("NO_CREDENTIAL", "authentication required", "", http.StatusUnauthorized))
		return
	}

	contacts, err := h.service.List(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"contacts": contacts})
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("NO_CREDENTIAL", "authentication required", "", http.StatusUnauthorized))
		return
	}

	var payload model.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, model.ErrInvalidInput)
		return
	}

	contact, err := h.service.Create(r.Context(), identity.UserID, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"contact": contact})
}
