package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"echocare/internal/middleware"
	"echocare/internal/model"
	"echocare/internal/service"
	"echocare/pkg/apierror"
)

type ReminderHandler struct {
	service *service.ReminderService
}

func NewReminderHandler(service *service.ReminderService) *ReminderHandler {
	return &ReminderHandler{service: service}
}

func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("NO_CREDENTIAL", "authentication required", "", http.StatusUnauthorized))
		return
	}

	reminders, err := h.service.List(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"reminders": reminders})
}

func (h *ReminderHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("NO_CREDENTIAL", "authentication required", "", http.StatusUnauthorized))
		return
	}

	var payload model.CreateReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, model.ErrInvalidInput)
		return
	}

	reminder, err := h.service.Create(r.Context(), identity.UserID, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"reminder": reminder})
}

func (h *ReminderHandler) Complete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("NO_CREDENTIAL", "authentication required", "", http.StatusUnauthorized))
		return
	}

	reminderID, err := strconv.ParseInt(chi.URLParam(r, "reminder_id"), 10, 64)
	if err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid reminder id", "", http.StatusBadRequest))
		return
	}

	if err := h.service.Complete(r.Context(), identity.UserID, reminderID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}
