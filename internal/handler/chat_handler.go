package handler

import (
	"encoding/json"
	"net/http"

	"echocare/internal/middleware"
	"echocare/internal/model"
	"echocare/internal/service"
	"echocare/pkg/apierror"
)

type ChatHandler struct {
	service *service.ChatService
}

func NewChatHandler(service *service.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) Append(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("NO_CREDENTIAL", "authentication required", "", http.StatusUnauthorized))
		return
	}

	var payload model.AppendChatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, model.ErrInvalidInput)
		return
	}

	if err := h.service.Append(r.Context(), identity.UserID, payload); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}

func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("NO_CREDENTIAL", "authentication required", "", http.StatusUnauthorized))
		return
	}

	history, err := h.service.History(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"history": history})
}
