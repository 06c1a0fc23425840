package service

import (
	"context"
	"net/http"
	"strings"

	"echocare/internal/model"
	"echocare/pkg/apierror"
)

// historyLimit caps how much transcript the client gets back; matches what
// the companion UI renders.
const historyLimit = 20

type chatStore interface {
	Append(ctx context.Context, m model.ChatMessage) error
	Recent(ctx context.Context, userID int64, limit int) ([]model.ChatMessage, error)
}

type ChatService struct {
	chat chatStore
}

func NewChatService(chat chatStore) *ChatService {
	return &ChatService{chat: chat}
}

func (s *ChatService) Append(ctx context.Context, userID int64, req model.AppendChatRequest) error {
	if strings.TrimSpace(req.Role) == "" || strings.TrimSpace(req.Content) == "" {
		return apierror.New("BAD_REQUEST", "role and content are required", "", http.StatusBadRequest)
	}

	return s.chat.Append(ctx, model.ChatMessage{
		UserID:  userID,
		Role:    req.Role,
		Content: req.Content,
	})
}

func (s *ChatService) History(ctx context.Context, userID int64) ([]model.ChatMessage, error) {
	return s.chat.Recent(ctx, userID, historyLimit)
}
