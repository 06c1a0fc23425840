package service

import (
	"context"
	"net/http"
	"strings"
	"time"

	"echocare/internal/model"
	"echocare/pkg/apierror"
)

type reminderStore interface {
	ListByUser(ctx context.Context, userID int64) ([]model.Reminder, error)
	Create(ctx context.Context, rem model.Reminder) (model.Reminder, error)
	MarkCompleted(ctx context.Context, userID int64, reminderID int64) error
}

type ReminderService struct {
	reminders reminderStore
}

func NewReminderService(reminders reminderStore) *ReminderService {
	return &ReminderService{reminders: reminders}
}

func (s *ReminderService) List(ctx context.Context, userID int64) ([]model.Reminder, error) {
	return s.reminders.ListByUser(ctx, userID)
}

func (s *ReminderService) Create(ctx context.Context, userID int64, req model.CreateReminderRequest) (model.Reminder, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || strings.TrimSpace(req.Time) == "" {
		return model.Reminder{}, apierror.New("BAD_REQUEST",
			"title and time are required", "", http.StatusBadRequest)
	}

	at, err := time.Parse(time.RFC3339, req.Time)
	if err != nil {
		return model.Reminder{}, apierror.New("BAD_REQUEST",
			"time must be RFC 3339", req.Time, http.StatusBadRequest)
	}

	return s.reminders.Create(ctx, model.Reminder{
		UserID:    userID,
		Title:     title,
		Time:      at,
		Recurring: req.Recurring,
	})
}

func (s *ReminderService) Complete(ctx context.Context, userID int64, reminderID int64) error {
	return s.reminders.MarkCompleted(ctx, userID, reminderID)
}
