package service

import (
	"context"
	"net/http"
	"strings"

	"echocare/internal/model"
	"echocare/pkg/apierror"
)

type contactStore interface {
	ListByUser(ctx context.Context, userID int64) ([]model.EmergencyContact, error)
	Create(ctx context.Context, c model.EmergencyContact) (model.EmergencyContact, error)
}

type ContactService struct {
	contacts contactStore
}

func NewContactService(contacts contactStore) *ContactService {
	return &ContactService{contacts: contacts}
}

func (s *ContactService) List(ctx context.Context, userID int64) ([]model.EmergencyContact, error) {
	return s.contacts.ListByUser(ctx, userID)
}

func (s *ContactService) Create(ctx context.Context, userID int64, req model.CreateContactRequest) (model.EmergencyContact, error) {
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || phone == "" {
		return model.EmergencyContact{}, apierror.New("BAD_REQUEST",
			"name and phone are required", "", http.StatusBadRequest)
	}

	return s.contacts.Create(ctx, model.EmergencyContact{
		UserID:       userID,
		Name:         name,
		Phone:        phone,
		Relationship: strings.TrimSpace(req.Relationship),
	})
}
