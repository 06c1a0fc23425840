//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"echocare/internal/config"
	"echocare/internal/handler"
	"echocare/internal/middleware"
	"echocare/internal/model"
	"echocare/internal/router"
	"echocare/internal/service"
	"echocare/internal/session"
)

// In-memory stores with the same contracts as the Postgres repositories, so
// the full HTTP stack can be exercised without a database.

type memUsers struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]model.User
}

func (s *memUsers) Create(_ context.Context, u model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[u.Username]; exists {
		return model.User{}, model.ErrUsernameTaken
	}
	s.nextID++
	u.ID = s.nextID
	u.Preferences = "{}"
	u.CreatedAt = time.Now().UTC()
	s.users[u.Username] = u
	return u, nil
}

func (s *memUsers) FindByUsername(_ context.Context, username string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, exists := s.users[username]
	if !exists {
		return model.User{}, model.ErrUserNotFound
	}
	return u, nil
}

func (s *memUsers) FindByID(_ context.Context, id int64) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

type memReminders struct {
	mu        sync.Mutex
	nextID    int64
	reminders []model.Reminder
}

func (s *memReminders) ListByUser(_ context.Context, userID int64) ([]model.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Reminder, 0)
	for _, r := range s.reminders {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memReminders) Create(_ context.Context, rem model.Reminder) (model.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	rem.ID = s.nextID
	rem.CreatedAt = time.Now().UTC()
	s.reminders = append(s.reminders, rem)
	return rem, nil
}

func (s *memReminders) MarkCompleted(_ context.Context, userID int64, reminderID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.reminders {
		if r.ID == reminderID && r.UserID == userID {
			s.reminders[i].Completed = true
			return nil
		}
	}
	return model.ErrReminderNotFound
}

type memContacts struct {
	mu       sync.Mutex
	nextID   int64
	contacts []model.EmergencyContact
}

func (s *memContacts) ListByUser(_ context.Context, userID int64) ([]model.EmergencyContact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.EmergencyContact, 0)
	for _, c := range s.contacts {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *memContacts) Create(_ context.Context, c model.EmergencyContact) (model.EmergencyContact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	c.ID = s.nextID
	c.CreatedAt = time.Now().UTC()
	s.contacts = append(s.contacts, c)
	return c, nil
}

type memChat struct {
	mu       sync.Mutex
	nextID   int64
	messages []model.ChatMessage
}

func (s *memChat) Append(_ context.Context, m model.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	m.ID = s.nextID
	m.Timestamp = time.Now().UTC()
	s.messages = append(s.messages, m)
	return nil
}

func (s *memChat) Recent(_ context.Context, userID int64, limit int) ([]model.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mine := make([]model.ChatMessage, 0)
	for _, m := range s.messages {
		if m.UserID == userID {
			mine = append(mine, m)
		}
	}
	if len(mine) > limit {
		mine = mine[len(mine)-limit:]
	}
	return mine, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		Environment:    "development",
		ServerPort:     "3000",
		RequestTimeout: 30 * time.Second,
		JWTSecret:      "test-secret",
		TokenTTL:       24 * time.Hour,
		CORSOrigins:    []string{"http://localhost:3000"},
	}

	codec := service.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	sessions := session.New(cfg.IsProduction())
	authService := service.NewAuthService(&memUsers{users: map[string]model.User{}}, service.NewHasher(), codec)
	authMiddleware := middleware.NewAuthMiddleware(codec, sessions)

	appRouter := router.New(cfg, authMiddleware, router.Handlers{
		Auth:     handler.NewAuthHandler(authService, sessions),
		Reminder: handler.NewReminderHandler(service.NewReminderService(&memReminders{})),
		Contact:  handler.NewContactHandler(service.NewContactService(&memContacts{})),
		Chat:     handler.NewChatHandler(service.NewChatService(&memChat{})),
	})

	server := httptest.NewServer(appRouter)
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, client *http.Client, url string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return body
}
