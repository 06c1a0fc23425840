package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"echocare/internal/config"
	"echocare/internal/handler"
	"echocare/internal/middleware"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	Reminder *handler.ReminderHandler
	Contact  *handler.ContactHandler
	Chat     *handler.ChatHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/register", h.Auth.Register)
			auth.Post("/login", h.Auth.Login)
			auth.Post("/logout", h.Auth.Logout)
			auth.With(authMiddleware.RequireAuth).Get("/me", h.Auth.Me)
		})

		api.Group(func(protected chi.Router) {
			protected.Use(authMiddleware.RequireAuth)

			protected.Get("/reminders", h.Reminder.List)
			protected.Post("/reminders", h.Reminder.Create)
			protected.Put("/reminders/{reminder_id}/complete", h.Reminder.Complete)

			protected.Get("/emergency-contacts", h.Contact.List)
			protected.Post("/emergency-contacts", h.Contact.Create)

			protected.Get("/chat/history", h.Chat.History)
			protected.Post("/chat/history", h.Chat.Append)
		})
	})

	return r
}
