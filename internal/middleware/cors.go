package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// devOrigin is where the companion UI runs during local development. The
// fallback cannot be "*": credentialed requests (the session cookie) are
// refused by browsers for a wildcard origin.
const devOrigin = "http://localhost:3000"

func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{devOrigin}
	}

	handler := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		MaxAge:           3600,
		AllowCredentials: true,
	})

	return handler.Handler
}
