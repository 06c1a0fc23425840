package middleware

import (
	"net/http"
	"time"
)

// The slowest thing any request does here is a bcrypt comparison, so the
// fallback deadline can be much tighter than a general-purpose one.
const defaultRequestTimeout = 15 * time.Second

const timeoutBody = `{"success":false,"error":{"code":"TIMEOUT","message":"request deadline exceeded"}}`

func Timeout(d time.Duration) func(http.Handler) http.Handler {
	if d <= 0 {
		d = defaultRequestTimeout
	}

	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, d, timeoutBody)
	}
}
