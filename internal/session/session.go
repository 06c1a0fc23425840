// Package session carries the signed token between client and server. The
// cookie is the only channel; tokens never appear in headers or bodies, which
// keeps them out of script-accessible storage.
package session

import (
	"errors"
	"net/http"

	"echocare/internal/model"
)

const cookieName = "token"

type Transport struct {
	secure bool
}

// New builds a Transport. secure should be true for production deployments
// so the cookie only travels over TLS; it is HttpOnly either way.
func New(secure bool) *Transport {
	return &Transport{secure: secure}
}

// Attach sets the session cookie. No Max-Age: lifetime is enforced by the
// expiry inside the token, not by the cookie mechanism.
func (t *Transport) Attach(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (t *Transport) Extract(r *http.Request) (string, error) {
	c, err := r.Cookie(cookieName)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", model.ErrNoCredential
		}
		return "", err
	}
	if c.Value == "" {
		return "", model.ErrNoCredential
	}
	return c.Value, nil
}

// Clear tells the client to discard the cookie. Safe to call without one.
func (t *Transport) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
