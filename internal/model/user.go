package model

import "time"

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Age          *int      `json:"age,omitempty"`
	Preferences  string    `json:"preferences,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile is the public view of a User. It never carries the password hash.
type Profile struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Name        string `json:"name"`
	Age         *int   `json:"age,omitempty"`
	Preferences string `json:"preferences,omitempty"`
}

// Identity is the resolved subject of an authenticated request, extracted
// from a verified token. It lives in the request context for the duration of
// the request and is never persisted.
type Identity struct {
	UserID   int64
	Username string
}

func (u User) Profile() Profile {
	return Profile{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Age:      u.Age,
	}
}

// FullProfile includes the preferences blob; used by the /me endpoint.
func (u User) FullProfile() Profile {
	p := u.Profile()
	p.Preferences = u.Preferences
	return p
}
