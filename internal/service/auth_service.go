package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"echocare/internal/model"
	"echocare/pkg/apierror"
)

type userStore interface {
	Create(ctx context.Context, u model.User) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
	FindByID(ctx context.Context, id int64) (model.User, error)
}

type AuthService struct {
	users  userStore
	hasher *Hasher
	codec  *TokenCodec
}

func NewAuthService(users userStore, hasher *Hasher, codec *TokenCodec) *AuthService {
	return &AuthService{users: users, hasher: hasher, codec: codec}
}

// Register creates an identity and returns its public profile together with
// a freshly minted session token. Validation happens before any store
// mutation; a username collision leaves the store untouched.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.Profile, string, error) {
	username := strings.TrimSpace(req.Username)
	name := strings.TrimSpace(req.Name)

	if username == "" || req.Password == "" || name == "" {
		return model.Profile{}, "", apierror.New("BAD_REQUEST",
			"username, password and name are required", "", http.StatusBadRequest)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.Profile{}, "", err
	}

	user, err := s.users.Create(ctx, model.User{
		Username:     username,
		PasswordHash: hash,
		Name:         name,
		Age:          req.Age,
	})
	if err != nil {
		return model.Profile{}, "", err
	}

	token, err := s.codec.Issue(user.ID, user.Username)
	if err != nil {
		return model.Profile{}, "", err
	}

	return user.Profile(), token, nil
}

// Login verifies credentials and mints a session token. An unknown username
// and a wrong password collapse into the same ErrInvalidCredentials before
// any response is built, so callers cannot probe for registered usernames.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.Profile, string, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, model.ErrUserNotFound) {
		return model.Profile{}, "", err
	}

	if err != nil || !s.hasher.Verify(req.Password, user.PasswordHash) {
		return model.Profile{}, "", model.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID, user.Username)
	if err != nil {
		return model.Profile{}, "", err
	}

	return user.Profile(), token, nil
}

// Profile loads the full current profile for an authenticated identity.
// Tokens outlive row deletion, so the row may be gone by now; that surfaces
// as model.ErrUserNotFound.
func (s *AuthService) Profile(ctx context.Context, userID int64) (model.Profile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return model.Profile{}, err
	}

	return user.FullProfile(), nil
}
