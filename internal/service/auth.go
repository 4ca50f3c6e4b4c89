package service

import (
	"errors"
	"fmt"

	"github.com/credstore/credstore-api/internal/auth"
	"github.com/credstore/credstore-api/internal/models"
	"github.com/credstore/credstore-api/internal/store"
)

var (
	ErrValidation = errors.New("missing required fields")
	// ErrInvalidCredentials covers both unknown username and wrong
	// password; callers must not be able to tell which.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	users  *store.CredentialStore
	issuer *auth.TokenIssuer
}

func NewAuthService(users *store.CredentialStore, issuer *auth.TokenIssuer) *AuthService {
	return &AuthService{users: users, issuer: issuer}
}

func (s *AuthService) Register(username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrValidation
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.users.Create(username, hash)
}

func (s *AuthService) Login(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrValidation
	}

	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return s.issuer.Issue(user.ID)
}
