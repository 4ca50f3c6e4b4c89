package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/credstore/credstore-api/internal/service"
	"github.com/credstore/credstore-api/internal/store"
	"github.com/danielgtaylor/huma/v2"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type CredentialsRequest struct {
	Body struct {
		// omitempty keeps the fields schema-optional so absent fields
		// reach the service and map to the same 400 as empty ones.
		Username string `json:"username,omitempty" doc:"Username, unique across all users"`
		Password string `json:"password,omitempty" doc:"Plaintext password, stored only as a hash"`
	}
}

type MessageResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}

type TokenResponse struct {
	Body struct {
		Token string `json:"token"`
	}
}

func (h *AuthHandler) HandleRegister(ctx context.Context, input *CredentialsRequest) (*MessageResponse, error) {
	_, err := h.svc.Register(input.Body.Username, input.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return nil, huma.Error400BadRequest("Missing required fields")
		case errors.Is(err, store.ErrDuplicateUsername):
			return nil, huma.Error400BadRequest("Username already exists")
		default:
			log.Printf("register failed: %v", err)
			return nil, huma.Error500InternalServerError("Error creating user")
		}
	}

	res := &MessageResponse{}
	res.Body.Message = "User created successfully"
	return res, nil
}

func (h *AuthHandler) HandleLogin(ctx context.Context, input *CredentialsRequest) (*TokenResponse, error) {
	token, err := h.svc.Login(input.Body.Username, input.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return nil, huma.Error400BadRequest("Missing required fields")
		case errors.Is(err, service.ErrInvalidCredentials):
			return nil, huma.Error401Unauthorized("Invalid credentials")
		default:
			log.Printf("login failed: %v", err)
			return nil, huma.Error500InternalServerError("Error logging in")
		}
	}

	res := &TokenResponse{}
	res.Body.Token = token
	return res, nil
}
