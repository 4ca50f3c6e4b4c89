package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/credstore/credstore-api/internal/auth"
	"github.com/credstore/credstore-api/internal/service"
	"github.com/credstore/credstore-api/internal/store"
	"github.com/danielgtaylor/huma/v2"
)

type APIKeyHandler struct {
	svc        *service.APIKeyService
	authorizer *auth.Authorizer
}

func NewAPIKeyHandler(svc *service.APIKeyService, authorizer *auth.Authorizer) *APIKeyHandler {
	return &APIKeyHandler{svc: svc, authorizer: authorizer}
}

// authErr maps an Authorize failure to the boundary response. All token
// failure kinds collapse into one 401 so the client cannot tell a missing
// token from an expired or tampered one.
func authErr(err error) error {
	switch {
	case errors.Is(err, auth.ErrTokenMissing),
		errors.Is(err, auth.ErrTokenMalformed),
		errors.Is(err, auth.ErrTokenExpired):
		return huma.Error401Unauthorized("Invalid token")
	default:
		log.Printf("authorize failed: %v", err)
		return huma.Error500InternalServerError("Internal server error")
	}
}

type GenerateKeyInput struct {
	auth.AuthInput
}

type GenerateKeyOutput struct {
	Body struct {
		APIKey string `json:"api_key"`
	}
}

func (h *APIKeyHandler) HandleGenerate(ctx context.Context, input *GenerateKeyInput) (*GenerateKeyOutput, error) {
	user, err := h.authorizer.Authorize(input.Authorization)
	if err != nil {
		return nil, authErr(err)
	}

	value, err := h.svc.Generate(user.ID)
	if err != nil {
		log.Printf("generate key failed: %v", err)
		return nil, huma.Error500InternalServerError("Error generating API key")
	}

	res := &GenerateKeyOutput{}
	res.Body.APIKey = value
	return res, nil
}

type ListKeysInput struct {
	auth.AuthInput
}

type KeyResponse struct {
	Key       string    `json:"key"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

type ListKeysOutput struct {
	Body struct {
		APIKeys []KeyResponse `json:"api_keys"`
	}
}

func (h *APIKeyHandler) HandleList(ctx context.Context, input *ListKeysInput) (*ListKeysOutput, error) {
	user, err := h.authorizer.Authorize(input.Authorization)
	if err != nil {
		return nil, authErr(err)
	}

	keys, err := h.svc.List(user.ID)
	if err != nil {
		log.Printf("list keys failed: %v", err)
		return nil, huma.Error500InternalServerError("Error listing API keys")
	}

	res := &ListKeysOutput{}
	res.Body.APIKeys = make([]KeyResponse, 0, len(keys))
	for _, k := range keys {
		res.Body.APIKeys = append(res.Body.APIKeys, KeyResponse{
			Key:       k.Key,
			CreatedAt: k.CreatedAt,
			IsActive:  k.IsActive,
		})
	}
	return res, nil
}

type RevokeKeyInput struct {
	auth.AuthInput
	Key string `path:"key"`
}

func (h *APIKeyHandler) HandleRevoke(ctx context.Context, input *RevokeKeyInput) (*MessageResponse, error) {
	user, err := h.authorizer.Authorize(input.Authorization)
	if err != nil {
		return nil, authErr(err)
	}

	if err := h.svc.Revoke(user.ID, input.Key); err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, huma.Error404NotFound("API key not found")
		}
		log.Printf("revoke key failed: %v", err)
		return nil, huma.Error500InternalServerError("Error revoking API key")
	}

	res := &MessageResponse{}
	res.Body.Message = "API key revoked successfully"
	return res, nil
}
