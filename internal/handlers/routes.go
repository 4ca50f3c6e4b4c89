package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r *chi.Mux, authHandler *AuthHandler, apiKeyHandler *APIKeyHandler) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize Huma API
	config := huma.DefaultConfig("Credential Store API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearerAuth": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}
	api := humachi.New(r, config)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Auth routes
	huma.Register(api, huma.Operation{
		OperationID:   "register",
		Method:        http.MethodPost,
		Path:          "/auth/register",
		DefaultStatus: http.StatusCreated,
	}, authHandler.HandleRegister)
	huma.Post(api, "/auth/login", authHandler.HandleLogin)

	// Protected routes
	huma.Post(api, "/api/generate-key", apiKeyHandler.HandleGenerate, func(o *huma.Operation) {
		o.Security = []map[string][]string{{"bearerAuth": {}}}
	})
	huma.Get(api, "/api/keys", apiKeyHandler.HandleList, func(o *huma.Operation) {
		o.Security = []map[string][]string{{"bearerAuth": {}}}
	})
	huma.Post(api, "/api/revoke/{key}", apiKeyHandler.HandleRevoke, func(o *huma.Operation) {
		o.Security = []map[string][]string{{"bearerAuth": {}}}
	})
}
