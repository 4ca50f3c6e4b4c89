package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/credstore/credstore-api/internal/auth"
	"github.com/credstore/credstore-api/internal/config"
	"github.com/credstore/credstore-api/internal/database"
	"github.com/credstore/credstore-api/internal/handlers"
	"github.com/credstore/credstore-api/internal/service"
	"github.com/credstore/credstore-api/internal/store"
	"github.com/go-chi/chi/v5"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	// Initialize Stores and Services
	users := store.NewCredentialStore(db)
	keys := store.NewAPIKeyStore(db)
	issuer := auth.NewTokenIssuer(cfg.JWTSecret)
	authorizer := auth.NewAuthorizer(issuer, users)

	authHandler := handlers.NewAuthHandler(service.NewAuthService(users, issuer))
	apiKeyHandler := handlers.NewAPIKeyHandler(service.NewAPIKeyService(keys), authorizer)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, authHandler, apiKeyHandler)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
