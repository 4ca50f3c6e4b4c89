package service

import (
	"errors"
	"testing"

	"github.com/credstore/credstore-api/internal/auth"
	"github.com/credstore/credstore-api/internal/models"
	"github.com/credstore/credstore-api/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.APIKey{}); err != nil {
		t.Fatalf("failed to auto migrate: %v", err)
	}
	return db
}

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	users := store.NewCredentialStore(db)
	issuer := auth.NewTokenIssuer("test-secret")
	return NewAuthService(users, issuer), db
}

func TestAuthService_Register(t *testing.T) {
	svc, db := newAuthService(t)

	t.Run("Valid", func(t *testing.T) {
		user, err := svc.Register("alice", "pw1")
		if err != nil {
			t.Fatalf("Register returned error: %v", err)
		}
		if user.Username != "alice" {
			t.Errorf("expected username alice, got %s", user.Username)
		}
		if user.PasswordHash == "pw1" || user.PasswordHash == "" {
			t.Error("expected password to be stored hashed")
		}
		if !auth.VerifyPassword("pw1", user.PasswordHash) {
			t.Error("stored hash does not verify against the password")
		}
	})

	t.Run("Duplicate", func(t *testing.T) {
		if _, err := svc.Register("alice", "other"); !errors.Is(err, store.ErrDuplicateUsername) {
			t.Errorf("expected ErrDuplicateUsername, got %v", err)
		}

		var count int64
		db.Model(&models.User{}).Count(&count)
		if count != 1 {
			t.Errorf("expected 1 user in DB, got %d", count)
		}
	})

	t.Run("MissingFields", func(t *testing.T) {
		if _, err := svc.Register("", "pw"); !errors.Is(err, ErrValidation) {
			t.Errorf("expected ErrValidation for empty username, got %v", err)
		}
		if _, err := svc.Register("carol", ""); !errors.Is(err, ErrValidation) {
			t.Errorf("expected ErrValidation for empty password, got %v", err)
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Register("alice", "pw1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	t.Run("Valid", func(t *testing.T) {
		token, err := svc.Login("alice", "pw1")
		if err != nil {
			t.Fatalf("Login returned error: %v", err)
		}

		issuer := auth.NewTokenIssuer("test-secret")
		userID, err := issuer.Verify(token)
		if err != nil {
			t.Fatalf("issued token did not verify: %v", err)
		}
		if userID != user.ID {
			t.Errorf("expected token for user %d, got %d", user.ID, userID)
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		if _, err := svc.Login("alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("UnknownUser", func(t *testing.T) {
		// Indistinguishable from a wrong password.
		if _, err := svc.Login("mallory", "pw1"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("MissingFields", func(t *testing.T) {
		if _, err := svc.Login("", "pw1"); !errors.Is(err, ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
		if _, err := svc.Login("alice", ""); !errors.Is(err, ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})
}
