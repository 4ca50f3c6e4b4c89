package auth

import (
	"errors"
	"testing"

	"github.com/credstore/credstore-api/internal/models"
	"github.com/credstore/credstore-api/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestAuthorize(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	db.AutoMigrate(&models.User{})

	users := store.NewCredentialStore(db)
	user, err := users.Create("alice", "hash")
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	issuer := NewTokenIssuer("test-secret")
	authorizer := NewAuthorizer(issuer, users)

	t.Run("ValidBearer", func(t *testing.T) {
		token, _ := issuer.Issue(user.ID)
		got, err := authorizer.Authorize("Bearer " + token)
		if err != nil {
			t.Fatalf("Authorize returned error: %v", err)
		}
		if got.ID != user.ID {
			t.Errorf("expected user ID %d, got %d", user.ID, got.ID)
		}
		if got.Username != "alice" {
			t.Errorf("expected username alice, got %s", got.Username)
		}
	})

	t.Run("EmptyHeader", func(t *testing.T) {
		if _, err := authorizer.Authorize(""); !errors.Is(err, ErrTokenMissing) {
			t.Errorf("expected ErrTokenMissing, got %v", err)
		}
	})

	t.Run("NoSecondField", func(t *testing.T) {
		if _, err := authorizer.Authorize("Bearer"); !errors.Is(err, ErrTokenMissing) {
			t.Errorf("expected ErrTokenMissing, got %v", err)
		}
	})

	t.Run("TamperedToken", func(t *testing.T) {
		token, _ := issuer.Issue(user.ID)
		if _, err := authorizer.Authorize("Bearer " + token + "x"); !errors.Is(err, ErrTokenMalformed) {
			t.Errorf("expected ErrTokenMalformed, got %v", err)
		}
	})

	t.Run("UnknownUser", func(t *testing.T) {
		token, _ := issuer.Issue(user.ID + 1000)
		if _, err := authorizer.Authorize("Bearer " + token); !errors.Is(err, ErrTokenMalformed) {
			t.Errorf("expected ErrTokenMalformed, got %v", err)
		}
	})
}
