package auth

import (
	"errors"
	"strings"

	"github.com/credstore/credstore-api/internal/models"
	"github.com/credstore/credstore-api/internal/store"
)

// AuthInput is embedded by protected handler inputs to pull the
// Authorization header into the request struct.
type AuthInput struct {
	Authorization string `header:"Authorization"`
}

// Authorizer resolves a Bearer token to the user it identifies. Every
// protected handler calls Authorize before doing any work.
type Authorizer struct {
	issuer *TokenIssuer
	users  *store.CredentialStore
}

func NewAuthorizer(issuer *TokenIssuer, users *store.CredentialStore) *Authorizer {
	return &Authorizer{issuer: issuer, users: users}
}

func (a *Authorizer) Authorize(header string) (*models.User, error) {
	// Header format: "Bearer <token>". A header without a second field
	// counts as missing, not as a malformed-token parse attempt.
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return nil, ErrTokenMissing
	}

	userID, err := a.issuer.Verify(fields[1])
	if err != nil {
		return nil, err
	}

	user, err := a.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Valid signature but no such user; fail closed.
			return nil, ErrTokenMalformed
		}
		return nil, err
	}
	return user, nil
}
