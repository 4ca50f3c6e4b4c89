package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const TokenDuration = 24 * time.Hour

var (
	ErrTokenMissing   = errors.New("token is missing")
	ErrTokenMalformed = errors.New("token is invalid")
	ErrTokenExpired   = errors.New("token is expired")
)

// TokenIssuer creates and verifies session tokens. The signing secret is
// loaded once at startup and read-only for the process lifetime.
type TokenIssuer struct {
	secret []byte
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

func (i *TokenIssuer) Issue(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify parses and validates a session token and returns the user ID it
// carries. Failures classify as ErrTokenMissing, ErrTokenExpired or
// ErrTokenMalformed; callers at the HTTP boundary collapse all three into
// a single 401 so the case is never leaked.
func (i *TokenIssuer) Verify(tokenString string) (uint, error) {
	if tokenString == "" {
		return 0, ErrTokenMissing
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenMalformed
	}
	if !token.Valid {
		return 0, ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrTokenMalformed
	}
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, ErrTokenMalformed
	}

	return uint(userIDFloat), nil
}
