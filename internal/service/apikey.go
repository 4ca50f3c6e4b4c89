package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/credstore/credstore-api/internal/store"
)

// 32 random bytes gives 256 bits of entropy per key; a value collision
// is cryptographically negligible, so the unique constraint on the key
// column is a backstop, not something worth a retry loop.
const keyByteLen = 32

type KeyInfo struct {
	Key       string
	CreatedAt time.Time
	IsActive  bool
}

type APIKeyService struct {
	keys *store.APIKeyStore
}

func NewAPIKeyService(keys *store.APIKeyStore) *APIKeyService {
	return &APIKeyService{keys: keys}
}

// Generate draws a new random key, persists it bound to userID and
// returns the raw value. The value is handed out exactly once; there is
// no later retrieval path besides List, which returns stored values.
func (s *APIKeyService) Generate(userID uint) (string, error) {
	raw := make([]byte, keyByteLen)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	value := base64.RawURLEncoding.EncodeToString(raw)

	if _, err := s.keys.Create(value, userID); err != nil {
		return "", fmt.Errorf("store key: %w", err)
	}

	return value, nil
}

func (s *APIKeyService) List(userID uint) ([]KeyInfo, error) {
	keys, err := s.keys.FindActiveByOwner(userID)
	if err != nil {
		return nil, err
	}

	infos := make([]KeyInfo, 0, len(keys))
	for _, k := range keys {
		infos = append(infos, KeyInfo{
			Key:       k.Key,
			CreatedAt: k.CreatedAt,
			IsActive:  k.IsActive,
		})
	}
	return infos, nil
}

// Revoke deactivates the key matching (value, userID). A key owned by
// someone else reports store.ErrKeyNotFound, indistinguishable from a
// nonexistent key. Revoking an already-inactive key succeeds as a no-op.
func (s *APIKeyService) Revoke(userID uint, value string) error {
	key, err := s.keys.FindByValueAndOwner(value, userID)
	if err != nil {
		return err
	}
	return s.keys.Deactivate(key)
}
