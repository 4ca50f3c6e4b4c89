package store

import (
	"errors"

	"github.com/credstore/credstore-api/internal/models"
	"gorm.io/gorm"
)

var ErrKeyNotFound = errors.New("API key not found")

type APIKeyStore struct {
	db *gorm.DB
}

func NewAPIKeyStore(db *gorm.DB) *APIKeyStore {
	return &APIKeyStore{db: db}
}

func (s *APIKeyStore) Create(value string, ownerID uint) (*models.APIKey, error) {
	key := models.APIKey{Key: value, UserID: ownerID, IsActive: true}
	if err := s.db.Create(&key).Error; err != nil {
		return nil, err
	}
	return &key, nil
}

// FindActiveByOwner returns the owner's active keys. Order is whatever
// the database returns; callers must not depend on it.
func (s *APIKeyStore) FindActiveByOwner(ownerID uint) ([]models.APIKey, error) {
	var keys []models.APIKey
	if err := s.db.Where("user_id = ? AND is_active = ?", ownerID, true).Find(&keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

// FindByValueAndOwner looks up a key scoped to its owner, so a key cannot
// be revoked by a non-owner even if the raw value is known. It does not
// filter on IsActive; revoking an already-revoked key resolves and stays
// a no-op.
func (s *APIKeyStore) FindByValueAndOwner(value string, ownerID uint) (*models.APIKey, error) {
	var key models.APIKey
	if err := s.db.Where("key = ? AND user_id = ?", value, ownerID).First(&key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return &key, nil
}

func (s *APIKeyStore) Deactivate(key *models.APIKey) error {
	return s.db.Model(key).Update("is_active", false).Error
}
