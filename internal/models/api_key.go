package models

import (
	"gorm.io/gorm"
)

type APIKey struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"not null"`
	User     User   `json:"-" gorm:"foreignKey:UserID"`
	Key      string `json:"key" gorm:"uniqueIndex;not null"`
	IsActive bool   `json:"is_active" gorm:"not null;default:true"`
}
