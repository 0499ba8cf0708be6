package model

import (
	"time"

	"github.com/google/uuid"

	"foodlink/internal/domain/entity"
)

// OrganizationModel mirrors the 'organizations' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type OrganizationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(200);not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(50)"`
	Address      string    `gorm:"type:text"`
	// Location is nullable: organizations without coordinates are excluded from matching.
	Latitude  *float64 `gorm:"type:decimal(10,8)"`
	Longitude *float64 `gorm:"type:decimal(11,8)"`
	Capacity  int      `gorm:"not null;default:0"`
	// FoodPreferences is stored as a JSONB array of category strings.
	FoodPreferences        []entity.FoodCategory `gorm:"type:jsonb;serializer:json"`
	Verified               bool                  `gorm:"not null;default:false"`
	Active                 bool                  `gorm:"not null;default:true;index"`
	TotalDonationsReceived int                   `gorm:"not null;default:0"`
	FCMToken               string                `gorm:"type:text"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrganizationModel) TableName() string {
	return "organizations"
}
