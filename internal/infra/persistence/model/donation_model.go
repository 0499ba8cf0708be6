package model

import (
	"time"

	"github.com/google/uuid"

	"foodlink/internal/domain/entity"
)

// FoodItemRecord is the JSONB representation of a single food item inside a donation.
type FoodItemRecord struct {
	Name        string              `json:"name"`
	Quantity    float64             `json:"quantity"`
	Unit        string              `json:"unit"`
	Category    entity.FoodCategory `json:"category"`
	ExpiryHours float64             `json:"expiry_hours"`
	Description string              `json:"description,omitempty"`
	ImageURL    string              `json:"image_url,omitempty"`
}

// DonationModel mirrors the 'donations' table.
// FoodItems is stored as a JSONB array; the claim record is flattened into
// nullable columns so CompareAndSetStatus can write it in a single UPDATE.
type DonationModel struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RestaurantID   string           `gorm:"type:varchar(100);not null;index"`
	RestaurantName string           `gorm:"type:varchar(200);not null"`
	FoodItems      []FoodItemRecord `gorm:"type:jsonb;serializer:json"`
	Latitude       float64          `gorm:"type:decimal(10,8);not null"`
	Longitude      float64          `gorm:"type:decimal(11,8);not null"`
	PickupAddress  string           `gorm:"type:text"`
	WindowStart    time.Time        `gorm:"not null"`
	WindowEnd      time.Time        `gorm:"not null"`
	Status         string           `gorm:"type:varchar(20);not null;default:'available';index"`
	ClaimedByID    *uuid.UUID       `gorm:"type:uuid;index"`
	ClaimedByName  string           `gorm:"type:varchar(200)"`
	AIVerified     bool             `gorm:"not null;default:false"`
	CreatedAt      time.Time        `gorm:"index"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (DonationModel) TableName() string {
	return "donations"
}
