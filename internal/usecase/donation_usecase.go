package usecase

import (
	"context"
	"time"

	"foodlink/internal/domain/entity"
	"foodlink/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateDonationInput carries everything needed to post a new donation.
type CreateDonationInput struct {
	RestaurantID   string
	RestaurantName string
	FoodItems      []entity.FoodItem
	PickupPoint    entity.GeoPoint
	PickupAddress  string
	WindowStart    time.Time
	WindowEnd      time.Time

	// Image is an optional photo of the donated food. When present it is
	// tagged, stored, and linked to the donation.
	Image            []byte
	ImageContentType string

	// RequestID propagates the caller's tracing ID into published events.
	RequestID string
}

// DonationWithMatches pairs a donation with its current top-ranked candidates.
type DonationWithMatches struct {
	Donation *entity.Donation
	// Matches holds the top candidates by priority score, best first.
	Matches []*entity.MatchCandidate
	// Recommended is the oracle's pick, or nil when nothing matches.
	Recommended *entity.Organization
}

// DonationUsecase defines the donation lifecycle use cases
type DonationUsecase interface {
	// CreateDonation validates and persists a new donation, computes its
	// matches, and notifies matched organizations.
	CreateDonation(ctx context.Context, input *CreateDonationInput) (*DonationWithMatches, error)

	// GetDonation retrieves a donation with freshly computed matches.
	// A positive radiusKm overrides the configured search radius, clamped
	// to the configured maximum; zero or negative uses the default.
	GetDonation(ctx context.Context, id uuid.UUID, radiusKm float64) (*DonationWithMatches, error)

	// ListDonations retrieves donations matching the filter.
	ListDonations(ctx context.Context, filter repository.DonationFilter) ([]*entity.Donation, error)

	// UpdateDonationStatus transitions a donation to the next status.
	// Claiming requires the claimer's organization ID.
	UpdateDonationStatus(ctx context.Context, id uuid.UUID, next entity.DonationStatus, claimerID *uuid.UUID) (*entity.Donation, error)

	// DeleteDonation removes a donation.
	DeleteDonation(ctx context.Context, id uuid.UUID) error

	// GeneratePickupQR produces the QR code the claiming organization
	// presents at pickup. The donation must already be claimed.
	GeneratePickupQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
