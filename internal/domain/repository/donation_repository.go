package repository

import (
	"context"
	"errors"
	"time"

	"foodlink/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDonationNotFound is a domain-specific error returned when a donation is not found.
var ErrDonationNotFound = errors.New("donation not found")

// ErrStatusConflict is returned by CompareAndSetStatus when the donation
// exists but its current status no longer matches the expected one.
var ErrStatusConflict = errors.New("donation status conflict")

// DonationFilter narrows List results. Zero-value fields are ignored.
type DonationFilter struct {
	Status       entity.DonationStatus
	RestaurantID string
	ClaimedByID  *uuid.UUID
}

// DonationRepository defines the standard operations for donation persistence.
type DonationRepository interface {
	// FindByID retrieves a single donation by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error)

	// List retrieves donations matching the filter, newest first.
	List(ctx context.Context, filter DonationFilter) ([]*entity.Donation, error)

	// Create persists a new donation entity to the storage.
	Create(ctx context.Context, donation *entity.Donation) error

	// CompareAndSetStatus updates the donation's status only if its current
	// status equals expected. The claim record is written when transitioning
	// to claimed and must be nil otherwise.
	// Returns ErrDonationNotFound if no row exists, ErrStatusConflict if the
	// row exists but the status check failed.
	CompareAndSetStatus(ctx context.Context, id uuid.UUID, expected, next entity.DonationStatus, claim *entity.ClaimRecord) error

	// Delete removes a donation by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountAll returns the total number of donations.
	CountAll(ctx context.Context) (int64, error)

	// CountByStatus returns the number of donations per status.
	CountByStatus(ctx context.Context) (map[entity.DonationStatus]int64, error)

	// FindCreatedSince retrieves donations created at or after the given time.
	FindCreatedSince(ctx context.Context, since time.Time) ([]*entity.Donation, error)

	// CountFoodItems returns the total number of food items across all donations.
	CountFoodItems(ctx context.Context) (int64, error)
}
