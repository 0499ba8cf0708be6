// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"foodlink/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrganizationNotFound is a domain-specific error returned when an organization is not found.
var ErrOrganizationNotFound = errors.New("organization not found")

// OrganizationFilter narrows List results. Nil fields are ignored.
type OrganizationFilter struct {
	Active   *bool
	Verified *bool
}

// OrganizationRepository defines the standard operations for organization persistence.
// The application layer will depend on this interface, not the concrete implementation.
type OrganizationRepository interface {
	// FindByID retrieves a single organization by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error)

	// FindByEmail retrieves a single organization by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Organization, error)

	// FindActive retrieves all organizations that are active and have a known location.
	// Only these are eligible for donation matching.
	FindActive(ctx context.Context) ([]*entity.Organization, error)

	// List retrieves organizations matching the filter.
	List(ctx context.Context, filter OrganizationFilter) ([]*entity.Organization, error)

	// Create persists a new organization entity to the storage.
	Create(ctx context.Context, org *entity.Organization) error

	// Update modifies an existing organization entity in the storage.
	Update(ctx context.Context, org *entity.Organization) error

	// Delete removes an organization by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementDonationsReceived atomically bumps the organization's received-donation counter.
	IncrementDonationsReceived(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of organizations, optionally filtered.
	Count(ctx context.Context, filter OrganizationFilter) (int64, error)
}
