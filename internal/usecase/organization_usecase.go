package usecase

import (
	"context"

	"foodlink/internal/domain/entity"
	"foodlink/internal/domain/repository"

	"github.com/google/uuid"
)

// RegisterOrganizationInput carries the fields needed to register an organization.
type RegisterOrganizationInput struct {
	Name            string
	Email           string
	Password        string
	Phone           string
	Address         string
	Location        *entity.GeoPoint
	Capacity        int
	FoodPreferences []entity.FoodCategory
	FCMToken        string
}

// UpdateOrganizationInput carries optional updates; nil fields are left unchanged.
type UpdateOrganizationInput struct {
	Name            *string
	Phone           *string
	Address         *string
	Location        *entity.GeoPoint
	Capacity        *int
	FoodPreferences *[]entity.FoodCategory
	Active          *bool
	FCMToken        *string
}

// AuthTokens bundles the token pair issued at login.
type AuthTokens struct {
	AccessToken  string
	RefreshToken string
}

// OrganizationUsecase defines the organization registry use cases
type OrganizationUsecase interface {
	// Register creates a new organization account.
	Register(ctx context.Context, input *RegisterOrganizationInput) (*entity.Organization, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, email, password string) (*entity.Organization, *AuthTokens, error)

	// GetOrganization retrieves an organization by ID.
	GetOrganization(ctx context.Context, id uuid.UUID) (*entity.Organization, error)

	// ListOrganizations retrieves organizations matching the filter.
	ListOrganizations(ctx context.Context, filter repository.OrganizationFilter) ([]*entity.Organization, error)

	// UpdateOrganization applies the non-nil fields of the input.
	UpdateOrganization(ctx context.Context, id uuid.UUID, input *UpdateOrganizationInput) (*entity.Organization, error)

	// DeleteOrganization removes an organization account.
	DeleteOrganization(ctx context.Context, id uuid.UUID) error
}
