// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"foodlink/internal/domain/entity"
	domainerrors "foodlink/internal/domain/errors"
	"foodlink/internal/domain/repository"
	"foodlink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// organizationRepository implements the repository.OrganizationRepository interface.
type organizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository is the constructor for organizationRepository.
func NewOrganizationRepository(db *gorm.DB) repository.OrganizationRepository {
	return &organizationRepository{
		db: db,
	}
}

// FindByID retrieves a single organization by its unique ID.
func (repo *organizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error) {
	var orgM model.OrganizationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orgM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrganizationNotFound
		}

		return nil, errors.Wrap(err, "failed to find organization by ID")
	}

	return toOrganizationDomain(&orgM), nil
}

// FindByEmail retrieves a single organization by its email address.
func (repo *organizationRepository) FindByEmail(ctx context.Context, email string) (*entity.Organization, error) {
	var orgM model.OrganizationModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&orgM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrganizationNotFound
		}

		return nil, errors.Wrap(err, "failed to find organization by email")
	}

	return toOrganizationDomain(&orgM), nil
}

// FindActive retrieves all organizations that are active and have a known location.
func (repo *organizationRepository) FindActive(ctx context.Context) ([]*entity.Organization, error) {
	var orgModels []*model.OrganizationModel

	if err := repo.db.WithContext(ctx).
		Where("active = ?", true).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Find(&orgModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active organizations")
	}

	orgs := make([]*entity.Organization, 0, len(orgModels))
	for _, orgM := range orgModels {
		orgs = append(orgs, toOrganizationDomain(orgM))
	}

	return orgs, nil
}

// List retrieves organizations matching the filter, newest first.
func (repo *organizationRepository) List(ctx context.Context, filter repository.OrganizationFilter) ([]*entity.Organization, error) {
	var orgModels []*model.OrganizationModel

	if err := applyOrganizationFilter(repo.db.WithContext(ctx), filter).
		Order("created_at DESC").
		Find(&orgModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list organizations")
	}

	orgs := make([]*entity.Organization, 0, len(orgModels))
	for _, orgM := range orgModels {
		orgs = append(orgs, toOrganizationDomain(orgM))
	}

	return orgs, nil
}

// Create persists a new organization entity.
func (repo *organizationRepository) Create(ctx context.Context, org *entity.Organization) error {
	orgM := fromOrganizationDomain(org)

	if err := repo.db.WithContext(ctx).Create(orgM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrOrganizationAlreadyExists.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required organization information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create organization")
	}

	// Update the entity with generated values
	org.ID = orgM.ID
	org.CreatedAt = orgM.CreatedAt
	org.UpdatedAt = orgM.UpdatedAt

	return nil
}

// Update modifies an existing organization entity.
func (repo *organizationRepository) Update(ctx context.Context, org *entity.Organization) error {
	orgM := fromOrganizationDomain(org)

	result := repo.db.WithContext(ctx).
		Model(&model.OrganizationModel{}).
		Where("id = ?", org.ID).
		Select("name", "email", "password_hash", "phone", "address", "latitude", "longitude",
			"capacity", "food_preferences", "verified", "active", "fcm_token").
		Updates(orgM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrOrganizationAlreadyExists.WrapMessage("email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update organization")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrganizationNotFound
	}

	return nil
}

// Delete removes an organization by ID.
func (repo *organizationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OrganizationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete organization")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrganizationNotFound
	}

	return nil
}

// IncrementDonationsReceived atomically bumps the organization's received-donation counter.
func (repo *organizationRepository) IncrementDonationsReceived(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrganizationModel{}).
		Where("id = ?", id).
		UpdateColumn("total_donations_received", gorm.Expr("total_donations_received + 1"))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment donation counter")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrganizationNotFound
	}

	return nil
}

// Count returns the total number of organizations, optionally filtered.
func (repo *organizationRepository) Count(ctx context.Context, filter repository.OrganizationFilter) (int64, error) {
	var count int64

	if err := applyOrganizationFilter(repo.db.WithContext(ctx).Model(&model.OrganizationModel{}), filter).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count organizations")
	}

	return count, nil
}

func applyOrganizationFilter(tx *gorm.DB, filter repository.OrganizationFilter) *gorm.DB {
	if filter.Active != nil {
		tx = tx.Where("active = ?", *filter.Active)
	}
	if filter.Verified != nil {
		tx = tx.Where("verified = ?", *filter.Verified)
	}

	return tx
}

// --- Mapper Functions ---

// toOrganizationDomain converts a GORM OrganizationModel to a domain Organization entity.
func toOrganizationDomain(data *model.OrganizationModel) *entity.Organization {
	if data == nil {
		return nil
	}

	var location *entity.GeoPoint
	if data.Latitude != nil && data.Longitude != nil {
		location = &entity.GeoPoint{
			Latitude:  *data.Latitude,
			Longitude: *data.Longitude,
		}
	}

	return &entity.Organization{
		ID:                     data.ID,
		Name:                   data.Name,
		Email:                  data.Email,
		PasswordHash:           data.PasswordHash,
		Phone:                  data.Phone,
		Address:                data.Address,
		Location:               location,
		Capacity:               data.Capacity,
		FoodPreferences:        data.FoodPreferences,
		Verified:               data.Verified,
		Active:                 data.Active,
		TotalDonationsReceived: data.TotalDonationsReceived,
		FCMToken:               data.FCMToken,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}

// fromOrganizationDomain converts a domain Organization entity to a GORM OrganizationModel.
func fromOrganizationDomain(data *entity.Organization) *model.OrganizationModel {
	if data == nil {
		return nil
	}

	var latitude, longitude *float64
	if data.Location != nil {
		lat := data.Location.Latitude
		lng := data.Location.Longitude
		latitude = &lat
		longitude = &lng
	}

	return &model.OrganizationModel{
		ID:                     data.ID,
		Name:                   data.Name,
		Email:                  data.Email,
		PasswordHash:           data.PasswordHash,
		Phone:                  data.Phone,
		Address:                data.Address,
		Latitude:               latitude,
		Longitude:              longitude,
		Capacity:               data.Capacity,
		FoodPreferences:        data.FoodPreferences,
		Verified:               data.Verified,
		Active:                 data.Active,
		TotalDonationsReceived: data.TotalDonationsReceived,
		FCMToken:               data.FCMToken,
	}
}
