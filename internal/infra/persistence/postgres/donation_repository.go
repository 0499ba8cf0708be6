package postgres

import (
	"context"
	"time"

	"foodlink/internal/domain/entity"
	domainerrors "foodlink/internal/domain/errors"
	"foodlink/internal/domain/repository"
	"foodlink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// donationRepository implements the repository.DonationRepository interface.
type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository is the constructor for donationRepository.
func NewDonationRepository(db *gorm.DB) repository.DonationRepository {
	return &donationRepository{
		db: db,
	}
}

// FindByID retrieves a single donation by its unique ID.
func (repo *donationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error) {
	var donationM model.DonationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&donationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDonationNotFound
		}

		return nil, errors.Wrap(err, "failed to find donation by ID")
	}

	return toDonationDomain(&donationM), nil
}

// List retrieves donations matching the filter, newest first.
func (repo *donationRepository) List(ctx context.Context, filter repository.DonationFilter) ([]*entity.Donation, error) {
	var donationModels []*model.DonationModel

	tx := repo.db.WithContext(ctx)
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}
	if filter.RestaurantID != "" {
		tx = tx.Where("restaurant_id = ?", filter.RestaurantID)
	}
	if filter.ClaimedByID != nil {
		tx = tx.Where("claimed_by_id = ?", *filter.ClaimedByID)
	}

	if err := tx.Order("created_at DESC").Find(&donationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list donations")
	}

	donations := make([]*entity.Donation, 0, len(donationModels))
	for _, donationM := range donationModels {
		donations = append(donations, toDonationDomain(donationM))
	}

	return donations, nil
}

// Create persists a new donation entity.
func (repo *donationRepository) Create(ctx context.Context, donation *entity.Donation) error {
	donationM := fromDonationDomain(donation)

	if err := repo.db.WithContext(ctx).Create(donationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required donation information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create donation")
	}

	// Update the entity with generated values
	donation.ID = donationM.ID
	donation.CreatedAt = donationM.CreatedAt
	donation.UpdatedAt = donationM.UpdatedAt

	return nil
}

// CompareAndSetStatus updates the donation's status only if its current status
// equals expected. The status check and the update happen in one statement, so
// concurrent claimers race on the database row and exactly one wins.
func (repo *donationRepository) CompareAndSetStatus(ctx context.Context, id uuid.UUID, expected, next entity.DonationStatus, claim *entity.ClaimRecord) error {
	updates := map[string]any{
		"status": string(next),
	}
	if claim != nil {
		updates["claimed_by_id"] = claim.OrganizationID
		updates["claimed_by_name"] = claim.OrganizationName
	}

	result := repo.db.WithContext(ctx).
		Model(&model.DonationModel{}).
		Where("id = ? AND status = ?", id, string(expected)).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update donation status")
	}

	if result.RowsAffected == 0 {
		// Either the donation does not exist or someone else changed its
		// status first. Re-read to tell the two apart.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.DonationModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check donation existence")
		}
		if count == 0 {
			return repository.ErrDonationNotFound
		}

		return repository.ErrStatusConflict
	}

	return nil
}

// Delete removes a donation by ID.
func (repo *donationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DonationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete donation")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDonationNotFound
	}

	return nil
}

// CountAll returns the total number of donations.
func (repo *donationRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DonationModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count donations")
	}

	return count, nil
}

// CountByStatus returns the number of donations per status.
func (repo *donationRepository) CountByStatus(ctx context.Context) (map[entity.DonationStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.DonationModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count donations by status")
	}

	counts := make(map[entity.DonationStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.DonationStatus(row.Status)] = row.Count
	}

	return counts, nil
}

// FindCreatedSince retrieves donations created at or after the given time.
func (repo *donationRepository) FindCreatedSince(ctx context.Context, since time.Time) ([]*entity.Donation, error) {
	var donationModels []*model.DonationModel

	if err := repo.db.WithContext(ctx).
		Where("created_at >= ?", since).
		Order("created_at DESC").
		Find(&donationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find donations created since")
	}

	donations := make([]*entity.Donation, 0, len(donationModels))
	for _, donationM := range donationModels {
		donations = append(donations, toDonationDomain(donationM))
	}

	return donations, nil
}

// CountFoodItems returns the total number of food items across all donations.
func (repo *donationRepository) CountFoodItems(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DonationModel{}).
		Select("COALESCE(SUM(jsonb_array_length(food_items)), 0)").
		Scan(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count food items")
	}

	return count, nil
}

// --- Mapper Functions ---

// toDonationDomain converts a GORM DonationModel to a domain Donation entity.
func toDonationDomain(data *model.DonationModel) *entity.Donation {
	if data == nil {
		return nil
	}

	items := make([]entity.FoodItem, 0, len(data.FoodItems))
	for _, item := range data.FoodItems {
		items = append(items, entity.FoodItem{
			Name:        item.Name,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			Category:    item.Category,
			ExpiryHours: item.ExpiryHours,
			Description: item.Description,
			ImageURL:    item.ImageURL,
		})
	}

	var claimedBy *entity.ClaimRecord
	if data.ClaimedByID != nil {
		claimedBy = &entity.ClaimRecord{
			OrganizationID:   *data.ClaimedByID,
			OrganizationName: data.ClaimedByName,
		}
	}

	return &entity.Donation{
		ID:             data.ID,
		RestaurantID:   data.RestaurantID,
		RestaurantName: data.RestaurantName,
		FoodItems:      items,
		PickupPoint: entity.GeoPoint{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
		PickupAddress: data.PickupAddress,
		PickupWindow: entity.PickupWindow{
			Start: data.WindowStart,
			End:   data.WindowEnd,
		},
		Status:     entity.DonationStatus(data.Status),
		ClaimedBy:  claimedBy,
		AIVerified: data.AIVerified,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromDonationDomain converts a domain Donation entity to a GORM DonationModel.
func fromDonationDomain(data *entity.Donation) *model.DonationModel {
	if data == nil {
		return nil
	}

	items := make([]model.FoodItemRecord, 0, len(data.FoodItems))
	for _, item := range data.FoodItems {
		items = append(items, model.FoodItemRecord{
			Name:        item.Name,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			Category:    item.Category,
			ExpiryHours: item.ExpiryHours,
			Description: item.Description,
			ImageURL:    item.ImageURL,
		})
	}

	var claimedByID *uuid.UUID
	var claimedByName string
	if data.ClaimedBy != nil {
		id := data.ClaimedBy.OrganizationID
		claimedByID = &id
		claimedByName = data.ClaimedBy.OrganizationName
	}

	return &model.DonationModel{
		ID:             data.ID,
		RestaurantID:   data.RestaurantID,
		RestaurantName: data.RestaurantName,
		FoodItems:      items,
		Latitude:       data.PickupPoint.Latitude,
		Longitude:      data.PickupPoint.Longitude,
		PickupAddress:  data.PickupAddress,
		WindowStart:    data.PickupWindow.Start,
		WindowEnd:      data.PickupWindow.End,
		Status:         string(data.Status),
		ClaimedByID:    claimedByID,
		ClaimedByName:  claimedByName,
		AIVerified:     data.AIVerified,
	}
}
