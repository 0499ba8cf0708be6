package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"foodlink/config"
	"foodlink/internal/domain/entity"
	domainerrors "foodlink/internal/domain/errors"
	"foodlink/internal/domain/repository"
	"foodlink/internal/domain/service"
	mockRepo "foodlink/internal/mocks/repository"
	mockSvc "foodlink/internal/mocks/service"
	"foodlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type donationServiceMocks struct {
	donationRepo *mockRepo.MockDonationRepository
	orgRepo      *mockRepo.MockOrganizationRepository
	txManager    *mockRepo.MockTransactionManager
	oracle       *mockSvc.MockRankingOracle
	imageTagger  *mockSvc.MockImageTagger
	imageStore   *mockSvc.MockImageStore
	publisher    *mockSvc.MockEventPublisher
	qrcode       *mockSvc.MockQRCodeService
}

func newDonationService(t *testing.T) (usecase.DonationUsecase, *donationServiceMocks) {
	t.Helper()

	m := &donationServiceMocks{
		donationRepo: mockRepo.NewMockDonationRepository(t),
		orgRepo:      mockRepo.NewMockOrganizationRepository(t),
		txManager:    mockRepo.NewMockTransactionManager(t),
		oracle:       mockSvc.NewMockRankingOracle(t),
		imageTagger:  mockSvc.NewMockImageTagger(t),
		imageStore:   mockSvc.NewMockImageStore(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
		qrcode:       mockSvc.NewMockQRCodeService(t),
	}

	cfg := &config.Config{
		Matching: &config.MatchingConfig{
			DefaultRadiusKm: 10.0,
			MaxRadiusKm:     25.0,
			TopMatches:      5,
		},
	}

	svc := NewDonationService(DonationServiceParams{
		DonationRepo:  m.donationRepo,
		OrgRepo:       m.orgRepo,
		TxManager:     m.txManager,
		Matching:      NewMatchingService(MatchingServiceParams{Oracle: m.oracle}),
		ImageTagger:   m.imageTagger,
		ImageStore:    m.imageStore,
		Publisher:     m.publisher,
		QRCodeService: m.qrcode,
		Config:        cfg,
		Logger:        slog.New(slog.DiscardHandler),
	})

	return svc, m
}

func validCreateInput() *usecase.CreateDonationInput {
	now := time.Now()

	return &usecase.CreateDonationInput{
		RestaurantID:   "rest-1",
		RestaurantName: "Green Kitchen",
		FoodItems: []entity.FoodItem{
			{Name: "Carrots", Quantity: 10, Unit: "kg", Category: entity.CategoryVegetables},
		},
		PickupPoint:   testOrigin,
		PickupAddress: "12 Market St",
		WindowStart:   now.Add(1 * time.Hour),
		WindowEnd:     now.Add(4 * time.Hour),
		RequestID:     "req-123",
	}
}

func TestDonationService_CreateDonation_Success(t *testing.T) {
	svc, m := newDonationService(t)
	ctx := context.Background()

	org := orgAt("shelter", 0.01, []entity.FoodCategory{entity.CategoryVegetables})

	m.donationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Donation")).
		Run(func(ctx context.Context, donation *entity.Donation) {
			donation.ID = uuid.New()
		}).
		Return(nil)

	m.orgRepo.EXPECT().FindActive(ctx).Return([]*entity.Organization{org}, nil)

	m.publisher.EXPECT().
		PublishDonationCreated(ctx, mock.AnythingOfType("*service.DonationCreatedEvent")).
		Return(nil)

	result, err := svc.CreateDonation(ctx, validCreateInput())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, entity.StatusAvailable, result.Donation.Status)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, org.ID, result.Matches[0].Organization.ID)
	require.NotNil(t, result.Recommended)
	assert.Equal(t, org.ID, result.Recommended.ID)
}

func TestDonationService_CreateDonation_NoFoodItems(t *testing.T) {
	svc, _ := newDonationService(t)

	input := validCreateInput()
	input.FoodItems = nil

	result, err := svc.CreateDonation(context.Background(), input)
	require.Error(t, err)
	assert.Nil(t, result)

	var appErr *domainerrors.BaseError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestDonationService_CreateDonation_InvalidPickupWindow(t *testing.T) {
	svc, _ := newDonationService(t)

	input := validCreateInput()
	input.WindowEnd = input.WindowStart.Add(-time.Hour)

	result, err := svc.CreateDonation(context.Background(), input)
	require.Error(t, err)
	assert.Nil(t, result)

	var appErr *domainerrors.BaseError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_PICKUP_WINDOW", appErr.ErrorCode())
}

func TestDonationService_CreateDonation_MatchingFailureDegrades(t *testing.T) {
	svc, m := newDonationService(t)
	ctx := context.Background()

	m.donationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Donation")).
		Return(nil)

	// The donation is already persisted, so a broken organization lookup
	// must not fail the request.
	m.orgRepo.EXPECT().FindActive(ctx).Return(nil, errors.New("connection refused"))

	m.publisher.EXPECT().
		PublishDonationCreated(ctx, mock.AnythingOfType("*service.DonationCreatedEvent")).
		Return(nil)

	result, err := svc.CreateDonation(ctx, validCreateInput())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Matches)
	assert.Nil(t, result.Recommended)
}

func TestDonationService_CreateDonation_WithImage(t *testing.T) {
	svc, m := newDonationService(t)
	ctx := context.Background()

	image := []byte("fake-image-bytes")

	m.imageTagger.EXPECT().
		Tag(ctx, image).
		Return(&service.ImageTagResult{Category: entity.CategoryVegetables, Confidence: 0.9}, nil)

	m.imageStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "image/jpeg", image).
		Return("https://cdn.example.com/donations/abc.jpg", nil)

	m.donationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Donation")).
		Return(nil)

	m.orgRepo.EXPECT().FindActive(ctx).Return(nil, errors.New("unavailable"))

	m.publisher.EXPECT().
		PublishDonationCreated(ctx, mock.AnythingOfType("*service.DonationCreatedEvent")).
		Return(nil)

	input := validCreateInput()
	input.Image = image
	input.ImageContentType = "image/jpeg"

	result, err := svc.CreateDonation(ctx, input)
	require.NoError(t, err)
	assert.True(t, result.Donation.AIVerified)
	assert.Equal(t, "https://cdn.example.com/donations/abc.jpg", result.Donation.FoodItems[0].ImageURL)
}

func TestDonationService_CreateDonation_ImageTagMismatchLeavesUnverified(t *testing.T) {
	svc, m := newDonationService(t)
	ctx := context.Background()

	image := []byte("fake-image-bytes")

	m.imageTagger.EXPECT().
		Tag(ctx, image).
		Return(&service.ImageTagResult{Category: entity.CategoryDairy, Confidence: 0.9}, nil)

	m.imageStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "image/png", image).
		Return("https://cdn.example.com/donations/abc.png", nil)

	m.donationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Donation")).
		Return(nil)

	m.orgRepo.EXPECT().FindActive(ctx).Return(nil, errors.New("unavailable"))

	m.publisher.EXPECT().
		PublishDonationCreated(ctx, mock.AnythingOfType("*service.DonationCreatedEvent")).
		Return(nil)

	input := validCreateInput()
	input.Image = image
	input.ImageContentType = "image/png"

	result, err := svc.CreateDonation(ctx, input)
	require.NoError(t, err)
	assert.False(t, result.Donation.AIVerified)
}

func TestDonationService_GetDonation_NotFound(t *testing.T) {
	svc, m := newDonationService(t)
	ctx := context.Background()
	id := uuid.New()

	m.donationRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrDonationNotFound)

	result, err := svc.GetDonation(ctx, id, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDonationNotFound)
	assert.Nil(t, result)
}

func TestDonationService_GetDonation_ClientRadiusClampedToMax(t *testing.T) {
	svc, m := newDonationService(t)
	ctx := context.Background()

	donation := vegetableDonation()
	nearby := orgAt("nearby", 0.02, nil)   // ~2.22 km, inside the 10 km default
	distant := orgAt("distant", 0.12, nil) // ~13.3 km, needs the wider radius
	remote := orgAt("remote", 0.30, nil)   // ~33.3 km, beyond the 25 km cap

	m.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)
	m.orgRepo.EXPECT().FindActive(ctx).Return([]*entity.Organization{nearby, distant, remote}, nil)
	m.oracle.EXPECT().
		Rank(ctx, mock.AnythingOfType("*entity.Donation"), mock.AnythingOfType("[]*entity.MatchCandidate")).
		Return(nearby, nil).
		Once()

	result, err := svc.GetDonation(ctx, donation.ID, 100.0)
	require.NoError(t, err)
	require.Len(t, result.Matches, 2)
	assert.Equal(t, nearby.ID, result.Matches[0].Organization.ID)
	assert.Equal(t, distant.ID, result.Matches[1].Organization.ID)
}

func TestDonationService_GetDonation_OracleContractViolation(t *testing.T) {
	svc, m := newDonationService(t)
	ctx := context.Background()

	donation := vegetableDonation()
	first := orgAt("first", 0.01, []entity.FoodCategory{entity.CategoryVegetables})
	second := orgAt("second", 0.03, []entity.FoodCategory{entity.CategoryVegetables})
	stranger := orgAt("stranger", 0.01, nil)

	m.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)
	m.orgRepo.EXPECT().FindActive(ctx).Return([]*entity.Organization{first, second}, nil)
	m.oracle.EXPECT().
		Rank(ctx, mock.AnythingOfType("*entity.Donation"), mock.AnythingOfType("[]*entity.MatchCandidate")).
		Return(stranger, nil)

	result, err := svc.GetDonation(ctx, donation.ID, 0)
	require.Error(t, err)
	assert.Nil(t, result)

	var appErr *domainerrors.BaseError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ORACLE_CONTRACT_VIOLATION", appErr.ErrorCode())
}

func TestDonationService_UpdateDonationStatus_ClaimSuccess(t *testing.T) {
	svc, m := newDonationService(t)
	ctx := context.Background()

	donation := vegetableDonation()
	org := orgAt("shelter", 0.01, nil)

	m.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil).Once()
	m.orgRepo.EXPECT().FindByID(ctx, org.ID).Return(org, nil)

	txDonationRepo := mockRepo.NewMockDonationRepository(t)
	txOrgRepo := mockRepo.NewMockOrganizationRepository(t)
	txDonationRepo.EXPECT().
		CompareAndSetStatus(ctx, donation.ID, entity.StatusAvailable, entity.StatusClaimed, mock.AnythingOfType("*entity.ClaimRecord")).
		Return(nil)
	txOrgRepo.EXPECT().IncrementDonationsReceived(ctx, org.ID).Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewDonationRepository().Return(txDonationRepo)
	factory.EXPECT().NewOrganizationRepository().Return(txOrgRepo)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	claimed := *donation
	claimed.Status = entity.StatusClaimed
	claimed.ClaimedBy = &entity.ClaimRecord{OrganizationID: org.ID, OrganizationName: org.Name}
	m.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(&claimed, nil).Once()

	updated, err := svc.UpdateDonationStatus(ctx, donation.ID, entity.StatusClaimed, &org.ID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, entity.StatusClaimed, updated.Status)
	require.NotNil(t, updated.ClaimedBy)
	assert.Equal(t, org.ID, updated.ClaimedBy.OrganizationID)
}

func TestDonationService_UpdateDonationStatus_ClaimWithoutClaimer(t *testing.T) {
	svc, m := newDonationService(t)
	ctx := context.Background()

	donation := vegetableDonation()
	m.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)

	updated, err := svc.UpdateDonationStatus(ctx, donation.ID, entity.StatusClaimed, nil)
	require.Error(t, err)
	assert.Nil(t, updated)

	var appErr *domainerrors.BaseError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestDonationService_UpdateDonationStatus_InvalidTransition(t *testing.T) {
	svc, m := newDonationService(t)
	ctx := context.Background()

	donation := vegetableDonation()
	donation.Status = entity.StatusPickedUp

	m.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)

	updated, err := svc.UpdateDonationStatus(ctx, donation.ID, entity.StatusClaimed, nil)
	require.Error(t, err)
	assert.Nil(t, updated)

	var appErr *domainerrors.BaseError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DONATION_CONFLICT", appErr.ErrorCode())
}

func TestDonationService_UpdateDonationStatus_LostClaimRace(t *testing.T) {
	svc, m := newDonationService(t)
	ctx := context.Background()

	donation := vegetableDonation()
	org := orgAt("shelter", 0.01, nil)

	m.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)
	m.orgRepo.EXPECT().FindByID(ctx, org.ID).Return(org, nil)

	// Another organization claimed the donation between the read and the
	// conditional update.
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrStatusConflict)

	updated, err := svc.UpdateDonationStatus(ctx, donation.ID, entity.StatusClaimed, &org.ID)
	require.Error(t, err)
	assert.Nil(t, updated)

	var appErr *domainerrors.BaseError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DONATION_CONFLICT", appErr.ErrorCode())
}

func TestDonationService_UpdateDonationStatus_PickupAfterClaim(t *testing.T) {
	svc, m := newDonationService(t)
	ctx := context.Background()

	donation := vegetableDonation()
	donation.Status = entity.StatusClaimed
	donation.ClaimedBy = &entity.ClaimRecord{OrganizationID: uuid.New(), OrganizationName: "shelter"}

	m.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil).Once()
	m.donationRepo.EXPECT().
		CompareAndSetStatus(ctx, donation.ID, entity.StatusClaimed, entity.StatusPickedUp, (*entity.ClaimRecord)(nil)).
		Return(nil)

	pickedUp := *donation
	pickedUp.Status = entity.StatusPickedUp
	m.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(&pickedUp, nil).Once()

	updated, err := svc.UpdateDonationStatus(ctx, donation.ID, entity.StatusPickedUp, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPickedUp, updated.Status)
}

func TestDonationService_GeneratePickupQR_RequiresClaim(t *testing.T) {
	svc, m := newDonationService(t)
	ctx := context.Background()

	donation := vegetableDonation()
	m.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)

	qr, err := svc.GeneratePickupQR(ctx, donation.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDonationNotClaimed)
	assert.Nil(t, qr)
}

func TestDonationService_GeneratePickupQR_Success(t *testing.T) {
	svc, m := newDonationService(t)
	ctx := context.Background()

	orgID := uuid.New()
	donation := vegetableDonation()
	donation.Status = entity.StatusClaimed
	donation.ClaimedBy = &entity.ClaimRecord{OrganizationID: orgID, OrganizationName: "shelter"}

	m.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)
	m.qrcode.EXPECT().GeneratePickupQR(donation.ID, orgID).Return([]byte("png-bytes"), nil)

	qr, err := svc.GeneratePickupQR(ctx, donation.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), qr)
}

func TestDonationService_DeleteDonation_NotFound(t *testing.T) {
	svc, m := newDonationService(t)
	ctx := context.Background()
	id := uuid.New()

	m.donationRepo.EXPECT().Delete(ctx, id).Return(repository.ErrDonationNotFound)

	err := svc.DeleteDonation(ctx, id)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDonationNotFound)
}
