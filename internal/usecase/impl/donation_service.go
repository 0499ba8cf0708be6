package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"foodlink/config"
	"foodlink/internal/domain/entity"
	domainerrors "foodlink/internal/domain/errors"
	"foodlink/internal/domain/repository"
	"foodlink/internal/domain/service"
	"foodlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultSearchRadiusKm = 10.0
	defaultTopMatches     = 5
)

type donationService struct {
	donationRepo  repository.DonationRepository
	orgRepo       repository.OrganizationRepository
	txManager     repository.TransactionManager
	matching      usecase.MatchingUsecase
	imageTagger   service.ImageTagger
	imageStore    service.ImageStore
	publisher     service.EventPublisher
	notifications service.NotificationService
	qrcodeService service.QRCodeService
	config        *config.Config
	logger        *slog.Logger
}

// DonationServiceParams holds dependencies for DonationService, injected by Fx.
type DonationServiceParams struct {
	fx.In

	DonationRepo  repository.DonationRepository
	OrgRepo       repository.OrganizationRepository
	TxManager     repository.TransactionManager
	Matching      usecase.MatchingUsecase
	ImageTagger   service.ImageTagger
	ImageStore    service.ImageStore
	Publisher     service.EventPublisher
	Notifications service.NotificationService `optional:"true"`
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewDonationService creates a new donation service instance
func NewDonationService(params DonationServiceParams) usecase.DonationUsecase {
	return &donationService{
		donationRepo:  params.DonationRepo,
		orgRepo:       params.OrgRepo,
		txManager:     params.TxManager,
		matching:      params.Matching,
		imageTagger:   params.ImageTagger,
		imageStore:    params.ImageStore,
		publisher:     params.Publisher,
		notifications: params.Notifications,
		qrcodeService: params.QRCodeService,
		config:        params.Config,
		logger:        params.Logger,
	}
}

// CreateDonation validates and persists a new donation, computes its matches,
// and notifies matched organizations.
func (s *donationService) CreateDonation(ctx context.Context, input *usecase.CreateDonationInput) (*usecase.DonationWithMatches, error) {
	donation := &entity.Donation{
		RestaurantID:   input.RestaurantID,
		RestaurantName: input.RestaurantName,
		FoodItems:      input.FoodItems,
		PickupPoint:    input.PickupPoint,
		PickupAddress:  input.PickupAddress,
		PickupWindow: entity.PickupWindow{
			Start: input.WindowStart,
			End:   input.WindowEnd,
		},
		Status: entity.StatusAvailable,
	}

	if err := s.validateDonation(donation); err != nil {
		return nil, err
	}

	if len(input.Image) > 0 {
		s.attachImage(ctx, donation, input.Image, input.ImageContentType)
	}

	if err := s.donationRepo.Create(ctx, donation); err != nil {
		return nil, errors.Wrap(err, "failed to create donation")
	}

	matches, recommended, err := s.computeMatches(ctx, donation)
	if err != nil {
		// The donation is already persisted; matching errors degrade to an
		// empty candidate list rather than failing the creation.
		s.logger.WarnContext(ctx, "Matching failed for new donation",
			slog.String("donation_id", donation.ID.String()),
			slog.String("error", err.Error()),
		)
		matches, recommended = nil, nil
	}

	s.publishCreated(ctx, donation, matches, input.RequestID)
	s.notifyMatches(ctx, donation, matches)

	return &usecase.DonationWithMatches{
		Donation:    donation,
		Matches:     matches,
		Recommended: recommended,
	}, nil
}

// GetDonation retrieves a donation with freshly computed matches. A positive
// radiusKm widens or narrows the search within the configured maximum.
func (s *donationService) GetDonation(ctx context.Context, id uuid.UUID, radiusKm float64) (*usecase.DonationWithMatches, error) {
	donation, err := s.donationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return nil, domainerrors.ErrDonationNotFound
		}

		return nil, errors.Wrap(err, "failed to find donation")
	}

	matches, recommended, err := s.computeMatchesWithRadius(ctx, donation, radiusKm)
	if err != nil {
		if errors.Is(err, service.ErrOracleContract) {
			return nil, domainerrors.ErrOracleContract.WithDetails(err.Error())
		}

		return nil, err
	}

	return &usecase.DonationWithMatches{
		Donation:    donation,
		Matches:     matches,
		Recommended: recommended,
	}, nil
}

// ListDonations retrieves donations matching the filter.
func (s *donationService) ListDonations(ctx context.Context, filter repository.DonationFilter) ([]*entity.Donation, error) {
	donations, err := s.donationRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list donations")
	}

	return donations, nil
}

// UpdateDonationStatus transitions a donation to the next status.
func (s *donationService) UpdateDonationStatus(ctx context.Context, id uuid.UUID, next entity.DonationStatus, claimerID *uuid.UUID) (*entity.Donation, error) {
	if !next.IsValid() {
		return nil, domainerrors.ErrInvalidStatus.WithDetails(fmt.Sprintf("status %q is not recognized", next))
	}

	donation, err := s.donationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return nil, domainerrors.ErrDonationNotFound
		}

		return nil, errors.Wrap(err, "failed to find donation")
	}

	if !donation.Status.CanTransitionTo(next) {
		return nil, domainerrors.ErrDonationConflict.WithDetails(
			fmt.Sprintf("cannot transition from %s to %s", donation.Status, next))
	}

	if next == entity.StatusClaimed {
		if err := s.claimDonation(ctx, donation, claimerID); err != nil {
			return nil, err
		}
	} else {
		if err := s.donationRepo.CompareAndSetStatus(ctx, id, donation.Status, next, nil); err != nil {
			return nil, s.mapStatusUpdateError(err)
		}
	}

	updated, err := s.donationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload donation")
	}

	return updated, nil
}

// claimDonation atomically claims the donation for the organization and bumps
// its received-donation counter. Both writes share one transaction so a lost
// race leaves no partial state.
func (s *donationService) claimDonation(ctx context.Context, donation *entity.Donation, claimerID *uuid.UUID) error {
	if claimerID == nil {
		return domainerrors.ErrValidationFailed.WithDetails("claiming requires an organization ID")
	}

	org, err := s.orgRepo.FindByID(ctx, *claimerID)
	if err != nil {
		if errors.Is(err, repository.ErrOrganizationNotFound) {
			return domainerrors.ErrOrganizationNotFound
		}

		return errors.Wrap(err, "failed to find claiming organization")
	}

	claim := &entity.ClaimRecord{
		OrganizationID:   org.ID,
		OrganizationName: org.Name,
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewDonationRepository().CompareAndSetStatus(
			ctx, donation.ID, entity.StatusAvailable, entity.StatusClaimed, claim); err != nil {
			return err
		}

		return factory.NewOrganizationRepository().IncrementDonationsReceived(ctx, org.ID)
	})
	if err != nil {
		return s.mapStatusUpdateError(err)
	}

	return nil
}

func (s *donationService) mapStatusUpdateError(err error) error {
	switch {
	case errors.Is(err, repository.ErrStatusConflict):
		return domainerrors.ErrDonationConflict.WithDetails("donation was updated concurrently")
	case errors.Is(err, repository.ErrDonationNotFound):
		return domainerrors.ErrDonationNotFound
	default:
		return errors.Wrap(err, "failed to update donation status")
	}
}

// DeleteDonation removes a donation.
func (s *donationService) DeleteDonation(ctx context.Context, id uuid.UUID) error {
	if err := s.donationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return domainerrors.ErrDonationNotFound
		}

		return errors.Wrap(err, "failed to delete donation")
	}

	return nil
}

// GeneratePickupQR produces the QR code the claiming organization presents at pickup.
func (s *donationService) GeneratePickupQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	donation, err := s.donationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return nil, domainerrors.ErrDonationNotFound
		}

		return nil, errors.Wrap(err, "failed to find donation")
	}

	if donation.ClaimedBy == nil {
		return nil, domainerrors.ErrDonationNotClaimed
	}

	qrBytes, err := s.qrcodeService.GeneratePickupQR(donation.ID, donation.ClaimedBy.OrganizationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup QR code")
	}

	return qrBytes, nil
}

// validateDonation checks items and the pickup window before persistence.
func (s *donationService) validateDonation(donation *entity.Donation) error {
	if len(donation.FoodItems) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("at least one food item is required")
	}
	for i, item := range donation.FoodItems {
		if item.Name == "" {
			return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("food item %d has no name", i))
		}
		if item.Quantity <= 0 {
			return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("food item %d has non-positive quantity", i))
		}
		if !item.Category.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("food item %d has unknown category %q", i, item.Category))
		}
	}

	if err := donation.PickupWindow.Validate(time.Now()); err != nil {
		return domainerrors.ErrInvalidPickupWindow.WithDetails(err.Error())
	}

	return nil
}

// attachImage tags and stores the donation photo. Both steps are best-effort:
// a failed tag leaves the donation unverified, a failed upload leaves items
// without an image URL.
func (s *donationService) attachImage(ctx context.Context, donation *entity.Donation, image []byte, contentType string) {
	tag, err := s.imageTagger.Tag(ctx, image)
	if err != nil {
		s.logger.WarnContext(ctx, "Image tagging failed",
			slog.String("error", err.Error()),
		)
	} else {
		for _, category := range donation.Categories() {
			if tag.Category == category {
				donation.AIVerified = true

				break
			}
		}
	}

	key := fmt.Sprintf("donations/%s", uuid.New())
	url, err := s.imageStore.Save(ctx, key, contentType, image)
	if err != nil {
		s.logger.WarnContext(ctx, "Image upload failed",
			slog.String("error", err.Error()),
		)

		return
	}

	for i := range donation.FoodItems {
		if donation.FoodItems[i].ImageURL == "" {
			donation.FoodItems[i].ImageURL = url
		}
	}
}

// computeMatches ranks active organizations for the donation and asks the
// oracle for a recommendation, using the configured search radius.
func (s *donationService) computeMatches(ctx context.Context, donation *entity.Donation) ([]*entity.MatchCandidate, *entity.Organization, error) {
	return s.computeMatchesWithRadius(ctx, donation, 0)
}

// computeMatchesWithRadius is computeMatches with an optional client radius.
// A positive radiusKm overrides the default, clamped to the configured
// maximum.
func (s *donationService) computeMatchesWithRadius(ctx context.Context, donation *entity.Donation, radiusKm float64) ([]*entity.MatchCandidate, *entity.Organization, error) {
	orgs, err := s.orgRepo.FindActive(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find active organizations")
	}

	radius := defaultSearchRadiusKm
	topMatches := defaultTopMatches
	if s.config.Matching != nil {
		if s.config.Matching.DefaultRadiusKm > 0 {
			radius = s.config.Matching.DefaultRadiusKm
		}
		if s.config.Matching.TopMatches > 0 {
			topMatches = s.config.Matching.TopMatches
		}
	}
	if radiusKm > 0 {
		radius = radiusKm
		if s.config.Matching != nil && s.config.Matching.MaxRadiusKm > 0 && radius > s.config.Matching.MaxRadiusKm {
			radius = s.config.Matching.MaxRadiusKm
		}
	}

	candidates := s.matching.Prioritize(donation, s.matching.Match(donation, orgs, radius))
	if len(candidates) > topMatches {
		candidates = candidates[:topMatches]
	}

	recommended, err := s.matching.Recommend(ctx, donation, orgs, radius)
	if err != nil {
		return nil, nil, err
	}

	return candidates, recommended, nil
}

// publishCreated emits the donation-created event. Failures are logged, not returned.
func (s *donationService) publishCreated(ctx context.Context, donation *entity.Donation, matches []*entity.MatchCandidate, requestID string) {
	event := &service.DonationCreatedEvent{
		RequestID:      requestID,
		DonationID:     donation.ID.String(),
		RestaurantID:   donation.RestaurantID,
		RestaurantName: donation.RestaurantName,
		Latitude:       donation.PickupPoint.Latitude,
		Longitude:      donation.PickupPoint.Longitude,
		PickupAddress:  donation.PickupAddress,
	}
	for _, category := range donation.Categories() {
		event.Categories = append(event.Categories, category.String())
	}
	for _, candidate := range matches {
		event.MatchedOrgIDs = append(event.MatchedOrgIDs, candidate.Organization.ID.String())
	}

	if err := s.publisher.PublishDonationCreated(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish donation created event",
			slog.String("donation_id", donation.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// notifyMatches pushes an FCM notification to the matched organizations.
func (s *donationService) notifyMatches(ctx context.Context, donation *entity.Donation, matches []*entity.MatchCandidate) {
	if s.notifications == nil || len(matches) == 0 {
		return
	}

	tokens := make([]string, 0, len(matches))
	for _, candidate := range matches {
		if candidate.Organization.FCMToken != "" {
			tokens = append(tokens, candidate.Organization.FCMToken)
		}
	}
	if len(tokens) == 0 {
		return
	}

	title := "New food donation nearby"
	body := fmt.Sprintf("%s posted a donation for pickup at %s", donation.RestaurantName, donation.PickupAddress)
	data := map[string]string{
		"donation_id": donation.ID.String(),
	}

	successCount, failureCount, _, err := s.notifications.SendBatchNotification(ctx, tokens, title, body, data)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to send donation notifications",
			slog.String("donation_id", donation.ID.String()),
			slog.String("error", err.Error()),
		)

		return
	}

	s.logger.InfoContext(ctx, "Donation notifications sent",
		slog.String("donation_id", donation.ID.String()),
		slog.Int("success", successCount),
		slog.Int("failure", failureCount),
	)
}
