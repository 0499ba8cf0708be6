package impl

import (
	"context"
	"log/slog"
	"strings"

	"foodlink/internal/domain/entity"
	domainerrors "foodlink/internal/domain/errors"
	"foodlink/internal/domain/repository"
	"foodlink/internal/domain/service"
	"foodlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type organizationService struct {
	orgRepo      repository.OrganizationRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// OrganizationServiceParams holds dependencies for OrganizationService, injected by Fx.
type OrganizationServiceParams struct {
	fx.In

	OrgRepo      repository.OrganizationRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewOrganizationService creates a new organization service instance
func NewOrganizationService(params OrganizationServiceParams) usecase.OrganizationUsecase {
	return &organizationService{
		orgRepo:      params.OrgRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Register creates a new organization account.
func (s *organizationService) Register(ctx context.Context, input *usecase.RegisterOrganizationInput) (*entity.Organization, error) {
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	// Reject duplicates early; the unique constraint still backs this up.
	if _, err := s.orgRepo.FindByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrOrganizationAlreadyExists
	} else if !errors.Is(err, repository.ErrOrganizationNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing organization")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	org := &entity.Organization{
		Name:            strings.TrimSpace(input.Name),
		Email:           email,
		PasswordHash:    hash,
		Phone:           input.Phone,
		Address:         input.Address,
		Location:        input.Location,
		Capacity:        input.Capacity,
		FoodPreferences: input.FoodPreferences,
		Active:          true,
		FCMToken:        input.FCMToken,
	}

	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Organization registered",
		slog.String("organization_id", org.ID.String()),
	)

	return org, nil
}

// Login verifies credentials and issues a token pair.
func (s *organizationService) Login(ctx context.Context, email, password string) (*entity.Organization, *usecase.AuthTokens, error) {
	org, err := s.orgRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrOrganizationNotFound) {
			// Do not reveal whether the email exists.
			return nil, nil, domainerrors.ErrInvalidCredentials
		}

		return nil, nil, errors.Wrap(err, "failed to find organization by email")
	}

	if !s.hasher.Check(password, org.PasswordHash) {
		return nil, nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.tokenService.GenerateTokens(org.ID, []string{"organization"})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to generate tokens")
	}

	return org, &usecase.AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// GetOrganization retrieves an organization by ID.
func (s *organizationService) GetOrganization(ctx context.Context, id uuid.UUID) (*entity.Organization, error) {
	org, err := s.orgRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrganizationNotFound) {
			return nil, domainerrors.ErrOrganizationNotFound
		}

		return nil, errors.Wrap(err, "failed to find organization")
	}

	return org, nil
}

// ListOrganizations retrieves organizations matching the filter.
func (s *organizationService) ListOrganizations(ctx context.Context, filter repository.OrganizationFilter) ([]*entity.Organization, error) {
	orgs, err := s.orgRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list organizations")
	}

	return orgs, nil
}

// UpdateOrganization applies the non-nil fields of the input.
func (s *organizationService) UpdateOrganization(ctx context.Context, id uuid.UUID, input *usecase.UpdateOrganizationInput) (*entity.Organization, error) {
	org, err := s.GetOrganization(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		org.Name = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		org.Phone = *input.Phone
	}
	if input.Address != nil {
		org.Address = *input.Address
	}
	if input.Location != nil {
		org.Location = input.Location
	}
	if input.Capacity != nil {
		if *input.Capacity < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("capacity cannot be negative")
		}
		org.Capacity = *input.Capacity
	}
	if input.FoodPreferences != nil {
		for _, category := range *input.FoodPreferences {
			if !category.IsValid() {
				return nil, domainerrors.ErrValidationFailed.WithDetails("unknown food category: " + category.String())
			}
		}
		org.FoodPreferences = *input.FoodPreferences
	}
	if input.Active != nil {
		org.Active = *input.Active
	}
	if input.FCMToken != nil {
		org.FCMToken = *input.FCMToken
	}

	if err := s.orgRepo.Update(ctx, org); err != nil {
		if errors.Is(err, repository.ErrOrganizationNotFound) {
			return nil, domainerrors.ErrOrganizationNotFound
		}

		return nil, err
	}

	return org, nil
}

// DeleteOrganization removes an organization account.
func (s *organizationService) DeleteOrganization(ctx context.Context, id uuid.UUID) error {
	if err := s.orgRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOrganizationNotFound) {
			return domainerrors.ErrOrganizationNotFound
		}

		return errors.Wrap(err, "failed to delete organization")
	}

	return nil
}

func validateRegistration(input *usecase.RegisterOrganizationInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if strings.TrimSpace(input.Email) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("email is required")
	}
	if len(input.Password) < 8 {
		return domainerrors.ErrValidationFailed.WithDetails("password must be at least 8 characters")
	}
	if input.Capacity < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("capacity cannot be negative")
	}
	for _, category := range input.FoodPreferences {
		if !category.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails("unknown food category: " + category.String())
		}
	}

	return nil
}
