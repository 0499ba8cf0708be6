package handler

import (
	"log/slog"
	"net/http"

	"foodlink/internal/delivery/http/middleware"
	"foodlink/internal/delivery/http/response"
	"foodlink/internal/domain/entity"
	"foodlink/internal/domain/repository"
	"foodlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrganizationHandlerParams holds dependencies for OrganizationHandler, injected by Fx.
type OrganizationHandlerParams struct {
	fx.In

	OrganizationUC usecase.OrganizationUsecase
	Logger         *slog.Logger
}

// OrganizationHandler holds dependencies for organization-related handlers
type OrganizationHandler struct {
	organizationUC usecase.OrganizationUsecase
	logger         *slog.Logger
}

// NewOrganizationHandler is the constructor for OrganizationHandler
func NewOrganizationHandler(params OrganizationHandlerParams) *OrganizationHandler {
	return &OrganizationHandler{
		organizationUC: params.OrganizationUC,
		logger:         params.Logger,
	}
}

// GeoPointRequest carries a coordinate pair in a request body
type GeoPointRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// RegisterOrganizationRequest represents the request body for registration
type RegisterOrganizationRequest struct {
	Name            string           `json:"name" validate:"required"`
	Email           string           `json:"email" validate:"required,email"`
	Password        string           `json:"password" validate:"required,min=8"`
	Phone           string           `json:"phone"`
	Address         string           `json:"address"`
	Location        *GeoPointRequest `json:"location"`
	Capacity        int              `json:"capacity" validate:"gte=0"`
	FoodPreferences []string         `json:"food_preferences"`
	FCMToken        string           `json:"fcm_token"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateOrganizationRequest represents the request body for profile updates.
// Absent fields are left unchanged.
type UpdateOrganizationRequest struct {
	Name            *string          `json:"name"`
	Phone           *string          `json:"phone"`
	Address         *string          `json:"address"`
	Location        *GeoPointRequest `json:"location"`
	Capacity        *int             `json:"capacity"`
	FoodPreferences *[]string        `json:"food_preferences"`
	Active          *bool            `json:"active"`
	FCMToken        *string          `json:"fcm_token"`
}

// LoginResponse pairs the organization with its issued tokens
type LoginResponse struct {
	Organization *entity.Organization `json:"organization"`
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
}

// Register handles organization registration
func (h *OrganizationHandler) Register(c echo.Context) error {
	var req RegisterOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.RegisterOrganizationInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		Phone:           req.Phone,
		Address:         req.Address,
		Capacity:        req.Capacity,
		FoodPreferences: toFoodCategories(req.FoodPreferences),
		FCMToken:        req.FCMToken,
	}
	if req.Location != nil {
		input.Location = &entity.GeoPoint{
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
		}
	}

	org, err := h.organizationUC.Register(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, org)
}

// Login handles organization login
func (h *OrganizationHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	org, tokens, err := h.organizationUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		Organization: org,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

// GetOrganization handles retrieving an organization by ID
func (h *OrganizationHandler) GetOrganization(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid organization ID")
	}

	org, err := h.organizationUC.GetOrganization(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, org)
}

// ListOrganizations handles listing organizations, optionally filtered
func (h *OrganizationHandler) ListOrganizations(c echo.Context) error {
	var filter repository.OrganizationFilter

	if active := c.QueryParam("active"); active != "" {
		value := active == "true"
		filter.Active = &value
	}
	if verified := c.QueryParam("verified"); verified != "" {
		value := verified == "true"
		filter.Verified = &value
	}

	orgs, err := h.organizationUC.ListOrganizations(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orgs)
}

// UpdateOrganization handles profile updates for the authenticated organization
func (h *OrganizationHandler) UpdateOrganization(c echo.Context) error {
	orgID, ok := middleware.GetOrganizationID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid organization ID in token")
	}

	var req UpdateOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateOrganizationInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
		Capacity: req.Capacity,
		Active:   req.Active,
		FCMToken: req.FCMToken,
	}
	if req.Location != nil {
		input.Location = &entity.GeoPoint{
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
		}
	}
	if req.FoodPreferences != nil {
		prefs := toFoodCategories(*req.FoodPreferences)
		input.FoodPreferences = &prefs
	}

	org, err := h.organizationUC.UpdateOrganization(c.Request().Context(), orgID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, org)
}

// DeleteOrganization handles deleting the authenticated organization's account
func (h *OrganizationHandler) DeleteOrganization(c echo.Context) error {
	orgID, ok := middleware.GetOrganizationID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid organization ID in token")
	}

	if err := h.organizationUC.DeleteOrganization(c.Request().Context(), orgID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Organization deleted successfully"})
}

func toFoodCategories(names []string) []entity.FoodCategory {
	categories := make([]entity.FoodCategory, 0, len(names))
	for _, name := range names {
		categories = append(categories, entity.FoodCategory(name))
	}

	return categories
}
