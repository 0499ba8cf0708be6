package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	deliverycontext "foodlink/internal/delivery/context"
	"foodlink/internal/delivery/http/middleware"
	"foodlink/internal/delivery/http/response"
	"foodlink/internal/domain/entity"
	"foodlink/internal/domain/repository"
	"foodlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DonationHandlerParams holds dependencies for DonationHandler, injected by Fx.
type DonationHandlerParams struct {
	fx.In

	DonationUC usecase.DonationUsecase
	Logger     *slog.Logger
}

// DonationHandler holds dependencies for donation-related handlers
type DonationHandler struct {
	donationUC usecase.DonationUsecase
	logger     *slog.Logger
}

// NewDonationHandler is the constructor for DonationHandler
func NewDonationHandler(params DonationHandlerParams) *DonationHandler {
	return &DonationHandler{
		donationUC: params.DonationUC,
		logger:     params.Logger,
	}
}

// FoodItemRequest represents one donated item in the create request
type FoodItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
	Unit        string  `json:"unit" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	ExpiryHours float64 `json:"expiry_hours" validate:"omitempty,gt=0"`
	Description string  `json:"description"`
}

// CreateDonationRequest represents the request body for posting a donation
type CreateDonationRequest struct {
	RestaurantID   string            `json:"restaurant_id" validate:"required"`
	RestaurantName string            `json:"restaurant_name" validate:"required"`
	FoodItems      []FoodItemRequest `json:"food_items" validate:"required,min=1,dive"`
	Latitude       float64           `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude      float64           `json:"longitude" validate:"required,gte=-180,lte=180"`
	PickupAddress  string            `json:"pickup_address" validate:"required"`
	WindowStart    time.Time         `json:"window_start" validate:"required"`
	WindowEnd      time.Time         `json:"window_end" validate:"required"`

	// ImageBase64 optionally carries a photo of the donated food.
	ImageBase64      string `json:"image_base64"`
	ImageContentType string `json:"image_content_type" validate:"required_with=ImageBase64"`
}

// UpdateDonationStatusRequest represents the request body for a status transition
type UpdateDonationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available claimed picked_up expired"`
}

// CreateDonation handles posting a new donation
func (h *DonationHandler) CreateDonation(c echo.Context) error {
	var req CreateDonationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid donation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	items := make([]entity.FoodItem, 0, len(req.FoodItems))
	for _, item := range req.FoodItems {
		items = append(items, entity.FoodItem{
			Name:        item.Name,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			Category:    entity.FoodCategory(item.Category),
			ExpiryHours: item.ExpiryHours,
			Description: item.Description,
		})
	}

	input := &usecase.CreateDonationInput{
		RestaurantID:   req.RestaurantID,
		RestaurantName: req.RestaurantName,
		FoodItems:      items,
		PickupPoint:    entity.GeoPoint{Latitude: req.Latitude, Longitude: req.Longitude},
		PickupAddress:  req.PickupAddress,
		WindowStart:    req.WindowStart,
		WindowEnd:      req.WindowEnd,
		RequestID:      deliverycontext.GetRequestID(c),
	}

	if req.ImageBase64 != "" {
		image, err := base64.StdEncoding.DecodeString(req.ImageBase64)
		if err != nil {
			return response.BadRequest(c, "INVALID_IMAGE", "Image must be valid base64")
		}
		input.Image = image
		input.ImageContentType = req.ImageContentType
	}

	result, err := h.donationUC.CreateDonation(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// GetDonation handles retrieving a donation with its current matches. An
// optional radius_km query parameter widens or narrows the match search.
func (h *DonationHandler) GetDonation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid donation ID")
	}

	var radiusKm float64
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil || radiusKm <= 0 {
			return response.BadRequest(c, "INVALID_RADIUS", "radius_km must be a positive number")
		}
	}

	result, err := h.donationUC.GetDonation(c.Request().Context(), id, radiusKm)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// ListDonations handles listing donations, optionally filtered by status,
// restaurant, or claiming organization
func (h *DonationHandler) ListDonations(c echo.Context) error {
	filter := repository.DonationFilter{
		RestaurantID: c.QueryParam("restaurant_id"),
	}

	if status := c.QueryParam("status"); status != "" {
		parsed := entity.DonationStatus(status)
		if !parsed.IsValid() {
			return response.BadRequest(c, "INVALID_STATUS", "Unknown donation status: "+status)
		}
		filter.Status = parsed
	}

	if ngoID := c.QueryParam("ngo_id"); ngoID != "" {
		parsed, err := uuid.Parse(ngoID)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid organization ID")
		}
		filter.ClaimedByID = &parsed
	}

	donations, err := h.donationUC.ListDonations(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, donations)
}

// UpdateDonationStatus handles lifecycle transitions. Claiming attributes the
// donation to the authenticated organization.
func (h *DonationHandler) UpdateDonationStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid donation ID")
	}

	var req UpdateDonationStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	next := entity.DonationStatus(req.Status)

	var claimerID *uuid.UUID
	if next == entity.StatusClaimed {
		orgID, ok := middleware.GetOrganizationID(c)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid organization ID in token")
		}
		claimerID = &orgID
	}

	donation, err := h.donationUC.UpdateDonationStatus(c.Request().Context(), id, next, claimerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, donation)
}

// DeleteDonation handles removing a donation
func (h *DonationHandler) DeleteDonation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid donation ID")
	}

	if err := h.donationUC.DeleteDonation(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Donation deleted successfully"})
}

// GetPickupQR returns the PNG QR code the claiming organization presents at pickup
func (h *DonationHandler) GetPickupQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid donation ID")
	}

	qr, err := h.donationUC.GeneratePickupQR(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", qr)
}
