// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"foodlink/internal/errors"

	"github.com/google/uuid"
)

const maxPickupWindow = 24 * time.Hour

// Pickup window validation errors.
var (
	// ErrWindowStartPast is returned when the window opens before the reference time.
	ErrWindowStartPast = errors.New("pickup window start must not be in the past")
	// ErrWindowEndBeforeStart is returned when the window closes at or before it opens.
	ErrWindowEndBeforeStart = errors.New("pickup window end must be after start")
	// ErrWindowTooLong is returned when the window spans more than 24 hours.
	ErrWindowTooLong = errors.New("pickup window must not exceed 24 hours")
)

// PickupWindow is the time interval in which a donation can be collected.
type PickupWindow struct {
	Start time.Time `json:"start"` // When pickup becomes possible.
	End   time.Time `json:"end"`   // When pickup is no longer possible.
}

// Validate checks the window against a reference time, usually the donation's
// creation instant: the start must not precede it, the end must follow the
// start, and the span must not exceed 24 hours.
func (w PickupWindow) Validate(now time.Time) error {
	if w.Start.Before(now) {
		return ErrWindowStartPast
	}
	if !w.End.After(w.Start) {
		return ErrWindowEndBeforeStart
	}
	if w.End.Sub(w.Start) > maxPickupWindow {
		return ErrWindowTooLong
	}

	return nil
}

// ClaimRecord identifies the organization that claimed a donation.
// It is present iff the donation's status is claimed or later.
type ClaimRecord struct {
	OrganizationID   uuid.UUID `json:"organization_id"`   // The claiming organization.
	OrganizationName string    `json:"organization_name"` // Display name captured at claim time.
}

// Donation is a restaurant's offer of surplus food. It is owned exclusively
// by the platform: created at intake, mutated only via status transitions,
// and removed only by explicit administrative deletion.
type Donation struct {
	ID             uuid.UUID      `json:"id"`                   // The Global Unique Identifier (GUID) for the donation.
	RestaurantID   string         `json:"restaurant_id"`        // Identifier of the donating restaurant.
	RestaurantName string         `json:"restaurant_name"`      // Display name of the donating restaurant.
	FoodItems      []FoodItem     `json:"food_items"`           // The offered items, at least one.
	PickupPoint    GeoPoint       `json:"pickup_point"`         // Where the food is collected.
	PickupAddress  string         `json:"pickup_address"`       // Free-text address of the pickup point.
	PickupWindow   PickupWindow   `json:"pickup_window"`        // When the food can be collected.
	Status         DonationStatus `json:"status"`               // Lifecycle state.
	ClaimedBy      *ClaimRecord   `json:"claimed_by,omitempty"` // Set atomically when the status becomes claimed.
	AIVerified     bool           `json:"ai_verified"`          // Whether the items were produced by image analysis.
	CreatedAt      time.Time      `json:"created_at"`           // Timestamp of intake.
	UpdatedAt      time.Time      `json:"updated_at"`           // Timestamp of the last modification.
}

// Categories returns the distinct food categories present in the donation's
// items, in first-appearance order.
func (d *Donation) Categories() []FoodCategory {
	seen := make(map[FoodCategory]struct{}, len(d.FoodItems))
	categories := make([]FoodCategory, 0, len(d.FoodItems))
	for _, item := range d.FoodItems {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		categories = append(categories, item.Category)
	}

	return categories
}
