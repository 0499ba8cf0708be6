// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Organization is a partner NGO that receives donations. Created at
// registration, mutated by profile updates and by the claim side effect,
// deleted only by administrative removal.
type Organization struct {
	ID                     uuid.UUID      `json:"id"`                       // The Global Unique Identifier (GUID) for the organization.
	Name                   string         `json:"name"`                     // Display name.
	Email                  string         `json:"email"`                    // Contact email, unique across organizations.
	PasswordHash           string         `json:"-"`                        // Credential hash, never serialized.
	Phone                  string         `json:"phone"`                    // Contact phone number.
	Address                string         `json:"address"`                  // Postal address.
	Location               *GeoPoint      `json:"location,omitempty"`       // Geographic position; nil when the organization has not been geolocated.
	Capacity               int            `json:"capacity"`                 // Receiving throughput capacity, positive.
	FoodPreferences        []FoodCategory `json:"food_preferences"`         // Accepted categories; empty means the organization accepts everything.
	Verified               bool           `json:"verified"`                 // Set after manual vetting.
	Active                 bool           `json:"active"`                   // Whether the organization currently accepts donations.
	TotalDonationsReceived int            `json:"total_donations_received"` // Monotonic counter, incremented on each successful claim.
	FCMToken               string         `json:"-"`                        // Optional push-notification token for new-donation alerts.
	CreatedAt              time.Time      `json:"created_at"`               // Timestamp of registration.
	UpdatedAt              time.Time      `json:"updated_at"`               // Timestamp of the last modification.
}

// AcceptsAny reports whether the organization accepts at least one of the
// given categories. An empty preference set accepts everything.
func (o *Organization) AcceptsAny(categories []FoodCategory) bool {
	if len(o.FoodPreferences) == 0 {
		return true
	}
	for _, category := range categories {
		for _, pref := range o.FoodPreferences {
			if category == pref {
				return true
			}
		}
	}

	return false
}

// Accepts reports whether a single category is in the organization's
// preference set. Unlike AcceptsAny, an empty set accepts nothing here:
// this is the strict membership test used for preference scoring.
func (o *Organization) Accepts(category FoodCategory) bool {
	for _, pref := range o.FoodPreferences {
		if category == pref {
			return true
		}
	}

	return false
}
