// Package entity contains the core business objects of the project.
package entity

// FoodItem describes one line of surplus food inside a donation.
// Items are created at intake and never mutated afterwards; replacing
// an item means replacing the donation.
type FoodItem struct {
	Name        string       `json:"name"`                // Human-readable name of the food.
	Quantity    float64      `json:"quantity"`            // Amount in Unit, must be positive.
	Unit        string       `json:"unit"`                // Unit of measure, e.g. "kg", "pieces".
	Category    FoodCategory `json:"category"`            // Classification used for preference matching.
	ExpiryHours float64      `json:"expiry_hours"`        // Hours until the food is no longer safe, must be positive.
	Description string       `json:"description"`         // Free-text description.
	ImageURL    string       `json:"image_url,omitempty"` // Optional CDN reference for an uploaded photo.
}
