package service

import (
	"context"
)

// DonationCreatedEvent is published after a donation is accepted, so that
// downstream consumers (analytics, notification fan-out) can react asynchronously.
type DonationCreatedEvent struct {
	RequestID      string   `json:"request_id,omitempty"` // For distributed tracing
	DonationID     string   `json:"donation_id"`
	RestaurantID   string   `json:"restaurant_id"`
	RestaurantName string   `json:"restaurant_name"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	PickupAddress  string   `json:"pickup_address"`
	Categories     []string `json:"categories"`
	MatchedOrgIDs  []string `json:"matched_org_ids"` // Pre-ranked candidate organization IDs
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDonationCreated publishes a donation-created event for async processing
	PublishDonationCreated(ctx context.Context, event *DonationCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
