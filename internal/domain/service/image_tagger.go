package service

import (
	"context"

	"foodlink/internal/domain/entity"
)

// ImageTagResult holds what the tagger inferred from a food photo.
type ImageTagResult struct {
	// Category is the tagger's best guess, or empty if it could not decide.
	Category entity.FoodCategory
	// Confidence is in [0, 1].
	Confidence float64
}

// ImageTagger classifies food photos into food categories. Used to verify
// that a donation photo plausibly matches its declared items.
type ImageTagger interface {
	// Tag analyzes the image bytes and returns the inferred category.
	Tag(ctx context.Context, image []byte) (*ImageTagResult, error)
}
