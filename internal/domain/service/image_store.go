package service

import "context"

// ImageStore persists uploaded food photos and returns a publicly
// addressable URL for each.
type ImageStore interface {
	// Save writes the image under the given key and returns its public URL.
	Save(ctx context.Context, key string, contentType string, image []byte) (string, error)

	// Close releases any resources held by the store.
	Close() error
}
