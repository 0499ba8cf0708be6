// Package delivery defines the contract every transport entry point implements.
package delivery

import "context"

// Delivery is a long-running server started by the application runtime.
type Delivery interface {
	// Serve blocks until the server stops or the context is canceled.
	Serve(ctx context.Context) error
}
