// Package delivery defines the contract every serving surface implements.
package delivery

import "context"

// Delivery is a long-running serving loop. The application collects all
// deliveries and runs each in its own goroutine.
type Delivery interface {
	// Serve blocks until the delivery stops or the context is canceled.
	Serve(ctx context.Context) error
}
