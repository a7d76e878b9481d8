// Package delivery defines the contract for transport-level servers.
package delivery

import "context"

// Delivery is a long-running transport server started by the application entrypoint.
type Delivery interface {
	// Serve blocks until the server stops or the context is cancelled.
	Serve(ctx context.Context) error
}
