// Package delivery defines the contract every transport entrypoint
// implements so the application can run them uniformly.
package delivery

import "context"

// Delivery is a blocking transport server. Serve runs until the server
// stops or fails; shutdown is handled by the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
