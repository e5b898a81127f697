// Package delivery defines the contract every transport front-end satisfies.
package delivery

import "context"

// Delivery is a long-running transport (HTTP today) that serves requests
// until its context is cancelled or the Fx lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
