// Package delivery holds the inbound adapters of the service.
package delivery

import "context"

// Delivery is a server started by the application once every dependency is ready.
type Delivery interface {
	Serve(ctx context.Context) error
}
