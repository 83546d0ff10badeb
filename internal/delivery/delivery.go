// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application root.
type Delivery interface {
	Serve(ctx context.Context) error
}
