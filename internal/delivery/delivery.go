// Package delivery holds the long-running entry points of the service.
package delivery

import "context"

// Delivery is a server or loop started by main and stopped through its fx lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
