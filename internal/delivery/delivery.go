// Package delivery holds the transports that drive the use cases: the API server, the worker push
// endpoint, the broker consumer and the retry sweeper.
package delivery

import "context"

// Delivery is a long-running transport started by the process.
type Delivery interface {
	Serve(ctx context.Context) error
}
