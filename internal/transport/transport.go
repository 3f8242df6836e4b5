// Package transport declares the contract every inbound transport of the
// application satisfies.
package transport

import "context"

// Transport is a long-running inbound server, started by main and stopped
// through the fx lifecycle.
type Transport interface {
	// Serve blocks serving requests until the server is shut down
	Serve(ctx context.Context) error
}
