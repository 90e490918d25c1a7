// Package gateway exposes the client side of the external messaging
// gateway: delivering outbound messages and probing gateway health.
package gateway

import "context"

// Client is the contract for a messaging-gateway implementation.
type Client interface {
	// Send delivers one outbound message through the gateway.
	// Returns the raw gateway response for logging/diagnostics.
	Send(ctx context.Context, phone, body, msgType string) (rawResponse string, err error)

	// Health checks whether the gateway is reachable and usable.
	Health(ctx context.Context) error
}
