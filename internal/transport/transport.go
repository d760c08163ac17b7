// Package transport provides abstractions for establishing the byte
// stream to the pub/sub server.  Transports handle how bytes travel
// (direct TCP or through an SSH gateway) independent of what the
// relay does with them.
package transport

import (
	"context"
	"net"
)

// Dialer opens the outbound TCP stream.  Implementations include a
// plain TCP dialer and an SSH dialer that routes the stream through an
// encrypted gateway.
type Dialer interface {
	// Dial establishes a TCP stream to address ("host:port").
	Dial(ctx context.Context, address string) (net.Conn, error)

	// Close releases any long-lived resources held by the dialer
	// (e.g. an SSH client).  Stateless dialers return nil.
	Close() error
}
