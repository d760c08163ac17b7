package config

import "time"

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so CLI flags and environment
// loading agree on them.

const (
	// DefaultHost is where the pub/sub server runs during development.
	DefaultHost = "localhost"

	// DefaultPort is the pub/sub server's listening port.
	DefaultPort = 8787

	// DefaultChunkSize bounds a single inbound read.
	DefaultChunkSize = 300

	// DefaultSentinel is the console command that ends the session.
	// It is compared case-insensitively.
	DefaultSentinel = "quit"

	// DefaultSSHPort is the standard SSH port.
	DefaultSSHPort = 22

	// DefaultSSHConnTimeout bounds the SSH gateway handshake.
	DefaultSSHConnTimeout = 30 * time.Second
)
