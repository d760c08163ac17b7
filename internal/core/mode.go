// Package core is the orchestration layer.  It composes a transport,
// a session and the relay into the client's run loop, and provides a
// builder that assembles it from a Config.
//
// Architecture layers (bottom → top):
//
//	transport  →  session  →  relay  →  core  →  cmd (CLI)
package core

import "context"

// Mode is a complete run of the client, from connection establishment
// to teardown.
type Mode interface {
	Run(ctx context.Context) error
}
