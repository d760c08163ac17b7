// Package errors provides the error taxonomy for pubsubc.
//
// Failures are classified by where they happen: establishing the
// connection (fatal), sending a line (ends the session), or receiving
// data (ends the inbound loop only).  Structured types carry the
// operation and address so diagnostics are a single readable line.
package errors

import (
	"errors"
	"fmt"
	"io"
	"net"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	// ErrStreamEnd signals that the byte stream is finished: the peer
	// closed it, or it was closed locally.
	ErrStreamEnd       = errors.New("stream ended")
	ErrAuthFailed      = errors.New("authentication failed")
	ErrHostKeyMismatch = errors.New("host key mismatch")
)

// Operations recorded in NetworkError.Op.
const (
	OpConnect = "connect"
	OpWrite   = "write"
	OpRead    = "read"
)

// ── Structured error types ───────────────────────────────────────────

// NetworkError represents a failure in a network operation.
type NetworkError struct {
	Op   string // OpConnect, OpWrite or OpRead
	Addr string // remote address involved
	Err  error  // underlying error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Addr, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// SSHError represents an SSH gateway failure with host context.
type SSHError struct {
	Op   string // "auth", "hostkey", "handshake", "dial"
	Host string
	Port int
	Err  error
}

func (e *SSHError) Error() string {
	return fmt.Sprintf("ssh %s %s:%d: %v", e.Op, e.Host, e.Port, e.Err)
}

func (e *SSHError) Unwrap() error { return e.Err }

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string      // flag name without dashes
	Value   interface{} // the invalid value (nil if missing)
	Message string
	Hint    string // optional
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: --%s", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

// ── Constructors ─────────────────────────────────────────────────────

// Connect wraps a failed connection attempt to addr.
func Connect(addr string, err error) *NetworkError {
	return &NetworkError{Op: OpConnect, Addr: addr, Err: err}
}

// Write wraps a failed send to addr.
func Write(addr string, err error) *NetworkError {
	return &NetworkError{Op: OpWrite, Addr: addr, Err: err}
}

// Read wraps a failed receive from addr.
func Read(addr string, err error) *NetworkError {
	return &NetworkError{Op: OpRead, Addr: addr, Err: err}
}

// WrapSSH creates an SSHError.
func WrapSSH(op, host string, port int, err error) *SSHError {
	return &SSHError{Op: op, Host: host, Port: port, Err: err}
}

// ── Classification helpers ───────────────────────────────────────────

// IsConnect reports whether err came from establishing the connection.
func IsConnect(err error) bool { return hasOp(err, OpConnect) }

// IsWrite reports whether err came from sending data.
func IsWrite(err error) bool { return hasOp(err, OpWrite) }

func hasOp(err error, op string) bool {
	var ne *NetworkError
	return errors.As(err, &ne) && ne.Op == op
}

// IsStreamEnd reports whether err means the stream is simply over
// rather than broken: EOF, a closed connection, or ErrStreamEnd.
func IsStreamEnd(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrStreamEnd) || errors.Is(err, io.EOF) ||
		errors.Is(err, net.ErrClosed) || errors.Is(err, io.ErrClosedPipe) {
		return true
	}
	// net.OpError wrapping "use of closed network connection"
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, net.ErrClosed)
	}
	return false
}

// ── Re-exports for convenience ───────────────────────────────────────

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }
