// Package metrics provides lock-free counters describing one client
// session: traffic in each direction and the errors that ended it.
//
// All methods are safe for concurrent use; the inbound goroutine and
// the main goroutine record into the same Collector.  A nil *Collector
// is a valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// Collector tracks runtime metrics for a session.
type Collector struct {
	connectionsOpened atomic.Int64
	connectionsClosed atomic.Int64
	bytesIn           atomic.Int64
	bytesOut          atomic.Int64
	chunksIn          atomic.Int64
	linesOut          atomic.Int64
	errorsTotal       atomic.Int64

	mu           sync.RWMutex
	startTime    time.Time
	lastError    time.Time
	lastErrorMsg string
}

// New creates a metrics collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// ── Connection metrics ───────────────────────────────────────────────

// ConnectionOpened records a successful connect.
func (c *Collector) ConnectionOpened() {
	if c == nil {
		return
	}
	c.connectionsOpened.Add(1)
}

// ConnectionClosed records the release of a connection.
func (c *Collector) ConnectionClosed() {
	if c == nil {
		return
	}
	c.connectionsClosed.Add(1)
}

// ActiveConnections returns opened minus closed.
func (c *Collector) ActiveConnections() int64 {
	if c == nil {
		return 0
	}
	return c.connectionsOpened.Load() - c.connectionsClosed.Load()
}

// ── I/O metrics ──────────────────────────────────────────────────────

// ChunkReceived records one inbound read of n bytes.
func (c *Collector) ChunkReceived(n int) {
	if c == nil {
		return
	}
	c.chunksIn.Add(1)
	c.bytesIn.Add(int64(n))
}

// LineSent records one outbound line occupying n bytes on the wire.
func (c *Collector) LineSent(n int) {
	if c == nil {
		return
	}
	c.linesOut.Add(1)
	c.bytesOut.Add(int64(n))
}

// TotalBytesIn returns total bytes received.
func (c *Collector) TotalBytesIn() int64 {
	if c == nil {
		return 0
	}
	return c.bytesIn.Load()
}

// TotalBytesOut returns total bytes sent.
func (c *Collector) TotalBytesOut() int64 {
	if c == nil {
		return 0
	}
	return c.bytesOut.Load()
}

// LinesSent returns the number of lines written to the server.
func (c *Collector) LinesSent() int64 {
	if c == nil {
		return 0
	}
	return c.linesOut.Load()
}

// ChunksReceived returns the number of non-empty inbound reads.
func (c *Collector) ChunksReceived() int64 {
	if c == nil {
		return 0
	}
	return c.chunksIn.Load()
}

// ── Error metrics ────────────────────────────────────────────────────

// RecordError increments the error counter and stores the message.
func (c *Collector) RecordError(msg string) {
	if c == nil {
		return
	}
	c.errorsTotal.Add(1)
	c.mu.Lock()
	c.lastError = time.Now()
	c.lastErrorMsg = msg
	c.mu.Unlock()
}

// ErrorCount returns the total number of errors recorded.
func (c *Collector) ErrorCount() int64 {
	if c == nil {
		return 0
	}
	return c.errorsTotal.Load()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	Uptime            string `json:"uptime"`
	ConnectionsActive int64  `json:"connections_active"`
	BytesIn           int64  `json:"bytes_in"`
	BytesOut          int64  `json:"bytes_out"`
	ChunksIn          int64  `json:"chunks_in"`
	LinesOut          int64  `json:"lines_out"`
	ErrorsTotal       int64  `json:"errors_total"`
	LastError         string `json:"last_error,omitempty"`
	LastErrorMessage  string `json:"last_error_message,omitempty"`
}

// Snapshot returns a copy of all current metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		Uptime:            time.Since(c.startTime).Truncate(time.Millisecond).String(),
		ConnectionsActive: c.ActiveConnections(),
		BytesIn:           c.bytesIn.Load(),
		BytesOut:          c.bytesOut.Load(),
		ChunksIn:          c.chunksIn.Load(),
		LinesOut:          c.linesOut.Load(),
		ErrorsTotal:       c.errorsTotal.Load(),
	}
	if !c.lastError.IsZero() {
		s.LastError = c.lastError.Format(time.RFC3339)
		s.LastErrorMessage = c.lastErrorMsg
	}
	return s
}

// JSON returns the snapshot as an indented JSON string.
func (c *Collector) JSON() string {
	s := c.Snapshot()
	data, _ := json.MarshalIndent(s, "", "  ")
	return string(data)
}
