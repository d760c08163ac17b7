package util

import (
	"io"
	"sync"
)

// LockedWriter serialises Write calls onto a shared writer.  The
// console is written by the inbound goroutine and by the main
// goroutine's status messages; each Write lands whole, but no order
// between writers is implied.
type LockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLockedWriter wraps w.  Wrapping a *LockedWriter returns it as is.
func NewLockedWriter(w io.Writer) *LockedWriter {
	if lw, ok := w.(*LockedWriter); ok {
		return lw
	}
	return &LockedWriter{w: w}
}

// Write forwards p to the underlying writer while holding the lock.
func (lw *LockedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.w.Write(p)
}

// Do runs fn with exclusive access to the underlying writer, for
// callers that need to inspect it (tests reading a bytes.Buffer).
func (lw *LockedWriter) Do(fn func(w io.Writer)) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	fn(lw.w)
}
