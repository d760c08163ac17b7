// Package relay forwards traffic in both directions over one session.
//
// The outbound loop runs on the caller's goroutine and sends console
// lines to the server until the quit command, end of input, a write
// failure or cancellation.  The inbound loop runs on its own goroutine
// and copies every chunk the server sends to the console as soon as it
// arrives.  The two loops share only the session and the console
// writer.
package relay

import (
	"context"
	"io"
	"sync"

	"github.com/redar98/PAD/config"
	"github.com/redar98/PAD/internal/session"
	"github.com/redar98/PAD/util"
)

// Result tells how the outbound loop ended.
type Result int

const (
	ResultQuit        Result = iota // the quit command was typed
	ResultEndOfInput                // the console has no more lines
	ResultPeerClosed                // the session closed underneath us
	ResultInterrupted               // the context was cancelled
	ResultFailed                    // a write or console read failed
)

func (r Result) String() string {
	switch r {
	case ResultQuit:
		return "quit"
	case ResultEndOfInput:
		return "end of input"
	case ResultPeerClosed:
		return "closed by peer"
	case ResultInterrupted:
		return "interrupted"
	default:
		return "failed"
	}
}

// Relay holds the settings shared by both loops.  The zero value uses
// the default chunk size and quit command.
type Relay struct {
	ChunkSize int    // inbound read buffer size
	Sentinel  string // case-insensitive quit command
	Logger    *util.Logger
}

func (r *Relay) chunkSize() int {
	if r.ChunkSize > 0 {
		return r.ChunkSize
	}
	return config.DefaultChunkSize
}

func (r *Relay) sentinel() string {
	if r.Sentinel != "" {
		return r.Sentinel
	}
	return config.DefaultSentinel
}

func (r *Relay) logger() *util.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return util.NewLogger(0)
}

// Handle runs both loops until the outbound loop ends, then closes the
// session and waits for the inbound goroutine.  Closing the socket
// unblocks its pending read, so the join is bounded by one read.
func (r *Relay) Handle(ctx context.Context, sess *session.Session, stdin io.Reader, stdout io.Writer) (Result, error) {
	out := util.NewLockedWriter(stdout)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.Inbound(sess, out)
	}()

	res, err := r.Outbound(ctx, sess, stdin)
	sess.Close() //nolint:errcheck
	wg.Wait()

	r.logger().Verbose("relay finished: %s", res)
	return res, err
}
