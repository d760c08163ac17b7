package core

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/redar98/PAD/internal/metrics"
	"github.com/redar98/PAD/internal/relay"
	"github.com/redar98/PAD/internal/session"
	"github.com/redar98/PAD/internal/transport"
	"github.com/redar98/PAD/util"
)

// ConnectMode dials the server once and relays the console over the
// resulting session until the user quits or the stream ends.
type ConnectMode struct {
	Dialer  transport.Dialer
	Relay   *relay.Relay
	Host    string
	Port    int
	Logger  *util.Logger
	Metrics *metrics.Collector
	Stats   bool // print the metrics snapshot as JSON on exit

	// Stdin/Stdout/Stderr default to the process streams when nil.
	// Override in tests for deterministic I/O.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (m *ConnectMode) stdin() io.Reader {
	if m.Stdin != nil {
		return m.Stdin
	}
	return os.Stdin
}

func (m *ConnectMode) stdout() io.Writer {
	if m.Stdout != nil {
		return m.Stdout
	}
	return os.Stdout
}

func (m *ConnectMode) stderr() io.Writer {
	if m.Stderr != nil {
		return m.Stderr
	}
	return os.Stderr
}

// Run prints the connection status, connects, and hands the session to
// the relay.  A connect failure returns before any read or write; a
// write failure is returned after the session is torn down.  The
// dialer and session are closed when Run returns.
func (m *ConnectMode) Run(ctx context.Context) error {
	defer m.Dialer.Close()

	out := util.NewLockedWriter(m.stdout())
	fmt.Fprintf(out, "Connecting to %s\n", util.FormatAddr(m.Host, m.Port))

	sess, err := session.Connect(ctx, m.Dialer, m.Host, m.Port, m.Logger, m.Metrics)
	if err != nil {
		return err
	}
	defer sess.Close()
	defer m.report()

	fmt.Fprintln(out, "Connection established.")
	m.Logger.Verbose("connected to %s (%s)", sess.Address(), sess.RemoteAddr())

	res, err := m.Relay.Handle(ctx, sess, m.stdin(), out)
	if err != nil {
		return err
	}

	if res == relay.ResultPeerClosed {
		fmt.Fprintln(out, "Connection closed by the server.")
	} else {
		fmt.Fprintln(out, "Connection to the server closed.")
	}
	return nil
}

// report logs the session counters and, with Stats, dumps them as JSON.
func (m *ConnectMode) report() {
	m.Logger.Verbose("sent %d lines (%d bytes), received %d chunks (%d bytes), %d errors",
		m.Metrics.LinesSent(), m.Metrics.TotalBytesOut(),
		m.Metrics.ChunksReceived(), m.Metrics.TotalBytesIn(),
		m.Metrics.ErrorCount())
	if m.Stats {
		fmt.Fprintln(m.stderr(), m.Metrics.JSON())
	}
}
