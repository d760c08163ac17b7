// Package session owns the single connection to the pub/sub server.
//
// A Session wraps the dialled net.Conn with an open/closed flag that
// both relay loops consult.  Reads and writes never panic or surface
// raw socket errors after close: a closed session reads as
// ErrStreamEnd and refuses writes with a WriteError.
package session

import (
	"context"
	"net"
	"sync"
	"sync/atomic"

	ncerr "github.com/redar98/PAD/internal/errors"
	"github.com/redar98/PAD/internal/metrics"
	"github.com/redar98/PAD/internal/transport"
	"github.com/redar98/PAD/util"
)

// Session is the open TCP stream to the server.  It is created once
// per process run and closed exactly once.
type Session struct {
	Host string
	Port int

	conn    net.Conn
	addr    string
	logger  *util.Logger
	metrics *metrics.Collector

	open      atomic.Bool
	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// Connect performs a single dial attempt to host:port through d.
// There is no retry; a failure is returned as a connect NetworkError.
func Connect(ctx context.Context, d transport.Dialer, host string, port int,
	logger *util.Logger, mc *metrics.Collector) (*Session, error) {
	addr := util.FormatAddr(host, port)

	conn, err := d.Dial(ctx, addr)
	if err != nil {
		mc.RecordError(err.Error())
		return nil, ncerr.Connect(addr, err)
	}

	s := New(conn, logger, mc)
	s.Host, s.Port, s.addr = host, port, addr
	return s, nil
}

// New wraps an already established connection.
func New(conn net.Conn, logger *util.Logger, mc *metrics.Collector) *Session {
	s := &Session{
		conn:    conn,
		addr:    conn.RemoteAddr().String(),
		logger:  logger,
		metrics: mc,
		done:    make(chan struct{}),
	}
	s.open.Store(true)
	mc.ConnectionOpened()
	return s
}

// Address returns the "host:port" the session was opened to.
func (s *Session) Address() string { return s.addr }

// RemoteAddr returns the peer address of the underlying socket.
func (s *Session) RemoteAddr() net.Addr { return s.conn.RemoteAddr() }

// IsOpen reports whether the session has not been closed yet.  The
// answer is advisory: the other loop may close it at any moment.
func (s *Session) IsOpen() bool { return s.open.Load() }

// Done returns a channel that is closed when the session closes, for
// whatever reason.
func (s *Session) Done() <-chan struct{} { return s.done }

// ReadChunk performs one read of at most len(buf) bytes and returns
// how many bytes were actually read.  As with io.Reader, callers must
// consume buf[:n] before looking at err.
//
// The end of the stream (peer EOF, or a local close racing with the
// read) is reported as ErrStreamEnd; any other failure as a read
// NetworkError.  Either way the session is closed and no further
// reads reach the socket.
func (s *Session) ReadChunk(buf []byte) (int, error) {
	if !s.IsOpen() {
		return 0, ncerr.ErrStreamEnd
	}

	n, err := s.conn.Read(buf)
	if n > 0 {
		s.metrics.ChunkReceived(n)
	}
	if err == nil {
		return n, nil
	}

	s.Close() //nolint:errcheck
	if ncerr.IsStreamEnd(err) {
		return n, ncerr.ErrStreamEnd
	}
	s.metrics.RecordError(err.Error())
	return n, ncerr.Read(s.addr, err)
}

// WriteLine sends text followed by "\n" in a single write.
func (s *Session) WriteLine(text string) error {
	if !s.IsOpen() {
		return ncerr.Write(s.addr, ncerr.ErrStreamEnd)
	}

	n, err := s.conn.Write([]byte(text + "\n"))
	if err != nil {
		s.metrics.RecordError(err.Error())
		if ncerr.IsStreamEnd(err) {
			err = ncerr.ErrStreamEnd
		}
		return ncerr.Write(s.addr, err)
	}
	s.metrics.LineSent(n)
	return nil
}

// Close releases the socket.  It is safe to call more than once and
// from either goroutine; a blocked ReadChunk returns ErrStreamEnd.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.open.Store(false)
		s.closeErr = s.conn.Close()
		close(s.done)
		s.metrics.ConnectionClosed()
		s.logger.Debug("connection to %s closed", s.addr)
	})
	return s.closeErr
}
