package relay

import (
	"context"
	"fmt"
	"io"
	"strings"

	ncerr "github.com/redar98/PAD/internal/errors"
	"github.com/redar98/PAD/internal/session"
)

// Outbound forwards console lines to the session until one of:
//
//   - a line equal to the quit command (any case), which is not sent;
//   - end of console input, after any final unterminated line is sent;
//   - a failed write, returned as the session's write error;
//   - the session closing or ctx being cancelled.  A close observed
//     while a line is pending ends the loop as ResultPeerClosed, never
//     as a write error.
//
// End of input is checked before the quit comparison, so an exhausted
// console never looks like a line.
func (r *Relay) Outbound(ctx context.Context, sess *session.Session, stdin io.Reader) (Result, error) {
	done := make(chan struct{})
	defer close(done)
	lines := readLines(stdin, done)

	log := r.logger()
	quit := r.sentinel()

	for {
		select {
		case <-ctx.Done():
			return ResultInterrupted, nil
		case <-sess.Done():
			return ResultPeerClosed, nil
		case l, ok := <-lines:
			if !ok || l.err == io.EOF {
				log.Verbose("console input ended")
				return ResultEndOfInput, nil
			}
			if l.err != nil {
				return ResultFailed, fmt.Errorf("reading console: %w", l.err)
			}
			if strings.EqualFold(l.text, quit) {
				return ResultQuit, nil
			}
			// A line and the session closing can be ready together;
			// the close wins either way.
			if !sess.IsOpen() {
				return ResultPeerClosed, nil
			}
			if err := sess.WriteLine(l.text); err != nil {
				if ncerr.Is(err, ncerr.ErrStreamEnd) && !sess.IsOpen() {
					return ResultPeerClosed, nil
				}
				return ResultFailed, err
			}
			log.Debug("sent %d bytes", len(l.text)+1)
		}
	}
}
