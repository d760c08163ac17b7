package relay

import (
	"io"

	ncerr "github.com/redar98/PAD/internal/errors"
	"github.com/redar98/PAD/internal/session"
)

// Inbound copies chunks from the session to w until the stream ends or
// a read fails.  Only the bytes actually read are written, one Write
// per chunk, with no buffering or line reassembly: a chunk may end in
// the middle of a line or of a multi-byte character.
//
// Inbound never returns an error.  Stream end is normal; read and
// console failures are logged at debug level and end the loop.
func (r *Relay) Inbound(sess *session.Session, w io.Writer) {
	log := r.logger()
	buf := make([]byte, r.chunkSize())

	for sess.IsOpen() {
		n, err := sess.ReadChunk(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				log.Debug("inbound: console write: %v", werr)
				return
			}
		}
		if err != nil {
			if ncerr.IsStreamEnd(err) {
				log.Debug("inbound: stream ended")
			} else {
				log.Debug("inbound: %v", err)
			}
			return
		}
	}
}
