package relay

import (
	"bufio"
	"io"
	"strings"
)

// consoleLine is one line of console input with its terminator
// removed.  A non-nil err ends the stream; io.EOF means no more input.
type consoleLine struct {
	text string
	err  error
}

// readLines reads r one line at a time on a separate goroutine so the
// outbound loop can also watch for cancellation.  It reads at most one
// line ahead of the consumer and stops once done is closed.  A final
// line without a terminator is still delivered before io.EOF.
func readLines(r io.Reader, done <-chan struct{}) <-chan consoleLine {
	ch := make(chan consoleLine)
	go func() {
		defer close(ch)
		br := bufio.NewReader(r)
		for {
			s, err := br.ReadString('\n')
			if s != "" || err == nil {
				if !send(ch, done, consoleLine{text: trimEOL(s)}) {
					return
				}
			}
			if err != nil {
				send(ch, done, consoleLine{err: err})
				return
			}
		}
	}()
	return ch
}

func send(ch chan<- consoleLine, done <-chan struct{}, l consoleLine) bool {
	select {
	case ch <- l:
		return true
	case <-done:
		return false
	}
}

// trimEOL strips one trailing "\n" or "\r\n".
func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
