// Package restart turns "restart" lines on an input stream into tokens the
// simulation loop can poll without blocking.
package restart

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"go-hex-defense/internal/logging"
)

// Token is the command word and the value sent on the channel.
const Token = "restart"

const DefaultBackoff = time.Second

// Reader reads command lines in a background goroutine.
type Reader struct {
	in      *bufio.Reader
	out     chan<- string
	backoff time.Duration
	log     logrus.FieldLogger
}

// NewReader reads lines from in and offers each restart command to out.
// A non-positive backoff falls back to DefaultBackoff.
func NewReader(in io.Reader, out chan<- string, backoff time.Duration, log logrus.FieldLogger) *Reader {
	if backoff <= 0 {
		backoff = DefaultBackoff
	}
	return &Reader{
		in:      bufio.NewReader(in),
		out:     out,
		backoff: backoff,
		log:     logging.OrDiscard(log),
	}
}

// Run loops until ctx is done. Read errors, EOF included, are retried
// after the backoff; they never end the loop on their own.
func (r *Reader) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		line, err := r.in.ReadString('\n')
		if line != "" {
			r.handle(line)
		}
		if err == nil {
			continue
		}
		r.log.WithError(err).Warn("restart reader: read failed, retrying")
		select {
		case <-ctx.Done():
			return
		case <-time.After(r.backoff):
		}
	}
}

func (r *Reader) handle(line string) {
	cmd := strings.TrimSpace(line)
	if cmd != Token {
		if cmd != "" {
			r.log.WithField("command", cmd).Debug("restart reader: ignoring unknown command")
		}
		return
	}
	if !Offer(r.out, Token) {
		r.log.Debug("restart reader: channel full, token dropped")
	}
}

// Offer sends tok without blocking and reports whether it was queued.
func Offer(ch chan<- string, tok string) bool {
	select {
	case ch <- tok:
		return true
	default:
		return false
	}
}

// Drain receives every token currently queued on ch without blocking and
// returns how many there were.
func Drain(ch <-chan string) int {
	n := 0
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return n
			}
			n++
		default:
			return n
		}
	}
}
