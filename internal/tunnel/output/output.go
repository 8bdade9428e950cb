// Package output captures the combined output of a tunnel process. Multiple
// clients can subscribe to a Streamer and each receive the retained output
// from the beginning, followed by new output as it arrives.
//
// Tunnels can live for days, so only the most recent output is retained.
package output

import (
	"io"
	"sync"
)

const (
	// DefaultLimit is the number of most recent bytes retained when no limit
	// is given. ssh rarely says much, so this covers the connection banner and
	// any forwarding errors.
	DefaultLimit = 64 * 1024

	readBufferSize = 4096
)

// Streamer reads from a source io.ReadCloser into a bounded internal buffer
// for use by subscribers. Once more than limit bytes have been read the oldest
// output is discarded.
type Streamer struct {
	buffer []byte
	limit  int

	// offset is the position in the overall output of buffer[0].
	offset int64

	done chan struct{}
	mu   sync.Mutex
	cond sync.Cond
}

// NewStreamer creates a Streamer that reads from source and immediately begins
// processing until source returns an error, usually io.EOF. A non-positive
// limit uses DefaultLimit.
func NewStreamer(source io.ReadCloser, limit int) *Streamer {
	if limit <= 0 {
		limit = DefaultLimit
	}

	s := &Streamer{
		buffer: make([]byte, 0, min(limit, readBufferSize)),
		limit:  limit,
		done:   make(chan struct{}),
	}

	s.cond.L = &s.mu

	go s.processOutput(source)

	return s
}

func (s *Streamer) processOutput(source io.ReadCloser) {
	defer func() {
		close(s.done)
		source.Close()

		s.mu.Lock()
		s.cond.Broadcast()
		s.mu.Unlock()
	}()

	buffer := make([]byte, readBufferSize)

	for {
		n, err := source.Read(buffer)
		if n > 0 {
			s.mu.Lock()
			s.appendLocked(buffer[:n])
			s.cond.Broadcast()
			s.mu.Unlock()
		}

		// Any error ends the stream. For a pipe from an exited process that's
		// io.EOF or os.ErrClosed.
		if err != nil {
			return
		}
	}
}

func (s *Streamer) appendLocked(p []byte) {
	s.buffer = append(s.buffer, p...)

	if over := len(s.buffer) - s.limit; over > 0 {
		n := copy(s.buffer, s.buffer[over:])
		s.buffer = s.buffer[:n]
		s.offset += int64(over)
	}
}

// Subscribe returns an io.ReadCloser for reading data from the Streamer.
// Close cancels the subscription.
//
// A subscriber that falls more than the limit behind skips the discarded
// output and continues from the oldest retained byte.
func (s *Streamer) Subscribe() io.ReadCloser {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &reader{s: s, position: s.offset}
}

// Snapshot returns a copy of the retained output.
func (s *Streamer) Snapshot() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]byte(nil), s.buffer...)
}

// Truncated reports whether any output has been discarded.
func (s *Streamer) Truncated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.offset > 0
}

// Done returns a channel that is closed when processing has finished, i.e. the
// source io.ReadCloser is exhausted.
func (s *Streamer) Done() <-chan struct{} {
	return s.done
}

func (s *Streamer) isDone() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}
