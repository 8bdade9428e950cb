package output

import (
	"io"
	"sync/atomic"
)

// reader reads data from a Streamer, tracking its absolute position in the
// output and blocking for new data as it arrives. Safe for concurrent use.
type reader struct {
	position int64
	closed   atomic.Bool

	s *Streamer
}

// Read performs a blocking read of data from the Streamer. When there's no
// more data left and no more coming, it returns io.EOF.
func (r *reader) Read(p []byte) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for r.position >= r.end() && !r.isFinished() {
		r.s.cond.Wait()
	}

	if r.isFinished() {
		return 0, io.EOF
	}

	// Fell behind the retained window.
	if r.position < r.s.offset {
		r.position = r.s.offset
	}

	start := int(r.position - r.s.offset)

	n := copy(p, r.s.buffer[start:])
	r.position += int64(n)

	return n, nil
}

// Close unsubscribes the reader and wakes any blocked Read. Closing twice
// returns io.ErrClosedPipe.
func (r *reader) Close() error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.closed.Swap(true) {
		return io.ErrClosedPipe
	}

	r.s.cond.Broadcast()

	return nil
}

func (r *reader) end() int64 {
	return r.s.offset + int64(len(r.s.buffer))
}

func (r *reader) isFinished() bool {
	return r.closed.Load() || (r.s.isDone() && r.position >= r.end())
}
