package tutor

import (
	"context"
	"sync"
)

// Stream delivers a tutor reply as an ordered sequence of text fragments.
// The channel closes when the reply is complete or the request failed;
// Err distinguishes the two. A stream is not restartable.
type Stream struct {
	chunks chan string

	mu  sync.Mutex
	err error
}

func newStream() *Stream {
	return &Stream{chunks: make(chan string)}
}

// Chunks returns the fragment channel. Fragments arrive in reply order
// and must be concatenated as-is.
func (s *Stream) Chunks() <-chan string {
	return s.chunks
}

// Err returns the failure that ended the stream, or nil after a clean
// completion. Only meaningful once Chunks is closed.
func (s *Stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// send forwards one fragment, giving up when the context is canceled so
// an abandoned consumer never blocks the producer.
func (s *Stream) send(ctx context.Context, chunk string) bool {
	if chunk == "" {
		return true
	}
	select {
	case s.chunks <- chunk:
		return true
	case <-ctx.Done():
		return false
	}
}

// close ends the stream, recording err when the reply did not complete.
func (s *Stream) close(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
	close(s.chunks)
}
