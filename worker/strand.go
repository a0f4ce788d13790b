package worker

import "sync"

// Strand serializes the handlers it wraps: no two of them run at the same
// time, whichever worker picks them up.
type Strand struct {
	mu sync.Mutex
}

// Wrap returns a handler that runs fn while holding the strand.
func (s *Strand) Wrap(fn func()) func() {
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		fn()
	}
}
