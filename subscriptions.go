package libemit

import "sync"

// Subscriptions ties a set of registrations to the lifetime of their owner:
// add the unsubscribe functions as listeners are registered and call Close
// when the owner goes away. The zero value is ready to use.
type Subscriptions struct {
	mu     sync.Mutex
	tokens []Unsubscribe
	closed bool
}

// Add keeps tokens until Close. Tokens added after Close run right away.
func (s *Subscriptions) Add(tokens ...Unsubscribe) {
	s.mu.Lock()
	if !s.closed {
		s.tokens = append(s.tokens, tokens...)
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	for _, token := range tokens {
		if token != nil {
			token()
		}
	}
}

// Len returns the number of tokens waiting for Close.
func (s *Subscriptions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.tokens)
}

// Close unsubscribes everything, last added first.
func (s *Subscriptions) Close() {
	s.mu.Lock()
	tokens := s.tokens
	s.tokens = nil
	s.closed = true
	s.mu.Unlock()

	for i := len(tokens) - 1; i >= 0; i-- {
		if tokens[i] != nil {
			tokens[i]()
		}
	}
}
