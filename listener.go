package libemit

import (
	"sync"
	"sync/atomic"
)

var listenerSeq atomic.Uint64

type (
	// Listener is a registered callback. Emitters compare listeners by pointer,
	// so the same *Listener registered twice is delivered twice and removed
	// together by Off.
	Listener[V any] struct {
		id uint64
		fn func(V)
	}

	// Unsubscribe removes the registration it was returned for. Calling it more
	// than once has no further effect.
	Unsubscribe func()
)

// NewListener wraps fn into a listener handle that can later be passed to Off.
// A nil fn yields a nil listener, which emitters ignore.
func NewListener[V any](fn func(V)) *Listener[V] {
	if fn == nil {
		return nil
	}
	return newListenerWithID(listenerSeq.Add(1), fn)
}

// newListenerWithID builds a wrapper that reports the id of the listener it
// stands in for, so errors and logs point at the caller's handle.
func newListenerWithID[V any](id uint64, fn func(V)) *Listener[V] {
	return &Listener[V]{
		id: id,
		fn: fn,
	}
}

// Call invokes the underlying callback.
func (l *Listener[V]) Call(data V) {
	l.fn(data)
}

// ID returns a process-unique sequence number, mostly useful in logs.
func (l *Listener[V]) ID() uint64 {
	return l.id
}

func newUnsubscribe(fn func()) Unsubscribe {
	var once sync.Once
	return func() {
		once.Do(fn)
	}
}

func noopUnsubscribe() {}

// newOnceListener returns a listener that calls off and then listener at most
// one time, no matter how many emit passes observe it.
func newOnceListener[V any](listener *Listener[V], off func()) *Listener[V] {
	var fired atomic.Bool
	return newListenerWithID(listener.ID(), func(data V) {
		if !fired.CompareAndSwap(false, true) {
			return
		}
		off()
		listener.Call(data)
	})
}
