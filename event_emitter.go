// Package libemit is an in-process, synchronous event emitter. Listeners are
// registered per event kind and receive every payload emitted for that kind,
// in registration order, on the emitting goroutine.
package libemit

import (
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"
)

// registration is one entry in a kind's listener sequence. The removed flag is
// what lets an in-flight Emit skip listeners that were taken out mid-pass.
type registration[V any] struct {
	listener *Listener[V]
	removed  atomic.Bool
}

// EventEmitterCallback maps events (of type K) to ordered listener sequences
// receiving payloads of type V.
type EventEmitterCallback[K comparable, V any] struct {
	listeners map[K][]*registration[V]
	lock      sync.RWMutex
	logger    Logger
}

// EventEmitter is the name most callers want.
type EventEmitter[K comparable, V any] = EventEmitterCallback[K, V]

// NewEventEmitter creates a new EventEmitterCallback and returns a pointer to it.
func NewEventEmitter[K comparable, V any](opts ...Option) *EventEmitterCallback[K, V] {
	o := newOptions(opts...)
	return &EventEmitterCallback[K, V]{
		listeners: make(map[K][]*registration[V]),
		logger:    o.logger,
	}
}

// On appends listener to the sequence for the given event. The returned
// function is equivalent to calling Off(event, listener).
func (e *EventEmitterCallback[K, V]) On(event K, listener *Listener[V]) Unsubscribe {
	if listener == nil {
		return noopUnsubscribe
	}

	e.lock.Lock()
	e.listeners[event] = append(e.listeners[event], &registration[V]{listener: listener})
	n := len(e.listeners[event])
	e.lock.Unlock()

	e.logger.Debugf("listener #%d registered on %v (%d total)", listener.ID(), event, n)

	return newUnsubscribe(func() {
		e.Off(event, listener)
	})
}

// OnFunc registers fn and returns both its handle and the unsubscribe function.
func (e *EventEmitterCallback[K, V]) OnFunc(event K, fn func(V)) (*Listener[V], Unsubscribe) {
	listener := NewListener(fn)
	return listener, e.On(event, listener)
}

// Once registers listener so that it runs for the first emitted event only.
// The returned function cancels the registration if it has not fired yet.
func (e *EventEmitterCallback[K, V]) Once(event K, listener *Listener[V]) Unsubscribe {
	if listener == nil {
		return noopUnsubscribe
	}

	var wrapper *Listener[V]
	wrapper = newOnceListener(listener, func() {
		e.Off(event, wrapper)
	})

	return e.On(event, wrapper)
}

// OnceFunc is Once for a plain function.
func (e *EventEmitterCallback[K, V]) OnceFunc(event K, fn func(V)) Unsubscribe {
	return e.Once(event, NewListener(fn))
}

// Off removes every registration of listener for the given event. Unknown
// events and listeners are ignored.
func (e *EventEmitterCallback[K, V]) Off(event K, listener *Listener[V]) {
	if listener == nil {
		return
	}

	e.lock.Lock()
	regs, found := e.listeners[event]
	if !found {
		e.lock.Unlock()
		return
	}

	kept := make([]*registration[V], 0, len(regs))
	for _, reg := range regs {
		if reg.listener == listener {
			reg.removed.Store(true)
			continue
		}
		kept = append(kept, reg)
	}
	removed := len(regs) - len(kept)

	if len(kept) == 0 {
		delete(e.listeners, event)
	} else {
		e.listeners[event] = kept
	}
	e.lock.Unlock()

	if removed > 0 {
		e.logger.Debugf("listener #%d removed from %v (%d registrations)", listener.ID(), event, removed)
	}
}

// Emit calls every listener registered for event synchronously, in order.
// Listeners added while Emit runs are not called in the same pass; listeners
// removed while Emit runs are skipped. A panicking listener aborts the pass and
// the panic reaches the caller.
func (e *EventEmitterCallback[K, V]) Emit(event K, data V) {
	for _, reg := range e.snapshot(event) {
		if reg.removed.Load() {
			continue
		}
		reg.listener.Call(data)
	}
}

// SafeEmit behaves like Emit but recovers listener panics and keeps going.
// Every failure is returned as a *ListenerPanicError combined into one error.
func (e *EventEmitterCallback[K, V]) SafeEmit(event K, data V) (err error) {
	for _, reg := range e.snapshot(event) {
		if reg.removed.Load() {
			continue
		}
		if perr := callRecover(reg.listener, data); perr != nil {
			e.logger.
				WithField("event", fmt.Sprint(event)).
				WithField("listener", reg.listener.ID()).
				Errorf("listener failed: %s", perr)
			err = multierr.Append(err, perr)
		}
	}
	return
}

// ListenerCount returns the number of registrations for event.
func (e *EventEmitterCallback[K, V]) ListenerCount(event K) int {
	e.lock.RLock()
	defer e.lock.RUnlock()

	return len(e.listeners[event])
}

// HasListeners reports whether at least one listener is registered for event.
func (e *EventEmitterCallback[K, V]) HasListeners(event K) bool {
	return e.ListenerCount(event) > 0
}

// Events returns the events that currently have listeners, in no particular order.
func (e *EventEmitterCallback[K, V]) Events() []K {
	e.lock.RLock()
	defer e.lock.RUnlock()

	events := make([]K, 0, len(e.listeners))
	for event := range e.listeners {
		events = append(events, event)
	}
	return events
}

// RemoveAllListeners drops the listeners of the given events, or of every
// event when called without arguments.
func (e *EventEmitterCallback[K, V]) RemoveAllListeners(events ...K) {
	e.lock.Lock()
	defer e.lock.Unlock()

	if len(events) == 0 {
		e.clear()
		return
	}

	for _, event := range events {
		for _, reg := range e.listeners[event] {
			reg.removed.Store(true)
		}
		delete(e.listeners, event)
	}
}

// Close removes all listeners to prevent memory leaks. The emitter can still
// be used afterwards.
func (e *EventEmitterCallback[K, V]) Close() {
	e.lock.Lock()
	defer e.lock.Unlock()

	e.clear()
	e.logger.Infoln("event emitter closed")
}

func (e *EventEmitterCallback[K, V]) clear() {
	for _, regs := range e.listeners {
		for _, reg := range regs {
			reg.removed.Store(true)
		}
	}
	e.listeners = make(map[K][]*registration[V])
}

func (e *EventEmitterCallback[K, V]) snapshot(event K) []*registration[V] {
	e.lock.RLock()
	defer e.lock.RUnlock()

	regs, found := e.listeners[event]
	if !found {
		return nil
	}

	// Off never mutates a slice in place, but On may append into spare capacity.
	return regs[:len(regs):len(regs)]
}
