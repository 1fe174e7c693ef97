package libemit

import (
	"sync"
)

// Key names an event and binds it to its payload type. Declare keys once,
// usually as package level variables, and the compiler will reject payloads
// of the wrong type:
//
//	var UserRegistered = libemit.NewKey[User]("userRegistered")
//
//	libemit.OnFunc(bus, UserRegistered, func(u User) { ... })
//	libemit.Emit(bus, UserRegistered, User{Name: "John"})
type Key[T any] struct {
	name string
}

// NewKey declares an event named name carrying payloads of type T. Two keys
// with the same name but different T address the same listeners, so keep
// names unique.
func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

func (k Key[T]) Name() string {
	return k.name
}

func (k Key[T]) String() string {
	return k.name
}

type adapterKey struct {
	event    string
	listener any
}

// Bus is an emitter for events of heterogeneous payload types. Operations are
// package level functions because methods cannot have type parameters.
type Bus struct {
	emitter *EventEmitterCallback[string, any]

	// adapters holds the untyped listener standing in for each typed one so
	// that identity survives the trip through the untyped emitter.
	adapters   map[adapterKey]*Listener[any]
	adaptersMu sync.Mutex
}

// NewBus creates an empty Bus.
func NewBus(opts ...Option) *Bus {
	return &Bus{
		emitter:  NewEventEmitter[string, any](opts...),
		adapters: make(map[adapterKey]*Listener[any]),
	}
}

// On registers listener for key. See EventEmitterCallback.On.
func On[T any](b *Bus, key Key[T], listener *Listener[T]) Unsubscribe {
	if listener == nil {
		return noopUnsubscribe
	}

	b.adaptersMu.Lock()
	ak := adapterKey{event: key.name, listener: listener}
	adapter, found := b.adapters[ak]
	if !found {
		adapter = newListenerWithID(listener.ID(), func(data any) {
			typed, ok := data.(T)
			if !ok && data != nil {
				b.emitter.logger.
					WithField("event", key.name).
					WithField("listener", listener.ID()).
					Warnf("payload of type %T does not match listener type %T, delivering zero value", data, typed)
			}
			listener.Call(typed)
		})
		b.adapters[ak] = adapter
	}
	b.emitter.On(key.name, adapter)
	b.adaptersMu.Unlock()

	return newUnsubscribe(func() {
		Off(b, key, listener)
	})
}

// OnFunc registers fn for key and returns its handle and unsubscribe function.
func OnFunc[T any](b *Bus, key Key[T], fn func(T)) (*Listener[T], Unsubscribe) {
	listener := NewListener(fn)
	return listener, On(b, key, listener)
}

// Once registers listener for the first emission of key only.
func Once[T any](b *Bus, key Key[T], listener *Listener[T]) Unsubscribe {
	if listener == nil {
		return noopUnsubscribe
	}

	var wrapper *Listener[T]
	wrapper = newOnceListener(listener, func() {
		Off(b, key, wrapper)
	})

	return On(b, key, wrapper)
}

// OnceFunc is Once for a plain function.
func OnceFunc[T any](b *Bus, key Key[T], fn func(T)) Unsubscribe {
	return Once(b, key, NewListener(fn))
}

// Off removes every registration of listener for key.
func Off[T any](b *Bus, key Key[T], listener *Listener[T]) {
	if listener == nil {
		return
	}

	b.adaptersMu.Lock()
	defer b.adaptersMu.Unlock()

	ak := adapterKey{event: key.name, listener: listener}
	adapter, found := b.adapters[ak]
	if !found {
		return
	}
	delete(b.adapters, ak)
	b.emitter.Off(key.name, adapter)
}

// Emit delivers data to the listeners of key. See EventEmitterCallback.Emit.
func Emit[T any](b *Bus, key Key[T], data T) {
	b.emitter.Emit(key.name, data)
}

// SafeEmit delivers data to every listener of key, recovering panics. See
// EventEmitterCallback.SafeEmit.
func SafeEmit[T any](b *Bus, key Key[T], data T) error {
	return b.emitter.SafeEmit(key.name, data)
}

// ListenerCount returns the number of registrations for the named event.
func (b *Bus) ListenerCount(name string) int {
	return b.emitter.ListenerCount(name)
}

// Events returns the names of events that currently have listeners.
func (b *Bus) Events() []string {
	return b.emitter.Events()
}

// Close removes every listener from the bus.
func (b *Bus) Close() {
	b.adaptersMu.Lock()
	defer b.adaptersMu.Unlock()

	b.adapters = make(map[adapterKey]*Listener[any])
	b.emitter.Close()
}
