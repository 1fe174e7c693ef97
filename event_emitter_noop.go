package libemit

// Emitter is the behaviour shared by EventEmitterCallback and NoopEmitter.
type Emitter[K comparable, V any] interface {
	// On registers a new listener for the given event.
	On(event K, listener *Listener[V]) Unsubscribe

	// Once registers a listener that is removed right before its first call.
	Once(event K, listener *Listener[V]) Unsubscribe

	// Off removes the specified listener from the given event.
	Off(event K, listener *Listener[V])

	// Emit triggers all listeners registered for the given event synchronously.
	Emit(event K, data V)

	// RemoveAllListeners removes listeners for the given events, or all of them.
	RemoveAllListeners(events ...K)

	// Close removes all listeners to prevent memory leaks.
	Close()
}

var (
	_ Emitter[string, any] = (*EventEmitterCallback[string, any])(nil)
	_ Emitter[string, any] = NoopEmitter[string, any]{}
)

// NoopEmitter accepts registrations and emits without ever calling anything.
// Handy to switch events off without touching call sites.
type NoopEmitter[K comparable, V any] struct{}

func (NoopEmitter[K, V]) On(K, *Listener[V]) Unsubscribe   { return noopUnsubscribe }
func (NoopEmitter[K, V]) Once(K, *Listener[V]) Unsubscribe { return noopUnsubscribe }
func (NoopEmitter[K, V]) Off(K, *Listener[V])              {}
func (NoopEmitter[K, V]) Emit(K, V)                        {}
func (NoopEmitter[K, V]) RemoveAllListeners(...K)          {}
func (NoopEmitter[K, V]) Close()                           {}
