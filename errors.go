package libemit

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrListenerPanic = errors.New("listener panicked")
	ErrNilBus        = errors.New("no bus in context")
)

// ListenerPanicError carries the value a listener panicked with during SafeEmit.
type ListenerPanicError struct {
	err        error
	cause      error
	listenerID uint64
	value      any
}

func (e ListenerPanicError) Error() string {
	return fmt.Sprintf("listener #%d: %s", e.listenerID, e.err)
}

// Unwrap exposes ErrListenerPanic and, when the listener panicked with an
// error, that error too, so errors.Is matches either.
func (e ListenerPanicError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.err}
	}
	return []error{e.err, e.cause}
}

// Value returns whatever was passed to panic.
func (e ListenerPanicError) Value() any { return e.value }

// ListenerID identifies the failing listener, see Listener.ID.
func (e ListenerPanicError) ListenerID() uint64 { return e.listenerID }

func WrapErrorListenerPanic(listenerID uint64, value any) *ListenerPanicError {
	var (
		err   error
		cause error
	)
	switch v := value.(type) {
	case error:
		err = errors.Wrap(ErrListenerPanic, v.Error())
		cause = v
	default:
		err = errors.Wrapf(ErrListenerPanic, "%v", v)
	}
	return &ListenerPanicError{
		err:        err,
		cause:      cause,
		listenerID: listenerID,
		value:      value,
	}
}

func callRecover[V any](listener *Listener[V], data V) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = WrapErrorListenerPanic(listener.ID(), r)
		}
	}()

	listener.Call(data)
	return nil
}
