package libemit

import "context"

type busCtx struct{}

// NewContext returns a copy of ctx carrying bus, so that code further down a
// call chain can subscribe without the bus being threaded through every
// signature.
func NewContext(ctx context.Context, bus *Bus) context.Context {
	return context.WithValue(ctx, busCtx{}, bus)
}

// FromContext extracts the bus stored by NewContext.
func FromContext(ctx context.Context) (*Bus, bool) {
	bus, ok := ctx.Value(busCtx{}).(*Bus)
	return bus, ok && bus != nil
}

// MustFromContext is FromContext that panics with ErrNilBus when ctx holds no bus.
func MustFromContext(ctx context.Context) *Bus {
	bus, ok := FromContext(ctx)
	if !ok {
		panic(ErrNilBus)
	}
	return bus
}
