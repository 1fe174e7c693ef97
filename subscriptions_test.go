package libemit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptions_Close(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	m := newMockListener[string]()
	var subs Subscriptions

	subs.Add(
		On(bus, keyMessage, m.Listener()),
		OnceFunc(bus, keyMessageDone, func(bool) {}),
		nil,
	)
	assert.Equal(t, 3, subs.Len())

	Emit(bus, keyMessage, "mounted")
	subs.Close()
	Emit(bus, keyMessage, "unmounted")

	m.AssertNumberOfCalls(t, "Call", 1)
	m.AssertCalled(t, "Call", "mounted")
	assert.Zero(t, bus.ListenerCount("set:message"))
	assert.Zero(t, bus.ListenerCount("set:message:done"))
	assert.Zero(t, subs.Len())

	assert.NotPanics(t, subs.Close)
}

func TestSubscriptions_ReverseOrder(t *testing.T) {
	t.Parallel()

	var order []int
	var subs Subscriptions

	subs.Add(func() { order = append(order, 1) })
	subs.Add(func() { order = append(order, 2) }, func() { order = append(order, 3) })
	subs.Close()

	assert.Equal(t, []int{3, 2, 1}, order)
}

func TestSubscriptions_AddAfterClose(t *testing.T) {
	t.Parallel()

	emitter := NewEventEmitter[string, int]()
	m := newMockListener[int]()
	var subs Subscriptions

	subs.Close()
	subs.Add(emitter.On("event", m.Listener()))
	emitter.Emit("event", 1)

	m.AssertNumberOfCalls(t, "Call", 0)
	assert.Zero(t, subs.Len())
}
