package libemit

import (
	"github.com/stretchr/testify/mock"
)

// mockListener records every payload it receives through testify's mock.
type mockListener[V any] struct {
	mock.Mock

	tapCall func(V)
}

func newMockListener[V any]() *mockListener[V] {
	m := &mockListener[V]{}
	m.On("Call", mock.Anything).Return()
	return m
}

func (m *mockListener[V]) Call(data V) {
	if m.tapCall != nil {
		m.tapCall(data)
	}
	m.Called(data)
}

// Listener returns a fresh handle that forwards to the mock.
func (m *mockListener[V]) Listener() *Listener[V] {
	return NewListener(m.Call)
}
