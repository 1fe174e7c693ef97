package libemit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		bus := NewBus()
		ctx := NewContext(context.Background(), bus)

		got, ok := FromContext(ctx)
		require.True(t, ok)
		assert.Same(t, bus, got)
		assert.Same(t, bus, MustFromContext(ctx))
	})

	t.Run("missing bus", func(t *testing.T) {
		_, ok := FromContext(context.Background())
		assert.False(t, ok)
		assert.PanicsWithValue(t, ErrNilBus, func() { MustFromContext(context.Background()) })
	})

	t.Run("nil bus", func(t *testing.T) {
		ctx := NewContext(context.Background(), nil)
		_, ok := FromContext(ctx)
		assert.False(t, ok)
	})

	t.Run("shared instance", func(t *testing.T) {
		ctx := NewContext(context.Background(), NewBus())
		var got string

		subscribe := func(ctx context.Context) Unsubscribe {
			_, unsubscribe := OnFunc(MustFromContext(ctx), keyMessage, func(s string) { got = s })
			return unsubscribe
		}
		publish := func(ctx context.Context, s string) {
			Emit(MustFromContext(ctx), keyMessage, s)
		}

		unsubscribe := subscribe(ctx)
		publish(ctx, "hello")
		unsubscribe()
		publish(ctx, "ignored")

		assert.Equal(t, "hello", got)
	})
}
