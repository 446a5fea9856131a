package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	t.Run("GetAbsentReturnsNilNil", func(t *testing.T) {
		s, err := store.Get(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, s)
	})

	t.Run("PutGetRoundtrip", func(t *testing.T) {
		in := &Session{
			UserID:    "u1",
			ProductID: "prod_001",
			Step:      StepQuantityInput,
			Quantity:  2,
			StartTime: time.Now(),
		}
		require.NoError(t, store.Put(ctx, in))

		out, err := store.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("StoresCopiesNotReferences", func(t *testing.T) {
		in := &Session{UserID: "u2", Step: StepVariantSelection}
		require.NoError(t, store.Put(ctx, in))
		in.Step = StepConfirmation

		out, err := store.Get(ctx, "u2")
		require.NoError(t, err)
		assert.Equal(t, StepVariantSelection, out.Step)

		out.Step = StepConfirmation
		again, err := store.Get(ctx, "u2")
		require.NoError(t, err)
		assert.Equal(t, StepVariantSelection, again.Step)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, &Session{UserID: "u3"}))
		require.NoError(t, store.Delete(ctx, "u3"))

		s, err := store.Get(ctx, "u3")
		require.NoError(t, err)
		assert.Nil(t, s)
	})

	t.Run("DeleteAbsentIsNoop", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "ghost"))
	})
}

func TestNewOrderID(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 30, 5, 0, time.UTC)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := NewOrderID(now)
		assert.Regexp(t, `^ORD-20260831-143005-\d{4}$`, id)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 1, "suffix should vary")
}
