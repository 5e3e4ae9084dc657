package scheduler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"itinero/internal/scheduler"
)

func TestRegistry_SamePairSharesAStore(t *testing.T) {
	registry := scheduler.NewRegistry(&fakeGateway{}, fakeRanges{}, zap.NewNop())

	a := registry.Get("itin-1", "dest-1")
	b := registry.Get("itin-1", "dest-1")
	assert.Same(t, a, b)

	other := registry.Get("itin-1", "dest-2")
	assert.NotSame(t, a, other)
}

func TestRegistry_ReleaseDropsState(t *testing.T) {
	registry := scheduler.NewRegistry(&fakeGateway{}, fakeRanges{}, zap.NewNop())

	store := registry.Get("itin-1", "dest-1")
	_, err := store.Add(context.Background(), activity("p1"))
	require.NoError(t, err)

	registry.Release("itin-1", "dest-1")

	fresh := registry.Get("itin-1", "dest-1")
	assert.NotSame(t, store, fresh)
	assert.False(t, fresh.IsActivityAdded("p1"))
}
