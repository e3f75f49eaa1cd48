package trending

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCountsAndOrders(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.IncrementQuery(ctx, "breakfast", "Breakfast?"))
	}
	require.NoError(t, store.IncrementQuery(ctx, "parking", "parking"))
	require.NoError(t, store.IncrementQuery(ctx, "check in time", "Check in time"))

	items, err := store.TopQueries(ctx, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "Breakfast?", items[0].Query)
	require.Equal(t, int64(3), items[0].Count)
	// Ties resolve alphabetically.
	require.Equal(t, "Check in time", items[1].Query)
}

func TestMemoryStoreKeepsFirstDisplayForm(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.IncrementQuery(ctx, "breakfast", "Breakfast?"))
	require.NoError(t, store.IncrementQuery(ctx, "breakfast", "BREAKFAST!!"))

	items, err := store.TopQueries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Breakfast?", items[0].Query)
	require.Equal(t, int64(2), items[0].Count)
}

func TestMemoryStoreIgnoresEmptyCanonical(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.IncrementQuery(context.Background(), "", "   "))

	items, err := store.TopQueries(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestMemoryStoreConcurrentIncrements(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.IncrementQuery(ctx, "breakfast", "breakfast")
		}()
	}
	wg.Wait()

	items, err := store.TopQueries(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, int64(50), items[0].Count)
}
