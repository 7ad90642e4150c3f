package inventory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petrack/internal/events"
	"petrack/internal/storage"
)

func newTestService(t *testing.T) (*Service, *storage.Store, *events.Bus) {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := storage.NewStore(db)
	bus := events.NewBus(nil)
	return NewService(store, bus), store, bus
}

func item(id int64, qty int) storage.Item {
	return storage.Item{ID: id, Name: "Premium Bone Treat", Category: "food", Price: 50, Quantity: qty}
}

func TestAddMergesQuantitiesByID(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, item(1, 2))
	require.NoError(t, err)
	items, err := svc.Add(ctx, item(1, 3))
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddDefaultsToOneUnit(t *testing.T) {
	svc, _, _ := newTestService(t)

	items, err := svc.Add(context.Background(), item(2, 0))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestAddRejectsMissingID(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Add(context.Background(), storage.Item{Name: "ghost"})
	assert.ErrorIs(t, err, ErrInvalidItem)
}

func TestRemoveFloorsAtZeroAndPrunes(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, item(1, 2))
	require.NoError(t, err)

	// Removing more than owned floors at zero and prunes the entry.
	items, err := svc.Remove(ctx, 1, 5)
	require.NoError(t, err)
	assert.Empty(t, items)

	qty, err := svc.Quantity(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, qty)
}

func TestAddThenRemoveRoundTrip(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, item(1, 2))
	require.NoError(t, err)
	items, err := svc.Remove(ctx, 1, 2)
	require.NoError(t, err)

	for _, it := range items {
		assert.NotEqual(t, int64(1), it.ID, "quantity 0 must mean absent")
	}
}

func TestMalformedStoredDataTreatedAsEmpty(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.SetString(ctx, storage.KeyInventory, `{"not":"a list"`))
	items, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMutationsBroadcastInventoryUpdates(t *testing.T) {
	svc, _, bus := newTestService(t)
	ctx := context.Background()

	var snapshots [][]storage.Item
	bus.Subscribe(events.InventoryUpdated, func(e events.Event) error {
		snapshots = append(snapshots, e.Inventory)
		return nil
	})

	_, err := svc.Add(ctx, item(1, 1))
	require.NoError(t, err)
	_, err = svc.Remove(ctx, 1, 1)
	require.NoError(t, err)

	require.Len(t, snapshots, 2)
	assert.Len(t, snapshots[0], 1)
	assert.Empty(t, snapshots[1])
}
