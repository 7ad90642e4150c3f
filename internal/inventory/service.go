// Package inventory owns the mapping from item identity to quantity owned.
package inventory

import (
	"context"
	"errors"

	"petrack/internal/events"
	"petrack/internal/storage"
)

// ErrInvalidItem is returned for items without an identity.
var ErrInvalidItem = errors.New("invalid item")

type Service struct {
	store *storage.Store
	bus   *events.Bus
}

func NewService(store *storage.Store, bus *events.Bus) *Service {
	return &Service{store: store, bus: bus}
}

// Get returns the current inventory. Absent or malformed persisted data is
// treated as an empty inventory.
func (s *Service) Get(ctx context.Context) ([]storage.Item, error) {
	var items []storage.Item
	if _, err := s.store.GetJSON(ctx, storage.KeyInventory, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []storage.Item{}
	}
	return items, nil
}

// Quantity returns how many units of the item are owned, 0 when absent.
func (s *Service) Quantity(ctx context.Context, itemID int64) (int, error) {
	items, err := s.Get(ctx)
	if err != nil {
		return 0, err
	}
	for _, it := range items {
		if it.ID == itemID {
			return it.Quantity, nil
		}
	}
	return 0, nil
}

// Add merges the item into the inventory, adding quantities for an already
// owned id, persists and broadcasts the change. A zero quantity on the item
// counts as one unit, matching the original's behavior.
func (s *Service) Add(ctx context.Context, item storage.Item) ([]storage.Item, error) {
	if item.ID == 0 {
		return nil, ErrInvalidItem
	}
	qty := item.Quantity
	if qty <= 0 {
		qty = 1
	}

	items, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		item.Quantity = qty
		items = append(items, item)
	}

	if err := s.persist(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Remove subtracts qty units from the item, floors at zero and prunes
// zero-quantity entries, then persists and broadcasts the change.
func (s *Service) Remove(ctx context.Context, itemID int64, qty int) ([]storage.Item, error) {
	if itemID == 0 {
		return nil, ErrInvalidItem
	}
	if qty <= 0 {
		qty = 1
	}

	items, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	kept := items[:0]
	for _, it := range items {
		if it.ID == itemID {
			it.Quantity -= qty
			if it.Quantity < 0 {
				it.Quantity = 0
			}
		}
		if it.Quantity > 0 {
			kept = append(kept, it)
		}
	}

	if err := s.persist(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (s *Service) persist(ctx context.Context, items []storage.Item) error {
	if err := s.store.SetJSON(ctx, storage.KeyInventory, items); err != nil {
		return err
	}
	if s.bus != nil {
		s.bus.Publish(events.Event{Type: events.InventoryUpdated, Inventory: items})
		s.bus.Publish(events.Event{Type: events.StateChanged, Key: storage.KeyInventory})
	}
	return nil
}
