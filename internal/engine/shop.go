package engine

import (
	"context"
	"database/sql"

	"petrack/internal/events"
	"petrack/internal/inventory"
	"petrack/internal/storage"
)

type PurchaseResult struct {
	Item      storage.Item
	Coins     int
	Inventory []storage.Item
}

// Purchase spends coins on a catalog item and merges it into the inventory.
// Unknown items, unpriced items and purchases the balance cannot cover are
// rejected as no-ops. The balance can never go negative.
func (s *Service) Purchase(ctx context.Context, itemID int64) (*PurchaseResult, error) {
	item := CatalogItem(itemID)
	if item == nil {
		return nil, ErrUnknownItem
	}
	if item.Price <= 0 {
		return nil, ErrItemNotPriced
	}

	var res *PurchaseResult
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		txStore := s.store.Tx(tx)
		state := storage.NewStateRepo(txStore)
		inv := inventory.NewService(txStore, nil)

		coins, err := state.Coins(ctx)
		if err != nil {
			return err
		}
		if coins < item.Price {
			return ErrInsufficientCoins
		}

		coins -= item.Price
		if err := state.SetCoins(ctx, coins); err != nil {
			return err
		}
		items, err := inv.Add(ctx, *item)
		if err != nil {
			return err
		}

		res = &PurchaseResult{Item: *item, Coins: coins, Inventory: items}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(events.Event{Type: events.StateChanged, Key: storage.KeyCoins})
	s.publish(events.Event{Type: events.InventoryUpdated, Inventory: res.Inventory})
	return res, nil
}

type UseResult struct {
	Item         storage.Item
	HealthBefore int
	HealthAfter  int
	Remaining    int
	Inventory    []storage.Item
}

// UseItem consumes one unit of an owned item and applies its category's
// health delta, clamped to [0,100]. Using an item with zero quantity is
// rejected as a no-op.
func (s *Service) UseItem(ctx context.Context, itemID int64) (*UseResult, error) {
	var res *UseResult
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		txStore := s.store.Tx(tx)
		state := storage.NewStateRepo(txStore)
		inv := inventory.NewService(txStore, nil)

		items, err := inv.Get(ctx)
		if err != nil {
			return err
		}
		var owned *storage.Item
		for i := range items {
			if items[i].ID == itemID {
				owned = &items[i]
				break
			}
		}
		if owned == nil || owned.Quantity <= 0 {
			return ErrItemNotOwned
		}
		used := *owned

		remaining, err := inv.Remove(ctx, itemID, 1)
		if err != nil {
			return err
		}

		before, err := state.Health(ctx)
		if err != nil {
			return err
		}
		before = ClampHealth(before)
		after := ClampHealth(before + ItemCategory(used.Category).HealthDelta())
		if err := state.SetHealth(ctx, after); err != nil {
			return err
		}

		left := 0
		for _, it := range remaining {
			if it.ID == itemID {
				left = it.Quantity
			}
		}
		res = &UseResult{
			Item:         used,
			HealthBefore: before,
			HealthAfter:  after,
			Remaining:    left,
			Inventory:    remaining,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(events.Event{Type: events.InventoryUpdated, Inventory: res.Inventory})
	s.publish(events.Event{Type: events.StateChanged, Key: storage.KeyPetHealth})
	return res, nil
}
