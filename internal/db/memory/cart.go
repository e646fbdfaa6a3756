package db

import (
	"context"
)

func (store *MemoryStore) AddCartItem(ctx context.Context, userID string, itemID string) ([]string, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.items[itemID]; !ok {
		return nil, ErrRecordNotFound
	}

	if !contains(store.carts[userID], itemID) {
		store.carts[userID] = append(store.carts[userID], itemID)
	}
	return append([]string(nil), store.carts[userID]...), nil
}

func (store *MemoryStore) RemoveCartItem(ctx context.Context, userID string, itemID string) ([]string, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.carts[userID] = remove(store.carts[userID], itemID)
	return append([]string(nil), store.carts[userID]...), nil
}

func (store *MemoryStore) ListCartItems(ctx context.Context, userID string) ([]Item, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return store.resolveItems(store.carts[userID]), nil
}

func (store *MemoryStore) CountCartItems(ctx context.Context, userID string) (int, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return len(store.carts[userID]), nil
}

func (store *MemoryStore) ClearCart(ctx context.Context, userID string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.carts[userID] = nil
	return nil
}

// resolveItems maps item IDs to snapshots, dropping IDs whose listing no
// longer exists. Callers must hold store.mu.
func (store *MemoryStore) resolveItems(itemIDs []string) []Item {
	items := make([]Item, 0, len(itemIDs))
	for _, id := range itemIDs {
		if item, ok := store.items[id]; ok {
			items = append(items, copyItem(item))
		}
	}
	return items
}

func contains(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	return kept
}
