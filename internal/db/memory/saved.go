package db

import (
	"context"
)

func (store *MemoryStore) SaveItem(ctx context.Context, userID string, itemID string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.items[itemID]; !ok {
		return ErrRecordNotFound
	}

	if !contains(store.saved[userID], itemID) {
		store.saved[userID] = append(store.saved[userID], itemID)
	}
	return nil
}

func (store *MemoryStore) UnsaveItem(ctx context.Context, userID string, itemID string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.saved[userID] = remove(store.saved[userID], itemID)
	return nil
}

func (store *MemoryStore) IsItemSaved(ctx context.Context, userID string, itemID string) (bool, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return contains(store.saved[userID], itemID), nil
}

func (store *MemoryStore) ListSavedItems(ctx context.Context, userID string) ([]Item, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return store.resolveItems(store.saved[userID]), nil
}
