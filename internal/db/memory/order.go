package db

import (
	"context"
)

// ListOrdersByUser returns the user's purchase history, oldest first.
func (store *MemoryStore) ListOrdersByUser(ctx context.Context, userID string) ([]Order, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return append([]Order(nil), store.orders[userID]...), nil
}
