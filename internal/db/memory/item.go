package db

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Lkoenig2121/ebay/internal/util"
)

type CreateItemParams struct {
	Title         string
	Description   string
	Image         string
	Category      string
	StartingPrice int64
	Type          ItemType
	Quantity      int32         // buy-it-now only
	Condition     string        // buy-it-now only
	Duration      time.Duration // auction only
	SellerID      string
	SellerName    string
}

// CreateItem inserts a new listing. IDs come from a random generator, not the
// creation timestamp, so concurrent creations cannot collide.
func (store *MemoryStore) CreateItem(ctx context.Context, arg CreateItemParams) (Item, error) {
	now := time.Now()

	item := Item{
		ID:            util.GenerateItemID(),
		Slug:          util.GenerateListingSlug(arg.Title),
		Title:         arg.Title,
		Description:   arg.Description,
		Image:         arg.Image,
		Category:      arg.Category,
		StartingPrice: arg.StartingPrice,
		CurrentPrice:  arg.StartingPrice,
		SellerID:      arg.SellerID,
		SellerName:    arg.SellerName,
		Type:          arg.Type,
		CreatedAt:     now,
	}

	switch arg.Type {
	case ItemTypeAuction:
		endTime := now.Add(arg.Duration)
		item.EndTime = &endTime
	case ItemTypeBuyItNow:
		item.Quantity = arg.Quantity
		item.Condition = arg.Condition
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	store.items[item.ID] = &item
	store.itemOrder = append(store.itemOrder, item.ID)
	store.slugs[item.Slug] = item.ID
	store.itemLocks[item.ID] = &sync.Mutex{}

	return copyItem(&item), nil
}

func (store *MemoryStore) GetItemByID(ctx context.Context, id string) (Item, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	item, ok := store.items[id]
	if !ok {
		return Item{}, ErrRecordNotFound
	}
	return copyItem(item), nil
}

func (store *MemoryStore) GetItemBySlug(ctx context.Context, slug string) (Item, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	id, ok := store.slugs[slug]
	if !ok {
		return Item{}, ErrRecordNotFound
	}
	return copyItem(store.items[id]), nil
}

// ListItems returns all listings in insertion order.
func (store *MemoryStore) ListItems(ctx context.Context) ([]Item, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	items := make([]Item, 0, len(store.itemOrder))
	for _, id := range store.itemOrder {
		items = append(items, copyItem(store.items[id]))
	}
	return items, nil
}

func (store *MemoryStore) ListItemsByCategory(ctx context.Context, category string) ([]Item, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	items := make([]Item, 0)
	for _, id := range store.itemOrder {
		item := store.items[id]
		if strings.EqualFold(item.Category, category) {
			items = append(items, copyItem(item))
		}
	}
	return items, nil
}

// CloseExpiredAuctions marks every active auction whose deadline has passed
// as closed and returns them, each exactly once across calls.
func (store *MemoryStore) CloseExpiredAuctions(ctx context.Context, now time.Time) ([]Item, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	var ended []Item
	for _, id := range store.itemOrder {
		item := store.items[id]
		if !item.IsAuction() || store.closed[id] || !item.HasEnded(now) {
			continue
		}

		store.closed[id] = true
		ended = append(ended, copyItem(item))
	}
	return ended, nil
}

// copyItem returns a snapshot that callers may keep or mutate freely without
// touching the stored record.
func copyItem(item *Item) Item {
	snapshot := *item
	if item.EndTime != nil {
		endTime := *item.EndTime
		snapshot.EndTime = &endTime
	}
	return snapshot
}
