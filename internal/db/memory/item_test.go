package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCreateItem(t *testing.T) {
	store := newMemoryStore()
	ctx := context.Background()

	auction := createTestAuction(t, store, 50, 24*time.Hour)
	require.NotEmpty(t, auction.ID)
	require.NotEmpty(t, auction.Slug)
	require.Equal(t, int64(50), auction.StartingPrice)
	require.Equal(t, int64(50), auction.CurrentPrice)
	require.NotNil(t, auction.EndTime)
	require.True(t, auction.IsAuction())
	require.False(t, auction.HasEnded(time.Now()))

	fixed := createTestBuyItNow(t, store, 99, 5)
	require.Nil(t, fixed.EndTime)
	require.False(t, fixed.IsAuction())
	require.Equal(t, int32(5), fixed.Quantity)
	require.Equal(t, "New", fixed.Condition)

	// Same title, distinct slugs.
	other := createTestBuyItNow(t, store, 99, 5)
	require.NotEqual(t, fixed.Slug, other.Slug)
	require.NotEqual(t, fixed.ID, other.ID)

	bySlug, err := store.GetItemBySlug(ctx, auction.Slug)
	require.NoError(t, err)
	require.Equal(t, auction.ID, bySlug.ID)

	_, err = store.GetItemBySlug(ctx, "no-such-slug")
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestListItems(t *testing.T) {
	store := newMemoryStore()
	ctx := context.Background()

	first := createTestAuction(t, store, 50, time.Hour)
	second := createTestBuyItNow(t, store, 99, 5)
	third := createTestAuction(t, store, 200, time.Hour)

	items, err := store.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)

	// Listings come back in insertion order.
	require.Equal(t, first.ID, items[0].ID)
	require.Equal(t, second.ID, items[1].ID)
	require.Equal(t, third.ID, items[2].ID)
}

func TestListItemsByCategory(t *testing.T) {
	store := newMemoryStore()
	ctx := context.Background()

	createTestAuction(t, store, 50, time.Hour) // Electronics

	furniture, err := store.CreateItem(ctx, CreateItemParams{
		Title:         "Antique Writing Desk",
		Category:      "Furniture",
		StartingPrice: 300,
		Type:          ItemTypeAuction,
		Duration:      time.Hour,
		SellerID:      "seller3",
		SellerName:    "AntiqueDealer",
	})
	require.NoError(t, err)

	items, err := store.ListItemsByCategory(ctx, "furniture")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, furniture.ID, items[0].ID)

	items, err = store.ListItemsByCategory(ctx, "Toys")
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestItemSnapshotIsolation(t *testing.T) {
	store := newMemoryStore()
	ctx := context.Background()
	item := createTestAuction(t, store, 50, time.Hour)

	// Mutating a returned snapshot must not leak into the store.
	snapshot, err := store.GetItemByID(ctx, item.ID)
	require.NoError(t, err)
	snapshot.CurrentPrice = 999
	*snapshot.EndTime = snapshot.EndTime.Add(-48 * time.Hour)

	stored, err := store.GetItemByID(ctx, item.ID)
	require.NoError(t, err)
	require.Equal(t, int64(50), stored.CurrentPrice)
	require.False(t, stored.HasEnded(time.Now()))
}

func TestCloseExpiredAuctions(t *testing.T) {
	store := newMemoryStore()
	ctx := context.Background()

	expired := createTestAuction(t, store, 50, time.Minute)
	active := createTestAuction(t, store, 80, 24*time.Hour)
	createTestBuyItNow(t, store, 99, 5)

	cutoff := time.Now().Add(time.Hour)

	ended, err := store.CloseExpiredAuctions(ctx, cutoff)
	require.NoError(t, err)
	require.Len(t, ended, 1)
	require.Equal(t, expired.ID, ended[0].ID)

	// Each auction is reported exactly once.
	ended, err = store.CloseExpiredAuctions(ctx, cutoff)
	require.NoError(t, err)
	require.Empty(t, ended)

	// The second auction surfaces once its own deadline passes.
	ended, err = store.CloseExpiredAuctions(ctx, time.Now().Add(48*time.Hour))
	require.NoError(t, err)
	require.Len(t, ended, 1)
	require.Equal(t, active.ID, ended[0].ID)
}
