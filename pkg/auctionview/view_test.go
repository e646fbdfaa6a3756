package auctionview

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Lkoenig2121/ebay/api"
	db "github.com/Lkoenig2121/ebay/internal/db/memory"
	"github.com/Lkoenig2121/ebay/internal/event"
	"github.com/Lkoenig2121/ebay/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func startTestAPI(t *testing.T) (*httptest.Server, db.Store) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	config := &util.Config{
		AllowedOrigins:       []string{"http://localhost:3000"},
		TokenSecretKey:       "12345678901234567890123456789012",
		AccessTokenDuration:  time.Minute,
		AuctionCloseInterval: time.Second,
	}

	store := db.NewStore()

	eventSender := event.NewSSEServer()
	go eventSender.Run()

	server, err := api.NewServer(store, config, eventSender)
	require.NoError(t, err)

	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)

	return ts, store
}

func seedViewer(t *testing.T, store db.Store) (db.User, db.Item) {
	t.Helper()

	hashedPassword, err := util.HashPassword("password123")
	require.NoError(t, err)

	user, err := store.CreateUser(context.Background(), db.CreateUserParams{
		Username:       "buyer1",
		HashedPassword: hashedPassword,
		Email:          "buyer1@example.com",
	})
	require.NoError(t, err)

	item, err := store.CreateItem(context.Background(), db.CreateItemParams{
		Title:         "Vintage Camera",
		Description:   "Beautiful vintage camera in excellent condition",
		Image:         "https://example.com/camera.jpg",
		Category:      "Electronics",
		StartingPrice: 50,
		Type:          db.ItemTypeAuction,
		Duration:      24 * time.Hour,
		SellerID:      "seller1",
		SellerName:    "CameraSeller",
	})
	require.NoError(t, err)

	return user, item
}

func TestClientLogin(t *testing.T) {
	ts, store := startTestAPI(t)
	seedViewer(t, store)

	client := New(ts.URL)
	defer client.Close()

	user, err := client.Login(context.Background(), "buyer1", "password123")
	require.NoError(t, err)
	require.Equal(t, "buyer1", user.Username)

	_, err = client.Login(context.Background(), "buyer1", "wrong-password")
	require.EqualError(t, err, "invalid credentials")
}

func TestViewerFollowsLiveBids(t *testing.T) {
	ts, store := startTestAPI(t)
	_, item := seedViewer(t, store)

	client := New(ts.URL)
	defer client.Close()

	_, err := client.Login(context.Background(), "buyer1", "password123")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	viewer, err := client.Watch(ctx, item.ID)
	require.NoError(t, err)

	snapshot := viewer.Snapshot()
	require.Equal(t, item.ID, snapshot.Item.ID)
	require.Empty(t, snapshot.Bids)
	require.False(t, snapshot.Ended)

	// A bid placed over the API shows up in the view without a refetch.
	result, err := client.PlaceBid(ctx, item.ID, 60)
	require.NoError(t, err)
	require.Equal(t, int64(60), result.Bid.Amount)

	require.Eventually(t, func() bool {
		snapshot := viewer.Snapshot()
		return snapshot.Item.CurrentPrice == 60 && len(snapshot.Bids) == 1
	}, 2*time.Second, 10*time.Millisecond)

	_, err = client.PlaceBid(ctx, item.ID, 75)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(viewer.Snapshot().Bids) == 2
	}, 2*time.Second, 10*time.Millisecond)

	// Arrival order, newest first.
	snapshot = viewer.Snapshot()
	require.Equal(t, int64(75), snapshot.Bids[0].Amount)
	require.Equal(t, int64(60), snapshot.Bids[1].Amount)
	require.Equal(t, int64(75), snapshot.Item.CurrentPrice)

	// A losing bid surfaces the server's message, view unchanged.
	_, err = client.PlaceBid(ctx, item.ID, 70)
	require.Error(t, err)
	require.Contains(t, err.Error(), "$75")
	require.Len(t, viewer.Snapshot().Bids, 2)

	// Leaving the channel closes the stream.
	cancel()
	select {
	case <-viewer.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not close after cancel")
	}
}

func TestWatchFetchesHistoryBeforeSubscribing(t *testing.T) {
	ts, store := startTestAPI(t)
	user, item := seedViewer(t, store)

	// A bid placed before Watch is only visible through the initial fetch,
	// never replayed on the stream.
	_, err := store.PlaceBidTx(context.Background(), db.PlaceBidTxParams{
		ItemID: item.ID,
		Bidder: user,
		Amount: 55,
	})
	require.NoError(t, err)

	client := New(ts.URL)
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	viewer, err := client.Watch(ctx, item.ID)
	require.NoError(t, err)

	snapshot := viewer.Snapshot()
	require.Len(t, snapshot.Bids, 1)
	require.Equal(t, int64(55), snapshot.Bids[0].Amount)
	require.Equal(t, int64(55), snapshot.Item.CurrentPrice)
}

func TestWatchUnknownItem(t *testing.T) {
	ts, _ := startTestAPI(t)

	client := New(ts.URL)
	defer client.Close()

	_, err := client.Watch(context.Background(), "missing")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}
