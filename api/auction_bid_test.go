package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	db "github.com/Lkoenig2121/ebay/internal/db/memory"
	"github.com/Lkoenig2121/ebay/internal/event"
	"github.com/stretchr/testify/require"
)

func placeBidRequestBody(t *testing.T, amount int64) *bytes.Buffer {
	t.Helper()

	data, err := json.Marshal(map[string]int64{"amount": amount})
	require.NoError(t, err)
	return bytes.NewBuffer(data)
}

func TestPlaceBidAPI(t *testing.T) {
	store := db.NewStore()
	server := newTestServer(t, store)
	bidder := createTestUser(t, store, "buyer1", "password123")
	item := createTestAuction(t, store, 50, 24*time.Hour)

	placeBid := func(itemID string, amount int64) *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/items/%s/bid", itemID), placeBidRequestBody(t, amount))
		addAuthorization(t, request, server.tokenMaker, bidder)
		server.router.ServeHTTP(recorder, request)
		return recorder
	}

	t.Run("OK", func(t *testing.T) {
		recorder := placeBid(item.ID, 60)
		require.Equal(t, http.StatusOK, recorder.Code)

		var result db.PlaceBidTxResult
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
		require.Equal(t, int64(60), result.Bid.Amount)
		require.Equal(t, bidder.ID, result.Bid.BidderID)
		require.Equal(t, int64(60), result.Item.CurrentPrice)
	})

	t.Run("BidTooLow", func(t *testing.T) {
		recorder := placeBid(item.ID, 55)
		require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		// The rejection names the price to beat.
		require.Contains(t, recorder.Body.String(), "$60")
	})

	t.Run("ItemNotFound", func(t *testing.T) {
		recorder := placeBid("missing", 100)
		require.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("NotAnAuction", func(t *testing.T) {
		fixed := createTestBuyItNow(t, store, 99, 5)
		recorder := placeBid(fixed.ID, 150)
		require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})

	t.Run("AuctionEnded", func(t *testing.T) {
		ended := createTestAuction(t, store, 50, -time.Hour)
		recorder := placeBid(ended.ID, 100)
		require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		recorder := placeBid(item.ID, -5)
		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("NoAuthorization", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/items/%s/bid", item.ID), placeBidRequestBody(t, 100))
		server.router.ServeHTTP(recorder, request)
		require.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestPlaceBidBroadcastsEvent(t *testing.T) {
	store := db.NewStore()
	server := newTestServer(t, store)
	bidder := createTestUser(t, store, "buyer1", "password123")
	item := createTestAuction(t, store, 50, 24*time.Hour)

	clientChan := make(chan event.Event, 16)
	server.eventSender.Register(event.ItemTopic(item.ID), clientChan)
	defer server.eventSender.Unregister(event.ItemTopic(item.ID), clientChan)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/items/%s/bid", item.ID), placeBidRequestBody(t, 75))
	addAuthorization(t, request, server.tokenMaker, bidder)
	server.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	select {
	case ev := <-clientChan:
		require.Equal(t, event.EventTypeNewBid, ev.Type)

		payload, ok := ev.Data.(event.NewBidEvent)
		require.True(t, ok)
		require.Equal(t, item.ID, payload.ItemID)
		require.Equal(t, int64(75), payload.Bid.Amount)
		require.Equal(t, int64(75), payload.Item.CurrentPrice)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for bid event")
	}
}

func TestListItemBidsAPI(t *testing.T) {
	store := db.NewStore()
	server := newTestServer(t, store)
	bidder := createTestUser(t, store, "buyer1", "password123")
	item := createTestAuction(t, store, 0, 24*time.Hour)

	for _, amount := range []int64{10, 30} {
		_, err := store.PlaceBidTx(context.Background(), db.PlaceBidTxParams{ItemID: item.ID, Bidder: bidder, Amount: amount})
		require.NoError(t, err)
	}

	// A rejected bid never shows up in the history.
	_, err := store.PlaceBidTx(context.Background(), db.PlaceBidTxParams{ItemID: item.ID, Bidder: bidder, Amount: 20})
	require.ErrorIs(t, err, db.ErrBidTooLow)

	t.Run("OK", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/items/%s/bids", item.ID), nil)
		server.router.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusOK, recorder.Code)

		var bids []db.Bid
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &bids))
		require.Len(t, bids, 2)
		require.Equal(t, int64(30), bids[0].Amount)
		require.Equal(t, int64(10), bids[1].Amount)
	})

	t.Run("ItemNotFound", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/api/items/missing/bids", nil)
		server.router.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestStreamItemEventsUnknownItem(t *testing.T) {
	store := db.NewStore()
	server := newTestServer(t, store)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/items/missing/stream", nil)
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusNotFound, recorder.Code)
}
