package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	db "github.com/Lkoenig2121/ebay/internal/db/memory"
	"github.com/stretchr/testify/require"
)

func TestCartAPI(t *testing.T) {
	store := db.NewStore()
	server := newTestServer(t, store)
	buyer := createTestUser(t, store, "buyer1", "password123")
	item := createTestBuyItNow(t, store, 75, 3)

	do := func(method, path string) *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(method, path, nil)
		addAuthorization(t, request, server.tokenMaker, buyer)
		server.router.ServeHTTP(recorder, request)
		return recorder
	}

	recorder := do(http.MethodPost, "/api/cart/add/"+item.ID)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = do(http.MethodPost, "/api/cart/add/missing")
	require.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = do(http.MethodGet, "/api/cart")
	require.Equal(t, http.StatusOK, recorder.Code)

	var items []db.Item
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &items))
	require.Len(t, items, 1)
	require.Equal(t, item.ID, items[0].ID)

	recorder = do(http.MethodGet, "/api/cart/count")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"count": 1}`, recorder.Body.String())

	recorder = do(http.MethodDelete, "/api/cart/remove/"+item.ID)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = do(http.MethodGet, "/api/cart/count")
	require.JSONEq(t, `{"count": 0}`, recorder.Body.String())

	recorder = do(http.MethodPost, "/api/cart/add/"+item.ID)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = do(http.MethodDelete, "/api/cart/clear")
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = do(http.MethodGet, "/api/cart/count")
	require.JSONEq(t, `{"count": 0}`, recorder.Body.String())
}

func TestSavedItemsAPI(t *testing.T) {
	store := db.NewStore()
	server := newTestServer(t, store)
	buyer := createTestUser(t, store, "buyer1", "password123")
	item := createTestBuyItNow(t, store, 75, 3)

	do := func(path string, itemID string) *httptest.ResponseRecorder {
		data, err := json.Marshal(map[string]string{"item_id": itemID})
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(data))
		addAuthorization(t, request, server.tokenMaker, buyer)
		server.router.ServeHTTP(recorder, request)
		return recorder
	}

	recorder := do("/api/saved/check", item.ID)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"is_saved": false}`, recorder.Body.String())

	recorder = do("/api/saved/add", item.ID)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = do("/api/saved/add", "missing")
	require.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = do("/api/saved/check", item.ID)
	require.JSONEq(t, `{"is_saved": true}`, recorder.Body.String())

	listRecorder := httptest.NewRecorder()
	listRequest := httptest.NewRequest(http.MethodGet, "/api/saved", nil)
	addAuthorization(t, listRequest, server.tokenMaker, buyer)
	server.router.ServeHTTP(listRecorder, listRequest)

	require.Equal(t, http.StatusOK, listRecorder.Code)

	var items []db.Item
	require.NoError(t, json.Unmarshal(listRecorder.Body.Bytes(), &items))
	require.Len(t, items, 1)

	recorder = do("/api/saved/remove", item.ID)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = do("/api/saved/check", item.ID)
	require.JSONEq(t, `{"is_saved": false}`, recorder.Body.String())
}
