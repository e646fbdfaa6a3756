package auctionview

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	db "github.com/Lkoenig2121/ebay/internal/db/memory"
	"github.com/Lkoenig2121/ebay/internal/event"
)

// View is the local snapshot of one item page. Bids are in arrival order,
// most recent first; that differs from the amount order of the initial fetch
// on purpose, matching what a viewer watched happen.
type View struct {
	Item  db.Item
	Bids  []db.Bid
	Ended bool
}

// Viewer follows one item: an initial fetch of the listing and its bid
// history, then the live event stream. Cancel the context passed to Watch to
// leave the channel.
type Viewer struct {
	mu   sync.RWMutex
	view View
	done chan struct{}
	err  error
}

// Watch fetches the item and its history, then subscribes to the item's
// event stream. The fetch happens before the subscription because the stream
// never replays earlier events.
func (c *Client) Watch(ctx context.Context, itemID string) (*Viewer, error) {
	item, err := c.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	bids, err := c.GetBids(ctx, itemID)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/items/"+itemID+"/stream", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build stream request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to open event stream: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("event stream returned status %d", resp.StatusCode)
	}

	viewer := &Viewer{
		view: View{Item: item, Bids: bids},
		done: make(chan struct{}),
	}
	go viewer.consume(resp.Body)

	return viewer, nil
}

// consume parses the SSE frames off the response body until the stream ends.
func (viewer *Viewer) consume(body io.ReadCloser) {
	defer close(viewer.done)
	defer body.Close()

	var eventType, data string

	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			eventType = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = strings.TrimPrefix(line, "data: ")
		case line == "":
			if eventType != "" && data != "" {
				viewer.apply(eventType, []byte(data))
			}
			eventType, data = "", ""
		}
	}

	viewer.mu.Lock()
	viewer.err = scanner.Err()
	viewer.mu.Unlock()
}

func (viewer *Viewer) apply(eventType string, data []byte) {
	switch eventType {
	case event.EventTypeNewBid:
		var payload event.NewBidEvent
		if err := json.Unmarshal(data, &payload); err != nil {
			return
		}

		viewer.mu.Lock()
		viewer.view.Item = payload.Item
		viewer.view.Bids = append([]db.Bid{payload.Bid}, viewer.view.Bids...)
		viewer.mu.Unlock()

	case event.EventTypeAuctionEnded:
		var payload event.AuctionEndedEvent
		if err := json.Unmarshal(data, &payload); err != nil {
			return
		}

		viewer.mu.Lock()
		viewer.view.Item = payload.Item
		viewer.view.Ended = true
		viewer.mu.Unlock()
	}
}

// Snapshot returns a copy of the current view.
func (viewer *Viewer) Snapshot() View {
	viewer.mu.RLock()
	defer viewer.mu.RUnlock()

	snapshot := viewer.view
	snapshot.Bids = append([]db.Bid(nil), viewer.view.Bids...)
	return snapshot
}

// Done is closed when the event stream ends, normally after the Watch
// context is cancelled.
func (viewer *Viewer) Done() <-chan struct{} {
	return viewer.done
}

// Err reports why the stream ended, nil for a clean close.
func (viewer *Viewer) Err() error {
	viewer.mu.RLock()
	defer viewer.mu.RUnlock()
	return viewer.err
}
