package event

import (
	"fmt"

	db "github.com/Lkoenig2121/ebay/internal/db/memory"
)

// Event is one message on a topic.
type Event struct {
	Topic string // e.g. "item:123"
	Type  string // new_bid, auction_ended
	Data  interface{}
}

const (
	EventTypeNewBid       = "new_bid"
	EventTypeAuctionEnded = "auction_ended"
)

// ItemTopic is the per-item channel key all viewers of one listing share.
func ItemTopic(itemID string) string {
	return fmt.Sprintf("item:%s", itemID)
}

// NewBidEvent carries one accepted bid plus the post-mutation item snapshot.
type NewBidEvent struct {
	ItemID string  `json:"item_id"`
	Bid    db.Bid  `json:"bid"`
	Item   db.Item `json:"item"`
}

// AuctionEndedEvent announces that an auction's deadline has passed.
type AuctionEndedEvent struct {
	ItemID     string  `json:"item_id"`
	FinalPrice int64   `json:"final_price"`
	Item       db.Item `json:"item"`
}

// EventSender is the server-side fan-out channel delivering events to
// subscribed clients. Delivery is ordered per topic and never replayed: a
// client registered after a broadcast does not receive it.
type EventSender interface {
	Register(topic string, client chan Event)
	Unregister(topic string, client chan Event)
	Broadcast(event Event)
	Run()
}
