package db

import (
	"time"
)

type ItemType string

const (
	ItemTypeAuction  ItemType = "auction"
	ItemTypeBuyItNow ItemType = "buy-it-now"
)

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"created_at"`
}

type Item struct {
	ID            string     `json:"id"`
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Image         string     `json:"image"`
	Category      string     `json:"category"`
	StartingPrice int64      `json:"starting_price"`
	CurrentPrice  int64      `json:"current_price"`
	EndTime       *time.Time `json:"end_time"` // nil for buy-it-now listings
	SellerID      string     `json:"seller_id"`
	SellerName    string     `json:"seller_name"`
	Type          ItemType   `json:"type"`
	Quantity      int32      `json:"quantity,omitempty"`
	Condition     string     `json:"condition,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (item Item) IsAuction() bool {
	return item.Type == ItemTypeAuction
}

// HasEnded reports whether the auction deadline has passed. A listing without
// a deadline never ends.
func (item Item) HasEnded(now time.Time) bool {
	return item.EndTime != nil && !now.Before(*item.EndTime)
}

// Bid is an accepted offer against an auction item. Bids are immutable and
// the ledger is append-only for the lifetime of the process.
type Bid struct {
	ID         string    `json:"id"`
	ItemID     string    `json:"item_id"`
	BidderID   string    `json:"bidder_id"`
	BidderName string    `json:"bidder_name"`
	Amount     int64     `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

type Order struct {
	ID        string    `json:"id"`
	BuyerID   string    `json:"buyer_id"`
	ItemID    string    `json:"item_id"`
	ItemTitle string    `json:"item_title"`
	Price     int64     `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}
