package db

import (
	"context"
	"fmt"
	"time"

	"github.com/Lkoenig2121/ebay/internal/util"
)

type PlaceBidTxParams struct {
	ItemID string
	Bidder User
	Amount int64
	// AfterCommitFunc runs after the ledger append and price update while the
	// item is still locked. Broadcasts issued from here reach the fan-out
	// channel in acceptance order.
	AfterCommitFunc func(bid Bid, item Item)
}

type PlaceBidTxResult struct {
	Bid  Bid  `json:"bid"`
	Item Item `json:"item"`
}

// PlaceBidTx validates and applies one bid. The read-validate-write sequence
// runs under the item lock, so of two concurrent bids one commits and the
// other revalidates against the committed price. Either both the ledger
// append and the price update happen, or neither does.
func (store *MemoryStore) PlaceBidTx(ctx context.Context, arg PlaceBidTxParams) (PlaceBidTxResult, error) {
	var result PlaceBidTxResult

	lock, err := store.lockItem(arg.ItemID)
	if err != nil {
		return result, err
	}
	lock.Lock()
	defer lock.Unlock()

	store.mu.Lock()

	item, ok := store.items[arg.ItemID]
	if !ok {
		store.mu.Unlock()
		return result, ErrRecordNotFound
	}
	if !item.IsAuction() {
		store.mu.Unlock()
		return result, ErrNotAnAuction
	}

	now := time.Now()
	if item.HasEnded(now) {
		store.mu.Unlock()
		return result, ErrAuctionEnded
	}
	if arg.Amount <= item.CurrentPrice {
		currentPrice := item.CurrentPrice
		store.mu.Unlock()
		return result, fmt.Errorf("%w: current price is %s", ErrBidTooLow, util.FormatUSD(currentPrice))
	}

	bid := Bid{
		ID:         util.GenerateBidID(),
		ItemID:     item.ID,
		BidderID:   arg.Bidder.ID,
		BidderName: arg.Bidder.Username,
		Amount:     arg.Amount,
		CreatedAt:  now,
	}
	store.appendBid(bid)
	item.CurrentPrice = arg.Amount

	result.Bid = bid
	result.Item = copyItem(item)
	store.mu.Unlock()

	if arg.AfterCommitFunc != nil {
		arg.AfterCommitFunc(result.Bid, result.Item)
	}

	return result, nil
}
