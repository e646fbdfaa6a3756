package db

import (
	"context"
	"sort"
)

// ListBidsByItem returns the bid history of one item ranked by amount
// descending, so the leading entry is always the current high bid. Equal
// amounts keep ledger order, oldest first; the transaction engine rejects
// equal re-bids, so ties only appear in data written outside it.
func (store *MemoryStore) ListBidsByItem(ctx context.Context, itemID string) ([]Bid, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	bids := make([]Bid, 0)
	for _, bid := range store.bids {
		if bid.ItemID == itemID {
			bids = append(bids, bid)
		}
	}

	sort.SliceStable(bids, func(i, j int) bool {
		return bids[i].Amount > bids[j].Amount
	})
	return bids, nil
}

// appendBid writes one record to the ledger. Callers must hold store.mu.
func (store *MemoryStore) appendBid(bid Bid) {
	store.bids = append(store.bids, bid)
}
