package db

import (
	"context"
	"time"

	"github.com/Lkoenig2121/ebay/internal/util"
)

type BuyNowTxParams struct {
	ItemID string
	Buyer  User
}

type BuyNowTxResult struct {
	Item        Item `json:"item"`
	AddedToCart bool `json:"added_to_cart"`
}

// BuyNowTx reserves one unit of a buy-it-now listing for the buyer. The
// quantity check and decrement run under the item lock, so two buyers racing
// for the last unit cannot both succeed. The reserved item lands in the
// buyer's cart; the order record is written at checkout.
func (store *MemoryStore) BuyNowTx(ctx context.Context, arg BuyNowTxParams) (BuyNowTxResult, error) {
	var result BuyNowTxResult

	lock, err := store.lockItem(arg.ItemID)
	if err != nil {
		return result, err
	}
	lock.Lock()
	defer lock.Unlock()

	store.mu.Lock()
	defer store.mu.Unlock()

	item, ok := store.items[arg.ItemID]
	if !ok {
		return result, ErrRecordNotFound
	}
	if item.Type != ItemTypeBuyItNow {
		return result, ErrNotBuyItNow
	}
	if item.Quantity <= 0 {
		return result, ErrOutOfStock
	}

	item.Quantity--

	if !contains(store.carts[arg.Buyer.ID], item.ID) {
		store.carts[arg.Buyer.ID] = append(store.carts[arg.Buyer.ID], item.ID)
	}

	result.Item = copyItem(item)
	result.AddedToCart = true
	return result, nil
}

type CheckoutCartTxParams struct {
	Buyer User
}

// CheckoutCartTx simulates payment for everything in the buyer's cart: one
// order per cart entry at the current price, then the cart is emptied.
// Listings that disappeared since being added are skipped.
func (store *MemoryStore) CheckoutCartTx(ctx context.Context, arg CheckoutCartTxParams) ([]Order, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	now := time.Now()
	orders := make([]Order, 0, len(store.carts[arg.Buyer.ID]))
	for _, itemID := range store.carts[arg.Buyer.ID] {
		item, ok := store.items[itemID]
		if !ok {
			continue
		}

		order := Order{
			ID:        util.GenerateOrderID(),
			BuyerID:   arg.Buyer.ID,
			ItemID:    item.ID,
			ItemTitle: item.Title,
			Price:     item.CurrentPrice,
			CreatedAt: now,
		}
		store.orders[arg.Buyer.ID] = append(store.orders[arg.Buyer.ID], order)
		orders = append(orders, order)
	}

	store.carts[arg.Buyer.ID] = nil
	return orders, nil
}
