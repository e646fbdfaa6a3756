package db

import (
	"context"
	"sync"
	"time"
)

// Store provides all functions to read and mutate marketplace state.
//
// CurrentPrice and Quantity are the only shared mutable fields in the system.
// They change exclusively through PlaceBidTx and BuyNowTx; the interface
// deliberately exposes no raw setters for them.
type Store interface {
	CreateUser(ctx context.Context, arg CreateUserParams) (User, error)
	GetUserByID(ctx context.Context, id string) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)

	CreateItem(ctx context.Context, arg CreateItemParams) (Item, error)
	GetItemByID(ctx context.Context, id string) (Item, error)
	GetItemBySlug(ctx context.Context, slug string) (Item, error)
	ListItems(ctx context.Context) ([]Item, error)
	ListItemsByCategory(ctx context.Context, category string) ([]Item, error)

	ListBidsByItem(ctx context.Context, itemID string) ([]Bid, error)

	PlaceBidTx(ctx context.Context, arg PlaceBidTxParams) (PlaceBidTxResult, error)
	BuyNowTx(ctx context.Context, arg BuyNowTxParams) (BuyNowTxResult, error)
	CheckoutCartTx(ctx context.Context, arg CheckoutCartTxParams) ([]Order, error)

	AddCartItem(ctx context.Context, userID string, itemID string) ([]string, error)
	RemoveCartItem(ctx context.Context, userID string, itemID string) ([]string, error)
	ListCartItems(ctx context.Context, userID string) ([]Item, error)
	CountCartItems(ctx context.Context, userID string) (int, error)
	ClearCart(ctx context.Context, userID string) error

	SaveItem(ctx context.Context, userID string, itemID string) error
	UnsaveItem(ctx context.Context, userID string, itemID string) error
	IsItemSaved(ctx context.Context, userID string, itemID string) (bool, error)
	ListSavedItems(ctx context.Context, userID string) ([]Item, error)

	ListOrdersByUser(ctx context.Context, userID string) ([]Order, error)

	CloseExpiredAuctions(ctx context.Context, now time.Time) ([]Item, error)
}

// MemoryStore keeps all marketplace state in process memory. Durability
// across restarts is out of scope.
type MemoryStore struct {
	mu sync.RWMutex

	users       map[string]User
	usersByName map[string]string // username -> user ID

	items     map[string]*Item
	itemOrder []string // item IDs in insertion order
	slugs     map[string]string
	itemLocks map[string]*sync.Mutex
	closed    map[string]bool // auctions already announced as ended

	// Append-only bid ledger. Append order is acceptance order.
	bids []Bid

	carts map[string][]string // user ID -> item IDs
	saved map[string][]string

	orders map[string][]Order
}

// NewStore creates a new empty in-memory Store.
func NewStore() Store {
	return newMemoryStore()
}

func newMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:       make(map[string]User),
		usersByName: make(map[string]string),
		items:       make(map[string]*Item),
		slugs:       make(map[string]string),
		itemLocks:   make(map[string]*sync.Mutex),
		closed:      make(map[string]bool),
		carts:       make(map[string][]string),
		saved:       make(map[string][]string),
		orders:      make(map[string][]Order),
	}
}

// lockItem returns the mutex serializing transactions against one item.
// Per-item granularity keeps concurrent bids on different items from
// contending with each other.
func (store *MemoryStore) lockItem(itemID string) (*sync.Mutex, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	lock, ok := store.itemLocks[itemID]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return lock, nil
}
