package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	db "github.com/Lkoenig2121/ebay/internal/db/memory"
	"github.com/Lkoenig2121/ebay/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SeedDemoData loads the demo accounts and catalog. Safe to call once per
// process; calling it again just adds duplicate listings.
func SeedDemoData(store db.Store) error {
	ctx := context.Background()

	hashedPassword, err := util.HashPassword("password123")
	if err != nil {
		return err
	}

	var buyers []db.User
	for i := 1; i <= 3; i++ {
		user, err := store.CreateUser(ctx, db.CreateUserParams{
			Username:       fmt.Sprintf("buyer%d", i),
			HashedPassword: hashedPassword,
			Email:          fmt.Sprintf("buyer%d@example.com", i),
		})
		if err != nil {
			return err
		}
		buyers = append(buyers, user)
	}

	auctions := []db.CreateItemParams{
		{
			Title:         "Vintage Camera",
			Description:   "Beautiful vintage camera in excellent condition",
			Image:         "https://images.unsplash.com/photo-1606983340126-99ab4feaa64a?w=500",
			Category:      "Electronics",
			StartingPrice: 50,
			Duration:      24 * time.Hour,
			SellerID:      "seller1",
			SellerName:    "CameraSeller",
		},
		{
			Title:         "Gaming Laptop",
			Description:   "High-performance gaming laptop with RTX 3080",
			Image:         "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=500",
			Category:      "Electronics",
			StartingPrice: 800,
			Duration:      48 * time.Hour,
			SellerID:      "seller2",
			SellerName:    "TechDeals",
		},
		{
			Title:         "Designer Watch",
			Description:   "Luxury designer watch, authentic and rare",
			Image:         "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500",
			Category:      "Collectibles",
			StartingPrice: 200,
			Duration:      12 * time.Hour,
			SellerID:      "seller3",
			SellerName:    "WatchCollector",
		},
		{
			Title:         "Antique Wooden Desk",
			Description:   "Beautiful handcrafted antique desk from the 1800s",
			Image:         "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=500",
			Category:      "Home & Garden",
			StartingPrice: 300,
			Duration:      72 * time.Hour,
			SellerID:      "seller5",
			SellerName:    "AntiqueTreasures",
		},
		{
			Title:         "Rare Baseball Card Collection",
			Description:   "Complete set of rare baseball cards from the 1950s, including Mickey Mantle",
			Image:         "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=500",
			Category:      "Collectibles",
			StartingPrice: 1000,
			Duration:      20 * time.Hour,
			SellerID:      "seller17",
			SellerName:    "SportsMemorabilia",
		},
		{
			Title:         "Vintage Electric Guitar",
			Description:   "1960s Fender Stratocaster, all original parts, excellent sound",
			Image:         "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=500",
			Category:      "Electronics",
			StartingPrice: 2000,
			Duration:      15 * time.Hour,
			SellerID:      "seller19",
			SellerName:    "GuitarShop",
		},
	}

	buyItNow := []db.CreateItemParams{
		{
			Title:         "Wireless Bluetooth Headphones",
			Description:   "Premium noise-cancelling wireless headphones with 30-hour battery",
			Image:         "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500",
			Category:      "Electronics",
			StartingPrice: 99,
			Quantity:      15,
			Condition:     "New",
			SellerID:      "seller7",
			SellerName:    "AudioPro",
		},
		{
			Title:         "Nike Running Shoes",
			Description:   "Brand new Nike Air Max running shoes, size 10",
			Image:         "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500",
			Category:      "Clothing, Shoes & Accessories",
			StartingPrice: 120,
			Quantity:      8,
			Condition:     "New",
			SellerID:      "seller8",
			SellerName:    "ShoeStore",
		},
		{
			Title:         "Coffee Maker Machine",
			Description:   "Programmable coffee maker with thermal carafe, 12-cup capacity",
			Image:         "https://images.unsplash.com/photo-1559056199-641a0ce8b55c?w=500",
			Category:      "Home & Garden",
			StartingPrice: 45,
			Quantity:      20,
			Condition:     "New",
			SellerID:      "seller9",
			SellerName:    "KitchenEssentials",
		},
		{
			Title:         "LEGO Star Wars Set",
			Description:   "Complete LEGO Star Wars Millennium Falcon set, 7541 pieces",
			Image:         "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=500",
			Category:      "Toys",
			StartingPrice: 150,
			Quantity:      5,
			Condition:     "New",
			SellerID:      "seller10",
			SellerName:    "ToyWorld",
		},
		{
			Title:         "Designer Handbag",
			Description:   "Authentic designer handbag, gently used, excellent condition",
			Image:         "https://images.unsplash.com/photo-1594633313593-bab3825d0caf?w=500",
			Category:      "Clothing, Shoes & Accessories",
			StartingPrice: 250,
			Quantity:      3,
			Condition:     "Used - Excellent",
			SellerID:      "seller11",
			SellerName:    "FashionBoutique",
		},
		{
			Title:         "Smart TV 55 inch",
			Description:   "4K Ultra HD Smart TV with HDR, streaming apps included",
			Image:         "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=500",
			Category:      "Electronics",
			StartingPrice: 399,
			Quantity:      12,
			Condition:     "New",
			SellerID:      "seller21",
			SellerName:    "ElectronicsHub",
		},
		{
			Title:         "Vintage Motorcycle Helmet",
			Description:   "Classic vintage motorcycle helmet, retro design",
			Image:         "https://images.unsplash.com/photo-1558980664-769d59546b3d?w=500",
			Category:      "Motors",
			StartingPrice: 75,
			Quantity:      4,
			Condition:     "Used - Very Good",
			SellerID:      "seller15",
			SellerName:    "MotorcycleGear",
		},
		{
			Title:         "Board Game Collection",
			Description:   "Set of 5 popular board games: Monopoly, Scrabble, Risk, Clue, and Chess",
			Image:         "https://images.unsplash.com/photo-1606166188517-cf1a8b3b8c5a?w=500",
			Category:      "Toys",
			StartingPrice: 60,
			Quantity:      10,
			Condition:     "New",
			SellerID:      "seller24",
			SellerName:    "GameStore",
		},
	}

	var created []db.Item
	for _, arg := range auctions {
		arg.Type = db.ItemTypeAuction
		item, err := store.CreateItem(ctx, arg)
		if err != nil {
			return err
		}
		created = append(created, item)
	}
	for _, arg := range buyItNow {
		arg.Type = db.ItemTypeBuyItNow
		item, err := store.CreateItem(ctx, arg)
		if err != nil {
			return err
		}
		created = append(created, item)
	}

	// A few opening bids through the transaction engine, so seeded auctions
	// start with real history.
	openingBids := []struct {
		itemIndex int
		buyer     db.User
		amount    int64
	}{
		{1, buyers[0], 850},  // Gaming Laptop
		{2, buyers[1], 220},  // Designer Watch
		{3, buyers[2], 320},  // Antique Wooden Desk
		{4, buyers[0], 1050}, // Rare Baseball Card Collection
	}
	for _, opening := range openingBids {
		_, err := store.PlaceBidTx(ctx, db.PlaceBidTxParams{
			ItemID: created[opening.itemIndex].ID,
			Bidder: opening.buyer,
			Amount: opening.amount,
		})
		if err != nil {
			return err
		}
	}

	log.Info().
		Int("users", len(buyers)).
		Int("items", len(created)).
		Msg("demo data seeded ✅")

	return nil
}

func (server *Server) seedData(ctx *gin.Context) {
	if err := SeedDemoData(server.dbStore); err != nil {
		log.Err(err).Msg("failed to seed demo data")
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Demo data seeded successfully"})
}
