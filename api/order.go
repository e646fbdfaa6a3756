package api

import (
	"errors"
	"fmt"
	"net/http"

	db "github.com/Lkoenig2121/ebay/internal/db/memory"
	"github.com/Lkoenig2121/ebay/internal/token"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func (server *Server) buyItemNow(ctx *gin.Context) {
	itemID := ctx.Param("id")

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)
	buyer, err := server.dbStore.GetUserByID(ctx, authPayload.Subject)
	if err != nil {
		ctx.JSON(http.StatusNotFound, errorResponse(errors.New("user not found")))
		return
	}

	result, err := server.dbStore.BuyNowTx(ctx, db.BuyNowTxParams{
		ItemID: itemID,
		Buyer:  buyer,
	})
	if err != nil {
		switch {
		case errors.Is(err, db.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, errorResponse(fmt.Errorf("item ID %s not found", itemID)))
		case errors.Is(err, db.ErrNotBuyItNow), errors.Is(err, db.ErrOutOfStock):
			ctx.JSON(http.StatusUnprocessableEntity, errorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, errorResponse(fmt.Errorf("failed to buy item: %w", err)))
		}
		return
	}

	log.Info().
		Str("item_id", itemID).
		Str("buyer_id", buyer.ID).
		Int32("remaining_quantity", result.Item.Quantity).
		Msg("item purchased")

	ctx.JSON(http.StatusOK, gin.H{
		"message":       "Item purchased successfully",
		"item":          result.Item,
		"added_to_cart": result.AddedToCart,
	})
}

func (server *Server) listUserOrders(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	orders, err := server.dbStore.ListOrdersByUser(ctx, authPayload.Subject)
	if err != nil {
		log.Err(err).Msg("failed to list orders")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

// checkout simulates payment: everything in the cart becomes an order and
// the cart is emptied. No payment provider is involved.
func (server *Server) checkout(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)
	buyer, err := server.dbStore.GetUserByID(ctx, authPayload.Subject)
	if err != nil {
		ctx.JSON(http.StatusNotFound, errorResponse(errors.New("user not found")))
		return
	}

	orders, err := server.dbStore.CheckoutCartTx(ctx, db.CheckoutCartTxParams{Buyer: buyer})
	if err != nil {
		log.Err(err).Msg("failed to checkout")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	log.Info().
		Str("buyer_id", buyer.ID).
		Int("order_count", len(orders)).
		Msg("checkout completed")

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Checkout completed successfully",
		"orders":  orders,
	})
}
