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

func (server *Server) addCartItem(ctx *gin.Context) {
	userID := ctx.MustGet(authorizationPayloadKey).(*token.Payload).Subject
	itemID := ctx.Param("itemId")

	cart, err := server.dbStore.AddCartItem(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("item ID %s not found", itemID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to add cart item")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Item added to cart", "cart": cart})
}

func (server *Server) removeCartItem(ctx *gin.Context) {
	userID := ctx.MustGet(authorizationPayloadKey).(*token.Payload).Subject
	itemID := ctx.Param("itemId")

	cart, err := server.dbStore.RemoveCartItem(ctx, userID, itemID)
	if err != nil {
		log.Err(err).Msg("failed to remove cart item")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Item removed from cart", "cart": cart})
}

func (server *Server) listCartItems(ctx *gin.Context) {
	userID := ctx.MustGet(authorizationPayloadKey).(*token.Payload).Subject

	items, err := server.dbStore.ListCartItems(ctx, userID)
	if err != nil {
		log.Err(err).Msg("failed to list cart items")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, items)
}

func (server *Server) countCartItems(ctx *gin.Context) {
	userID := ctx.MustGet(authorizationPayloadKey).(*token.Payload).Subject

	count, err := server.dbStore.CountCartItems(ctx, userID)
	if err != nil {
		log.Err(err).Msg("failed to count cart items")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"count": count})
}

func (server *Server) clearCart(ctx *gin.Context) {
	userID := ctx.MustGet(authorizationPayloadKey).(*token.Payload).Subject

	if err := server.dbStore.ClearCart(ctx, userID); err != nil {
		log.Err(err).Msg("failed to clear cart")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully"})
}
