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

type savedItemRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

func (server *Server) saveItem(ctx *gin.Context) {
	req := new(savedItemRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	userID := ctx.MustGet(authorizationPayloadKey).(*token.Payload).Subject

	if err := server.dbStore.SaveItem(ctx, userID, req.ItemID); err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("item ID %s not found", req.ItemID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to save item")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Item saved"})
}

func (server *Server) unsaveItem(ctx *gin.Context) {
	req := new(savedItemRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	userID := ctx.MustGet(authorizationPayloadKey).(*token.Payload).Subject

	if err := server.dbStore.UnsaveItem(ctx, userID, req.ItemID); err != nil {
		log.Err(err).Msg("failed to unsave item")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Item removed from saved"})
}

func (server *Server) checkSavedItem(ctx *gin.Context) {
	req := new(savedItemRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	userID := ctx.MustGet(authorizationPayloadKey).(*token.Payload).Subject

	isSaved, err := server.dbStore.IsItemSaved(ctx, userID, req.ItemID)
	if err != nil {
		log.Err(err).Msg("failed to check saved item")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"is_saved": isSaved})
}

func (server *Server) listSavedItems(ctx *gin.Context) {
	userID := ctx.MustGet(authorizationPayloadKey).(*token.Payload).Subject

	items, err := server.dbStore.ListSavedItems(ctx, userID)
	if err != nil {
		log.Err(err).Msg("failed to list saved items")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, items)
}
