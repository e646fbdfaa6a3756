package api

import (
	"errors"
	"fmt"
	"net/http"

	db "github.com/Lkoenig2121/ebay/internal/db/memory"
	"github.com/Lkoenig2121/ebay/internal/event"
	"github.com/Lkoenig2121/ebay/internal/token"
	"github.com/Lkoenig2121/ebay/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func (server *Server) listItemBids(ctx *gin.Context) {
	itemID := ctx.Param("id")

	if _, err := server.dbStore.GetItemByID(ctx, itemID); err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("item ID %s not found", itemID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	bids, err := server.dbStore.ListBidsByItem(ctx, itemID)
	if err != nil {
		log.Err(err).Msg("failed to list bids")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, bids)
}

type placeBidRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

func (server *Server) placeBid(ctx *gin.Context) {
	itemID := ctx.Param("id")

	var req placeBidRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("invalid request body: %w", err)))
		return
	}

	if req.Amount <= 0 {
		err := fmt.Errorf("bid amount must be greater than 0, provided: %d", req.Amount)
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)
	bidder, err := server.dbStore.GetUserByID(ctx, authPayload.Subject)
	if err != nil {
		ctx.JSON(http.StatusNotFound, errorResponse(errors.New("user not found")))
		return
	}

	result, err := server.dbStore.PlaceBidTx(ctx, db.PlaceBidTxParams{
		ItemID: itemID,
		Bidder: bidder,
		Amount: req.Amount,
		AfterCommitFunc: func(bid db.Bid, item db.Item) {
			// Runs while the item is still locked, so viewers see bids in
			// acceptance order.
			server.eventSender.Broadcast(event.Event{
				Topic: event.ItemTopic(item.ID),
				Type:  event.EventTypeNewBid,
				Data: event.NewBidEvent{
					ItemID: item.ID,
					Bid:    bid,
					Item:   item,
				},
			})
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, db.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, errorResponse(fmt.Errorf("item ID %s not found", itemID)))
		case errors.Is(err, db.ErrNotAnAuction),
			errors.Is(err, db.ErrAuctionEnded),
			errors.Is(err, db.ErrBidTooLow):
			ctx.JSON(http.StatusUnprocessableEntity, errorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, errorResponse(fmt.Errorf("failed to place bid: %w", err)))
		}
		return
	}

	log.Info().
		Str("item_id", itemID).
		Str("bidder_id", bidder.ID).
		Str("amount", util.FormatUSD(req.Amount)).
		Msg("bid placed successfully")

	ctx.JSON(http.StatusOK, result)
}
