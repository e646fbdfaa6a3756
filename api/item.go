package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	db "github.com/Lkoenig2121/ebay/internal/db/memory"
	"github.com/Lkoenig2121/ebay/internal/token"
	"github.com/Lkoenig2121/ebay/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func (server *Server) listItems(ctx *gin.Context) {
	items, err := server.dbStore.ListItems(ctx)
	if err != nil {
		log.Err(err).Msg("failed to list items")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, items)
}

func (server *Server) getItemDetails(ctx *gin.Context) {
	itemID := ctx.Param("id")

	item, err := server.dbStore.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("item ID %s not found", itemID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, item)
}

func (server *Server) getItemBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")

	item, err := server.dbStore.GetItemBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("item slug %s not found", slug)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, item)
}

func (server *Server) listItemsByCategory(ctx *gin.Context) {
	category := ctx.Param("category")

	items, err := server.dbStore.ListItemsByCategory(ctx, category)
	if err != nil {
		log.Err(err).Msg("failed to list items by category")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, items)
}

type createItemRequest struct {
	Title                string `json:"title"`
	Description          string `json:"description"`
	Image                string `json:"image"`
	Category             string `json:"category"`
	StartingPrice        int64  `json:"starting_price"`
	Type                 string `json:"type"`
	Quantity             int32  `json:"quantity"`
	Condition            string `json:"condition"`
	AuctionDurationHours int32  `json:"auction_duration_hours"`
}

func validateCreateItemRequest(req *createItemRequest) (violations []*FieldViolation) {
	if err := validator.ValidateString(req.Title, 1, 120); err != nil {
		violations = append(violations, fieldViolation("title", err))
	}

	if err := validator.ValidateString(req.Description, 1, 2000); err != nil {
		violations = append(violations, fieldViolation("description", err))
	}

	if err := validator.ValidateString(req.Image, 1, 500); err != nil {
		violations = append(violations, fieldViolation("image", err))
	}

	if err := validator.ValidateString(req.Category, 1, 60); err != nil {
		violations = append(violations, fieldViolation("category", err))
	}

	if err := validator.ValidatePrice(req.StartingPrice); err != nil {
		violations = append(violations, fieldViolation("starting_price", err))
	}

	if err := validator.ValidateItemType(req.Type); err != nil {
		violations = append(violations, fieldViolation("type", err))
		return violations
	}

	switch db.ItemType(req.Type) {
	case db.ItemTypeAuction:
		if req.AuctionDurationHours <= 0 {
			violations = append(violations, fieldViolation("auction_duration_hours",
				errors.New("is required for auction items")))
		}
	case db.ItemTypeBuyItNow:
		if req.Quantity <= 0 {
			violations = append(violations, fieldViolation("quantity",
				errors.New("is required for Buy It Now items")))
		}
		if req.Condition == "" {
			violations = append(violations, fieldViolation("condition",
				errors.New("is required for Buy It Now items")))
		}
	}

	return violations
}

func (server *Server) createItem(ctx *gin.Context) {
	req := new(createItemRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	violations := validateCreateItemRequest(req)
	if violations != nil {
		ctx.JSON(http.StatusUnprocessableEntity, failedValidationError(violations))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)
	seller, err := server.dbStore.GetUserByID(ctx, authPayload.Subject)
	if err != nil {
		ctx.JSON(http.StatusNotFound, errorResponse(errors.New("user not found")))
		return
	}

	arg := db.CreateItemParams{
		Title:         req.Title,
		Description:   req.Description,
		Image:         req.Image,
		Category:      req.Category,
		StartingPrice: req.StartingPrice,
		Type:          db.ItemType(req.Type),
		Quantity:      req.Quantity,
		Condition:     req.Condition,
		Duration:      time.Duration(req.AuctionDurationHours) * time.Hour,
		SellerID:      seller.ID,
		SellerName:    seller.Username,
	}

	item, err := server.dbStore.CreateItem(ctx, arg)
	if err != nil {
		log.Err(err).Msg("failed to create item")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	log.Info().
		Str("item_id", item.ID).
		Str("seller_id", seller.ID).
		Str("type", string(item.Type)).
		Msg("item listed")

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Item listed successfully",
		"item":    item,
	})
}
