package db

import (
	"errors"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrUsernameExists = errors.New("username already exists")
	ErrNotAnAuction   = errors.New("this item is not an auction")
	ErrNotBuyItNow    = errors.New("this item is not available for buy it now")
	ErrAuctionEnded   = errors.New("auction has ended")
	ErrBidTooLow      = errors.New("bid must be higher than current price")
	ErrOutOfStock     = errors.New("item is out of stock")
)
