// Package auctionview is a typed client for the marketplace API. It covers
// the item page flow: fetch a listing and its bid history, follow the live
// bid stream, and submit bids or purchases.
package auctionview

import (
	"context"
	"errors"
	"fmt"

	db "github.com/Lkoenig2121/ebay/internal/db/memory"
	"resty.dev/v3"
)

type Client struct {
	baseURL string
	rest    *resty.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		rest:    resty.New().SetBaseURL(baseURL),
	}
}

func (c *Client) Close() error {
	return c.rest.Close()
}

// apiError mirrors the server's error envelope. Its text is surfaced to the
// caller verbatim.
type apiError struct {
	Message string `json:"error"`
}

func (e *apiError) toError() error {
	if e.Message == "" {
		return errors.New("request failed")
	}
	return errors.New(e.Message)
}

type loginResponse struct {
	User        db.User `json:"user"`
	AccessToken string  `json:"token"`
}

// Login authenticates and attaches the access token to all later requests.
func (c *Client) Login(ctx context.Context, username string, password string) (db.User, error) {
	var result loginResponse
	var apiErr apiError

	res, err := c.rest.R().
		SetContext(ctx).
		SetBody(map[string]string{"username": username, "password": password}).
		SetResult(&result).
		SetError(&apiErr).
		Post("/api/login")
	if err != nil {
		return db.User{}, fmt.Errorf("login request failed: %w", err)
	}
	if res.IsError() {
		return db.User{}, apiErr.toError()
	}

	c.rest.SetAuthToken(result.AccessToken)
	return result.User, nil
}

func (c *Client) GetItem(ctx context.Context, itemID string) (db.Item, error) {
	var item db.Item
	var apiErr apiError

	res, err := c.rest.R().
		SetContext(ctx).
		SetResult(&item).
		SetError(&apiErr).
		Get("/api/items/" + itemID)
	if err != nil {
		return db.Item{}, fmt.Errorf("get item request failed: %w", err)
	}
	if res.IsError() {
		return db.Item{}, apiErr.toError()
	}

	return item, nil
}

// GetBids returns the item's bid history in server order: amount descending,
// high bid first.
func (c *Client) GetBids(ctx context.Context, itemID string) ([]db.Bid, error) {
	var bids []db.Bid
	var apiErr apiError

	res, err := c.rest.R().
		SetContext(ctx).
		SetResult(&bids).
		SetError(&apiErr).
		Get("/api/items/" + itemID + "/bids")
	if err != nil {
		return nil, fmt.Errorf("get bids request failed: %w", err)
	}
	if res.IsError() {
		return nil, apiErr.toError()
	}

	return bids, nil
}

// PlaceBid submits a bid. There is no optimistic local mutation: the view
// only changes when the server's bid event arrives.
func (c *Client) PlaceBid(ctx context.Context, itemID string, amount int64) (db.PlaceBidTxResult, error) {
	var result db.PlaceBidTxResult
	var apiErr apiError

	res, err := c.rest.R().
		SetContext(ctx).
		SetBody(map[string]int64{"amount": amount}).
		SetResult(&result).
		SetError(&apiErr).
		Post("/api/items/" + itemID + "/bid")
	if err != nil {
		return result, fmt.Errorf("place bid request failed: %w", err)
	}
	if res.IsError() {
		return result, apiErr.toError()
	}

	return result, nil
}

type buyNowResponse struct {
	Message     string  `json:"message"`
	Item        db.Item `json:"item"`
	AddedToCart bool    `json:"added_to_cart"`
}

func (c *Client) BuyNow(ctx context.Context, itemID string) (db.Item, error) {
	var result buyNowResponse
	var apiErr apiError

	res, err := c.rest.R().
		SetContext(ctx).
		SetResult(&result).
		SetError(&apiErr).
		Post("/api/items/" + itemID + "/buy-it-now")
	if err != nil {
		return db.Item{}, fmt.Errorf("buy now request failed: %w", err)
	}
	if res.IsError() {
		return db.Item{}, apiErr.toError()
	}

	return result.Item, nil
}
