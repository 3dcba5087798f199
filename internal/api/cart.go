package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/guonaihong/gout"

	"github.com/freshcart/freshcart-go/internal/model"
)

// Every cart call returns the full updated aggregate; callers replace
// their copy wholesale instead of patching items.

func (c *Client) Cart(ctx context.Context) (*model.Cart, error) {
	var cart model.Cart
	err := c.doJSON(ctx, request{
		method:   http.MethodGet,
		path:     "/api/cart",
		fallback: "failed to fetch cart",
	}, &cart)
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) AddCartItem(ctx context.Context, productID int64, quantity int) (*model.Cart, error) {
	var cart model.Cart
	err := c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   "/api/cart/add",
		json: gout.H{
			"productId": productID,
			"quantity":  quantity,
		},
		fallback: "failed to add to cart",
	}, &cart)
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// UpdateCartItem forwards quantity verbatim, zero included; clamping is the
// server's contract, not the client's.
func (c *Client) UpdateCartItem(ctx context.Context, cartItemID int64, quantity int) (*model.Cart, error) {
	var cart model.Cart
	err := c.doJSON(ctx, request{
		method:   http.MethodPut,
		path:     fmt.Sprintf("/api/cart/update/%d", cartItemID),
		query:    gout.H{"quantity": quantity},
		fallback: "failed to update cart",
	}, &cart)
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) RemoveCartItem(ctx context.Context, cartItemID int64) (*model.Cart, error) {
	var cart model.Cart
	err := c.doJSON(ctx, request{
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/api/cart/remove/%d", cartItemID),
		fallback: "failed to remove item",
	}, &cart)
	if err != nil {
		return nil, err
	}
	return &cart, nil
}
