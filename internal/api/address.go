package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/freshcart/freshcart-go/internal/model"
)

type AddressInput struct {
	FullName     string `json:"fullName"`
	PhoneNumber  string `json:"phoneNumber"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	IsDefault    bool   `json:"isDefault"`
}

func (c *Client) Addresses(ctx context.Context) ([]model.Address, error) {
	var list []model.Address
	err := c.doJSON(ctx, request{
		method:   http.MethodGet,
		path:     "/api/addresses",
		fallback: "failed to fetch addresses",
	}, &list)
	return list, err
}

func (c *Client) AddAddress(ctx context.Context, in AddressInput) (*model.Address, error) {
	var addr model.Address
	err := c.doJSON(ctx, request{
		method:   http.MethodPost,
		path:     "/api/addresses/add",
		json:     in,
		fallback: "failed to add address",
	}, &addr)
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

func (c *Client) UpdateAddress(ctx context.Context, id int64, in AddressInput) (*model.Address, error) {
	var addr model.Address
	err := c.doJSON(ctx, request{
		method:   http.MethodPut,
		path:     fmt.Sprintf("/api/addresses/%d", id),
		json:     in,
		fallback: "failed to update address",
	}, &addr)
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

func (c *Client) DeleteAddress(ctx context.Context, id int64) error {
	return c.doJSON(ctx, request{
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/api/addresses/%d", id),
		fallback: "failed to delete address",
	}, nil)
}

func (c *Client) SetDefaultAddress(ctx context.Context, id int64) (*model.Address, error) {
	var addr model.Address
	err := c.doJSON(ctx, request{
		method:   http.MethodPut,
		path:     fmt.Sprintf("/api/addresses/%d/set-default", id),
		fallback: "failed to set default address",
	}, &addr)
	if err != nil {
		return nil, err
	}
	return &addr, nil
}
