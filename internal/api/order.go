package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/freshcart/freshcart-go/internal/model"
)

type PlaceOrderRequest struct {
	AddressID       *int64              `json:"addressId,omitempty"`
	DeliveryAddress string              `json:"deliveryAddress,omitempty"` // manual address when AddressID is nil
	DeliveryNote    string              `json:"deliveryNote,omitempty"`
	PaymentMethod   model.PaymentMethod `json:"paymentMethod"`
}

type ConfirmPaymentRequest struct {
	OrderID       int64  `json:"orderId"`
	TransactionID string `json:"transactionId,omitempty"`
}

func (c *Client) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*model.Order, error) {
	var order model.Order
	err := c.doJSON(ctx, request{
		method:   http.MethodPost,
		path:     "/api/orders/place",
		json:     req,
		fallback: "failed to place order",
	}, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) MyOrders(ctx context.Context) ([]model.Order, error) {
	var list []model.Order
	err := c.doJSON(ctx, request{
		method:   http.MethodGet,
		path:     "/api/orders/my-orders",
		fallback: "failed to fetch orders",
	}, &list)
	return list, err
}

func (c *Client) OrderByID(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	err := c.doJSON(ctx, request{
		method:   http.MethodGet,
		path:     fmt.Sprintf("/api/orders/%d", id),
		fallback: "failed to fetch order",
	}, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ConfirmPayment is the one endpoint that answers plain text, a short
// acknowledgement string.
func (c *Client) ConfirmPayment(ctx context.Context, req ConfirmPaymentRequest) (string, error) {
	_, raw, err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/api/payments/confirm",
		json:     req,
		fallback: "payment confirmation failed",
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}
