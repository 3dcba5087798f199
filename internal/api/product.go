package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/freshcart/freshcart-go/internal/model"
)

type ProductInput struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
	Unit          string  `json:"unit"`
	Brand         string  `json:"brand"`
	IsAvailable   bool    `json:"isAvailable"`
	SubCategoryID int64   `json:"subCategoryId"`
}

func (c *Client) Products(ctx context.Context) ([]model.Product, error) {
	var list []model.Product
	err := c.doJSON(ctx, request{
		method:   http.MethodGet,
		path:     "/api/products/all",
		fallback: "failed to fetch products",
	}, &list)
	return list, err
}

func (c *Client) AddProduct(ctx context.Context, in ProductInput) (*model.Product, error) {
	var p model.Product
	err := c.doJSON(ctx, request{
		method:   http.MethodPost,
		path:     "/api/products/add",
		json:     in,
		fallback: "product add failed",
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UploadProductImage(ctx context.Context, id int64, up Upload) (*model.Product, error) {
	var p model.Product
	path := fmt.Sprintf("/api/products/%d/upload-image", id)
	if err := c.upload(ctx, path, up, &p, "product image upload failed"); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, in ProductInput) (*model.Product, error) {
	var p model.Product
	err := c.doJSON(ctx, request{
		method:   http.MethodPut,
		path:     fmt.Sprintf("/api/products/update/%d", id),
		json:     in,
		fallback: "product update failed",
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.doJSON(ctx, request{
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/api/products/delete/%d", id),
		fallback: "product delete failed",
	}, nil)
}
