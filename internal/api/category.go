package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/freshcart/freshcart-go/internal/model"
)

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var list []model.Category
	err := c.doJSON(ctx, request{
		method:   http.MethodGet,
		path:     "/api/categories/all",
		fallback: "failed to fetch categories",
	}, &list)
	return list, err
}

func (c *Client) AddCategory(ctx context.Context, in CategoryInput) (*model.Category, error) {
	var cat model.Category
	err := c.doJSON(ctx, request{
		method:   http.MethodPost,
		path:     "/api/categories/add",
		json:     in,
		fallback: "category add failed",
	}, &cat)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) UploadCategoryImage(ctx context.Context, id int64, up Upload) (*model.Category, error) {
	var cat model.Category
	path := fmt.Sprintf("/api/categories/%d/upload-image", id)
	if err := c.upload(ctx, path, up, &cat, "category image upload failed"); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, in CategoryInput) (*model.Category, error) {
	var cat model.Category
	err := c.doJSON(ctx, request{
		method:   http.MethodPut,
		path:     fmt.Sprintf("/api/categories/update/%d", id),
		json:     in,
		fallback: "category update failed",
	}, &cat)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// DeleteCategory discards the response body (the backend echoes the id).
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.doJSON(ctx, request{
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/api/categories/delete/%d", id),
		fallback: "category delete failed",
	}, nil)
}
