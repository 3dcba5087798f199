package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/freshcart/freshcart-go/internal/model"
)

type SubCategoryInput struct {
	Name       string `json:"name"`
	IsActive   bool   `json:"isActive"`
	CategoryID int64  `json:"categoryId"`
}

func (c *Client) SubCategories(ctx context.Context) ([]model.SubCategory, error) {
	var list []model.SubCategory
	err := c.doJSON(ctx, request{
		method:   http.MethodGet,
		path:     "/api/subcategories/all",
		fallback: "failed to fetch subcategories",
	}, &list)
	return list, err
}

func (c *Client) AddSubCategory(ctx context.Context, in SubCategoryInput) (*model.SubCategory, error) {
	var sub model.SubCategory
	err := c.doJSON(ctx, request{
		method:   http.MethodPost,
		path:     "/api/subcategories/add",
		json:     in,
		fallback: "subcategory add failed",
	}, &sub)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *Client) UploadSubCategoryImage(ctx context.Context, id int64, up Upload) (*model.SubCategory, error) {
	var sub model.SubCategory
	path := fmt.Sprintf("/api/subcategories/%d/upload-image", id)
	if err := c.upload(ctx, path, up, &sub, "subcategory image upload failed"); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *Client) UpdateSubCategory(ctx context.Context, id int64, in SubCategoryInput) (*model.SubCategory, error) {
	var sub model.SubCategory
	err := c.doJSON(ctx, request{
		method:   http.MethodPut,
		path:     fmt.Sprintf("/api/subcategories/update/%d", id),
		json:     in,
		fallback: "subcategory update failed",
	}, &sub)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *Client) DeleteSubCategory(ctx context.Context, id int64) error {
	return c.doJSON(ctx, request{
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/api/subcategories/delete/%d", id),
		fallback: "subcategory delete failed",
	}, nil)
}
