package model

type Product struct {
	ProductID     int64   `json:"productId"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
	ImageURL      *string `json:"imageUrl"` // Nullable
	Unit          string  `json:"unit"`
	Brand         string  `json:"brand"`
	IsAvailable   bool    `json:"isAvailable"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`

	// Parent sub-category info, denormalized by the backend
	SubCategoryID   int64  `json:"subCategoryId"`
	SubCategoryName string `json:"subCategoryName"`

	// Parent category info, denormalized by the backend
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}
