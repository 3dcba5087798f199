package model

type Category struct {
	CategoryID  int64   `json:"categoryId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl"` // Nullable until an image is uploaded
	IsActive    bool    `json:"isActive"`
	CreatedAt   string  `json:"createdAt"`
}

type SubCategory struct {
	SubCategoryID int64   `json:"subCategoryId"`
	Name          string  `json:"name"`
	ImageURL      *string `json:"imageUrl"` // Nullable
	IsActive      bool    `json:"isActive"`
	CreatedAt     string  `json:"createdAt"`

	// Parent category info, denormalized by the backend
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}
