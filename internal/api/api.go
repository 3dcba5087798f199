package api

import (
	"context"

	"github.com/freshcart/freshcart-go/internal/model"
)

// API describes every storefront backend operation the app uses. The store
// packages depend on narrower slices of it; *Client satisfies the whole
// thing.
type API interface {
	// Auth
	Register(ctx context.Context, req RegisterRequest) (*model.AuthUser, error)
	Login(ctx context.Context, req LoginRequest) (*model.AuthUser, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) error
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error

	// Categories
	Categories(ctx context.Context) ([]model.Category, error)
	AddCategory(ctx context.Context, in CategoryInput) (*model.Category, error)
	UploadCategoryImage(ctx context.Context, id int64, up Upload) (*model.Category, error)
	UpdateCategory(ctx context.Context, id int64, in CategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	// Sub-categories
	SubCategories(ctx context.Context) ([]model.SubCategory, error)
	AddSubCategory(ctx context.Context, in SubCategoryInput) (*model.SubCategory, error)
	UploadSubCategoryImage(ctx context.Context, id int64, up Upload) (*model.SubCategory, error)
	UpdateSubCategory(ctx context.Context, id int64, in SubCategoryInput) (*model.SubCategory, error)
	DeleteSubCategory(ctx context.Context, id int64) error

	// Products
	Products(ctx context.Context) ([]model.Product, error)
	AddProduct(ctx context.Context, in ProductInput) (*model.Product, error)
	UploadProductImage(ctx context.Context, id int64, up Upload) (*model.Product, error)
	UpdateProduct(ctx context.Context, id int64, in ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	// Cart
	Cart(ctx context.Context) (*model.Cart, error)
	AddCartItem(ctx context.Context, productID int64, quantity int) (*model.Cart, error)
	UpdateCartItem(ctx context.Context, cartItemID int64, quantity int) (*model.Cart, error)
	RemoveCartItem(ctx context.Context, cartItemID int64) (*model.Cart, error)

	// Orders and payment
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*model.Order, error)
	MyOrders(ctx context.Context) ([]model.Order, error)
	OrderByID(ctx context.Context, id int64) (*model.Order, error)
	ConfirmPayment(ctx context.Context, req ConfirmPaymentRequest) (string, error)

	// Addresses
	Addresses(ctx context.Context) ([]model.Address, error)
	AddAddress(ctx context.Context, in AddressInput) (*model.Address, error)
	UpdateAddress(ctx context.Context, id int64, in AddressInput) (*model.Address, error)
	DeleteAddress(ctx context.Context, id int64) error
	SetDefaultAddress(ctx context.Context, id int64) (*model.Address, error)
}

var _ API = (*Client)(nil)
