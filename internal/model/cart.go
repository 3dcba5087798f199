package model

// Cart is a full aggregate: the backend returns the entire cart on every
// mutation and the client replaces its copy wholesale. Totals are computed
// server-side and trusted as delivered.
type Cart struct {
	CartID      int64      `json:"cartId"`
	Items       []CartItem `json:"items"`
	TotalAmount float64    `json:"totalAmount"`
	TotalItems  int        `json:"totalItems"`
}

type CartItem struct {
	CartItemID  int64   `json:"cartItemId"`
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	ProductUnit string  `json:"productUnit"`
	ImageURL    *string `json:"imageUrl"` // Nullable
	Quantity    int     `json:"quantity"`
	PriceAtTime float64 `json:"priceAtTime"` // Price snapshot taken when the item was added
	Subtotal    float64 `json:"subtotal"`
}
