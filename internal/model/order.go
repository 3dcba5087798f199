package model

type OrderStatus string

const (
	OrderPending        OrderStatus = "PENDING"
	OrderConfirmed      OrderStatus = "CONFIRMED"
	OrderPreparing      OrderStatus = "PREPARING"
	OrderOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderDelivered      OrderStatus = "DELIVERED"
	OrderCancelled      OrderStatus = "CANCELLED"
)

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
	PaymentUPI            PaymentMethod = "UPI"
	PaymentCard           PaymentMethod = "CARD"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// Order is a full aggregate like Cart; the delivery address is a text
// snapshot taken at checkout, not a reference to an Address record.
type Order struct {
	OrderID         int64         `json:"orderId"`
	Items           []OrderItem   `json:"items"`
	Status          OrderStatus   `json:"status"`
	TotalAmount     float64       `json:"totalAmount"`
	DeliveryCharge  float64       `json:"deliveryCharge"`
	FinalAmount     float64       `json:"finalAmount"`
	DeliveryAddress string        `json:"deliveryAddress"`
	DeliveryNote    *string       `json:"deliveryNote"` // Nullable
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	TransactionID   *string       `json:"transactionId"` // Nullable
	CreatedAt       string        `json:"createdAt"`
	UpdatedAt       string        `json:"updatedAt"`
}

type OrderItem struct {
	OrderItemID int64   `json:"orderItemId"`
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	ProductUnit string  `json:"productUnit"`
	ImageURL    *string `json:"imageUrl"` // Nullable
	Quantity    int     `json:"quantity"`
	PriceAtTime float64 `json:"priceAtTime"`
	Subtotal    float64 `json:"subtotal"`
}
