package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of a placed order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// ValidOrderStatus reports whether s is one of the known fulfilment states.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// OrderItem is a cart line frozen at checkout time.
type OrderItem struct {
	ID       string  `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// ShippingInfo is the delivery form submitted with /orders/place.
type ShippingInfo struct {
	FullName   string `json:"fullName" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
}

// Order is a placed order as the backend returns it.
type Order struct {
	ID          int64           `json:"id"`
	User        *User           `json:"user,omitempty"`
	Items       []OrderItem     `json:"orderItems"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      OrderStatus     `json:"status"`
	OrderDate   time.Time       `json:"orderDate"`
	Shipping    ShippingInfo    `json:"shipping"`
}
