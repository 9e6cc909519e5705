package rest

import (
	"context"
	"net/http"

	"github.com/quickbite/storefront/internal/core/domain"
)

// PlaceOrder submits the checkout form; the backend builds the order from
// the server-side cart.
func (c *Client) PlaceOrder(ctx context.Context, shipping domain.ShippingInfo) (*domain.Order, error) {
	var out domain.Order
	if err := c.do(ctx, "order_place", http.MethodPost, "/orders/place", shipping, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MyOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.do(ctx, "orders_mine", http.MethodGet, "/orders/my-orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
