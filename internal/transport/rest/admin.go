package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/quickbite/storefront/internal/core/domain"
)

type orderStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

func (c *Client) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, "admin_product_create", http.MethodPost, "/products", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	var out domain.Product
	path := fmt.Sprintf("/products/%d", p.ID)
	if err := c.do(ctx, "admin_product_update", http.MethodPut, path, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, "admin_product_delete", http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

func (c *Client) AllOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.do(ctx, "admin_orders_list", http.MethodGet, "/orders/all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SetOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (*domain.Order, error) {
	var out domain.Order
	path := fmt.Sprintf("/orders/%d/status", orderID)
	if err := c.do(ctx, "admin_order_status", http.MethodPut, path, orderStatusRequest{Status: status}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AllUsers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := c.do(ctx, "admin_users_list", http.MethodGet, "/user/all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ToggleUserStatus(ctx context.Context, userID int64) (*domain.User, error) {
	var out domain.User
	path := fmt.Sprintf("/user/%d/toggle-status", userID)
	if err := c.do(ctx, "admin_user_toggle", http.MethodPut, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Stats(ctx context.Context) (*domain.Stats, error) {
	var out domain.Stats
	if err := c.do(ctx, "admin_stats", http.MethodGet, "/admin/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Analytics(ctx context.Context) (*domain.Analytics, error) {
	var out domain.Analytics
	if err := c.do(ctx, "admin_analytics", http.MethodGet, "/admin/reports/analytics", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
