package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/quickbite/storefront/internal/core/domain"
)

// cartEnvelope wraps every cart endpoint's response.
type cartEnvelope struct {
	CartItems []domain.CartLine `json:"cartItems"`
}

type addToCartRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type updateCartRequest struct {
	CartItemID string `json:"cartItemId"`
	Quantity   int    `json:"quantity"`
}

func (c *Client) Cart(ctx context.Context) ([]domain.CartLine, error) {
	var out cartEnvelope
	if err := c.do(ctx, "cart_fetch", http.MethodGet, "/cart", nil, &out); err != nil {
		return nil, err
	}
	return out.CartItems, nil
}

func (c *Client) AddToCart(ctx context.Context, productID int64, quantity int) ([]domain.CartLine, error) {
	var out cartEnvelope
	req := addToCartRequest{ProductID: productID, Quantity: quantity}
	if err := c.do(ctx, "cart_add", http.MethodPost, "/cart/add", req, &out); err != nil {
		return nil, err
	}
	return out.CartItems, nil
}

func (c *Client) UpdateQuantity(ctx context.Context, lineID string, quantity int) ([]domain.CartLine, error) {
	var out cartEnvelope
	req := updateCartRequest{CartItemID: lineID, Quantity: quantity}
	if err := c.do(ctx, "cart_update", http.MethodPut, "/cart/update", req, &out); err != nil {
		return nil, err
	}
	return out.CartItems, nil
}

func (c *Client) RemoveFromCart(ctx context.Context, lineID string) ([]domain.CartLine, error) {
	var out cartEnvelope
	path := fmt.Sprintf("/cart/remove/%s", url.PathEscape(lineID))
	if err := c.do(ctx, "cart_remove", http.MethodDelete, path, nil, &out); err != nil {
		return nil, err
	}
	return out.CartItems, nil
}
