package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/quickbite/storefront/internal/core/domain"
)

func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.do(ctx, "products_list", http.MethodGet, "/products/all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Product(ctx context.Context, id int64) (*domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, "product_get", http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	var out []domain.Product
	path := "/products/category/" + url.PathEscape(category)
	if err := c.do(ctx, "products_by_category", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	var out []domain.Product
	path := "/products/search?q=" + url.QueryEscape(query)
	if err := c.do(ctx, "products_search", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
