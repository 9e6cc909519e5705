package domain

import "github.com/shopspring/decimal"

// Product is a catalog entry. Prices are decimal to avoid float drift when
// summing cart lines and order totals.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Rating      float64         `json:"rating,omitempty"`
}
