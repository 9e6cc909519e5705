package domain

import "github.com/shopspring/decimal"

// CartLine is one product-and-quantity entry in the shopping cart. Line IDs
// are assigned by the backend; the client never invents them.
type CartLine struct {
	ID       string  `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Total returns price × quantity for the line.
func (l CartLine) Total() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartSubtotal sums the line totals of an entire cart.
func CartSubtotal(lines []CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Total())
	}
	return sum
}
