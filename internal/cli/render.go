package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/quickbite/storefront/internal/core/domain"
)

// printProducts renders a product table.
func (a *App) printProducts(products []domain.Product) {
	if len(products) == 0 {
		fmt.Fprintln(a.out, "no products found")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tRATING")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%s\t$%s\t%.1f\n", p.ID, p.Name, p.Category, p.Price.StringFixed(2), p.Rating)
	}
	_ = w.Flush()
}

// printCart renders the cart lines and their subtotal.
func (a *App) printCart(lines []domain.CartLine) {
	if len(lines) == 0 {
		fmt.Fprintln(a.out, "your cart is empty")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LINE\tPRODUCT\tQTY\tUNIT\tTOTAL")
	for _, l := range lines {
		fmt.Fprintf(w, "%s\t%s\t%d\t$%s\t$%s\n",
			l.ID, l.Product.Name, l.Quantity, l.Product.Price.StringFixed(2), l.Total().StringFixed(2))
	}
	_ = w.Flush()
	fmt.Fprintf(a.out, "subtotal: $%s\n", domain.CartSubtotal(lines).StringFixed(2))
}

// printOrders renders an order table.
func (a *App) printOrders(orders []domain.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(a.out, "no orders yet")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tSTATUS\tITEMS\tTOTAL")
	for _, o := range orders {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t$%s\n",
			o.ID, o.OrderDate.Format("2006-01-02 15:04"), o.Status, len(o.Items), o.TotalAmount.StringFixed(2))
	}
	_ = w.Flush()
}

// printUsers renders the back-office user table.
func (a *App) printUsers(users []domain.User) {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tENABLED")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", u.ID, u.FullName(), u.Email, u.Role, u.Enabled)
	}
	_ = w.Flush()
}
