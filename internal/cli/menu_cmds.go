package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quickbite/storefront/internal/guard"
)

func (a *App) menuCmd() *cobra.Command {
	var category, search string

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Browse the product catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRoute(guard.Authenticated); err != nil {
				return err
			}

			ctx := cmd.Context()
			switch {
			case search != "":
				products, err := a.client.SearchProducts(ctx, search)
				if err != nil {
					return err
				}
				a.printProducts(products)
			case category != "":
				products, err := a.client.ProductsByCategory(ctx, category)
				if err != nil {
					return err
				}
				a.printProducts(products)
			default:
				products, err := a.client.Products(ctx)
				if err != nil {
					return err
				}
				a.printProducts(products)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().StringVar(&search, "search", "", "search by name or description")

	cmd.AddCommand(a.menuShowCmd())
	return cmd
}

func (a *App) menuShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <product-id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRoute(guard.Authenticated); err != nil {
				return err
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			p, err := a.client.Product(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s — $%s (%s)\n", p.Name, p.Price.StringFixed(2), p.Category)
			if p.Description != "" {
				fmt.Fprintln(a.out, p.Description)
			}
			return nil
		},
	}
}
