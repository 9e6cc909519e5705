package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quickbite/storefront/internal/core/domain"
	"github.com/quickbite/storefront/internal/guard"
)

func (a *App) checkoutCmd() *cobra.Command {
	var shipping domain.ShippingInfo

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order from the current cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRoute(guard.Authenticated); err != nil {
				return err
			}
			if len(a.store.CartItems()) == 0 {
				return domain.ErrEmptyCart
			}

			order, err := a.client.PlaceOrder(cmd.Context(), shipping)
			if err != nil {
				return err
			}

			// The server consumed the cart while building the order.
			a.store.ClearCart()

			fmt.Fprintf(a.out, "order #%d placed, total $%s, status %s\n",
				order.ID, order.TotalAmount.StringFixed(2), order.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&shipping.FullName, "name", "", "recipient full name")
	cmd.Flags().StringVar(&shipping.Address, "address", "", "street address")
	cmd.Flags().StringVar(&shipping.City, "city", "", "city")
	cmd.Flags().StringVar(&shipping.PostalCode, "postal", "", "postal code")
	cmd.Flags().StringVar(&shipping.Phone, "phone", "", "contact phone")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("address")
	_ = cmd.MarkFlagRequired("city")
	_ = cmd.MarkFlagRequired("postal")
	_ = cmd.MarkFlagRequired("phone")
	return cmd
}

func (a *App) ordersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "Show your order history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRoute(guard.Authenticated); err != nil {
				return err
			}
			orders, err := a.client.MyOrders(cmd.Context())
			if err != nil {
				return err
			}
			a.printOrders(orders)
			return nil
		},
	}
}
