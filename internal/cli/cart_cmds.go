package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quickbite/storefront/internal/guard"
)

func (a *App) cartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the shopping cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRoute(guard.Authenticated); err != nil {
				return err
			}
			a.printCart(a.store.CartItems())
			return nil
		},
	}

	cmd.AddCommand(a.cartAddCmd(), a.cartUpdateCmd(), a.cartRemoveCmd())
	return cmd
}

func (a *App) cartAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id> <quantity>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRoute(guard.Authenticated); err != nil {
				return err
			}

			ctx := cmd.Context()
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}

			product, err := a.client.Product(ctx, id)
			if err != nil {
				return err
			}
			if err := a.store.AddToCart(ctx, *product, qty); err != nil {
				return err
			}
			a.printCart(a.store.CartItems())
			return nil
		},
	}
}

func (a *App) cartUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <line-id> <quantity>",
		Short: "Change a cart line's quantity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRoute(guard.Authenticated); err != nil {
				return err
			}

			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			if err := a.store.UpdateQuantity(cmd.Context(), args[0], qty); err != nil {
				return err
			}
			a.printCart(a.store.CartItems())
			return nil
		},
	}
}

func (a *App) cartRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <line-id>",
		Short: "Remove a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRoute(guard.Authenticated); err != nil {
				return err
			}
			if err := a.store.RemoveFromCart(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.printCart(a.store.CartItems())
			return nil
		},
	}
}
