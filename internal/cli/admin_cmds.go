package cli

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/quickbite/storefront/internal/core/domain"
	"github.com/quickbite/storefront/internal/guard"
)

func (a *App) adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Back-office commands (admin role required)",
	}
	cmd.AddCommand(
		a.adminProductsCmd(),
		a.adminOrdersCmd(),
		a.adminUsersCmd(),
		a.adminStatsCmd(),
		a.adminReportsCmd(),
	)
	return cmd
}

func (a *App) adminProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRoute(guard.AdminOnly); err != nil {
				return err
			}
			products, err := a.client.Products(cmd.Context())
			if err != nil {
				return err
			}
			a.printProducts(products)
			return nil
		},
	}

	var name, desc, category, price, image string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRoute(guard.AdminOnly); err != nil {
				return err
			}
			p, err := buildProduct(0, name, desc, category, price, image)
			if err != nil {
				return err
			}
			created, err := a.client.CreateProduct(cmd.Context(), p)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "product #%d %q created\n", created.ID, created.Name)
			return nil
		},
	}
	add.Flags().StringVar(&name, "name", "", "product name")
	add.Flags().StringVar(&desc, "description", "", "description")
	add.Flags().StringVar(&category, "category", "", "category")
	add.Flags().StringVar(&price, "price", "", "unit price, e.g. 9.50")
	add.Flags().StringVar(&image, "image", "", "image URL")
	_ = add.MarkFlagRequired("name")
	_ = add.MarkFlagRequired("category")
	_ = add.MarkFlagRequired("price")

	var uname, udesc, ucategory, uprice, uimage string
	update := &cobra.Command{
		Use:   "update <product-id>",
		Short: "Update a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRoute(guard.AdminOnly); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			p, err := buildProduct(id, uname, udesc, ucategory, uprice, uimage)
			if err != nil {
				return err
			}
			updated, err := a.client.UpdateProduct(cmd.Context(), p)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "product #%d updated\n", updated.ID)
			return nil
		},
	}
	update.Flags().StringVar(&uname, "name", "", "product name")
	update.Flags().StringVar(&udesc, "description", "", "description")
	update.Flags().StringVar(&ucategory, "category", "", "category")
	update.Flags().StringVar(&uprice, "price", "", "unit price")
	update.Flags().StringVar(&uimage, "image", "", "image URL")
	_ = update.MarkFlagRequired("name")
	_ = update.MarkFlagRequired("category")
	_ = update.MarkFlagRequired("price")

	del := &cobra.Command{
		Use:   "delete <product-id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRoute(guard.AdminOnly); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			if err := a.client.DeleteProduct(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "product #%d deleted\n", id)
			return nil
		},
	}

	cmd.AddCommand(add, update, del)
	return cmd
}

func buildProduct(id int64, name, desc, category, price, image string) (*domain.Product, error) {
	value, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q", price)
	}
	if value.IsNegative() {
		return nil, fmt.Errorf("price must not be negative")
	}
	return &domain.Product{
		ID:          id,
		Name:        name,
		Description: desc,
		Category:    category,
		Price:       value,
		ImageURL:    image,
	}, nil
}

func (a *App) adminOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List all orders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRoute(guard.AdminOnly); err != nil {
				return err
			}
			orders, err := a.client.AllOrders(cmd.Context())
			if err != nil {
				return err
			}
			a.printOrders(orders)
			return nil
		},
	}

	status := &cobra.Command{
		Use:   "status <order-id> <status>",
		Short: "Set an order's fulfilment status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRoute(guard.AdminOnly); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}
			next := domain.OrderStatus(args[1])
			if !domain.ValidOrderStatus(next) {
				return fmt.Errorf("unknown status %q", args[1])
			}
			order, err := a.client.SetOrderStatus(cmd.Context(), id, next)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "order #%d is now %s\n", order.ID, order.Status)
			return nil
		},
	}

	cmd.AddCommand(status)
	return cmd
}

func (a *App) adminUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List user accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRoute(guard.AdminOnly); err != nil {
				return err
			}
			users, err := a.client.AllUsers(cmd.Context())
			if err != nil {
				return err
			}
			a.printUsers(users)
			return nil
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle <user-id>",
		Short: "Enable or disable an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRoute(guard.AdminOnly); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}
			user, err := a.client.ToggleUserStatus(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "user #%d enabled=%t\n", user.ID, user.Enabled)
			return nil
		},
	}

	cmd.AddCommand(toggle)
	return cmd
}

func (a *App) adminStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Dashboard summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRoute(guard.AdminOnly); err != nil {
				return err
			}
			st, err := a.client.Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "orders:  %d (%d pending)\n", st.TotalOrders, st.PendingOrders)
			fmt.Fprintf(a.out, "users:   %d\n", st.TotalUsers)
			fmt.Fprintf(a.out, "revenue: $%s\n", st.TotalRevenue.StringFixed(2))
			return nil
		},
	}
}

func (a *App) adminReportsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reports",
		Short: "Orders-per-day report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRoute(guard.AdminOnly); err != nil {
				return err
			}
			rep, err := a.client.Analytics(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "revenue $%s over %d orders from %d users\n",
				rep.TotalRevenue.StringFixed(2), rep.TotalOrders, rep.TotalUsers)
			for _, b := range rep.OrdersByDay {
				fmt.Fprintf(a.out, "%s  %d\n", b.Day, b.Orders)
			}
			return nil
		},
	}
}
