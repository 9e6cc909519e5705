package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quickbite/storefront/internal/guard"
)

func (a *App) loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and pull your cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRoute(guard.PublicOnly); err != nil {
				return err
			}

			ctx := cmd.Context()
			token, user, err := a.client.Login(ctx, email, password)
			if err != nil {
				return err
			}
			if err := a.store.Login(ctx, token, user); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "signed in as %s (%s)\n", user.FullName(), user.Email)
			fmt.Fprintf(a.out, "cart: %d item(s)\n", len(a.store.CartItems()))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (a *App) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear stored credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.store.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "signed out")
			return nil
		},
	}
}

func (a *App) registerCmd() *cobra.Command {
	var fname, lname, email, contact, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new customer account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRoute(guard.PublicOnly); err != nil {
				return err
			}

			user, err := a.client.Register(cmd.Context(), fname, lname, email, contact, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "account created for %s; run `storefront login` to sign in\n", user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&fname, "fname", "", "first name")
	cmd.Flags().StringVar(&lname, "lname", "", "last name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&contact, "contact", "", "contact number")
	cmd.Flags().StringVar(&password, "password", "", "password (min 6 chars)")
	_ = cmd.MarkFlagRequired("fname")
	_ = cmd.MarkFlagRequired("lname")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (a *App) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in identity",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.requireRoute(guard.Authenticated); err != nil {
				return err
			}
			u := a.store.User()
			fmt.Fprintf(a.out, "%s <%s> role=%s\n", u.FullName(), u.Email, u.Role)
			return nil
		},
	}
}
