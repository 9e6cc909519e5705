package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quickbite/storefront/internal/guard"
)

func (a *App) profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit your profile",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.requireRoute(guard.Authenticated); err != nil {
				return err
			}
			u := a.store.User()
			fmt.Fprintf(a.out, "name:    %s\n", u.FullName())
			fmt.Fprintf(a.out, "email:   %s\n", u.Email)
			fmt.Fprintf(a.out, "contact: %s\n", u.Contact)
			if u.Address != "" {
				fmt.Fprintf(a.out, "address: %s, %s %s\n", u.Address, u.City, u.PostalCode)
			}
			if u.ProfileImage != "" {
				fmt.Fprintf(a.out, "image:   %s\n", u.ProfileImage)
			}
			return nil
		},
	}

	cmd.AddCommand(a.profileUpdateCmd(), a.profilePasswordCmd(), a.profileImageCmd())
	return cmd
}

func (a *App) profileUpdateCmd() *cobra.Command {
	var fname, lname, contact, address, city, postal string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRoute(guard.Authenticated); err != nil {
				return err
			}

			u := a.store.User()
			if fname != "" {
				u.FirstName = fname
			}
			if lname != "" {
				u.LastName = lname
			}
			if contact != "" {
				u.Contact = contact
			}
			if address != "" {
				u.Address = address
			}
			if city != "" {
				u.City = city
			}
			if postal != "" {
				u.PostalCode = postal
			}

			ctx := cmd.Context()
			updated, err := a.client.UpdateProfile(ctx, u)
			if err != nil {
				return err
			}
			if err := a.store.UpdateUser(ctx, updated); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "profile updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&fname, "fname", "", "first name")
	cmd.Flags().StringVar(&lname, "lname", "", "last name")
	cmd.Flags().StringVar(&contact, "contact", "", "contact number")
	cmd.Flags().StringVar(&address, "address", "", "street address")
	cmd.Flags().StringVar(&city, "city", "", "city")
	cmd.Flags().StringVar(&postal, "postal", "", "postal code")
	return cmd
}

func (a *App) profilePasswordCmd() *cobra.Command {
	var current, next string

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Change your password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRoute(guard.Authenticated); err != nil {
				return err
			}
			if err := a.client.ChangePassword(cmd.Context(), current, next); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "password changed")
			return nil
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "current password")
	cmd.Flags().StringVar(&next, "new", "", "new password")
	_ = cmd.MarkFlagRequired("current")
	_ = cmd.MarkFlagRequired("new")
	return cmd
}

func (a *App) profileImageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "image <path>",
		Short: "Upload a profile image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRoute(guard.Authenticated); err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			updated, err := a.client.UploadProfileImage(ctx, filepath.Base(args[0]), data)
			if err != nil {
				return err
			}
			if err := a.store.UpdateUser(ctx, updated); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "profile image set to %s\n", updated.ProfileImage)
			return nil
		},
	}
}
