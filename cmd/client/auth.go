package main

import (
	"github.com/MKhiriev/go-ride-hail/internal/client"
	"github.com/MKhiriev/go-ride-hail/models"
	"github.com/spf13/cobra"
)

func registerCmd(withClient runWithClient) *cobra.Command {
	var req models.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: withClient(func(cmd *cobra.Command, c client.Client, _ []string) error {
			return c.Register(cmd.Context(), req)
		}),
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "account e-mail")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password (at least 8 characters)")
	cmd.Flags().StringVar(&req.Name, "name", "", "display name")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&req.Role, "role", "", "user, rider or driver (default user)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func loginCmd(withClient runWithClient) *cobra.Command {
	var creds models.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the token",
		Args:  cobra.NoArgs,
		RunE: withClient(func(cmd *cobra.Command, c client.Client, _ []string) error {
			return c.Login(cmd.Context(), creds)
		}),
	}

	cmd.Flags().StringVar(&creds.Email, "email", "", "account e-mail")
	cmd.Flags().StringVar(&creds.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func logoutCmd(withClient runWithClient) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored token",
		Args:  cobra.NoArgs,
		RunE: withClient(func(_ *cobra.Command, c client.Client, _ []string) error {
			return c.Logout()
		}),
	}
}

func whoamiCmd(withClient runWithClient) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the identity behind the stored token",
		Args:  cobra.NoArgs,
		RunE: withClient(func(cmd *cobra.Command, c client.Client, _ []string) error {
			return c.WhoAmI(cmd.Context())
		}),
	}
}
