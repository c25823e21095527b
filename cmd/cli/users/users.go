package users

import (
	"fmt"
	"net/http"

	"github.com/crucial707/car-rental/cmd/cli/client"
	"github.com/spf13/cobra"
)

type identity struct {
	Message string `json:"message"`
	UserID  int    `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
}

// ==========================
// CLI Command Init
// ==========================
func InitUsers(rootCmd *cobra.Command) {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Register users and check credentials",
		Long: `Register a user with the rental API or verify an email/password pair.
The API issues no session: commands that need an admin send credentials on every call.`,
	}

	usersCmd.AddCommand(registerCmd(), loginCmd())
	rootCmd.AddCommand(usersCmd)
}

// ==========================
// Register User
// ==========================
func registerCmd() *cobra.Command {
	var email, password string
	var admin bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{
				"email":    email,
				"password": password,
				"is_admin": admin,
			}

			var out identity
			if err := client.New().Do(cmd.Context(), http.MethodPost, "/register", payload, &out); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (id %d, admin %t)\n", out.Message, out.UserID, out.IsAdmin)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "user email")
	cmd.Flags().StringVar(&password, "password", "", "user password")
	cmd.Flags().BoolVar(&admin, "admin", false, "register the user as an administrator")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// ==========================
// Login User
// ==========================
func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Verify an email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]string{
				"email":    email,
				"password": password,
			}

			var out identity
			if err := client.New().Do(cmd.Context(), http.MethodPost, "/login", payload, &out); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (id %d, admin %t)\n", out.Message, out.UserID, out.IsAdmin)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "user email")
	cmd.Flags().StringVar(&password, "password", "", "user password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
