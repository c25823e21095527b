package bookings

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/crucial707/car-rental/cmd/cli/client"
	"github.com/crucial707/car-rental/cmd/cli/config"
	"github.com/crucial707/car-rental/cmd/cli/output"
	"github.com/crucial707/car-rental/internal/models"
	"github.com/spf13/cobra"
)

// InitBookings registers the bookings command group.
func InitBookings(rootCmd *cobra.Command) {
	bookingsCmd := &cobra.Command{
		Use:   "bookings",
		Short: "Create and list bookings",
	}

	bookingsCmd.AddCommand(createBookingCmd(), listBookingsCmd())
	rootCmd.AddCommand(bookingsCmd)
}

func createBookingCmd() *cobra.Command {
	var userID, carID int
	var start, end string
	var total float64

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Book a car",
		Long: `Book a car for a user between two dates (YYYY-MM-DD).
The API computes the total; --total is only checked against it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{
				"user_id":    userID,
				"car_id":     carID,
				"start_date": start,
				"end_date":   end,
			}
			if cmd.Flags().Changed("total") {
				payload["total_price"] = total
			}

			var out struct {
				Message string          `json:"message"`
				Booking *models.Booking `json:"booking"`
			}
			if err := client.New().Do(cmd.Context(), http.MethodPost, "/bookings", payload, &out); err != nil {
				return err
			}
			if out.Booking == nil {
				return errors.New("booking not returned by API")
			}

			b := out.Booking
			fmt.Fprintf(cmd.OutOrStdout(), "%s: #%d car %d for user %d, %s to %s, total %.2f\n",
				out.Message, b.ID, b.CarID, b.UserID, b.StartDate, b.EndDate, b.TotalPrice)
			return nil
		},
	}

	cmd.Flags().IntVar(&userID, "user", 0, "user id")
	cmd.Flags().IntVar(&carID, "car", 0, "car id")
	cmd.Flags().StringVar(&start, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&total, "total", 0, "expected total price")
	for _, name := range []string{"user", "car", "start", "end"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func listBookingsCmd() *cobra.Command {
	var email, password string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all bookings (admin)",
		Long: `List all bookings. Requires admin credentials, taken from --email/--password
or RENTAL_EMAIL/RENTAL_PASSWORD.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			envEmail, envPassword := config.Credentials()
			if email == "" {
				email = envEmail
			}
			if password == "" {
				password = envPassword
			}
			if email == "" {
				return errors.New("admin email required: pass --email or set RENTAL_EMAIL")
			}

			c := client.New()
			c.Email, c.Password = email, password

			var bookings []models.Booking
			if err := c.Do(cmd.Context(), http.MethodGet, "/admin/bookings", nil, &bookings); err != nil {
				return err
			}

			if asJSON {
				return output.PrintJSON(cmd.OutOrStdout(), bookings)
			}

			rows := make([][]interface{}, 0, len(bookings))
			for _, b := range bookings {
				rows = append(rows, []interface{}{b.ID, b.UserID, b.CarID, b.StartDate, b.EndDate, fmt.Sprintf("%.2f", b.TotalPrice)})
			}
			output.RenderTable(cmd.OutOrStdout(), []string{"ID", "User", "Car", "Start", "End", "Total"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&password, "password", "", "admin password")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON")
	return cmd
}
