package cars

import (
	"fmt"
	"net/http"

	"github.com/crucial707/car-rental/cmd/cli/client"
	"github.com/crucial707/car-rental/cmd/cli/output"
	"github.com/crucial707/car-rental/internal/models"
	"github.com/spf13/cobra"
)

// ==========================
// Init Cars
// ==========================
func InitCars(rootCmd *cobra.Command) {
	carsCmd := &cobra.Command{
		Use:   "cars",
		Short: "Manage the fleet",
	}

	carsCmd.AddCommand(
		listCarsCmd(),
		addCarCmd(),
		deleteCarCmd(),
	)

	rootCmd.AddCommand(carsCmd)
}

// ==========================
// LIST
// ==========================
func listCarsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cars",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cars []models.Car
			if err := client.New().Do(cmd.Context(), http.MethodGet, "/cars", nil, &cars); err != nil {
				return err
			}

			if asJSON {
				return output.PrintJSON(cmd.OutOrStdout(), cars)
			}

			rows := make([][]interface{}, 0, len(cars))
			for _, c := range cars {
				rows = append(rows, []interface{}{c.ID, c.Make, c.Model, fmt.Sprintf("%.2f", c.PricePerDay), c.Category, c.Available})
			}
			output.RenderTable(cmd.OutOrStdout(), []string{"ID", "Make", "Model", "Price/Day", "Category", "Available"}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON")
	return cmd
}

// ==========================
// ADD
// ==========================
func addCarCmd() *cobra.Command {
	var carMake, model, category string
	var price float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a car to the fleet",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{
				"make":          carMake,
				"model":         model,
				"price_per_day": price,
				"category":      category,
			}

			var out struct {
				Message string      `json:"message"`
				Car     *models.Car `json:"car"`
			}
			if err := client.New().Do(cmd.Context(), http.MethodPost, "/cars", payload, &out); err != nil {
				return err
			}

			if out.Car == nil {
				fmt.Fprintln(cmd.OutOrStdout(), out.Message)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: #%d %s %s\n", out.Message, out.Car.ID, out.Car.Make, out.Car.Model)
			return nil
		},
	}

	cmd.Flags().StringVar(&carMake, "make", "", "manufacturer")
	cmd.Flags().StringVar(&model, "model", "", "model name")
	cmd.Flags().Float64Var(&price, "price", 0, "price per day")
	cmd.Flags().StringVar(&category, "category", "", "category, e.g. Sedan or SUV")
	for _, name := range []string{"make", "model", "price", "category"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

// ==========================
// DELETE
// ==========================
func deleteCarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a car",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var out struct {
				Message string `json:"message"`
			}
			if err := client.New().Do(cmd.Context(), http.MethodDelete, "/cars/"+args[0], nil, &out); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			return nil
		},
	}
}
