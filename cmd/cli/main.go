package main

import (
	"fmt"
	"os"

	"github.com/crucial707/car-rental/cmd/cli/bookings"
	"github.com/crucial707/car-rental/cmd/cli/cars"
	"github.com/crucial707/car-rental/cmd/cli/root"
	"github.com/crucial707/car-rental/cmd/cli/users"
)

func main() {
	rootCmd := root.GetRoot()
	users.InitUsers(rootCmd)
	cars.InitCars(rootCmd)
	bookings.InitBookings(rootCmd)

	// Execute the root Cobra command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
