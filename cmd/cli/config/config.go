package config

import "os"

const defaultAPIURL = "http://localhost:8080"

// APIURL returns the base URL for the rental API.
// It can be overridden with the RENTAL_API_URL environment variable.
func APIURL() string {
	if v := os.Getenv("RENTAL_API_URL"); v != "" {
		return v
	}
	return defaultAPIURL
}

// Credentials returns the default admin email and password from
// RENTAL_EMAIL and RENTAL_PASSWORD. Flags take precedence over both.
func Credentials() (email, password string) {
	return os.Getenv("RENTAL_EMAIL"), os.Getenv("RENTAL_PASSWORD")
}
