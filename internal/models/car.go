package models

// Car is one vehicle in the rental fleet.
type Car struct {
	ID          int     `json:"id"`
	Make        string  `json:"make"`
	Model       string  `json:"model"`
	PricePerDay float64 `json:"price_per_day"`
	Category    string  `json:"category"`
	Available   bool    `json:"available"`
}
