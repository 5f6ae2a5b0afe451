package domain

import "github.com/shopspring/decimal"

// Scooter is a rentable vehicle. IsRented is true exactly when one open
// rental period references the scooter.
type Scooter struct {
	ID             string          `json:"id"`
	PricePerMinute decimal.Decimal `json:"price_per_minute"`
	IsRented       bool            `json:"is_rented"`
}
