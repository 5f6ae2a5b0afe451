package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RentalPeriod records one rental of a scooter. A nil EndTime means the
// rental is still open. PricePerMinute is a snapshot taken when the rental
// started; later price changes on the scooter do not affect billing for
// this period.
type RentalPeriod struct {
	ID             string          `json:"id"`
	ScooterID      string          `json:"scooter_id"`
	StartTime      time.Time       `json:"start_time"`
	PricePerMinute decimal.Decimal `json:"price_per_minute"`
	EndTime        *time.Time      `json:"end_time,omitempty"`
}

// Completed reports whether the rental has been ended.
func (p *RentalPeriod) Completed() bool {
	return p.EndTime != nil
}
