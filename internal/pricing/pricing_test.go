package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestRentalCost_SameDay(t *testing.T) {
	t.Run("One hour at 0.1 per minute", func(t *testing.T) {
		start := time.Date(2022, 1, 1, 12, 0, 0, 0, time.UTC)
		end := time.Date(2022, 1, 1, 13, 0, 0, 0, time.UTC)

		cost := RentalCost(start, end, d("0.1"), d("1000"))
		assert.True(t, cost.Equal(d("6")), "expected 6, got %s", cost)
	})

	t.Run("Capped at max per day", func(t *testing.T) {
		start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2022, 1, 1, 23, 0, 0, 0, time.UTC)

		cost := RentalCost(start, end, d("1"), d("20"))
		assert.True(t, cost.Equal(d("20")), "expected 20, got %s", cost)
	})

	t.Run("Fractional minutes are not truncated", func(t *testing.T) {
		start := time.Date(2022, 1, 1, 12, 0, 0, 0, time.UTC)
		end := start.Add(90 * time.Second)

		cost := RentalCost(start, end, d("2"), d("1000"))
		assert.True(t, cost.Equal(d("3")), "expected 3, got %s", cost)
	})

	t.Run("Zero duration", func(t *testing.T) {
		at := time.Date(2022, 1, 1, 12, 0, 0, 0, time.UTC)

		cost := RentalCost(at, at, d("1"), d("1000"))
		assert.True(t, cost.IsZero())
	})
}

func TestRentalCost_MultiDay(t *testing.T) {
	t.Run("Two days with both halves capped", func(t *testing.T) {
		// 12:00 Jan 1 to 12:00 Jan 2: 720 minutes either side of midnight,
		// each worth 720 but capped to 500.
		start := time.Date(2022, 1, 1, 12, 0, 0, 0, time.UTC)
		end := time.Date(2022, 1, 2, 12, 0, 0, 0, time.UTC)

		cost := RentalCost(start, end, d("1"), d("500"))
		assert.True(t, cost.Equal(d("1000")), "expected 1000, got %s", cost)
	})

	t.Run("Three day span with one full day between", func(t *testing.T) {
		// 23:00 day 1 to 01:00 day 3: 60 + 60 minutes on the boundary days,
		// one full day of 1440 minutes under the 2000 cap.
		start := time.Date(2022, 1, 1, 23, 0, 0, 0, time.UTC)
		end := time.Date(2022, 1, 3, 1, 0, 0, 0, time.UTC)

		cost := RentalCost(start, end, d("1"), d("2000"))
		assert.True(t, cost.Equal(d("1560")), "expected 1560, got %s", cost)
	})

	t.Run("Full days between are capped independently", func(t *testing.T) {
		// 23:00 day 1 to 01:00 day 4: two full days, each capped from
		// 1440 down to 100; boundary days contribute 60 each.
		start := time.Date(2022, 1, 1, 23, 0, 0, 0, time.UTC)
		end := time.Date(2022, 1, 4, 1, 0, 0, 0, time.UTC)

		cost := RentalCost(start, end, d("1"), d("100"))
		assert.True(t, cost.Equal(d("320")), "expected 320, got %s", cost)
	})

	t.Run("Midnight boundary leaves empty last day", func(t *testing.T) {
		// Ending exactly at midnight: last day contributes zero minutes,
		// the day before counts as the first day only.
		start := time.Date(2022, 1, 1, 23, 0, 0, 0, time.UTC)
		end := time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC)

		cost := RentalCost(start, end, d("1"), d("1000"))
		assert.True(t, cost.Equal(d("60")), "expected 60, got %s", cost)
	})

	t.Run("Month boundary", func(t *testing.T) {
		start := time.Date(2022, 1, 31, 23, 0, 0, 0, time.UTC)
		end := time.Date(2022, 2, 1, 1, 0, 0, 0, time.UTC)

		cost := RentalCost(start, end, d("1"), d("2000"))
		assert.True(t, cost.Equal(d("120")), "expected 120, got %s", cost)
	})
}
