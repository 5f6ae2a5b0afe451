package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

const minutesPerDay = 1440

// RentalCost returns the billable amount for a single rental interval at
// pricePerMinute, capping the amount attributable to any one calendar day
// at maxPerDay.
//
// An interval contained in one calendar day is billed minutes * price,
// capped once. An interval spanning days is split into the partial first
// day, the partial last day and the whole days strictly between them; each
// segment is capped independently. Minute counts are fractional, not
// truncated to whole minutes.
func RentalCost(startTime, endTime time.Time, pricePerMinute, maxPerDay decimal.Decimal) decimal.Decimal {
	startDate := dateOf(startTime)
	endDate := dateOf(endTime)

	if startDate.Equal(endDate) {
		return capped(minutesBetween(startTime, endTime).Mul(pricePerMinute), maxPerDay)
	}

	firstDay := minutesBetween(startTime, startDate.AddDate(0, 0, 1)).Mul(pricePerMinute)
	lastDay := minutesBetween(endDate, endTime).Mul(pricePerMinute)
	income := capped(firstDay, maxPerDay).Add(capped(lastDay, maxPerDay))

	// Whole days strictly between the two boundary days.
	fullDays := int64(endDate.Sub(startDate).Hours()/24) - 1
	if fullDays > 0 {
		perDay := capped(decimal.NewFromInt(minutesPerDay).Mul(pricePerMinute), maxPerDay)
		income = income.Add(perDay.Mul(decimal.NewFromInt(fullDays)))
	}

	return income
}

// dateOf truncates a timestamp to midnight of its calendar day, keeping
// the location.
func dateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func minutesBetween(from, to time.Time) decimal.Decimal {
	return decimal.NewFromInt(int64(to.Sub(from))).Div(decimal.NewFromInt(int64(time.Minute)))
}

func capped(amount, max decimal.Decimal) decimal.Decimal {
	if amount.GreaterThan(max) {
		return max
	}
	return amount
}
