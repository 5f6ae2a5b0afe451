package jobs

import (
	"context"
	"time"

	"scooter-rental/internal/logger"
	"scooter-rental/internal/repository"
)

// ReportDailyIncome logs the year-to-date income including rentals that are
// still open, priced through the current moment.
func (jr *JobRunner) ReportDailyIncome() {
	jr.runWithRecovery("ReportDailyIncome", func() {
		ctx := context.Background()
		now := time.Now().UTC()
		year := now.Year()

		income, err := jr.rentalSvc.GetIncome(ctx, &year, true, &now)
		if err != nil {
			logger.Error("Failed to compute income report", "error", err)
			return
		}

		logger.Info("Daily income report",
			"year", year,
			"income", income.String(),
			"as_of", now.Format(time.RFC3339))
	})
}

// AuditOpenRentals flags rentals that have been open longer than the
// configured threshold. They keep accruing cost, so a stale one usually
// means a missed end-rent call.
func (jr *JobRunner) AuditOpenRentals() {
	jr.runWithRecovery("AuditOpenRentals", func() {
		ctx := context.Background()
		threshold := time.Duration(jr.config.Scheduler.OpenRentalAuditHours) * time.Hour
		cutoff := time.Now().UTC().Add(-threshold)

		open := false
		periods, err := jr.periodRepo.List(ctx, repository.RentalPeriodFilter{Completed: &open})
		if err != nil {
			logger.Error("Failed to list open rental periods", "error", err)
			return
		}

		stale := 0
		for _, p := range periods {
			if p.StartTime.Before(cutoff) {
				stale++
				logger.Warn("Rental open past audit threshold",
					"rental_period_id", p.ID,
					"scooter_id", p.ScooterID,
					"start_time", p.StartTime.Format(time.RFC3339))
			}
		}

		logger.Info("Open rental audit finished", "open", len(periods), "stale", stale)
	})
}
