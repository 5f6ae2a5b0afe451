package jobs

import (
	"scooter-rental/internal/config"
	"scooter-rental/internal/logger"
	"scooter-rental/internal/repository"
	"scooter-rental/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	periodRepo repository.RentalPeriodRepository
	rentalSvc  service.RentalService
	config     *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(periodRepo repository.RentalPeriodRepository, rentalSvc service.RentalService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		periodRepo: periodRepo,
		rentalSvc:  rentalSvc,
		config:     cfg,
	}
}

// Config exposes the configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.ReportDailyIncome()
	jr.AuditOpenRentals()
}
