package domain

import (
	"errors"
	"fmt"
	"time"
)

// Expected, recoverable outcomes of lifecycle transitions. The HTTP layer
// maps these to response codes; none of them is a fault.
var (
	ErrScooterNotFound      = errors.New("scooter not found")
	ErrScooterExists        = errors.New("scooter already exists")
	ErrScooterAlreadyRented = errors.New("scooter already rented")
	ErrScooterNotRented     = errors.New("scooter not rented")

	// ErrMissingRentalPeriod signals a data inconsistency: the scooter flag
	// claims rented but no open period backs it. Still returned as a normal
	// error result, not a panic.
	ErrMissingRentalPeriod = errors.New("a rented scooter was found but a matching rental period does not exist")
)

// InvalidEndTimeError reports an end-rent attempt at or before the period's
// start time. It carries both timestamps for diagnostics.
type InvalidEndTimeError struct {
	StartTime time.Time
	EndTime   time.Time
}

func (e *InvalidEndTimeError) Error() string {
	return fmt.Sprintf("rental period was started at %s and cannot end at %s",
		e.StartTime.Format(time.RFC3339), e.EndTime.Format(time.RFC3339))
}
