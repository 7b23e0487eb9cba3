package services

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by this package wraps exactly one
// of these, so callers can branch with errors.Is without matching on the
// specific condition.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

var (
	ErrInvalidTimeRange = fmt.Errorf("%w: end time must be after start time", ErrValidation)
	ErrInvalidDateRange = fmt.Errorf("%w: end date must not be before start date", ErrValidation)
	ErrInvalidDayOfWeek = fmt.Errorf("%w: day of week must be between 0 and 6", ErrValidation)
	ErrInvalidMonth     = fmt.Errorf("%w: month must be between 1 and 12", ErrValidation)
	ErrNameRequired     = fmt.Errorf("%w: first and last name are required", ErrValidation)
	ErrSlotOverlap      = fmt.Errorf("%w: time slot overlaps an existing availability", ErrValidation)

	ErrConsultantNotFound = fmt.Errorf("%w: consultant", ErrNotFound)
	ErrUserNotFound       = fmt.Errorf("%w: user", ErrNotFound)
	ErrSlotNotFound       = fmt.Errorf("%w: availability slot", ErrNotFound)
	ErrPatternNotFound    = fmt.Errorf("%w: recurring availability", ErrNotFound)
	ErrBookingNotFound    = fmt.Errorf("%w: booking", ErrNotFound)

	ErrSlotAlreadyBooked = fmt.Errorf("%w: availability slot is already booked", ErrConflict)
	ErrSlotBooked        = fmt.Errorf("%w: booked availability slots cannot be deleted", ErrConflict)
	ErrUserHasBookings   = fmt.Errorf("%w: user still has bookings", ErrConflict)

	// ErrReserveContended is the transient variant of ErrConflict: the
	// reserve lost the database lock race and the caller may retry.
	ErrReserveContended = fmt.Errorf("%w: reservation contended, retry", ErrConflict)
)
