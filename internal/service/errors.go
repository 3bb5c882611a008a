package service

import (
	"errors"
	"fmt"
	"time"
)

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Lookup Errors =====
var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrResourceNotFound    = errors.New("resource not found")
)

// ===== Request Shape Errors =====
var (
	ErrResourceRequired = errors.New("resource reference is required")
	ErrUserRequired     = errors.New("user reference is required")
	ErrMissingTimes     = errors.New("start time and end time are required")

	ErrInvalidStartTimeFormat = errors.New("invalid start_time format")
	ErrInvalidEndTimeFormat   = errors.New("invalid end_time format")
)

// ===== Booking Rule Errors =====
//
// The structured rule errors below (DurationOutOfRangeError and friends)
// unwrap to these sentinels, so handlers can match with errors.Is and still
// pull limits out with errors.As when building a response.
var (
	ErrInvalidTimeOrdering = errors.New("end time must be after start time")
	ErrDurationOutOfRange  = errors.New("reservation duration out of range")
	ErrQuotaExceeded       = errors.New("active reservation limit reached")
	ErrSlotConflict        = errors.New("time slot conflicts with an existing reservation")
	ErrTooSoon             = errors.New("reservation requires advance notice")
	ErrTooFarInAdvance     = errors.New("reservation is too far in advance")
)

// ===== Store Errors =====
var (
	ErrStoreFailure = errors.New("reservation store failure")
)

// DurationOutOfRangeError reports a reservation whose length violates the
// permitted range.
type DurationOutOfRangeError struct {
	Min    time.Duration
	Max    time.Duration
	Actual time.Duration
}

func (e *DurationOutOfRangeError) Error() string {
	return fmt.Sprintf("reservation duration %s is outside the allowed range [%s, %s]", e.Actual, e.Min, e.Max)
}

func (e *DurationOutOfRangeError) Unwrap() error { return ErrDurationOutOfRange }

// QuotaExceededError reports how many active reservations the user holds
// against the limit.
type QuotaExceededError struct {
	Limit  int
	Active int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("user holds %d active reservations, limit is %d", e.Active, e.Limit)
}

func (e *QuotaExceededError) Unwrap() error { return ErrQuotaExceeded }

// TooSoonError reports a start time inside the minimum advance notice window.
type TooSoonError struct {
	MinNotice time.Duration
	Notice    time.Duration
}

func (e *TooSoonError) Error() string {
	return fmt.Sprintf("reservation starts in %s, at least %s notice is required", e.Notice, e.MinNotice)
}

func (e *TooSoonError) Unwrap() error { return ErrTooSoon }

// TooFarInAdvanceError reports a reservation date beyond the booking horizon.
type TooFarInAdvanceError struct {
	MaxDays int
	Days    int
}

func (e *TooFarInAdvanceError) Error() string {
	return fmt.Sprintf("reservation is %d days ahead, bookings are limited to %d days", e.Days, e.MaxDays)
}

func (e *TooFarInAdvanceError) Unwrap() error { return ErrTooFarInAdvance }

// StoreError wraps a repository failure so callers can match ErrStoreFailure
// while the underlying database error stays on the chain.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("store %s: %v", e.Op, e.Err) }

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrStoreFailure }
