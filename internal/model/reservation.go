package model

import "time"

// Booking rule limits. These are the defaults; config may tighten or loosen
// them per deployment, but the invariants keep the same shape.
const (
	MaxActiveReservationsPerUser = 5
	MaxAdvanceBookingDays        = 30
	MinAdvanceNotice             = time.Hour
	MinReservationDuration       = time.Hour
	MaxReservationDuration       = 8 * time.Hour
)

// Reservation is a booked, bounded time interval for one resource by one
// patron. ReservationID is the externally visible token assigned at
// admission; ID is the store record id. ReservationDate is the UTC calendar
// date of StartTime, derived at admission time.
type Reservation struct {
	ID              string    `json:"id"`
	ReservationID   string    `json:"reservation_id"`
	ResourceID      string    `json:"resource_id"`
	UserID          string    `json:"user_id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	ReservationDate time.Time `json:"reservation_date"`
	CreatedOn       time.Time `json:"created_on"`
	UpdatedOn       time.Time `json:"updated_on"`
}

// Duration returns the booked interval length.
func (r *Reservation) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// Overlaps reports whether the reservation's [StartTime, EndTime) interval
// intersects [start, end). Intervals that merely touch do not overlap.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartTime.Before(end) && r.EndTime.After(start)
}

// CreateReservationRequest is the payload for booking a slot. Times are
// RFC 3339 strings; the service parses and validates them.
type CreateReservationRequest struct {
	ResourceID string `json:"resource_id"`
	UserID     string `json:"user_id"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

// UpdateReservationRequest moves a reservation within its resource's
// calendar. Moving a reservation to a different resource is modeled as
// cancel followed by create, so no resource_id field exists here.
type UpdateReservationRequest struct {
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
}

// AvailabilityResult is the response for a slot availability probe.
type AvailabilityResult struct {
	ResourceID string    `json:"resource_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Available  bool      `json:"available"`
}
