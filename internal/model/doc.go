// Package model defines domain entities and data structures for the
// reservation service.
//
// The model package contains all struct definitions for domain objects,
// request/response types, and error definitions. Models are used across all
// layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - Resource: a bookable asset (book, meeting room, equipment)
//   - Reservation: a booked, bounded time interval for one resource by one patron
//
// # JSON Serialization
//
// All models use json struct tags for API serialization:
//
//	type Reservation struct {
//	    ID         string    `json:"id"`
//	    ResourceID string    `json:"resource_id"`
//	    StartTime  time.Time `json:"start_time"`
//	}
//
// # Booking Rule Constants
//
// The package defines the booking rule limits:
//
//	const (
//	    MaxActiveReservationsPerUser = 5
//	    MaxAdvanceBookingDays        = 30
//	    MinReservationDuration       = time.Hour
//	)
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string    `json:"type"`
//	    Title   string    `json:"title"`
//	    Status  int       `json:"status"`
//	    Detail  string    `json:"detail"`
//	}
package model
