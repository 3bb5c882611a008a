// Package handler provides HTTP request handlers for the Reserve API.
//
// The handler package contains all HTTP endpoint implementations organized by domain.
// Each handler struct encapsulates the dependencies needed to serve requests for a
// specific feature area (reservations, resource catalog).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts service dependencies
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteData: Single resource with optional HATEOAS links
//   - WriteCollection: List of resources
//   - WriteJSON: Raw JSON response
//   - WriteError: RFC 9457 Problem Details error response
//
// # Example Usage
//
//	handler := NewReservationHandler(reservationService)
//	mux.HandleFunc("POST /v1/reservations", handler.CreateReservation)
//	mux.HandleFunc("GET /v1/reservations/{reservationId}", handler.GetReservation)
package handler
