// Package service implements the business logic layer for the Reserve API.
//
// The service package contains the booking rules, conflict detection, and
// orchestration of repository operations. Services are the primary
// abstraction between HTTP handlers and data access.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with repository dependencies
//   - Methods implement business operations with proper validation
//   - Errors are returned as sentinel errors or wrapped errors for context
//   - Context is passed through for cancellation and request-scoped values
//
// # Repository Interfaces
//
// Services define their own repository interfaces, allowing:
//
//   - Easy mocking for unit tests
//   - Decoupling from specific database implementations
//   - Clear contracts for data access requirements
//
// # Admission Control
//
// ReservationService serializes all writes for a resource through a
// per-resource mutex and re-validates the booking rules while the lock is
// held. When two requests race for the same slot, exactly one is admitted
// and the other fails with ErrSlotConflict.
//
// # Error Handling
//
// Services return domain-specific errors defined as package-level variables:
//
//	var (
//	    ErrSlotConflict  = errors.New("time slot conflicts with an existing reservation")
//	    ErrQuotaExceeded = errors.New("active reservation limit reached")
//	)
//
// Rule violations that carry limits (duration bounds, quota, advance window)
// are structured types that unwrap to the matching sentinel.
//
// # Example Usage
//
//	service := NewReservationService(ReservationServiceConfig{
//	    Repo:         reservationRepository,
//	    ResourceRepo: resourceRepository,
//	})
//	res, err := service.Create(ctx, &model.CreateReservationRequest{
//	    ResourceID: "resource:abc",
//	    UserID:     "user:xyz",
//	    StartTime:  "2026-09-02T10:00:00Z",
//	    EndTime:    "2026-09-02T12:00:00Z",
//	})
package service
