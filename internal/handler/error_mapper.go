package handler

import (
	"errors"

	"github.com/openshelf/reserve/api/internal/model"
	"github.com/openshelf/reserve/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrReservationNotFound):
		return model.NewNotFoundError("reservation")
	case errors.Is(err, service.ErrResourceNotFound):
		return model.NewNotFoundError("resource")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrSlotConflict):
		return model.NewConflictError(err.Error())

	// ===== Quota Errors → 422 =====
	case errors.Is(err, service.ErrQuotaExceeded):
		var quotaErr *service.QuotaExceededError
		if errors.As(err, &quotaErr) {
			return model.NewLimitExceededError("active reservations", quotaErr.Limit, quotaErr.Active)
		}
		return model.NewLimitExceededError("active reservations", model.MaxActiveReservationsPerUser, model.MaxActiveReservationsPerUser)

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrResourceRequired):
		return model.NewValidationError([]model.FieldError{{Field: "resource_id", Message: err.Error()}})
	case errors.Is(err, service.ErrUserRequired):
		return model.NewValidationError([]model.FieldError{{Field: "user_id", Message: err.Error()}})
	case errors.Is(err, service.ErrMissingTimes):
		return model.NewValidationError([]model.FieldError{
			{Field: "start_time", Message: err.Error()},
			{Field: "end_time", Message: err.Error()},
		})
	case errors.Is(err, service.ErrInvalidStartTimeFormat):
		return model.NewValidationError([]model.FieldError{{Field: "start_time", Message: err.Error()}})
	case errors.Is(err, service.ErrInvalidEndTimeFormat):
		return model.NewValidationError([]model.FieldError{{Field: "end_time", Message: err.Error()}})
	case errors.Is(err, service.ErrInvalidTimeOrdering):
		return model.NewValidationError([]model.FieldError{{Field: "end_time", Message: err.Error()}})
	case errors.Is(err, service.ErrDurationOutOfRange):
		return model.NewValidationError([]model.FieldError{{Field: "end_time", Message: err.Error()}})
	case errors.Is(err, service.ErrTooSoon):
		return model.NewValidationError([]model.FieldError{{Field: "start_time", Message: err.Error()}})
	case errors.Is(err, service.ErrTooFarInAdvance):
		return model.NewValidationError([]model.FieldError{{Field: "start_time", Message: err.Error()}})

	// ===== Store Errors → 500 =====
	case errors.Is(err, service.ErrStoreFailure):
		return model.NewStoreError("")

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}

// MapServiceErrorWithContext converts a service error to a ProblemDetails response
// with additional context about the operation that failed.
func MapServiceErrorWithContext(err error, operation string) *model.ProblemDetails {
	pd := MapServiceError(err)
	if pd != nil && pd.Status == 500 {
		pd.Detail = operation + ": an unexpected error occurred"
	}
	return pd
}
