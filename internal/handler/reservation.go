package handler

import (
	"net/http"
	"time"

	"github.com/openshelf/reserve/api/internal/model"
	"github.com/openshelf/reserve/api/internal/service"
)

// ReservationHandler handles reservation endpoints
type ReservationHandler struct {
	reservationService *service.ReservationService
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(reservationService *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{
		reservationService: reservationService,
	}
}

// CreateReservation handles POST /v1/reservations - book a slot on a resource
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req model.CreateReservationRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	// Validate
	var fieldErrors []model.FieldError
	if req.ResourceID == "" {
		fieldErrors = append(fieldErrors, model.FieldError{
			Field:   "resource_id",
			Message: "resource_id is required",
		})
	}
	if req.UserID == "" {
		fieldErrors = append(fieldErrors, model.FieldError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	if req.StartTime == "" {
		fieldErrors = append(fieldErrors, model.FieldError{
			Field:   "start_time",
			Message: "start_time is required",
		})
	}
	if req.EndTime == "" {
		fieldErrors = append(fieldErrors, model.FieldError{
			Field:   "end_time",
			Message: "end_time is required",
		})
	}
	if len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	reservation, err := h.reservationService.Create(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, reservation, map[string]string{
		"self":     "/v1/reservations/" + reservation.ID,
		"resource": "/v1/resources/" + reservation.ResourceID,
	})
}

// GetReservation handles GET /v1/reservations/{reservationId} - get a reservation
func (h *ReservationHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := r.PathValue("reservationId")
	if reservationID == "" {
		WriteError(w, model.NewBadRequestError("reservation ID required"))
		return
	}

	reservation, err := h.reservationService.GetByID(r.Context(), reservationID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, reservation, map[string]string{
		"self":     "/v1/reservations/" + reservation.ID,
		"resource": "/v1/resources/" + reservation.ResourceID,
	})
}

// UpdateReservation handles PATCH /v1/reservations/{reservationId} - reschedule
func (h *ReservationHandler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := r.PathValue("reservationId")
	if reservationID == "" {
		WriteError(w, model.NewBadRequestError("reservation ID required"))
		return
	}

	var req model.UpdateReservationRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	reservation, err := h.reservationService.Update(r.Context(), reservationID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, reservation, map[string]string{
		"self":     "/v1/reservations/" + reservation.ID,
		"resource": "/v1/resources/" + reservation.ResourceID,
	})
}

// DeleteReservation handles DELETE /v1/reservations/{reservationId} - cancel
func (h *ReservationHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := r.PathValue("reservationId")
	if reservationID == "" {
		WriteError(w, model.NewBadRequestError("reservation ID required"))
		return
	}

	if err := h.reservationService.Delete(r.Context(), reservationID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// GetResourceReservations handles GET /v1/resources/{resourceId}/reservations -
// a resource's calendar ordered by start time
func (h *ReservationHandler) GetResourceReservations(w http.ResponseWriter, r *http.Request) {
	resourceID := r.PathValue("resourceId")
	if resourceID == "" {
		WriteError(w, model.NewBadRequestError("resource ID required"))
		return
	}

	reservations, err := h.reservationService.ListForResource(r.Context(), resourceID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, reservations, map[string]string{
		"self":     "/v1/resources/" + resourceID + "/reservations",
		"resource": "/v1/resources/" + resourceID,
	})
}

// GetUserReservations handles GET /v1/users/{userId}/reservations - the
// user's active reservations ordered by start time
func (h *ReservationHandler) GetUserReservations(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		WriteError(w, model.NewBadRequestError("user ID required"))
		return
	}

	reservations, err := h.reservationService.ListActiveForUser(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, reservations, map[string]string{
		"self": "/v1/users/" + userID + "/reservations",
	})
}

// CheckAvailability handles GET /v1/resources/{resourceId}/availability -
// check whether a window is free. Requires start and end query parameters
// in RFC 3339 format.
func (h *ReservationHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	resourceID := r.PathValue("resourceId")
	if resourceID == "" {
		WriteError(w, model.NewBadRequestError("resource ID required"))
		return
	}

	startRaw := r.URL.Query().Get("start")
	endRaw := r.URL.Query().Get("end")
	if startRaw == "" || endRaw == "" {
		WriteError(w, model.NewBadRequestError("start and end query parameters are required"))
		return
	}

	start, err := time.Parse(time.RFC3339, startRaw)
	if err != nil {
		WriteError(w, model.NewBadRequestError("start must be a valid RFC 3339 timestamp"))
		return
	}
	end, err := time.Parse(time.RFC3339, endRaw)
	if err != nil {
		WriteError(w, model.NewBadRequestError("end must be a valid RFC 3339 timestamp"))
		return
	}

	result, err := h.reservationService.CheckAvailability(r.Context(), resourceID, start.UTC(), end.UTC())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, result, map[string]string{
		"self":     "/v1/resources/" + resourceID + "/availability",
		"resource": "/v1/resources/" + resourceID,
	})
}
