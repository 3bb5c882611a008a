package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/openshelf/reserve/api/internal/clock"
	"github.com/openshelf/reserve/api/internal/database"
	"github.com/openshelf/reserve/api/internal/model"
)

// ReservationRepository defines the persistence operations needed by the
// reservation service.
type ReservationRepository interface {
	Create(ctx context.Context, res *model.Reservation) (*model.Reservation, error)
	GetByID(ctx context.Context, id string) (*model.Reservation, error)
	GetByResource(ctx context.Context, resourceID string) ([]*model.Reservation, error)
	GetActiveByUser(ctx context.Context, userID string, now time.Time) ([]*model.Reservation, error)
	CountActiveByUser(ctx context.Context, userID string, now time.Time) (int, error)
	FindOverlapping(ctx context.Context, resourceID string, start, end time.Time) ([]*model.Reservation, error)
	Update(ctx context.Context, id string, start, end, reservationDate time.Time) (*model.Reservation, error)
	Delete(ctx context.Context, id string) error
	DeleteEndedBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// ReservationResourceRepository is the subset of resource persistence the
// reservation service needs to validate references.
type ReservationResourceRepository interface {
	GetByID(ctx context.Context, id string) (*model.Resource, error)
}

// ReservationService validates booking requests and admits them against the
// store. All writes for a given resource are serialized through a per-resource
// mutex, so two requests for the same slot cannot both pass the conflict check.
type ReservationService struct {
	repo         ReservationRepository
	resourceRepo ReservationResourceRepository
	clock        clock.Clock
	locks        *resourceLocks
}

// ReservationServiceConfig holds dependencies for ReservationService.
type ReservationServiceConfig struct {
	Repo         ReservationRepository
	ResourceRepo ReservationResourceRepository
	Clock        clock.Clock
}

// NewReservationService creates a new reservation service. A nil Clock
// defaults to the system clock.
func NewReservationService(cfg ReservationServiceConfig) *ReservationService {
	c := cfg.Clock
	if c == nil {
		c = clock.System()
	}
	return &ReservationService{
		repo:         cfg.Repo,
		resourceRepo: cfg.ResourceRepo,
		clock:        c,
		locks:        newResourceLocks(),
	}
}

// Create validates and admits a new reservation. The booking rules are
// re-checked under the resource lock, so the conflict and quota reads see a
// consistent view relative to concurrent admissions for the same resource.
func (s *ReservationService) Create(ctx context.Context, req *model.CreateReservationRequest) (*model.Reservation, error) {
	if req.ResourceID == "" {
		return nil, ErrResourceRequired
	}
	if req.UserID == "" {
		return nil, ErrUserRequired
	}
	start, end, err := parseSlot(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	if _, err := s.getResource(ctx, req.ResourceID); err != nil {
		return nil, err
	}

	lock := s.locks.forResource(req.ResourceID)
	lock.Lock()
	defer lock.Unlock()

	now := s.clock.Now()
	if err := s.validate(ctx, req.UserID, req.ResourceID, start, end, now, "", true); err != nil {
		return nil, err
	}

	res := &model.Reservation{
		ReservationID:   uuid.NewString(),
		ResourceID:      req.ResourceID,
		UserID:          req.UserID,
		StartTime:       start,
		EndTime:         end,
		ReservationDate: utcDate(start),
	}

	created, err := s.repo.Create(ctx, res)
	if err != nil {
		return nil, &StoreError{Op: "create reservation", Err: err}
	}
	return created, nil
}

// Update reschedules an existing reservation. Fields left nil keep their
// current value. The quota rule is not re-checked: rescheduling never changes
// how many reservations the user holds.
func (s *ReservationService) Update(ctx context.Context, id string, req *model.UpdateReservationRequest) (*model.Reservation, error) {
	existing, err := s.getReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.StartTime == nil && req.EndTime == nil {
		return existing, nil
	}

	start := existing.StartTime
	end := existing.EndTime
	if req.StartTime != nil {
		start, err = parseReservationTime(*req.StartTime, ErrInvalidStartTimeFormat)
		if err != nil {
			return nil, err
		}
	}
	if req.EndTime != nil {
		end, err = parseReservationTime(*req.EndTime, ErrInvalidEndTimeFormat)
		if err != nil {
			return nil, err
		}
	}

	lock := s.locks.forResource(existing.ResourceID)
	lock.Lock()
	defer lock.Unlock()

	now := s.clock.Now()
	if err := s.validate(ctx, existing.UserID, existing.ResourceID, start, end, now, existing.ID, false); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, existing.ID, start, end, utcDate(start))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, &StoreError{Op: "update reservation", Err: err}
	}
	return updated, nil
}

// Delete cancels a reservation. Cancellation is unconditional but still takes
// the resource lock so it is ordered against concurrent admissions.
func (s *ReservationService) Delete(ctx context.Context, id string) error {
	existing, err := s.getReservation(ctx, id)
	if err != nil {
		return err
	}

	lock := s.locks.forResource(existing.ResourceID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.repo.Delete(ctx, existing.ID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrReservationNotFound
		}
		return &StoreError{Op: "delete reservation", Err: err}
	}
	return nil
}

// GetByID retrieves a single reservation.
func (s *ReservationService) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	return s.getReservation(ctx, id)
}

// ListForResource returns all reservations on a resource ordered by start time.
func (s *ReservationService) ListForResource(ctx context.Context, resourceID string) ([]*model.Reservation, error) {
	if _, err := s.getResource(ctx, resourceID); err != nil {
		return nil, err
	}

	reservations, err := s.repo.GetByResource(ctx, resourceID)
	if err != nil {
		return nil, &StoreError{Op: "list reservations", Err: err}
	}
	return reservations, nil
}

// ListActiveForUser returns the user's reservations that have not yet ended,
// ordered by start time.
func (s *ReservationService) ListActiveForUser(ctx context.Context, userID string) ([]*model.Reservation, error) {
	reservations, err := s.repo.GetActiveByUser(ctx, userID, s.clock.Now())
	if err != nil {
		return nil, &StoreError{Op: "list active reservations", Err: err}
	}
	return reservations, nil
}

// CheckAvailability reports whether the window [start, end) is free on the
// resource. The answer is advisory: only Create admits under the resource lock.
func (s *ReservationService) CheckAvailability(ctx context.Context, resourceID string, start, end time.Time) (*model.AvailabilityResult, error) {
	if !end.After(start) {
		return nil, ErrInvalidTimeOrdering
	}
	if _, err := s.getResource(ctx, resourceID); err != nil {
		return nil, err
	}

	overlapping, err := s.repo.FindOverlapping(ctx, resourceID, start, end)
	if err != nil {
		return nil, &StoreError{Op: "check availability", Err: err}
	}

	return &model.AvailabilityResult{
		ResourceID: resourceID,
		StartTime:  start,
		EndTime:    end,
		Available:  len(overlapping) == 0,
	}, nil
}

// PurgeEndedBefore removes reservations whose end time is before the cutoff.
// Used by the retention sweeper.
func (s *ReservationService) PurgeEndedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.repo.DeleteEndedBefore(ctx, cutoff)
	if err != nil {
		return 0, &StoreError{Op: "purge reservations", Err: err}
	}
	return n, nil
}

// validate applies the booking rules in a fixed order: time ordering, duration
// bounds, the per-user quota (creation only), slot conflicts, then the advance
// booking window. excludeID names a reservation to ignore during conflict
// detection so an update does not collide with itself.
func (s *ReservationService) validate(ctx context.Context, userID, resourceID string, start, end, now time.Time, excludeID string, checkQuota bool) error {
	if !end.After(start) {
		return ErrInvalidTimeOrdering
	}

	duration := end.Sub(start)
	if duration < model.MinReservationDuration || duration > model.MaxReservationDuration {
		return &DurationOutOfRangeError{
			Min:    model.MinReservationDuration,
			Max:    model.MaxReservationDuration,
			Actual: duration,
		}
	}

	if checkQuota {
		active, err := s.repo.CountActiveByUser(ctx, userID, now)
		if err != nil {
			return &StoreError{Op: "count active reservations", Err: err}
		}
		if active >= model.MaxActiveReservationsPerUser {
			return &QuotaExceededError{
				Limit:  model.MaxActiveReservationsPerUser,
				Active: active,
			}
		}
	}

	overlapping, err := s.repo.FindOverlapping(ctx, resourceID, start, end)
	if err != nil {
		return &StoreError{Op: "find overlapping reservations", Err: err}
	}
	for _, other := range overlapping {
		if excludeID != "" && other.ID == excludeID {
			continue
		}
		return ErrSlotConflict
	}

	notice := start.Sub(now)
	if notice < model.MinAdvanceNotice {
		return &TooSoonError{MinNotice: model.MinAdvanceNotice, Notice: notice}
	}

	days := calendarDaysAhead(now, start)
	if days > model.MaxAdvanceBookingDays {
		return &TooFarInAdvanceError{MaxDays: model.MaxAdvanceBookingDays, Days: days}
	}

	return nil
}

func (s *ReservationService) getReservation(ctx context.Context, id string) (*model.Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, &StoreError{Op: "get reservation", Err: err}
	}
	if res == nil {
		return nil, ErrReservationNotFound
	}
	return res, nil
}

func (s *ReservationService) getResource(ctx context.Context, id string) (*model.Resource, error) {
	res, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, &StoreError{Op: "get resource", Err: err}
	}
	if res == nil {
		return nil, ErrResourceNotFound
	}
	return res, nil
}

func parseSlot(startRaw, endRaw string) (time.Time, time.Time, error) {
	if startRaw == "" || endRaw == "" {
		return time.Time{}, time.Time{}, ErrMissingTimes
	}
	start, err := parseReservationTime(startRaw, ErrInvalidStartTimeFormat)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseReservationTime(endRaw, ErrInvalidEndTimeFormat)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func parseReservationTime(raw string, formatErr error) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, formatErr
	}
	return t.UTC(), nil
}

// utcDate truncates a timestamp to its UTC calendar date.
func utcDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// calendarDaysAhead counts whole calendar days between the UTC dates of now
// and start. A reservation later today is 0 days ahead regardless of hour.
func calendarDaysAhead(now, start time.Time) int {
	return int(utcDate(start).Sub(utcDate(now)).Hours() / 24)
}
