package repository

import (
	"context"
	"errors"
	"time"

	"github.com/openshelf/reserve/api/internal/database"
	"github.com/openshelf/reserve/api/internal/model"
)

// ReservationRepository handles reservation data access
type ReservationRepository struct {
	db database.Database
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(db database.Database) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Create persists a new reservation and returns the stored record
func (r *ReservationRepository) Create(ctx context.Context, res *model.Reservation) (*model.Reservation, error) {
	query := `
		CREATE reservation CONTENT {
			reservation_id: $reservation_id,
			resource: type::record($resource_id),
			user: type::record($user_id),
			start_time: $start_time,
			end_time: $end_time,
			reservation_date: $reservation_date,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"reservation_id":   res.ReservationID,
		"resource_id":      res.ResourceID,
		"user_id":          res.UserID,
		"start_time":       res.StartTime,
		"end_time":         res.EndTime,
		"reservation_date": res.ReservationDate,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, database.ErrDuplicate
		}
		return nil, err
	}

	items, ok := extractQueryResults(result)
	if !ok || len(items) == 0 {
		return nil, errors.New("no result returned from create")
	}
	return parseReservationResult(items[0])
}

// GetByID retrieves a reservation by its record ID
func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{
		"id": id,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseReservationResult(result)
}

// GetByResource retrieves all reservations on a resource ordered by start time
func (r *ReservationRepository) GetByResource(ctx context.Context, resourceID string) ([]*model.Reservation, error) {
	query := `
		SELECT * FROM reservation
		WHERE resource = type::record($resource_id)
		ORDER BY start_time ASC
	`
	vars := map[string]interface{}{
		"resource_id": resourceID,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseReservationsResult(result), nil
}

// GetActiveByUser retrieves the user's reservations that end after now,
// ordered by start time
func (r *ReservationRepository) GetActiveByUser(ctx context.Context, userID string, now time.Time) ([]*model.Reservation, error) {
	query := `
		SELECT * FROM reservation
		WHERE user = type::record($user_id)
		AND end_time > $now
		ORDER BY start_time ASC
	`
	vars := map[string]interface{}{
		"user_id": userID,
		"now":     now,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseReservationsResult(result), nil
}

// CountActiveByUser counts the user's reservations that end after now
func (r *ReservationRepository) CountActiveByUser(ctx context.Context, userID string, now time.Time) (int, error) {
	query := `
		SELECT count() as count FROM reservation
		WHERE user = type::record($user_id)
		AND end_time > $now
		GROUP ALL
	`
	vars := map[string]interface{}{
		"user_id": userID,
		"now":     now,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return 0, err
	}

	return extractCount(result), nil
}

// FindOverlapping retrieves reservations on the resource whose half-open
// interval [start_time, end_time) intersects [start, end)
func (r *ReservationRepository) FindOverlapping(ctx context.Context, resourceID string, start, end time.Time) ([]*model.Reservation, error) {
	query := `
		SELECT * FROM reservation
		WHERE resource = type::record($resource_id)
		AND start_time < $end
		AND end_time > $start
		ORDER BY start_time ASC
	`
	vars := map[string]interface{}{
		"resource_id": resourceID,
		"start":       start,
		"end":         end,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseReservationsResult(result), nil
}

// Update reschedules a reservation and returns the updated record
func (r *ReservationRepository) Update(ctx context.Context, id string, start, end, reservationDate time.Time) (*model.Reservation, error) {
	query := `
		UPDATE type::record($id) MERGE {
			start_time: $start_time,
			end_time: $end_time,
			reservation_date: $reservation_date,
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"id":               id,
		"start_time":       start,
		"end_time":         end,
		"reservation_date": reservationDate,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	items, ok := extractQueryResults(result)
	if !ok || len(items) == 0 {
		return nil, database.ErrNotFound
	}
	return parseReservationResult(items[0])
}

// Delete removes a reservation
func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	vars := map[string]interface{}{
		"id": id,
	}

	return r.db.Execute(ctx, query, vars)
}

// DeleteEndedBefore removes reservations whose end time is before the cutoff.
// The deletes run as a single atomic batch. LIMIT bounds each sweep; the
// retention job runs on an interval and catches the remainder next pass.
func (r *ReservationRepository) DeleteEndedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	query := `
		SELECT id FROM reservation
		WHERE end_time < $cutoff
		LIMIT 500
	`
	vars := map[string]interface{}{
		"cutoff": cutoff,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return 0, err
	}

	var ids []string
	if items, ok := extractQueryResults(result); ok {
		for _, item := range items {
			if data, ok := item.(map[string]interface{}); ok {
				if id := convertSurrealID(data["id"]); id != "" {
					ids = append(ids, id)
				}
			}
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}

	queries := make([]struct {
		Query string
		Vars  map[string]interface{}
	}, 0, len(ids))
	for _, id := range ids {
		queries = append(queries, struct {
			Query string
			Vars  map[string]interface{}
		}{
			Query: `DELETE type::record($id)`,
			Vars:  map[string]interface{}{"id": id},
		})
	}

	if err := BatchExecute(ctx, r.db, queries); err != nil {
		return 0, err
	}
	return len(ids), nil
}

func parseReservationResult(result interface{}) (*model.Reservation, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	// Navigate through SurrealDB response structure
	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			if resultData, ok := resp["result"].([]interface{}); ok {
				if len(resultData) == 0 {
					return nil, database.ErrNotFound
				}
				result = resultData[0]
			}
		}
	}

	// Handle array wrapper
	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, database.ErrNotFound
		}
		result = arr[0]
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	res := &model.Reservation{
		ID:            convertSurrealID(data["id"]),
		ReservationID: getString(data, "reservation_id"),
		ResourceID:    convertSurrealID(data["resource"]),
		UserID:        convertSurrealID(data["user"]),
	}

	if startTime := getTime(data, "start_time"); startTime != nil {
		res.StartTime = *startTime
	}
	if endTime := getTime(data, "end_time"); endTime != nil {
		res.EndTime = *endTime
	}
	if reservationDate := getTime(data, "reservation_date"); reservationDate != nil {
		res.ReservationDate = *reservationDate
	}
	if createdOn := getTime(data, "created_on"); createdOn != nil {
		res.CreatedOn = *createdOn
	}
	if updatedOn := getTime(data, "updated_on"); updatedOn != nil {
		res.UpdatedOn = *updatedOn
	}

	return res, nil
}

func parseReservationsResult(result []interface{}) []*model.Reservation {
	reservations := make([]*model.Reservation, 0)

	for _, res := range result {
		if resp, ok := res.(map[string]interface{}); ok {
			if resultData, ok := resp["result"].([]interface{}); ok {
				for _, item := range resultData {
					parsed, err := parseReservationResult(item)
					if err != nil {
						continue
					}
					reservations = append(reservations, parsed)
				}
			}
		}
	}

	return reservations
}
