package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/reserve/api/internal/clock"
	"github.com/openshelf/reserve/api/internal/database"
	"github.com/openshelf/reserve/api/internal/model"
	"github.com/openshelf/reserve/api/internal/service"
)

// ============================================================================
// Mock Repositories
// ============================================================================

type mockReservationRepo struct {
	createFunc            func(ctx context.Context, res *model.Reservation) (*model.Reservation, error)
	getByIDFunc           func(ctx context.Context, id string) (*model.Reservation, error)
	getByResourceFunc     func(ctx context.Context, resourceID string) ([]*model.Reservation, error)
	getActiveByUserFunc   func(ctx context.Context, userID string, now time.Time) ([]*model.Reservation, error)
	countActiveByUserFunc func(ctx context.Context, userID string, now time.Time) (int, error)
	findOverlappingFunc   func(ctx context.Context, resourceID string, start, end time.Time) ([]*model.Reservation, error)
	updateFunc            func(ctx context.Context, id string, start, end, reservationDate time.Time) (*model.Reservation, error)
	deleteFunc            func(ctx context.Context, id string) error
	deleteEndedBeforeFunc func(ctx context.Context, cutoff time.Time) (int, error)
}

func (m *mockReservationRepo) Create(ctx context.Context, res *model.Reservation) (*model.Reservation, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, res)
	}
	created := *res
	created.ID = "reservation:1"
	return &created, nil
}

func (m *mockReservationRepo) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, database.ErrNotFound
}

func (m *mockReservationRepo) GetByResource(ctx context.Context, resourceID string) ([]*model.Reservation, error) {
	if m.getByResourceFunc != nil {
		return m.getByResourceFunc(ctx, resourceID)
	}
	return nil, nil
}

func (m *mockReservationRepo) GetActiveByUser(ctx context.Context, userID string, now time.Time) ([]*model.Reservation, error) {
	if m.getActiveByUserFunc != nil {
		return m.getActiveByUserFunc(ctx, userID, now)
	}
	return nil, nil
}

func (m *mockReservationRepo) CountActiveByUser(ctx context.Context, userID string, now time.Time) (int, error) {
	if m.countActiveByUserFunc != nil {
		return m.countActiveByUserFunc(ctx, userID, now)
	}
	return 0, nil
}

func (m *mockReservationRepo) FindOverlapping(ctx context.Context, resourceID string, start, end time.Time) ([]*model.Reservation, error) {
	if m.findOverlappingFunc != nil {
		return m.findOverlappingFunc(ctx, resourceID, start, end)
	}
	return nil, nil
}

func (m *mockReservationRepo) Update(ctx context.Context, id string, start, end, reservationDate time.Time) (*model.Reservation, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, start, end, reservationDate)
	}
	return nil, database.ErrNotFound
}

func (m *mockReservationRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockReservationRepo) DeleteEndedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	if m.deleteEndedBeforeFunc != nil {
		return m.deleteEndedBeforeFunc(ctx, cutoff)
	}
	return 0, nil
}

type mockResourceRepo struct {
	getByIDFunc func(ctx context.Context, id string) (*model.Resource, error)
}

func (m *mockResourceRepo) GetByID(ctx context.Context, id string) (*model.Resource, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return newTestResource(), nil
}

// ============================================================================
// Test Helpers
// ============================================================================

var handlerTestNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestResource() *model.Resource {
	return &model.Resource{
		ID:           "resource:study-room",
		Title:        "Study Room A",
		ResourceType: model.ResourceTypeMeetingRoom,
		CreatedOn:    handlerTestNow,
		UpdatedOn:    handlerTestNow,
	}
}

func newTestReservation() *model.Reservation {
	start := handlerTestNow.Add(48 * time.Hour)
	return &model.Reservation{
		ID:              "reservation:1",
		ReservationID:   "7b1c2a8e-0000-4000-8000-000000000001",
		ResourceID:      "resource:study-room",
		UserID:          "user:alice",
		StartTime:       start,
		EndTime:         start.Add(2 * time.Hour),
		ReservationDate: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		CreatedOn:       handlerTestNow,
		UpdatedOn:       handlerTestNow,
	}
}

// newTestMux wires the handlers into a ServeMux with the production route
// patterns so path parameters resolve.
func newTestMux(repo *mockReservationRepo, resourceRepo *mockResourceRepo) *http.ServeMux {
	svc := service.NewReservationService(service.ReservationServiceConfig{
		Repo:         repo,
		ResourceRepo: resourceRepo,
		Clock:        clock.NewFake(handlerTestNow),
	})
	h := NewReservationHandler(svc)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/reservations", h.CreateReservation)
	mux.HandleFunc("GET /v1/reservations/{reservationId}", h.GetReservation)
	mux.HandleFunc("PATCH /v1/reservations/{reservationId}", h.UpdateReservation)
	mux.HandleFunc("DELETE /v1/reservations/{reservationId}", h.DeleteReservation)
	mux.HandleFunc("GET /v1/resources/{resourceId}/reservations", h.GetResourceReservations)
	mux.HandleFunc("GET /v1/resources/{resourceId}/availability", h.CheckAvailability)
	mux.HandleFunc("GET /v1/users/{userId}/reservations", h.GetUserReservations)
	return mux
}

func makeJSONRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeProblem(t *testing.T, rr *httptest.ResponseRecorder) *model.ProblemDetails {
	t.Helper()
	var pd model.ProblemDetails
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pd))
	return &pd
}

func validCreateBody() model.CreateReservationRequest {
	start := handlerTestNow.Add(48 * time.Hour)
	return model.CreateReservationRequest{
		ResourceID: "resource:study-room",
		UserID:     "user:alice",
		StartTime:  start.Format(time.RFC3339),
		EndTime:    start.Add(2 * time.Hour).Format(time.RFC3339),
	}
}

// ============================================================================
// CreateReservation Tests
// ============================================================================

func TestCreateReservation_Valid_Returns201(t *testing.T) {
	t.Parallel()
	mux := newTestMux(&mockReservationRepo{}, &mockResourceRepo{})

	req := makeJSONRequest(t, http.MethodPost, "/v1/reservations", validCreateBody())
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp struct {
		Data  model.Reservation `json:"data"`
		Links map[string]string `json:"_links"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.ReservationID)
	assert.Equal(t, "resource:study-room", resp.Data.ResourceID)
	assert.Equal(t, "/v1/reservations/reservation:1", resp.Links["self"])
	assert.Equal(t, "/v1/resources/resource:study-room", resp.Links["resource"])
}

func TestCreateReservation_MalformedJSON_Returns400(t *testing.T) {
	t.Parallel()
	mux := newTestMux(&mockReservationRepo{}, &mockResourceRepo{})

	req := httptest.NewRequest(http.MethodPost, "/v1/reservations", bytes.NewReader([]byte(`{not json`)))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateReservation_MissingFields_Returns422(t *testing.T) {
	t.Parallel()
	mux := newTestMux(&mockReservationRepo{}, &mockResourceRepo{})

	req := makeJSONRequest(t, http.MethodPost, "/v1/reservations", model.CreateReservationRequest{})
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	pd := decodeProblem(t, rr)
	assert.Equal(t, model.ErrCodeValidation, pd.Code)
	require.Len(t, pd.Errors, 4)
	fields := make([]string, 0, len(pd.Errors))
	for _, fe := range pd.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"resource_id", "user_id", "start_time", "end_time"}, fields)
}

func TestCreateReservation_UnknownResource_Returns404(t *testing.T) {
	t.Parallel()
	resourceRepo := &mockResourceRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Resource, error) {
			return nil, database.ErrNotFound
		},
	}
	mux := newTestMux(&mockReservationRepo{}, resourceRepo)

	req := makeJSONRequest(t, http.MethodPost, "/v1/reservations", validCreateBody())
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	pd := decodeProblem(t, rr)
	assert.Equal(t, model.ErrCodeNotFound, pd.Code)
}

func TestCreateReservation_SlotTaken_Returns409(t *testing.T) {
	t.Parallel()
	repo := &mockReservationRepo{
		findOverlappingFunc: func(ctx context.Context, resourceID string, start, end time.Time) ([]*model.Reservation, error) {
			return []*model.Reservation{newTestReservation()}, nil
		},
	}
	mux := newTestMux(repo, &mockResourceRepo{})

	req := makeJSONRequest(t, http.MethodPost, "/v1/reservations", validCreateBody())
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusConflict, rr.Code)
	pd := decodeProblem(t, rr)
	assert.Equal(t, model.ErrCodeConflict, pd.Code)
	assert.Equal(t, "https://reserve.openshelf.dev/errors/conflict", pd.Type)
}

func TestCreateReservation_QuotaExceeded_Returns422WithLimits(t *testing.T) {
	t.Parallel()
	repo := &mockReservationRepo{
		countActiveByUserFunc: func(ctx context.Context, userID string, now time.Time) (int, error) {
			return model.MaxActiveReservationsPerUser, nil
		},
	}
	mux := newTestMux(repo, &mockResourceRepo{})

	req := makeJSONRequest(t, http.MethodPost, "/v1/reservations", validCreateBody())
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	pd := decodeProblem(t, rr)
	assert.Equal(t, model.ErrCodeLimitExceeded, pd.Code)
	require.NotNil(t, pd.Limit)
	require.NotNil(t, pd.Current)
	assert.Equal(t, model.MaxActiveReservationsPerUser, *pd.Limit)
	assert.Equal(t, model.MaxActiveReservationsPerUser, *pd.Current)
}

func TestCreateReservation_DurationTooLong_Returns422(t *testing.T) {
	t.Parallel()
	mux := newTestMux(&mockReservationRepo{}, &mockResourceRepo{})

	body := validCreateBody()
	start := handlerTestNow.Add(48 * time.Hour)
	body.EndTime = start.Add(9 * time.Hour).Format(time.RFC3339)

	req := makeJSONRequest(t, http.MethodPost, "/v1/reservations", body)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	pd := decodeProblem(t, rr)
	require.Len(t, pd.Errors, 1)
	assert.Equal(t, "end_time", pd.Errors[0].Field)
}

func TestCreateReservation_TooSoon_Returns422(t *testing.T) {
	t.Parallel()
	mux := newTestMux(&mockReservationRepo{}, &mockResourceRepo{})

	body := validCreateBody()
	start := handlerTestNow.Add(30 * time.Minute)
	body.StartTime = start.Format(time.RFC3339)
	body.EndTime = start.Add(2 * time.Hour).Format(time.RFC3339)

	req := makeJSONRequest(t, http.MethodPost, "/v1/reservations", body)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	pd := decodeProblem(t, rr)
	require.Len(t, pd.Errors, 1)
	assert.Equal(t, "start_time", pd.Errors[0].Field)
}

func TestCreateReservation_StoreFailure_Returns500(t *testing.T) {
	t.Parallel()
	repo := &mockReservationRepo{
		createFunc: func(ctx context.Context, res *model.Reservation) (*model.Reservation, error) {
			return nil, database.ErrQuery
		},
	}
	mux := newTestMux(repo, &mockResourceRepo{})

	req := makeJSONRequest(t, http.MethodPost, "/v1/reservations", validCreateBody())
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	pd := decodeProblem(t, rr)
	assert.Equal(t, model.ErrCodeDatabase, pd.Code)
}

// ============================================================================
// GetReservation Tests
// ============================================================================

func TestGetReservation_Found_Returns200(t *testing.T) {
	t.Parallel()
	repo := &mockReservationRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Reservation, error) {
			return newTestReservation(), nil
		},
	}
	mux := newTestMux(repo, &mockResourceRepo{})

	req := httptest.NewRequest(http.MethodGet, "/v1/reservations/reservation:1", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data model.Reservation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "reservation:1", resp.Data.ID)
	assert.Equal(t, "user:alice", resp.Data.UserID)
}

func TestGetReservation_Unknown_Returns404(t *testing.T) {
	t.Parallel()
	mux := newTestMux(&mockReservationRepo{}, &mockResourceRepo{})

	req := httptest.NewRequest(http.MethodGet, "/v1/reservations/reservation:missing", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ============================================================================
// UpdateReservation Tests
// ============================================================================

func TestUpdateReservation_Valid_Returns200(t *testing.T) {
	t.Parallel()
	newStart := handlerTestNow.Add(72 * time.Hour)
	repo := &mockReservationRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Reservation, error) {
			return newTestReservation(), nil
		},
		updateFunc: func(ctx context.Context, id string, start, end, reservationDate time.Time) (*model.Reservation, error) {
			updated := newTestReservation()
			updated.StartTime = start
			updated.EndTime = end
			updated.ReservationDate = reservationDate
			return updated, nil
		},
	}
	mux := newTestMux(repo, &mockResourceRepo{})

	startStr := newStart.Format(time.RFC3339)
	endStr := newStart.Add(3 * time.Hour).Format(time.RFC3339)
	req := makeJSONRequest(t, http.MethodPatch, "/v1/reservations/reservation:1", model.UpdateReservationRequest{
		StartTime: &startStr,
		EndTime:   &endStr,
	})
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data model.Reservation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Data.StartTime.Equal(newStart))
}

func TestUpdateReservation_Conflict_Returns409(t *testing.T) {
	t.Parallel()
	other := newTestReservation()
	other.ID = "reservation:2"
	repo := &mockReservationRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Reservation, error) {
			return newTestReservation(), nil
		},
		findOverlappingFunc: func(ctx context.Context, resourceID string, start, end time.Time) ([]*model.Reservation, error) {
			return []*model.Reservation{other}, nil
		},
	}
	mux := newTestMux(repo, &mockResourceRepo{})

	startStr := handlerTestNow.Add(72 * time.Hour).Format(time.RFC3339)
	endStr := handlerTestNow.Add(74 * time.Hour).Format(time.RFC3339)
	req := makeJSONRequest(t, http.MethodPatch, "/v1/reservations/reservation:1", model.UpdateReservationRequest{
		StartTime: &startStr,
		EndTime:   &endStr,
	})
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestUpdateReservation_Unknown_Returns404(t *testing.T) {
	t.Parallel()
	mux := newTestMux(&mockReservationRepo{}, &mockResourceRepo{})

	startStr := handlerTestNow.Add(72 * time.Hour).Format(time.RFC3339)
	req := makeJSONRequest(t, http.MethodPatch, "/v1/reservations/reservation:missing", model.UpdateReservationRequest{
		StartTime: &startStr,
	})
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ============================================================================
// DeleteReservation Tests
// ============================================================================

func TestDeleteReservation_Found_Returns204(t *testing.T) {
	t.Parallel()
	repo := &mockReservationRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Reservation, error) {
			return newTestReservation(), nil
		},
	}
	mux := newTestMux(repo, &mockResourceRepo{})

	req := httptest.NewRequest(http.MethodDelete, "/v1/reservations/reservation:1", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestDeleteReservation_Unknown_Returns404(t *testing.T) {
	t.Parallel()
	mux := newTestMux(&mockReservationRepo{}, &mockResourceRepo{})

	req := httptest.NewRequest(http.MethodDelete, "/v1/reservations/reservation:missing", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ============================================================================
// Collection Endpoint Tests
// ============================================================================

func TestGetResourceReservations_ReturnsCalendar(t *testing.T) {
	t.Parallel()
	repo := &mockReservationRepo{
		getByResourceFunc: func(ctx context.Context, resourceID string) ([]*model.Reservation, error) {
			return []*model.Reservation{newTestReservation()}, nil
		},
	}
	mux := newTestMux(repo, &mockResourceRepo{})

	req := httptest.NewRequest(http.MethodGet, "/v1/resources/resource:study-room/reservations", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data  []model.Reservation `json:"data"`
		Links map[string]string   `json:"_links"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "/v1/resources/resource:study-room/reservations", resp.Links["self"])
}

func TestGetResourceReservations_UnknownResource_Returns404(t *testing.T) {
	t.Parallel()
	resourceRepo := &mockResourceRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Resource, error) {
			return nil, database.ErrNotFound
		},
	}
	mux := newTestMux(&mockReservationRepo{}, resourceRepo)

	req := httptest.NewRequest(http.MethodGet, "/v1/resources/resource:missing/reservations", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetUserReservations_ReturnsActive(t *testing.T) {
	t.Parallel()
	var gotUser string
	repo := &mockReservationRepo{
		getActiveByUserFunc: func(ctx context.Context, userID string, now time.Time) ([]*model.Reservation, error) {
			gotUser = userID
			return []*model.Reservation{newTestReservation()}, nil
		},
	}
	mux := newTestMux(repo, &mockResourceRepo{})

	req := httptest.NewRequest(http.MethodGet, "/v1/users/user:alice/reservations", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "user:alice", gotUser)
}

// ============================================================================
// CheckAvailability Tests
// ============================================================================

func TestCheckAvailability_FreeWindow_ReturnsAvailable(t *testing.T) {
	t.Parallel()
	mux := newTestMux(&mockReservationRepo{}, &mockResourceRepo{})

	start := handlerTestNow.Add(48 * time.Hour)
	end := start.Add(2 * time.Hour)
	path := "/v1/resources/resource:study-room/availability?start=" + start.Format(time.RFC3339) + "&end=" + end.Format(time.RFC3339)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data model.AvailabilityResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Available)
	assert.Equal(t, "resource:study-room", resp.Data.ResourceID)
}

func TestCheckAvailability_BookedWindow_ReturnsUnavailable(t *testing.T) {
	t.Parallel()
	repo := &mockReservationRepo{
		findOverlappingFunc: func(ctx context.Context, resourceID string, start, end time.Time) ([]*model.Reservation, error) {
			return []*model.Reservation{newTestReservation()}, nil
		},
	}
	mux := newTestMux(repo, &mockResourceRepo{})

	start := handlerTestNow.Add(48 * time.Hour)
	end := start.Add(2 * time.Hour)
	path := "/v1/resources/resource:study-room/availability?start=" + start.Format(time.RFC3339) + "&end=" + end.Format(time.RFC3339)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data model.AvailabilityResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Available)
}

func TestCheckAvailability_MissingParams_Returns400(t *testing.T) {
	t.Parallel()
	mux := newTestMux(&mockReservationRepo{}, &mockResourceRepo{})

	req := httptest.NewRequest(http.MethodGet, "/v1/resources/resource:study-room/availability", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCheckAvailability_BadTimestamp_Returns400(t *testing.T) {
	t.Parallel()
	mux := newTestMux(&mockReservationRepo{}, &mockResourceRepo{})

	req := httptest.NewRequest(http.MethodGet, "/v1/resources/resource:study-room/availability?start=yesterday&end=tomorrow", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
