package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"barberbook/models"
	"barberbook/services/scheduling"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeEstRepo struct {
	est *models.Establishment
}

func (f *fakeEstRepo) Create(_ context.Context, _ *models.Establishment) error { return nil }
func (f *fakeEstRepo) Update(_ context.Context, _ *models.Establishment) error { return nil }

func (f *fakeEstRepo) GetByID(_ context.Context, id string) (*models.Establishment, error) {
	if f.est != nil && f.est.ID == id {
		return f.est, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeEstRepo) List(_ context.Context) ([]models.Establishment, error) {
	if f.est == nil {
		return nil, nil
	}
	return []models.Establishment{*f.est}, nil
}

type staticBreaks struct{ rules []models.BreakRule }

func (s staticBreaks) ActiveBreaks(_ context.Context, _ scheduling.BreakQuery) ([]models.BreakRule, error) {
	return s.rules, nil
}

type staticBlocks struct{ blocks []models.TimeBlock }

func (s staticBlocks) BlocksInRange(_ context.Context, _ scheduling.TimeBlockQuery) ([]models.TimeBlock, error) {
	return s.blocks, nil
}

type staticAppts struct{ appts []models.Appointment }

func (s staticAppts) AppointmentsInRange(_ context.Context, _ scheduling.AppointmentQuery) ([]models.Appointment, error) {
	return s.appts, nil
}

func newAvailabilityRouter(est *models.Establishment, breaks []models.BreakRule) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := &scheduling.Engine{
		Breaks:       staticBreaks{rules: breaks},
		TimeBlocks:   staticBlocks{},
		Appointments: staticAppts{},
	}
	h := NewAvailabilityHandler(engine, &fakeEstRepo{est: est})

	r := gin.New()
	r.GET("/api/establishments/:establishmentId/slots", h.GetSlotsHandler)
	r.POST("/api/establishments/:establishmentId/conflicts/check", h.CheckConflictsHandler)
	return r
}

type slotsResponse struct {
	Closed bool          `json:"closed"`
	Slots  []models.Slot `json:"slots"`
}

func TestGetSlotsUsesConfiguredHours(t *testing.T) {
	est := &models.Establishment{ID: "est-1", Name: "Corte Fino", OpenTime: "10:00", CloseTime: "14:00", Active: true}
	router := newAvailabilityRouter(est, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/establishments/est-1/slots?date=2026-02-02&duration=60", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp slotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Closed)
	require.Len(t, resp.Slots, 4)
	for _, s := range resp.Slots {
		assert.True(t, s.Available)
	}
}

func TestGetSlotsClosedWeekday(t *testing.T) {
	est := &models.Establishment{ID: "est-1", Name: "Corte Fino", ClosedDays: []int{0}, Active: true}
	router := newAvailabilityRouter(est, nil)

	// 2026-02-01 is a Sunday.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/establishments/est-1/slots?date=2026-02-01", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp slotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Closed)
	assert.Empty(t, resp.Slots)
}

func TestGetSlotsUnknownEstablishment(t *testing.T) {
	router := newAvailabilityRouter(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/establishments/nope/slots?date=2026-02-02", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSlotsRejectsBadDate(t *testing.T) {
	est := &models.Establishment{ID: "est-1", Active: true}
	router := newAvailabilityRouter(est, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/establishments/est-1/slots?date=02-02-2026", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckConflictsReportsBreak(t *testing.T) {
	est := &models.Establishment{ID: "est-1", Active: true}
	lunch := models.BreakRule{
		ID:              "brk-1",
		EstablishmentID: "est-1",
		Name:            "Almoço",
		StartTime:       "12:00",
		EndTime:         "13:00",
		DaysOfWeek:      []int{1, 2, 3, 4, 5},
		Recurring:       true,
		Active:          true,
	}
	router := newAvailabilityRouter(est, []models.BreakRule{lunch})

	start := time.Date(2026, 2, 2, 12, 15, 0, 0, time.UTC).Format(time.RFC3339)
	body := `{"start":"` + start + `","durationMin":30}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/establishments/est-1/conflicts/check", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var res models.ConflictResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.HasAnyConflict)
	assert.True(t, res.HasBreakConflict)
	assert.Equal(t, scheduling.MsgBreakConflict, res.Message)
}
