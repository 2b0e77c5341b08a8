package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alcyxob/fitstack/internal/analytics"
	"alcyxob/fitstack/internal/domain"
	"alcyxob/fitstack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatsService struct {
	summary    analytics.Summary
	trend      service.DailyTrend
	comparison *service.Comparison
	badges     []domain.Badge
	grid       analytics.Grid
}

func (f *fakeStatsService) Summary(_ context.Context, _ string, _, _ *time.Time) (analytics.Summary, error) {
	return f.summary, nil
}

func (f *fakeStatsService) DailyTotals(_ context.Context, _ string, _, _ *time.Time) (service.DailyTrend, error) {
	return f.trend, nil
}

func (f *fakeStatsService) Comparison(_ context.Context, _ string, _ int) (*service.Comparison, error) {
	return f.comparison, nil
}

func (f *fakeStatsService) Badges(_ context.Context, _ string) ([]domain.Badge, error) {
	return f.badges, nil
}

func (f *fakeStatsService) Calendar(_ context.Context, _ string, year int, month time.Month) (analytics.Grid, error) {
	return f.grid, nil
}

func newStatsTestRouter(stats service.StatsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(ContextUserIDKey, "tester")
		c.Next()
	})
	h := NewStatsHandler(stats)
	router.GET("/stats/summary", h.GetSummary)
	router.GET("/stats/comparison", h.GetComparison)
	router.GET("/stats/badges", h.GetBadges)
	router.GET("/stats/calendar", h.GetCalendar)
	return router
}

func TestStatsHandler_Summary(t *testing.T) {
	router := newStatsTestRouter(&fakeStatsService{
		summary: analytics.Summary{
			TotalSets:  12,
			ActiveDays: 3,
			TopPart:    domain.PartBack,
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/stats/summary", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got analytics.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 12, got.TotalSets)
	assert.Equal(t, domain.PartBack, got.TopPart)
}

func TestStatsHandler_SummaryRejectsHalfRange(t *testing.T) {
	router := newStatsTestRouter(&fakeStatsService{})

	req := httptest.NewRequest(http.MethodGet, "/stats/summary?from=2025.06.01", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatsHandler_SummaryRejectsBadDate(t *testing.T) {
	router := newStatsTestRouter(&fakeStatsService{})

	req := httptest.NewRequest(http.MethodGet, "/stats/summary?from=2025-06-01&to=2025-06-30", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatsHandler_ComparisonNotFound(t *testing.T) {
	router := newStatsTestRouter(&fakeStatsService{comparison: nil})

	req := httptest.NewRequest(http.MethodGet, "/stats/comparison?monthsAgo=3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatsHandler_ComparisonRejectsNegativeMonths(t *testing.T) {
	router := newStatsTestRouter(&fakeStatsService{})

	req := httptest.NewRequest(http.MethodGet, "/stats/comparison?monthsAgo=-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatsHandler_BadgesLockedIconSwap(t *testing.T) {
	router := newStatsTestRouter(&fakeStatsService{
		badges: []domain.Badge{
			{ID: "back_100", Name: "등근육 장인", Icon: "badge_back", IsUnlocked: true},
			{ID: "leg_50", Name: "강철 하체", Icon: "badge_leg", IsUnlocked: false},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/stats/badges", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got BadgesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Badges, 2)
	assert.Equal(t, "badge_back", got.Badges[0].Icon)
	assert.Equal(t, "badge_locked", got.Badges[1].Icon)
	assert.Equal(t, 1, got.UnlockedCount)
	assert.Equal(t, 2, got.TotalCount)
}

func TestStatsHandler_CalendarRejectsBadMonth(t *testing.T) {
	router := newStatsTestRouter(&fakeStatsService{})

	req := httptest.NewRequest(http.MethodGet, "/stats/calendar?year=2025&month=13", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
