package services_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creatorops-backend/internal/logger"
	"creatorops-backend/internal/services"
)

func TestGrowthPercent(t *testing.T) {
	assert.Equal(t, 0.0, services.GrowthPercent(500, 0))
	assert.Equal(t, 0.0, services.GrowthPercent(0, 0))
	assert.Equal(t, 100.0, services.GrowthPercent(200, 100))
	assert.Equal(t, -50.0, services.GrowthPercent(50, 100))
	assert.Equal(t, 0.0, services.GrowthPercent(100, 100))
}

func TestPriorWindow(t *testing.T) {
	from := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

	priorFrom, priorTo := services.PriorWindow(from, to)

	// Seven days ending the day before the window opens.
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), priorFrom)
	assert.Equal(t, time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC), priorTo)
}

func TestPriorWindow_SingleDay(t *testing.T) {
	day := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

	priorFrom, priorTo := services.PriorWindow(day, day)

	assert.Equal(t, time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC), priorFrom)
	assert.Equal(t, priorFrom, priorTo)
}

// fakeAnalyticsStore answers the window queries from fixed tables keyed by
// the window start date.
type fakeAnalyticsStore struct {
	revenueByFrom map[string]float64
	counts        map[string]int
}

func (f *fakeAnalyticsStore) SumRevenue(userID uuid.UUID, from, to time.Time) (float64, error) {
	return f.revenueByFrom[from.Format("2006-01-02")], nil
}

func (f *fakeAnalyticsStore) CountIdeasCreatedBetween(userID uuid.UUID, from, to time.Time) (int, error) {
	return f.counts["created"], nil
}

func (f *fakeAnalyticsStore) CountIdeasFilmedBetween(userID uuid.UUID, from, to time.Time) (int, error) {
	return f.counts["filmed"], nil
}

func (f *fakeAnalyticsStore) CountIdeasPublishedBetween(userID uuid.UUID, from, to time.Time) (int, error) {
	return f.counts["published"], nil
}

func (f *fakeAnalyticsStore) CountInspirationsBetween(userID uuid.UUID, from, to time.Time) (int, error) {
	return f.counts["captured"], nil
}

func (f *fakeAnalyticsStore) CountInspirationsConvertedBetween(userID uuid.UUID, from, to time.Time) (int, error) {
	return f.counts["converted"], nil
}

func TestRevenueSummary(t *testing.T) {
	store := &fakeAnalyticsStore{
		revenueByFrom: map[string]float64{
			"2025-06-08": 1500, // current window
			"2025-06-01": 1000, // prior window
		},
	}
	svc := services.NewAnalyticsService(store, logger.NewNop())

	from := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

	summary, err := svc.RevenueSummary(uuid.New(), from, to)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, summary.Total)
	assert.Equal(t, 1000.0, summary.PriorTotal)
	assert.Equal(t, 50.0, summary.GrowthPercent)
}

func TestRevenueSummary_NoPriorRevenue(t *testing.T) {
	store := &fakeAnalyticsStore{
		revenueByFrom: map[string]float64{
			"2025-06-08": 900,
		},
	}
	svc := services.NewAnalyticsService(store, logger.NewNop())

	from := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

	summary, err := svc.RevenueSummary(uuid.New(), from, to)
	require.NoError(t, err)
	assert.Equal(t, 900.0, summary.Total)
	assert.Equal(t, 0.0, summary.GrowthPercent)
}

func TestOverview(t *testing.T) {
	store := &fakeAnalyticsStore{
		revenueByFrom: map[string]float64{"2025-06-01": 2500},
		counts: map[string]int{
			"created":   12,
			"filmed":    5,
			"published": 3,
			"captured":  8,
			"converted": 4,
		},
	}
	svc := services.NewAnalyticsService(store, logger.NewNop())

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	overview, err := svc.Overview(uuid.New(), from, to)
	require.NoError(t, err)
	assert.Equal(t, 12, overview.IdeasCreated)
	assert.Equal(t, 5, overview.IdeasFilmed)
	assert.Equal(t, 3, overview.IdeasPublished)
	assert.Equal(t, 8, overview.InspirationsCaptured)
	assert.Equal(t, 4, overview.InspirationsConverted)
	assert.Equal(t, 2500.0, overview.RevenueTotal)
}
