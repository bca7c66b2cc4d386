package services

import (
	"time"

	"github.com/google/uuid"

	"creatorops-backend/internal/logger"
)

// AnalyticsStore is the slice of the database client the read-only
// aggregations need.
type AnalyticsStore interface {
	SumRevenue(userID uuid.UUID, from, to time.Time) (float64, error)
	CountIdeasCreatedBetween(userID uuid.UUID, from, to time.Time) (int, error)
	CountIdeasFilmedBetween(userID uuid.UUID, from, to time.Time) (int, error)
	CountIdeasPublishedBetween(userID uuid.UUID, from, to time.Time) (int, error)
	CountInspirationsBetween(userID uuid.UUID, from, to time.Time) (int, error)
	CountInspirationsConvertedBetween(userID uuid.UUID, from, to time.Time) (int, error)
}

type AnalyticsService struct {
	store AnalyticsStore
	log   *logger.Logger
}

func NewAnalyticsService(store AnalyticsStore, log *logger.Logger) *AnalyticsService {
	return &AnalyticsService{store: store, log: log}
}

// GrowthPercent compares a period total against the prior period. A zero
// prior total reports 0, never a division error or NaN.
func GrowthPercent(current, prior float64) float64 {
	if prior == 0 {
		return 0
	}
	return (current - prior) / prior * 100
}

// PriorWindow returns the window of equal length immediately preceding
// [from, to]. Bounds are inclusive dates.
func PriorWindow(from, to time.Time) (time.Time, time.Time) {
	days := int(to.Sub(from).Hours()/24) + 1
	priorTo := from.AddDate(0, 0, -1)
	priorFrom := priorTo.AddDate(0, 0, -(days - 1))
	return priorFrom, priorTo
}

// RevenueSummary holds window totals and the derived growth figure.
type RevenueSummary struct {
	Total         float64
	PriorTotal    float64
	GrowthPercent float64
}

func (s *AnalyticsService) RevenueSummary(userID uuid.UUID, from, to time.Time) (*RevenueSummary, error) {
	total, err := s.store.SumRevenue(userID, from, to)
	if err != nil {
		return nil, err
	}

	priorFrom, priorTo := PriorWindow(from, to)
	priorTotal, err := s.store.SumRevenue(userID, priorFrom, priorTo)
	if err != nil {
		return nil, err
	}

	return &RevenueSummary{
		Total:         total,
		PriorTotal:    priorTotal,
		GrowthPercent: GrowthPercent(total, priorTotal),
	}, nil
}

// Overview bundles the window counts shown on the analytics page.
type Overview struct {
	IdeasCreated          int
	IdeasFilmed           int
	IdeasPublished        int
	InspirationsCaptured  int
	InspirationsConverted int
	RevenueTotal          float64
}

func (s *AnalyticsService) Overview(userID uuid.UUID, from, to time.Time) (*Overview, error) {
	// Timestamp columns are compared half-open: [from, to+1d).
	end := to.AddDate(0, 0, 1)

	created, err := s.store.CountIdeasCreatedBetween(userID, from, end)
	if err != nil {
		return nil, err
	}
	filmed, err := s.store.CountIdeasFilmedBetween(userID, from, end)
	if err != nil {
		return nil, err
	}
	published, err := s.store.CountIdeasPublishedBetween(userID, from, end)
	if err != nil {
		return nil, err
	}
	captured, err := s.store.CountInspirationsBetween(userID, from, end)
	if err != nil {
		return nil, err
	}
	converted, err := s.store.CountInspirationsConvertedBetween(userID, from, end)
	if err != nil {
		return nil, err
	}
	revenue, err := s.store.SumRevenue(userID, from, to)
	if err != nil {
		return nil, err
	}

	return &Overview{
		IdeasCreated:          created,
		IdeasFilmed:           filmed,
		IdeasPublished:        published,
		InspirationsCaptured:  captured,
		InspirationsConverted: converted,
		RevenueTotal:          revenue,
	}, nil
}
