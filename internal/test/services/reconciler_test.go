package services_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creatorops-backend/internal/domain"
	"creatorops-backend/internal/logger"
	"creatorops-backend/internal/models"
	"creatorops-backend/internal/services"
)

// fakeReconcilerStore serves a fixed set of scheduled ideas and records any
// repair inserts.
type fakeReconcilerStore struct {
	ideas    []models.Idea
	existing map[uuid.UUID]bool
	inserted []models.PlannerItem
}

func (f *fakeReconcilerStore) ListScheduledIdeas() ([]models.Idea, error) {
	return f.ideas, nil
}

func (f *fakeReconcilerStore) HasPlannerItemForIdea(ideaID uuid.UUID, itemType domain.PlannerItemType, date time.Time) (bool, error) {
	return f.existing[ideaID], nil
}

func (f *fakeReconcilerStore) CreatePlannerItem(item *models.PlannerItem) (*models.PlannerItem, error) {
	f.inserted = append(f.inserted, *item)
	return item, nil
}

func scheduledIdea(status domain.IdeaStatus, date time.Time) models.Idea {
	idea := models.Idea{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Title:  "drift check",
		Status: status,
	}
	if status == domain.IdeaScheduled {
		idea.PublishDate = sql.NullTime{Time: date, Valid: true}
	} else {
		idea.ScheduledDate = sql.NullTime{Time: date, Valid: true}
	}
	return idea
}

func TestReconciler_NoDrift(t *testing.T) {
	date := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	consistent := scheduledIdea(domain.IdeaToFilm, date)
	store := &fakeReconcilerStore{
		ideas:    []models.Idea{consistent},
		existing: map[uuid.UUID]bool{consistent.ID: true},
	}

	report, err := services.NewReconciler(store, logger.NewNop(), false).Run()
	require.NoError(t, err)
	assert.Equal(t, 1, report.Checked)
	assert.Empty(t, report.Drifted)
	assert.Empty(t, store.inserted)
}

func TestReconciler_DetectsDriftWithoutRepair(t *testing.T) {
	date := time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC)
	drifted := scheduledIdea(domain.IdeaPlanned, date)
	store := &fakeReconcilerStore{
		ideas:    []models.Idea{drifted},
		existing: map[uuid.UUID]bool{},
	}

	report, err := services.NewReconciler(store, logger.NewNop(), false).Run()
	require.NoError(t, err)
	require.Len(t, report.Drifted, 1)
	assert.Equal(t, drifted.ID, report.Drifted[0].IdeaID)
	assert.Equal(t, domain.SlotFilming, report.Drifted[0].ItemType)
	assert.Equal(t, 0, report.Repaired)
	assert.Empty(t, store.inserted)
}

func TestReconciler_RepairsMissingPublishingItem(t *testing.T) {
	date := time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC)
	drifted := scheduledIdea(domain.IdeaScheduled, date)
	store := &fakeReconcilerStore{
		ideas:    []models.Idea{drifted},
		existing: map[uuid.UUID]bool{},
	}

	report, err := services.NewReconciler(store, logger.NewNop(), true).Run()
	require.NoError(t, err)
	assert.Equal(t, 1, report.Repaired)
	require.Len(t, store.inserted, 1)

	item := store.inserted[0]
	assert.Equal(t, domain.SlotPublishing, item.ItemType)
	assert.Equal(t, domain.DefaultPublishingTime, item.StartTime)
	assert.Equal(t, drifted.ID, item.IdeaID.UUID)
	assert.Equal(t, date, item.Date)
}
