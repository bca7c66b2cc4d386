package services_test

import (
	"database/sql"
	"errors"
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

// fakeStore is an in-memory SchedulingStore. Individual write paths can be
// forced to fail to exercise the partial-write behavior.
type fakeStore struct {
	ideas map[uuid.UUID]*models.Idea
	items map[uuid.UUID]*models.PlannerItem

	failCreateItem    bool
	failIdeaSchedule  bool
	failClearSchedule bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		ideas: make(map[uuid.UUID]*models.Idea),
		items: make(map[uuid.UUID]*models.PlannerItem),
	}
}

func (f *fakeStore) addIdea(userID uuid.UUID, status domain.IdeaStatus) *models.Idea {
	idea := &models.Idea{
		ID:     uuid.New(),
		UserID: userID,
		Title:  "test idea",
		Status: status,
	}
	f.ideas[idea.ID] = idea
	return idea
}

func (f *fakeStore) GetIdea(ideaID, userID uuid.UUID) (*models.Idea, error) {
	idea, ok := f.ideas[ideaID]
	if !ok || idea.UserID != userID {
		return nil, errors.New("idea not found")
	}
	copied := *idea
	return &copied, nil
}

func (f *fakeStore) SetIdeaStatus(ideaID, userID uuid.UUID, status domain.IdeaStatus) (*models.Idea, error) {
	idea, err := f.GetIdea(ideaID, userID)
	if err != nil {
		return nil, err
	}
	idea.Status = status
	if status == domain.IdeaFilmed && !idea.FilmedAt.Valid {
		idea.FilmedAt = sql.NullTime{Time: time.Now(), Valid: true}
	}
	if status == domain.IdeaPublished && !idea.PublishedAt.Valid {
		idea.PublishedAt = sql.NullTime{Time: time.Now(), Valid: true}
	}
	f.ideas[ideaID] = idea
	copied := *idea
	return &copied, nil
}

func (f *fakeStore) ScheduleIdeaFilming(ideaID, userID uuid.UUID, status domain.IdeaStatus, date time.Time) (*models.Idea, error) {
	if f.failIdeaSchedule {
		return nil, errors.New("forced idea write failure")
	}
	idea, err := f.GetIdea(ideaID, userID)
	if err != nil {
		return nil, err
	}
	idea.Status = status
	idea.ScheduledDate = sql.NullTime{Time: date, Valid: true}
	f.ideas[ideaID] = idea
	copied := *idea
	return &copied, nil
}

func (f *fakeStore) ScheduleIdeaPublish(ideaID, userID uuid.UUID, status domain.IdeaStatus, date time.Time) (*models.Idea, error) {
	if f.failIdeaSchedule {
		return nil, errors.New("forced idea write failure")
	}
	idea, err := f.GetIdea(ideaID, userID)
	if err != nil {
		return nil, err
	}
	idea.Status = status
	idea.PublishDate = sql.NullTime{Time: date, Valid: true}
	f.ideas[ideaID] = idea
	copied := *idea
	return &copied, nil
}

func (f *fakeStore) ClearIdeaSchedule(ideaID, userID uuid.UUID) (*models.Idea, error) {
	if f.failClearSchedule {
		return nil, errors.New("forced clear failure")
	}
	idea, err := f.GetIdea(ideaID, userID)
	if err != nil {
		return nil, err
	}
	idea.Status = domain.IdeaScripted
	idea.ScheduledDate = sql.NullTime{}
	idea.PublishDate = sql.NullTime{}
	f.ideas[ideaID] = idea
	copied := *idea
	return &copied, nil
}

func (f *fakeStore) CreatePlannerItem(item *models.PlannerItem) (*models.PlannerItem, error) {
	if f.failCreateItem {
		return nil, errors.New("forced planner insert failure")
	}
	copied := *item
	f.items[item.ID] = &copied
	returned := copied
	return &returned, nil
}

func (f *fakeStore) GetPlannerItem(itemID, userID uuid.UUID) (*models.PlannerItem, error) {
	item, ok := f.items[itemID]
	if !ok || item.UserID != userID {
		return nil, errors.New("planner item not found")
	}
	copied := *item
	return &copied, nil
}

func (f *fakeStore) DeletePlannerItem(itemID, userID uuid.UUID) error {
	delete(f.items, itemID)
	return nil
}

type fakePublisher struct {
	events   []string
	payloads []map[string]interface{}
	fail     bool
}

func (f *fakePublisher) PublishUserEvent(userID uuid.UUID, event string, payload map[string]interface{}) error {
	f.events = append(f.events, event)
	f.payloads = append(f.payloads, payload)
	if f.fail {
		return errors.New("forced publish failure")
	}
	return nil
}

func newService(store *fakeStore) (*services.SchedulingService, *fakePublisher) {
	publisher := &fakePublisher{}
	return services.NewSchedulingService(store, publisher, logger.NewNop()), publisher
}

func TestAdvance_FollowsSuccessorTable(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	idea := store.addIdea(userID, domain.IdeaDraft)
	svc, publisher := newService(store)

	updated, advanced, err := svc.Advance(userID, idea.ID)
	require.NoError(t, err)
	assert.True(t, advanced)
	assert.Equal(t, domain.IdeaScripted, updated.Status)
	assert.Contains(t, publisher.events, "status_changed")
}

func TestAdvance_TerminalStageIsNoOp(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	idea := store.addIdea(userID, domain.IdeaPublished)
	svc, publisher := newService(store)

	updated, advanced, err := svc.Advance(userID, idea.ID)
	require.NoError(t, err)
	assert.False(t, advanced)
	assert.Equal(t, domain.IdeaPublished, updated.Status)
	assert.Empty(t, publisher.events)
}

func TestAdvance_FilmedStampSetOnce(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	idea := store.addIdea(userID, domain.IdeaToFilm)
	svc, _ := newService(store)

	updated, _, err := svc.Advance(userID, idea.ID)
	require.NoError(t, err)
	require.True(t, updated.FilmedAt.Valid)
	first := updated.FilmedAt.Time

	// Jump away and back; the stamp must not move.
	_, err = svc.Jump(userID, idea.ID, domain.IdeaEditing)
	require.NoError(t, err)
	again, err := svc.Jump(userID, idea.ID, domain.IdeaFilmed)
	require.NoError(t, err)
	assert.Equal(t, first, again.FilmedAt.Time)
}

func TestJump_RejectsUnknownStatus(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	idea := store.addIdea(userID, domain.IdeaDraft)
	svc, _ := newService(store)

	_, err := svc.Jump(userID, idea.ID, domain.IdeaStatus("shipped"))
	assert.ErrorIs(t, err, services.ErrInvalidStatus)
}

func TestJump_BackwardMoveAllowed(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	idea := store.addIdea(userID, domain.IdeaScheduled)
	svc, _ := newService(store)

	updated, err := svc.Jump(userID, idea.ID, domain.IdeaDraft)
	require.NoError(t, err)
	assert.Equal(t, domain.IdeaDraft, updated.Status)
}

func TestDrop_ScriptedIdeaBecomesFilmingSlot(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	idea := store.addIdea(userID, domain.IdeaScripted)
	svc, _ := newService(store)
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	updated, item, err := svc.Drop(userID, idea.ID, date)
	require.NoError(t, err)
	assert.Equal(t, domain.IdeaPlanned, updated.Status)
	assert.Equal(t, date, updated.ScheduledDate.Time)
	assert.Equal(t, domain.SlotFilming, item.ItemType)
	assert.Equal(t, domain.DefaultFilmingTime, item.StartTime)
	assert.Equal(t, idea.ID, item.IdeaID.UUID)
}

func TestDrop_FilmedIdeaBecomesPublishingSlot(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	idea := store.addIdea(userID, domain.IdeaFilmed)
	svc, _ := newService(store)
	date := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)

	updated, item, err := svc.Drop(userID, idea.ID, date)
	require.NoError(t, err)
	assert.Equal(t, domain.IdeaScheduled, updated.Status)
	assert.Equal(t, date, updated.PublishDate.Time)
	assert.Equal(t, domain.SlotPublishing, item.ItemType)
	assert.Equal(t, domain.DefaultPublishingTime, item.StartTime)
}

func TestDrop_OtherStatusRejected(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	svc, _ := newService(store)
	date := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)

	for _, status := range []domain.IdeaStatus{
		domain.IdeaDraft, domain.IdeaPlanned, domain.IdeaToFilm,
		domain.IdeaEditing, domain.IdeaScheduled, domain.IdeaPublished,
		domain.IdeaArchived,
	} {
		idea := store.addIdea(userID, status)
		_, _, err := svc.Drop(userID, idea.ID, date)
		assert.ErrorIs(t, err, services.ErrNotDroppable, "status %s", status)
		assert.Empty(t, store.items)
	}
}

func TestDrop_SecondWriteFailureReportsPartial(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	idea := store.addIdea(userID, domain.IdeaScripted)
	store.failIdeaSchedule = true
	svc, _ := newService(store)
	date := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)

	_, item, err := svc.Drop(userID, idea.ID, date)

	var partial *services.PartialWriteError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, "planner insert", partial.Completed)
	// The planner item landed; the idea did not move. That drift is the
	// reconciler's problem, not a rollback.
	assert.NotNil(t, item)
	assert.Len(t, store.items, 1)
	assert.Equal(t, domain.IdeaScripted, store.ideas[idea.ID].Status)
}

func TestScheduleFilming_WritesIdeaFirst(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	idea := store.addIdea(userID, domain.IdeaScripted)
	store.failCreateItem = true
	svc, _ := newService(store)
	date := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	_, _, err := svc.ScheduleFilming(userID, idea.ID, date, "10:30")

	var partial *services.PartialWriteError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, "idea update", partial.Completed)
	// Idea moved, planner insert failed: the denormalized date now has no
	// matching item.
	assert.Equal(t, domain.IdeaToFilm, store.ideas[idea.ID].Status)
	assert.True(t, store.ideas[idea.ID].ScheduledDate.Valid)
	assert.Empty(t, store.items)
}

func TestScheduleFilming_PublishesEventWithDate(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	idea := store.addIdea(userID, domain.IdeaScripted)
	svc, publisher := newService(store)
	date := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	_, _, err := svc.ScheduleFilming(userID, idea.ID, date, "10:30")
	require.NoError(t, err)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, "filming_scheduled", publisher.events[0])
	assert.Equal(t, "2025-07-01", publisher.payloads[0]["scheduled_date"])
	assert.Equal(t, idea.ID.String(), publisher.payloads[0]["idea_id"])
}

func TestSchedulePost_PublishFailureDoesNotFailWrite(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	idea := store.addIdea(userID, domain.IdeaEditing)
	svc, publisher := newService(store)
	publisher.fail = true
	date := time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)

	updated, item, err := svc.SchedulePost(userID, idea.ID, date, "18:00")

	// The broadcast is best-effort; both writes landed.
	require.NoError(t, err)
	assert.NotNil(t, updated)
	assert.NotNil(t, item)
	assert.Equal(t, []string{"post_scheduled"}, publisher.events)
}

func TestSchedulePost_MovesIdeaToScheduled(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	idea := store.addIdea(userID, domain.IdeaEditing)
	svc, _ := newService(store)
	date := time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)

	updated, item, err := svc.SchedulePost(userID, idea.ID, date, "18:00")
	require.NoError(t, err)
	assert.Equal(t, domain.IdeaScheduled, updated.Status)
	assert.Equal(t, date, updated.PublishDate.Time)
	assert.Equal(t, domain.SlotPublishing, item.ItemType)
	assert.Equal(t, "18:00", item.StartTime)
}

func TestCreateManualItem_StandaloneSkipsIdeaWrite(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	svc, _ := newService(store)
	date := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

	item, idea, err := svc.CreateManualItem(userID, date, "14:00", domain.SlotMeeting, "sponsor call", uuid.NullUUID{})
	require.NoError(t, err)
	assert.Nil(t, idea)
	assert.Equal(t, "sponsor call", item.Title)
	assert.Len(t, store.items, 1)
}

func TestCreateManualItem_FilmingSlotMovesIdea(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	idea := store.addIdea(userID, domain.IdeaScripted)
	svc, _ := newService(store)
	date := time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC)

	_, updated, err := svc.CreateManualItem(userID, date, "09:00", domain.SlotFilming, idea.Title, uuid.NullUUID{UUID: idea.ID, Valid: true})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, domain.IdeaPlanned, updated.Status)
	assert.Equal(t, date, updated.ScheduledDate.Time)
}

func TestDeleteItem_RevertsIdeaToScripted(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	idea := store.addIdea(userID, domain.IdeaScripted)
	svc, publisher := newService(store)
	date := time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC)

	_, item, err := svc.Drop(userID, idea.ID, date)
	require.NoError(t, err)

	// Progress the idea past planned; the compensation still reverts to
	// scripted. Lossy and documented.
	_, err = svc.Jump(userID, idea.ID, domain.IdeaEditing)
	require.NoError(t, err)

	reverted, err := svc.DeleteItem(userID, item.ID)
	require.NoError(t, err)
	require.NotNil(t, reverted)
	assert.Equal(t, domain.IdeaScripted, reverted.Status)
	assert.False(t, reverted.ScheduledDate.Valid)
	assert.Empty(t, store.items)
	assert.Contains(t, publisher.events, "schedule_cleared")
}

func TestDeleteItem_StandaloneItemNoCompensation(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	svc, _ := newService(store)
	date := time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC)

	item, _, err := svc.CreateManualItem(userID, date, "", domain.SlotTask, "edit thumbnails", uuid.NullUUID{})
	require.NoError(t, err)

	idea, err := svc.DeleteItem(userID, item.ID)
	require.NoError(t, err)
	assert.Nil(t, idea)
}

func TestDeleteItem_CompensationFailureReportsPartial(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	idea := store.addIdea(userID, domain.IdeaScripted)
	svc, _ := newService(store)
	date := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)

	_, item, err := svc.Drop(userID, idea.ID, date)
	require.NoError(t, err)

	store.failClearSchedule = true
	_, err = svc.DeleteItem(userID, item.ID)

	var partial *services.PartialWriteError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, "planner delete", partial.Completed)
	assert.Empty(t, store.items)
}
