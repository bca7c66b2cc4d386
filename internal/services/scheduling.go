package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"creatorops-backend/internal/domain"
	"creatorops-backend/internal/logger"
	"creatorops-backend/internal/models"
	"creatorops-backend/internal/supabase"
)

// ErrNotDroppable is returned when a planner drop targets an idea that is
// neither scripted nor filmed; the two drag source lists only ever hold
// those.
var ErrNotDroppable = errors.New("idea status does not allow planner drop")

// ErrInvalidStatus is returned for a status outside the nine-value enum.
var ErrInvalidStatus = errors.New("invalid idea status")

// PartialWriteError reports the second half of a dual write failing after
// the first half committed. There is no rollback; the idea and planner
// tables are left to drift until the reconciler or the user repairs them.
type PartialWriteError struct {
	Completed string
	Err       error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("partial write: %s succeeded, follow-up failed: %v", e.Completed, e.Err)
}

func (e *PartialWriteError) Unwrap() error {
	return e.Err
}

// SchedulingStore is the slice of the database client the scheduling
// service needs.
type SchedulingStore interface {
	GetIdea(ideaID, userID uuid.UUID) (*models.Idea, error)
	SetIdeaStatus(ideaID, userID uuid.UUID, status domain.IdeaStatus) (*models.Idea, error)
	ScheduleIdeaFilming(ideaID, userID uuid.UUID, status domain.IdeaStatus, date time.Time) (*models.Idea, error)
	ScheduleIdeaPublish(ideaID, userID uuid.UUID, status domain.IdeaStatus, date time.Time) (*models.Idea, error)
	ClearIdeaSchedule(ideaID, userID uuid.UUID) (*models.Idea, error)
	CreatePlannerItem(item *models.PlannerItem) (*models.PlannerItem, error)
	GetPlannerItem(itemID, userID uuid.UUID) (*models.PlannerItem, error)
	DeletePlannerItem(itemID, userID uuid.UUID) error
}

// RealtimePublisher pushes lifecycle events to the dashboard.
type RealtimePublisher interface {
	PublishUserEvent(userID uuid.UUID, event string, payload map[string]interface{}) error
}

// SchedulingService owns every write that touches the idea lifecycle or the
// planner. The multi-record actions are sequential independent requests, not
// transactions: that mirrors how the dashboard drives the hosted backend,
// and the reconciler exists to catch the resulting drift.
type SchedulingService struct {
	store    SchedulingStore
	realtime RealtimePublisher
	log      *logger.Logger
}

func NewSchedulingService(store SchedulingStore, realtime RealtimePublisher, log *logger.Logger) *SchedulingService {
	return &SchedulingService{
		store:    store,
		realtime: realtime,
		log:      log,
	}
}

// Advance moves an idea to its fixed successor stage. Stages without a
// successor (published, archived) are a no-op: the idea comes back
// unchanged and advanced is false.
func (s *SchedulingService) Advance(userID, ideaID uuid.UUID) (*models.Idea, bool, error) {
	idea, err := s.store.GetIdea(ideaID, userID)
	if err != nil {
		return nil, false, err
	}

	next, ok := idea.Status.Next()
	if !ok {
		return idea, false, nil
	}

	updated, err := s.store.SetIdeaStatus(ideaID, userID, next)
	if err != nil {
		return nil, false, err
	}

	s.publishStatus(userID, updated)
	return updated, true, nil
}

// Jump sets any status directly, forward or backward. There is no
// transition guard beyond set membership; that flexibility is intentional.
func (s *SchedulingService) Jump(userID, ideaID uuid.UUID, status domain.IdeaStatus) (*models.Idea, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	updated, err := s.store.SetIdeaStatus(ideaID, userID, status)
	if err != nil {
		return nil, err
	}

	s.publishStatus(userID, updated)
	return updated, nil
}

// ScheduleFilming is the production quick action on a scripted idea: the
// idea moves to to_film with its filming date set, then a filming slot is
// inserted in the planner. Two writes, idea first.
func (s *SchedulingService) ScheduleFilming(userID, ideaID uuid.UUID, date time.Time, startTime string) (*models.Idea, *models.PlannerItem, error) {
	idea, err := s.store.ScheduleIdeaFilming(ideaID, userID, domain.IdeaToFilm, date)
	if err != nil {
		return nil, nil, err
	}

	item, err := s.insertIdeaSlot(userID, idea, domain.SlotFilming, date, startTime)
	if err != nil {
		return idea, nil, &PartialWriteError{Completed: "idea update", Err: err}
	}

	s.publish(userID, "filming_scheduled", supabase.FilmingScheduledPayload(idea.ID, date.Format("2006-01-02")))
	return idea, item, nil
}

// SchedulePost moves a filmed or editing idea to scheduled with its publish
// date and inserts a publishing slot. The idea leaves the production list on
// the next fetch.
func (s *SchedulingService) SchedulePost(userID, ideaID uuid.UUID, date time.Time, startTime string) (*models.Idea, *models.PlannerItem, error) {
	idea, err := s.store.ScheduleIdeaPublish(ideaID, userID, domain.IdeaScheduled, date)
	if err != nil {
		return nil, nil, err
	}

	item, err := s.insertIdeaSlot(userID, idea, domain.SlotPublishing, date, startTime)
	if err != nil {
		return idea, nil, &PartialWriteError{Completed: "idea update", Err: err}
	}

	s.publish(userID, "post_scheduled", supabase.PostScheduledPayload(idea.ID, date.Format("2006-01-02")))
	return idea, item, nil
}

// MarkFilmed is the production quick action for planned/to_film ideas. The
// filmed_at stamp is applied by the store only when still unset.
func (s *SchedulingService) MarkFilmed(userID, ideaID uuid.UUID) (*models.Idea, error) {
	return s.Jump(userID, ideaID, domain.IdeaFilmed)
}

// MoveToEditing is the production quick action for filmed ideas.
func (s *SchedulingService) MoveToEditing(userID, ideaID uuid.UUID) (*models.Idea, error) {
	return s.Jump(userID, ideaID, domain.IdeaEditing)
}

// Drop handles drag-and-drop onto a planner day. A scripted idea becomes a
// 09:00 filming slot and moves to planned; a filmed idea becomes a 12:00
// publishing slot and moves to scheduled. Item first, then the idea patch,
// matching the dashboard's write order.
func (s *SchedulingService) Drop(userID, ideaID uuid.UUID, date time.Time) (*models.Idea, *models.PlannerItem, error) {
	idea, err := s.store.GetIdea(ideaID, userID)
	if err != nil {
		return nil, nil, err
	}

	switch idea.Status {
	case domain.IdeaScripted:
		item, err := s.insertIdeaSlot(userID, idea, domain.SlotFilming, date, domain.DefaultFilmingTime)
		if err != nil {
			return nil, nil, err
		}
		updated, err := s.store.ScheduleIdeaFilming(ideaID, userID, domain.IdeaPlanned, date)
		if err != nil {
			return nil, item, &PartialWriteError{Completed: "planner insert", Err: err}
		}
		s.publishStatus(userID, updated)
		return updated, item, nil

	case domain.IdeaFilmed:
		item, err := s.insertIdeaSlot(userID, idea, domain.SlotPublishing, date, domain.DefaultPublishingTime)
		if err != nil {
			return nil, nil, err
		}
		updated, err := s.store.ScheduleIdeaPublish(ideaID, userID, domain.IdeaScheduled, date)
		if err != nil {
			return nil, item, &PartialWriteError{Completed: "planner insert", Err: err}
		}
		s.publishStatus(userID, updated)
		return updated, item, nil

	default:
		return nil, nil, ErrNotDroppable
	}
}

// CreateManualItem is the dialog path. Standalone items are a single
// insert; items bound to an idea follow the same dual-write pattern keyed
// by the chosen slot type.
func (s *SchedulingService) CreateManualItem(userID uuid.UUID, date time.Time, startTime string, itemType domain.PlannerItemType, title string, ideaID uuid.NullUUID) (*models.PlannerItem, *models.Idea, error) {
	item, err := s.store.CreatePlannerItem(&models.PlannerItem{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      date,
		StartTime: startTime,
		ItemType:  itemType,
		Title:     title,
		IdeaID:    ideaID,
	})
	if err != nil {
		return nil, nil, err
	}

	if !ideaID.Valid {
		return item, nil, nil
	}

	var idea *models.Idea
	switch itemType {
	case domain.SlotFilming:
		idea, err = s.store.ScheduleIdeaFilming(ideaID.UUID, userID, domain.IdeaPlanned, date)
	case domain.SlotPublishing:
		idea, err = s.store.ScheduleIdeaPublish(ideaID.UUID, userID, domain.IdeaScheduled, date)
	case domain.SlotEditing:
		idea, err = s.store.SetIdeaStatus(ideaID.UUID, userID, domain.IdeaEditing)
	default:
		return item, nil, nil
	}
	if err != nil {
		return item, nil, &PartialWriteError{Completed: "planner insert", Err: err}
	}

	s.publishStatus(userID, idea)
	return item, idea, nil
}

// DeleteItem removes a planner item. When the item references an idea the
// compensating write follows: back to scripted with scheduled_date cleared,
// whatever the idea's current status. This loses progress made since
// scheduling; it is a compensation, not an undo.
func (s *SchedulingService) DeleteItem(userID, itemID uuid.UUID) (*models.Idea, error) {
	item, err := s.store.GetPlannerItem(itemID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.store.DeletePlannerItem(itemID, userID); err != nil {
		return nil, err
	}

	if !item.IdeaID.Valid {
		return nil, nil
	}

	idea, err := s.store.ClearIdeaSchedule(item.IdeaID.UUID, userID)
	if err != nil {
		return nil, &PartialWriteError{Completed: "planner delete", Err: err}
	}

	s.publish(userID, "schedule_cleared", supabase.ScheduleClearedPayload(idea.ID))
	return idea, nil
}

func (s *SchedulingService) insertIdeaSlot(userID uuid.UUID, idea *models.Idea, itemType domain.PlannerItemType, date time.Time, startTime string) (*models.PlannerItem, error) {
	return s.store.CreatePlannerItem(&models.PlannerItem{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      date,
		StartTime: startTime,
		ItemType:  itemType,
		Title:     idea.Title,
		IdeaID:    uuid.NullUUID{UUID: idea.ID, Valid: true},
	})
}

func (s *SchedulingService) publishStatus(userID uuid.UUID, idea *models.Idea) {
	s.publish(userID, "status_changed", supabase.StatusChangedPayload(idea.ID, string(idea.Status)))
}

// publish is best-effort: a failed broadcast is logged and never fails the
// write that triggered it.
func (s *SchedulingService) publish(userID uuid.UUID, event string, payload map[string]interface{}) {
	if err := s.realtime.PublishUserEvent(userID, event, payload); err != nil {
		s.log.Warnw("realtime publish failed", "event", event, "error", err)
	}
}
