package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"creatorops-backend/internal/domain"
	"creatorops-backend/internal/logger"
	"creatorops-backend/internal/models"
)

// ReconcilerStore is the slice of the database client the drift check needs.
type ReconcilerStore interface {
	ListScheduledIdeas() ([]models.Idea, error)
	HasPlannerItemForIdea(ideaID uuid.UUID, itemType domain.PlannerItemType, date time.Time) (bool, error)
	CreatePlannerItem(item *models.PlannerItem) (*models.PlannerItem, error)
}

// Drift is one idea whose denormalized date has no matching planner item.
type Drift struct {
	IdeaID   uuid.UUID
	UserID   uuid.UUID
	ItemType domain.PlannerItemType
	Date     time.Time
}

// DriftReport summarizes one reconciler pass.
type DriftReport struct {
	Checked  int
	Drifted  []Drift
	Repaired int
}

// Reconciler periodically cross-checks ideas.scheduled_date/publish_date
// against planner_items. The dual writes that maintain the pair are
// sequential and non-transactional, so a failed second write leaves the two
// tables inconsistent; this job finds those rows and, when repair is
// enabled, re-inserts the missing planner item.
type Reconciler struct {
	store  ReconcilerStore
	log    *logger.Logger
	repair bool
}

func NewReconciler(store ReconcilerStore, log *logger.Logger, repair bool) *Reconciler {
	return &Reconciler{
		store:  store,
		log:    log,
		repair: repair,
	}
}

// Run performs one pass over all scheduled ideas.
func (r *Reconciler) Run() (*DriftReport, error) {
	ideas, err := r.store.ListScheduledIdeas()
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled ideas: %w", err)
	}

	report := &DriftReport{Checked: len(ideas)}
	for i := range ideas {
		idea := &ideas[i]

		var itemType domain.PlannerItemType
		var date time.Time
		switch {
		case (idea.Status == domain.IdeaToFilm || idea.Status == domain.IdeaPlanned) && idea.ScheduledDate.Valid:
			itemType = domain.SlotFilming
			date = idea.ScheduledDate.Time
		case idea.Status == domain.IdeaScheduled && idea.PublishDate.Valid:
			itemType = domain.SlotPublishing
			date = idea.PublishDate.Time
		default:
			continue
		}

		exists, err := r.store.HasPlannerItemForIdea(idea.ID, itemType, date)
		if err != nil {
			return nil, fmt.Errorf("failed to check planner item for idea %s: %w", idea.ID, err)
		}
		if exists {
			continue
		}

		drift := Drift{IdeaID: idea.ID, UserID: idea.UserID, ItemType: itemType, Date: date}
		report.Drifted = append(report.Drifted, drift)
		r.log.Warnw("scheduling drift detected",
			"idea_id", idea.ID,
			"item_type", itemType,
			"date", date.Format("2006-01-02"),
		)

		if !r.repair {
			continue
		}

		startTime := domain.DefaultFilmingTime
		if itemType == domain.SlotPublishing {
			startTime = domain.DefaultPublishingTime
		}
		_, err = r.store.CreatePlannerItem(&models.PlannerItem{
			ID:        uuid.New(),
			UserID:    idea.UserID,
			Date:      date,
			StartTime: startTime,
			ItemType:  itemType,
			Title:     idea.Title,
			IdeaID:    uuid.NullUUID{UUID: idea.ID, Valid: true},
		})
		if err != nil {
			r.log.Errorw("drift repair failed", "idea_id", idea.ID, "error", err)
			continue
		}
		report.Repaired++
	}

	return report, nil
}

// Start schedules Run on the given 5-field cron expression and returns the
// started cron handle.
func (r *Reconciler) Start(schedule string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		report, err := r.Run()
		if err != nil {
			r.log.Errorw("reconciler pass failed", "error", err)
			return
		}
		r.log.Infow("reconciler pass complete",
			"checked", report.Checked,
			"drifted", len(report.Drifted),
			"repaired", report.Repaired,
		)
	})
	if err != nil {
		return nil, fmt.Errorf("invalid reconciler schedule %q: %w", schedule, err)
	}
	c.Start()
	return c, nil
}
