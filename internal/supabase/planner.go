package supabase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"creatorops-backend/internal/domain"
	"creatorops-backend/internal/models"
)

const plannerColumns = `id, user_id, date, start_time, item_type, title, idea_id, created_at`

func scanPlannerItem(row ideaScanner) (*models.PlannerItem, error) {
	var item models.PlannerItem
	err := row.Scan(
		&item.ID, &item.UserID, &item.Date, &item.StartTime,
		&item.ItemType, &item.Title, &item.IdeaID, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (d *DatabaseClient) CreatePlannerItem(item *models.PlannerItem) (*models.PlannerItem, error) {
	row := d.db.QueryRow(`
		INSERT INTO planner_items (id, user_id, date, start_time, item_type, title, idea_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+plannerColumns+`
	`, item.ID, item.UserID, item.Date, item.StartTime, item.ItemType, item.Title, item.IdeaID)

	created, err := scanPlannerItem(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create planner item: %w", err)
	}
	return created, nil
}

func (d *DatabaseClient) GetPlannerItem(itemID, userID uuid.UUID) (*models.PlannerItem, error) {
	row := d.db.QueryRow(`
		SELECT `+plannerColumns+`
		FROM planner_items
		WHERE id = $1 AND user_id = $2
	`, itemID, userID)

	item, err := scanPlannerItem(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get planner item: %w", err)
	}
	return item, nil
}

// ListPlannerItems fetches every item in the date range. Day cells cap what
// they display, not what is fetched.
func (d *DatabaseClient) ListPlannerItems(userID uuid.UUID, from, to time.Time) ([]models.PlannerItem, error) {
	rows, err := d.db.Query(`
		SELECT `+plannerColumns+`
		FROM planner_items
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC, start_time ASC
	`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list planner items: %w", err)
	}
	defer rows.Close()

	var items []models.PlannerItem
	for rows.Next() {
		item, err := scanPlannerItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan planner item: %w", err)
		}
		items = append(items, *item)
	}

	return items, rows.Err()
}

func (d *DatabaseClient) DeletePlannerItem(itemID, userID uuid.UUID) error {
	_, err := d.db.Exec(`
		DELETE FROM planner_items
		WHERE id = $1 AND user_id = $2
	`, itemID, userID)
	return err
}

// HasPlannerItemForIdea reports whether an item of the given type exists for
// the idea on the given date. Used by the drift reconciler.
func (d *DatabaseClient) HasPlannerItemForIdea(ideaID uuid.UUID, itemType domain.PlannerItemType, date time.Time) (bool, error) {
	var count int
	err := d.db.QueryRow(`
		SELECT COUNT(*)
		FROM planner_items
		WHERE idea_id = $1 AND item_type = $2 AND date = $3
	`, ideaID, itemType, date).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check planner item: %w", err)
	}
	return count > 0, nil
}

// ListScheduledIdeas returns, across all users, ideas whose denormalized
// dates claim a planner slot. Reconciler input.
func (d *DatabaseClient) ListScheduledIdeas() ([]models.Idea, error) {
	return d.queryIdeas(`
		SELECT ` + ideaColumns + `
		FROM ideas
		WHERE (status IN ('to_film', 'planned') AND scheduled_date IS NOT NULL)
		   OR (status = 'scheduled' AND publish_date IS NOT NULL)
	`)
}
