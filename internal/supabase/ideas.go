package supabase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"creatorops-backend/internal/domain"
	"creatorops-backend/internal/models"
)

const ideaColumns = `id, user_id, title, status, priority, pillar_id, category_id,
	content_type_id, filming_setup_id, inspiration_id, scheduled_date, publish_date,
	filmed_at, published_at, script_text, hook, cta, filming_notes, created_at, updated_at`

type ideaScanner interface {
	Scan(dest ...interface{}) error
}

func scanIdea(row ideaScanner) (*models.Idea, error) {
	var idea models.Idea
	err := row.Scan(
		&idea.ID, &idea.UserID, &idea.Title, &idea.Status, &idea.Priority,
		&idea.PillarID, &idea.CategoryID, &idea.ContentTypeID, &idea.FilmingSetupID,
		&idea.InspirationID, &idea.ScheduledDate, &idea.PublishDate,
		&idea.FilmedAt, &idea.PublishedAt, &idea.ScriptText, &idea.Hook,
		&idea.CTA, &idea.FilmingNotes, &idea.CreatedAt, &idea.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

func (d *DatabaseClient) CreateIdea(idea *models.Idea) (*models.Idea, error) {
	row := d.db.QueryRow(`
		INSERT INTO ideas (id, user_id, title, status, priority, pillar_id, category_id,
			content_type_id, filming_setup_id, inspiration_id, script_text, hook, cta, filming_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING `+ideaColumns+`
	`, idea.ID, idea.UserID, idea.Title, idea.Status, idea.Priority,
		idea.PillarID, idea.CategoryID, idea.ContentTypeID, idea.FilmingSetupID,
		idea.InspirationID, idea.ScriptText, idea.Hook, idea.CTA, idea.FilmingNotes)

	created, err := scanIdea(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create idea: %w", err)
	}
	return created, nil
}

func (d *DatabaseClient) GetIdea(ideaID, userID uuid.UUID) (*models.Idea, error) {
	row := d.db.QueryRow(`
		SELECT `+ideaColumns+`
		FROM ideas
		WHERE id = $1 AND user_id = $2
	`, ideaID, userID)

	idea, err := scanIdea(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get idea: %w", err)
	}
	return idea, nil
}

// IdeaFilter narrows the ideas list. Zero values mean no filter.
type IdeaFilter struct {
	Status   domain.IdeaStatus
	PillarID uuid.NullUUID
	Priority domain.Priority
}

func (d *DatabaseClient) ListIdeas(userID uuid.UUID, filter IdeaFilter) ([]models.Idea, error) {
	query := `SELECT ` + ideaColumns + ` FROM ideas WHERE user_id = $1`
	args := []interface{}{userID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.PillarID.Valid {
		args = append(args, filter.PillarID.UUID)
		query += fmt.Sprintf(" AND pillar_id = $%d", len(args))
	}
	if filter.Priority != 0 {
		args = append(args, filter.Priority)
		query += fmt.Sprintf(" AND priority = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	return d.queryIdeas(query, args...)
}

// ListProductionIdeas returns the ideas shown in the production workspace:
// scripted through editing, nothing else.
func (d *DatabaseClient) ListProductionIdeas(userID uuid.UUID) ([]models.Idea, error) {
	return d.queryIdeas(`
		SELECT `+ideaColumns+`
		FROM ideas
		WHERE user_id = $1 AND status = ANY($2)
		ORDER BY created_at DESC
	`, userID, pq.Array(statusArray(domain.ProductionStatuses)))
}

// ListUnscheduledScripted returns scripted ideas with no filming date, the
// first planner drag source list.
func (d *DatabaseClient) ListUnscheduledScripted(userID uuid.UUID) ([]models.Idea, error) {
	return d.queryIdeas(`
		SELECT `+ideaColumns+`
		FROM ideas
		WHERE user_id = $1 AND status = 'scripted' AND scheduled_date IS NULL
		ORDER BY priority ASC, created_at DESC
	`, userID)
}

// ListUnscheduledFilmed returns filmed ideas with no publish date, the
// second planner drag source list.
func (d *DatabaseClient) ListUnscheduledFilmed(userID uuid.UUID) ([]models.Idea, error) {
	return d.queryIdeas(`
		SELECT `+ideaColumns+`
		FROM ideas
		WHERE user_id = $1 AND status = 'filmed' AND publish_date IS NULL
		ORDER BY priority ASC, created_at DESC
	`, userID)
}

func (d *DatabaseClient) queryIdeas(query string, args ...interface{}) ([]models.Idea, error) {
	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}
	defer rows.Close()

	var ideas []models.Idea
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan idea: %w", err)
		}
		ideas = append(ideas, *idea)
	}

	return ideas, rows.Err()
}

func (d *DatabaseClient) UpdateIdea(idea *models.Idea) (*models.Idea, error) {
	row := d.db.QueryRow(`
		UPDATE ideas
		SET title = $1, priority = $2, pillar_id = $3, category_id = $4,
			content_type_id = $5, filming_setup_id = $6, script_text = $7,
			hook = $8, cta = $9, filming_notes = $10, updated_at = NOW()
		WHERE id = $11 AND user_id = $12
		RETURNING `+ideaColumns+`
	`, idea.Title, idea.Priority, idea.PillarID, idea.CategoryID,
		idea.ContentTypeID, idea.FilmingSetupID, idea.ScriptText,
		idea.Hook, idea.CTA, idea.FilmingNotes, idea.ID, idea.UserID)

	updated, err := scanIdea(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update idea: %w", err)
	}
	return updated, nil
}

// SetIdeaStatus writes a new lifecycle status. The timestamp side effects
// live here so advance and jump share them: moving to filmed stamps
// filmed_at only when it is still null, moving to published stamps
// published_at the same way. No other status touches a timestamp.
func (d *DatabaseClient) SetIdeaStatus(ideaID, userID uuid.UUID, status domain.IdeaStatus) (*models.Idea, error) {
	row := d.db.QueryRow(`
		UPDATE ideas
		SET status = $1,
			filmed_at = CASE WHEN $1 = 'filmed' THEN COALESCE(filmed_at, NOW()) ELSE filmed_at END,
			published_at = CASE WHEN $1 = 'published' THEN COALESCE(published_at, NOW()) ELSE published_at END,
			updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING `+ideaColumns+`
	`, status, ideaID, userID)

	idea, err := scanIdea(row)
	if err != nil {
		return nil, fmt.Errorf("failed to set idea status: %w", err)
	}
	return idea, nil
}

// ScheduleIdeaFilming sets the status and the denormalized filming date in
// one write. The paired planner item insert is a separate request.
func (d *DatabaseClient) ScheduleIdeaFilming(ideaID, userID uuid.UUID, status domain.IdeaStatus, date time.Time) (*models.Idea, error) {
	row := d.db.QueryRow(`
		UPDATE ideas
		SET status = $1, scheduled_date = $2, updated_at = NOW()
		WHERE id = $3 AND user_id = $4
		RETURNING `+ideaColumns+`
	`, status, date, ideaID, userID)

	idea, err := scanIdea(row)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule filming: %w", err)
	}
	return idea, nil
}

// ScheduleIdeaPublish sets the status and the denormalized publish date.
func (d *DatabaseClient) ScheduleIdeaPublish(ideaID, userID uuid.UUID, status domain.IdeaStatus, date time.Time) (*models.Idea, error) {
	row := d.db.QueryRow(`
		UPDATE ideas
		SET status = $1, publish_date = $2, updated_at = NOW()
		WHERE id = $3 AND user_id = $4
		RETURNING `+ideaColumns+`
	`, status, date, ideaID, userID)

	idea, err := scanIdea(row)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule publish: %w", err)
	}
	return idea, nil
}

// ClearIdeaSchedule is the compensating write for a deleted planner item:
// back to scripted with the filming date cleared, whatever the idea's
// current status.
func (d *DatabaseClient) ClearIdeaSchedule(ideaID, userID uuid.UUID) (*models.Idea, error) {
	row := d.db.QueryRow(`
		UPDATE ideas
		SET status = 'scripted', scheduled_date = NULL, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING `+ideaColumns+`
	`, ideaID, userID)

	idea, err := scanIdea(row)
	if err != nil {
		return nil, fmt.Errorf("failed to clear idea schedule: %w", err)
	}
	return idea, nil
}

// DeleteIdea removes the idea; script blocks and b-roll rows go with it by
// foreign key cascade.
func (d *DatabaseClient) DeleteIdea(ideaID, userID uuid.UUID) error {
	_, err := d.db.Exec(`
		DELETE FROM ideas
		WHERE id = $1 AND user_id = $2
	`, ideaID, userID)
	return err
}

func (d *DatabaseClient) CountIdeasByStatus(userID uuid.UUID) (map[string]int, error) {
	rows, err := d.db.Query(`
		SELECT status, COUNT(*)
		FROM ideas
		WHERE user_id = $1
		GROUP BY status
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count ideas: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

func statusArray(statuses []domain.IdeaStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
