package supabase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Analytics reads are plain window-scoped counts; nothing is persisted.

func (d *DatabaseClient) CountIdeasCreatedBetween(userID uuid.UUID, from, to time.Time) (int, error) {
	return d.countWindow(`
		SELECT COUNT(*) FROM ideas
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
	`, userID, from, to)
}

func (d *DatabaseClient) CountIdeasFilmedBetween(userID uuid.UUID, from, to time.Time) (int, error) {
	return d.countWindow(`
		SELECT COUNT(*) FROM ideas
		WHERE user_id = $1 AND filmed_at >= $2 AND filmed_at < $3
	`, userID, from, to)
}

func (d *DatabaseClient) CountIdeasPublishedBetween(userID uuid.UUID, from, to time.Time) (int, error) {
	return d.countWindow(`
		SELECT COUNT(*) FROM ideas
		WHERE user_id = $1 AND published_at >= $2 AND published_at < $3
	`, userID, from, to)
}

func (d *DatabaseClient) CountInspirationsBetween(userID uuid.UUID, from, to time.Time) (int, error) {
	return d.countWindow(`
		SELECT COUNT(*) FROM inspirations
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
	`, userID, from, to)
}

func (d *DatabaseClient) CountInspirationsConvertedBetween(userID uuid.UUID, from, to time.Time) (int, error) {
	return d.countWindow(`
		SELECT COUNT(*) FROM inspirations
		WHERE user_id = $1 AND is_processed AND created_at >= $2 AND created_at < $3
	`, userID, from, to)
}

// SumPipelineValue totals open deal value across the six board columns.
func (d *DatabaseClient) SumPipelineValue(userID uuid.UUID) (float64, error) {
	var total float64
	err := d.db.QueryRow(`
		SELECT COALESCE(SUM(value), 0)
		FROM deals
		WHERE user_id = $1 AND status NOT IN ('lost', 'cancelled')
	`, userID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum pipeline value: %w", err)
	}
	return total, nil
}

func (d *DatabaseClient) countWindow(query string, userID uuid.UUID, from, to time.Time) (int, error) {
	var count int
	if err := d.db.QueryRow(query, userID, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count window: %w", err)
	}
	return count, nil
}
