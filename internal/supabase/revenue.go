package supabase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"creatorops-backend/internal/models"
)

const revenueColumns = `id, user_id, date, amount, currency, source, deal_id, notes, created_at`

func scanRevenue(row ideaScanner) (*models.Revenue, error) {
	var rev models.Revenue
	err := row.Scan(
		&rev.ID, &rev.UserID, &rev.Date, &rev.Amount, &rev.Currency,
		&rev.Source, &rev.DealID, &rev.Notes, &rev.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

func (d *DatabaseClient) CreateRevenue(rev *models.Revenue) (*models.Revenue, error) {
	row := d.db.QueryRow(`
		INSERT INTO revenues (id, user_id, date, amount, currency, source, deal_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+revenueColumns+`
	`, rev.ID, rev.UserID, rev.Date, rev.Amount, rev.Currency, rev.Source, rev.DealID, rev.Notes)

	created, err := scanRevenue(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create revenue: %w", err)
	}
	return created, nil
}

func (d *DatabaseClient) ListRevenues(userID uuid.UUID, from, to time.Time) ([]models.Revenue, error) {
	rows, err := d.db.Query(`
		SELECT `+revenueColumns+`
		FROM revenues
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date DESC
	`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list revenues: %w", err)
	}
	defer rows.Close()

	var revenues []models.Revenue
	for rows.Next() {
		rev, err := scanRevenue(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan revenue: %w", err)
		}
		revenues = append(revenues, *rev)
	}

	return revenues, rows.Err()
}

// SumRevenue totals the ledger for a window. Nothing is cached or
// pre-aggregated; every call recomputes.
func (d *DatabaseClient) SumRevenue(userID uuid.UUID, from, to time.Time) (float64, error) {
	var total float64
	err := d.db.QueryRow(`
		SELECT COALESCE(SUM(amount), 0)
		FROM revenues
		WHERE user_id = $1 AND date >= $2 AND date <= $3
	`, userID, from, to).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum revenue: %w", err)
	}
	return total, nil
}

func (d *DatabaseClient) DeleteRevenue(revenueID, userID uuid.UUID) error {
	_, err := d.db.Exec(`
		DELETE FROM revenues
		WHERE id = $1 AND user_id = $2
	`, revenueID, userID)
	return err
}
