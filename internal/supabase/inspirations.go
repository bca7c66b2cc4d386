package supabase

import (
	"fmt"

	"github.com/google/uuid"

	"creatorops-backend/internal/models"
)

const inspirationColumns = `id, user_id, title, source, status, is_processed, source_url, notes, created_at`

func scanInspiration(row ideaScanner) (*models.Inspiration, error) {
	var insp models.Inspiration
	err := row.Scan(
		&insp.ID, &insp.UserID, &insp.Title, &insp.Source, &insp.Status,
		&insp.IsProcessed, &insp.SourceURL, &insp.Notes, &insp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &insp, nil
}

func (d *DatabaseClient) CreateInspiration(insp *models.Inspiration) (*models.Inspiration, error) {
	row := d.db.QueryRow(`
		INSERT INTO inspirations (id, user_id, title, source, status, source_url, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+inspirationColumns+`
	`, insp.ID, insp.UserID, insp.Title, insp.Source, insp.Status, insp.SourceURL, insp.Notes)

	created, err := scanInspiration(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create inspiration: %w", err)
	}
	return created, nil
}

func (d *DatabaseClient) GetInspiration(inspirationID, userID uuid.UUID) (*models.Inspiration, error) {
	row := d.db.QueryRow(`
		SELECT `+inspirationColumns+`
		FROM inspirations
		WHERE id = $1 AND user_id = $2
	`, inspirationID, userID)

	insp, err := scanInspiration(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get inspiration: %w", err)
	}
	return insp, nil
}

func (d *DatabaseClient) ListInspirations(userID uuid.UUID) ([]models.Inspiration, error) {
	rows, err := d.db.Query(`
		SELECT `+inspirationColumns+`
		FROM inspirations
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inspirations: %w", err)
	}
	defer rows.Close()

	var inspirations []models.Inspiration
	for rows.Next() {
		insp, err := scanInspiration(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inspiration: %w", err)
		}
		inspirations = append(inspirations, *insp)
	}

	return inspirations, rows.Err()
}

func (d *DatabaseClient) UpdateInspiration(insp *models.Inspiration) (*models.Inspiration, error) {
	row := d.db.QueryRow(`
		UPDATE inspirations
		SET title = $1, status = $2, source_url = $3, notes = $4
		WHERE id = $5 AND user_id = $6
		RETURNING `+inspirationColumns+`
	`, insp.Title, insp.Status, insp.SourceURL, insp.Notes, insp.ID, insp.UserID)

	updated, err := scanInspiration(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update inspiration: %w", err)
	}
	return updated, nil
}

// MarkInspirationProcessed flips the processed flag and moves the status to
// converted. Called only after the idea insert has succeeded, so an
// abandoned conversion leaves the inspiration untouched.
func (d *DatabaseClient) MarkInspirationProcessed(inspirationID, userID uuid.UUID) (*models.Inspiration, error) {
	row := d.db.QueryRow(`
		UPDATE inspirations
		SET is_processed = TRUE, status = 'converted'
		WHERE id = $1 AND user_id = $2
		RETURNING `+inspirationColumns+`
	`, inspirationID, userID)

	insp, err := scanInspiration(row)
	if err != nil {
		return nil, fmt.Errorf("failed to mark inspiration processed: %w", err)
	}
	return insp, nil
}

func (d *DatabaseClient) DeleteInspiration(inspirationID, userID uuid.UUID) error {
	_, err := d.db.Exec(`
		DELETE FROM inspirations
		WHERE id = $1 AND user_id = $2
	`, inspirationID, userID)
	return err
}
