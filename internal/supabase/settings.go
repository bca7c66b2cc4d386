package supabase

import (
	"fmt"

	"github.com/google/uuid"

	"creatorops-backend/internal/models"
)

// Settings tables share a flat named-row shape. Categories, content types
// and filming setups go through the taxonomy helpers; pillars carry an
// extra color column.

func (d *DatabaseClient) CreatePillar(pillar *models.Pillar) (*models.Pillar, error) {
	row := d.db.QueryRow(`
		INSERT INTO pillars (id, user_id, name, color)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, name, color, created_at
	`, pillar.ID, pillar.UserID, pillar.Name, pillar.Color)

	var created models.Pillar
	err := row.Scan(&created.ID, &created.UserID, &created.Name, &created.Color, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create pillar: %w", err)
	}
	return &created, nil
}

func (d *DatabaseClient) ListPillars(userID uuid.UUID) ([]models.Pillar, error) {
	rows, err := d.db.Query(`
		SELECT id, user_id, name, color, created_at
		FROM pillars
		WHERE user_id = $1
		ORDER BY name ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pillars: %w", err)
	}
	defer rows.Close()

	var pillars []models.Pillar
	for rows.Next() {
		var pillar models.Pillar
		if err := rows.Scan(&pillar.ID, &pillar.UserID, &pillar.Name, &pillar.Color, &pillar.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pillar: %w", err)
		}
		pillars = append(pillars, pillar)
	}

	return pillars, rows.Err()
}

func (d *DatabaseClient) DeletePillar(pillarID, userID uuid.UUID) error {
	_, err := d.db.Exec(`
		DELETE FROM pillars
		WHERE id = $1 AND user_id = $2
	`, pillarID, userID)
	return err
}

// taxonomyTables whitelists the table name; it is interpolated into SQL and
// must never come from request input directly.
var taxonomyTables = map[string]bool{
	"categories":     true,
	"content_types":  true,
	"filming_setups": true,
}

func (d *DatabaseClient) CreateTaxonomy(table string, row *models.Taxonomy) (*models.Taxonomy, error) {
	if !taxonomyTables[table] {
		return nil, fmt.Errorf("unknown taxonomy table: %s", table)
	}

	r := d.db.QueryRow(`
		INSERT INTO `+table+` (id, user_id, name)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, name, created_at
	`, row.ID, row.UserID, row.Name)

	var created models.Taxonomy
	if err := r.Scan(&created.ID, &created.UserID, &created.Name, &created.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to create %s row: %w", table, err)
	}
	return &created, nil
}

func (d *DatabaseClient) ListTaxonomy(table string, userID uuid.UUID) ([]models.Taxonomy, error) {
	if !taxonomyTables[table] {
		return nil, fmt.Errorf("unknown taxonomy table: %s", table)
	}

	rows, err := d.db.Query(`
		SELECT id, user_id, name, created_at
		FROM `+table+`
		WHERE user_id = $1
		ORDER BY name ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}
	defer rows.Close()

	var out []models.Taxonomy
	for rows.Next() {
		var row models.Taxonomy
		if err := rows.Scan(&row.ID, &row.UserID, &row.Name, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		out = append(out, row)
	}

	return out, rows.Err()
}

func (d *DatabaseClient) DeleteTaxonomy(table string, rowID, userID uuid.UUID) error {
	if !taxonomyTables[table] {
		return fmt.Errorf("unknown taxonomy table: %s", table)
	}

	_, err := d.db.Exec(`
		DELETE FROM `+table+`
		WHERE id = $1 AND user_id = $2
	`, rowID, userID)
	return err
}
