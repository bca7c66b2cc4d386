package supabase

import (
	"fmt"

	"github.com/google/uuid"

	"creatorops-backend/internal/domain"
	"creatorops-backend/internal/models"
)

const brandColumns = `id, user_id, name, contact_name, contact_email, website, notes, created_at`

func scanBrand(row ideaScanner) (*models.Brand, error) {
	var brand models.Brand
	err := row.Scan(
		&brand.ID, &brand.UserID, &brand.Name, &brand.ContactName,
		&brand.ContactEmail, &brand.Website, &brand.Notes, &brand.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (d *DatabaseClient) CreateBrand(brand *models.Brand) (*models.Brand, error) {
	row := d.db.QueryRow(`
		INSERT INTO brands (id, user_id, name, contact_name, contact_email, website, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+brandColumns+`
	`, brand.ID, brand.UserID, brand.Name, brand.ContactName,
		brand.ContactEmail, brand.Website, brand.Notes)

	created, err := scanBrand(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}
	return created, nil
}

func (d *DatabaseClient) GetBrand(brandID, userID uuid.UUID) (*models.Brand, error) {
	row := d.db.QueryRow(`
		SELECT `+brandColumns+`
		FROM brands
		WHERE id = $1 AND user_id = $2
	`, brandID, userID)

	brand, err := scanBrand(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}
	return brand, nil
}

func (d *DatabaseClient) ListBrands(userID uuid.UUID) ([]models.Brand, error) {
	rows, err := d.db.Query(`
		SELECT `+brandColumns+`
		FROM brands
		WHERE user_id = $1
		ORDER BY name ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	defer rows.Close()

	var brands []models.Brand
	for rows.Next() {
		brand, err := scanBrand(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		brands = append(brands, *brand)
	}

	return brands, rows.Err()
}

func (d *DatabaseClient) UpdateBrand(brand *models.Brand) (*models.Brand, error) {
	row := d.db.QueryRow(`
		UPDATE brands
		SET name = $1, contact_name = $2, contact_email = $3, website = $4, notes = $5
		WHERE id = $6 AND user_id = $7
		RETURNING `+brandColumns+`
	`, brand.Name, brand.ContactName, brand.ContactEmail, brand.Website,
		brand.Notes, brand.ID, brand.UserID)

	updated, err := scanBrand(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update brand: %w", err)
	}
	return updated, nil
}

func (d *DatabaseClient) DeleteBrand(brandID, userID uuid.UUID) error {
	_, err := d.db.Exec(`
		DELETE FROM brands
		WHERE id = $1 AND user_id = $2
	`, brandID, userID)
	return err
}

const dealColumns = `id, user_id, brand_id, title, status, value, currency, due_date, notes, created_at, updated_at`

func scanDeal(row ideaScanner) (*models.Deal, error) {
	var deal models.Deal
	err := row.Scan(
		&deal.ID, &deal.UserID, &deal.BrandID, &deal.Title, &deal.Status,
		&deal.Value, &deal.Currency, &deal.DueDate, &deal.Notes,
		&deal.CreatedAt, &deal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

func (d *DatabaseClient) CreateDeal(deal *models.Deal) (*models.Deal, error) {
	row := d.db.QueryRow(`
		INSERT INTO deals (id, user_id, brand_id, title, status, value, currency, due_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+dealColumns+`
	`, deal.ID, deal.UserID, deal.BrandID, deal.Title, deal.Status,
		deal.Value, deal.Currency, deal.DueDate, deal.Notes)

	created, err := scanDeal(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create deal: %w", err)
	}
	return created, nil
}

func (d *DatabaseClient) GetDeal(dealID, userID uuid.UUID) (*models.Deal, error) {
	row := d.db.QueryRow(`
		SELECT `+dealColumns+`
		FROM deals
		WHERE id = $1 AND user_id = $2
	`, dealID, userID)

	deal, err := scanDeal(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get deal: %w", err)
	}
	return deal, nil
}

func (d *DatabaseClient) ListDeals(userID uuid.UUID) ([]models.Deal, error) {
	rows, err := d.db.Query(`
		SELECT `+dealColumns+`
		FROM deals
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deals: %w", err)
	}
	defer rows.Close()

	var deals []models.Deal
	for rows.Next() {
		deal, err := scanDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deal: %w", err)
		}
		deals = append(deals, *deal)
	}

	return deals, rows.Err()
}

func (d *DatabaseClient) UpdateDeal(deal *models.Deal) (*models.Deal, error) {
	row := d.db.QueryRow(`
		UPDATE deals
		SET title = $1, value = $2, currency = $3, due_date = $4, notes = $5, updated_at = NOW()
		WHERE id = $6 AND user_id = $7
		RETURNING `+dealColumns+`
	`, deal.Title, deal.Value, deal.Currency, deal.DueDate, deal.Notes, deal.ID, deal.UserID)

	updated, err := scanDeal(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update deal: %w", err)
	}
	return updated, nil
}

// SetDealStatus moves a deal through its pipeline. Any of the twelve values
// is accepted; lost and cancelled are reachable only through this explicit
// call, never through board drag.
func (d *DatabaseClient) SetDealStatus(dealID, userID uuid.UUID, status domain.DealStatus) (*models.Deal, error) {
	row := d.db.QueryRow(`
		UPDATE deals
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING `+dealColumns+`
	`, status, dealID, userID)

	deal, err := scanDeal(row)
	if err != nil {
		return nil, fmt.Errorf("failed to set deal status: %w", err)
	}
	return deal, nil
}

func (d *DatabaseClient) DeleteDeal(dealID, userID uuid.UUID) error {
	_, err := d.db.Exec(`
		DELETE FROM deals
		WHERE id = $1 AND user_id = $2
	`, dealID, userID)
	return err
}
