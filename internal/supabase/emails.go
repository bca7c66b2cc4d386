package supabase

import (
	"fmt"

	"github.com/google/uuid"

	"creatorops-backend/internal/domain"
	"creatorops-backend/internal/models"
)

const emailColumns = `id, user_id, from_address, subject, body, category, status, received_at, created_at`

func scanEmail(row ideaScanner) (*models.Email, error) {
	var email models.Email
	err := row.Scan(
		&email.ID, &email.UserID, &email.FromAddress, &email.Subject,
		&email.Body, &email.Category, &email.Status, &email.ReceivedAt,
		&email.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &email, nil
}

func (d *DatabaseClient) CreateEmail(email *models.Email) (*models.Email, error) {
	row := d.db.QueryRow(`
		INSERT INTO emails (id, user_id, from_address, subject, body, category, status, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+emailColumns+`
	`, email.ID, email.UserID, email.FromAddress, email.Subject,
		email.Body, email.Category, email.Status, email.ReceivedAt)

	created, err := scanEmail(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create email: %w", err)
	}
	return created, nil
}

func (d *DatabaseClient) GetEmail(emailID, userID uuid.UUID) (*models.Email, error) {
	row := d.db.QueryRow(`
		SELECT `+emailColumns+`
		FROM emails
		WHERE id = $1 AND user_id = $2
	`, emailID, userID)

	email, err := scanEmail(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get email: %w", err)
	}
	return email, nil
}

func (d *DatabaseClient) ListEmails(userID uuid.UUID) ([]models.Email, error) {
	rows, err := d.db.Query(`
		SELECT `+emailColumns+`
		FROM emails
		WHERE user_id = $1
		ORDER BY received_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list emails: %w", err)
	}
	defer rows.Close()

	var emails []models.Email
	for rows.Next() {
		email, err := scanEmail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan email: %w", err)
		}
		emails = append(emails, *email)
	}

	return emails, rows.Err()
}

func (d *DatabaseClient) SetEmailStatus(emailID, userID uuid.UUID, status domain.EmailStatus) (*models.Email, error) {
	row := d.db.QueryRow(`
		UPDATE emails
		SET status = $1
		WHERE id = $2 AND user_id = $3
		RETURNING `+emailColumns+`
	`, status, emailID, userID)

	email, err := scanEmail(row)
	if err != nil {
		return nil, fmt.Errorf("failed to set email status: %w", err)
	}
	return email, nil
}

func (d *DatabaseClient) CountUnreadEmails(userID uuid.UUID) (int, error) {
	var count int
	err := d.db.QueryRow(`
		SELECT COUNT(*)
		FROM emails
		WHERE user_id = $1 AND status = 'unread'
	`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread emails: %w", err)
	}
	return count, nil
}

func (d *DatabaseClient) DeleteEmail(emailID, userID uuid.UUID) error {
	_, err := d.db.Exec(`
		DELETE FROM emails
		WHERE id = $1 AND user_id = $2
	`, emailID, userID)
	return err
}
