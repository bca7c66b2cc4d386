package supabase

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"creatorops-backend/internal/models"
)

const subscriptionColumns = `id, user_id, status, plan, current_period_end, payment_ref, created_at, updated_at`

// UpsertSubscription writes the payment provider's view of a user's
// subscription. One row per user, keyed by user_id; no owner scoping since
// the webhook carries no session.
func (d *DatabaseClient) UpsertSubscription(userID uuid.UUID, status, plan string, periodEnd *time.Time, paymentRef string) (*models.Subscription, error) {
	var end sql.NullTime
	if periodEnd != nil {
		end = sql.NullTime{Time: *periodEnd, Valid: true}
	}

	row := d.db.QueryRow(`
		INSERT INTO subscriptions (id, user_id, status, plan, current_period_end, payment_ref)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET status = EXCLUDED.status,
			plan = EXCLUDED.plan,
			current_period_end = EXCLUDED.current_period_end,
			payment_ref = EXCLUDED.payment_ref,
			updated_at = NOW()
		RETURNING `+subscriptionColumns+`
	`, uuid.New(), userID, status, plan, end, sql.NullString{String: paymentRef, Valid: paymentRef != ""})

	var sub models.Subscription
	err := row.Scan(
		&sub.ID, &sub.UserID, &sub.Status, &sub.Plan,
		&sub.CurrentPeriodEnd, &sub.PaymentRef, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert subscription: %w", err)
	}
	return &sub, nil
}

func (d *DatabaseClient) GetSubscription(userID uuid.UUID) (*models.Subscription, error) {
	row := d.db.QueryRow(`
		SELECT `+subscriptionColumns+`
		FROM subscriptions
		WHERE user_id = $1
	`, userID)

	var sub models.Subscription
	err := row.Scan(
		&sub.ID, &sub.UserID, &sub.Status, &sub.Plan,
		&sub.CurrentPeriodEnd, &sub.PaymentRef, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return &sub, nil
}
