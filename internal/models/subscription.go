package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Subscription mirrors the payment provider's state for a user. Written only
// by the payment webhook, one row per user.
type Subscription struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Status           string
	Plan             string
	CurrentPeriodEnd sql.NullTime
	PaymentRef       sql.NullString
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
