package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"creatorops-backend/internal/domain"
)

// Email is an inbound message in the hub.
type Email struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	FromAddress string
	Subject     string
	Body        sql.NullString
	Category    domain.EmailCategory
	Status      domain.EmailStatus
	ReceivedAt  time.Time
	CreatedAt   time.Time
}
