package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"creatorops-backend/internal/domain"
)

// Brand is a partner company tracked by the CRM.
type Brand struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	ContactName  sql.NullString
	ContactEmail sql.NullString
	Website      sql.NullString
	Notes        sql.NullString
	CreatedAt    time.Time
}

// Deal is a brand partnership moving through its own twelve-value pipeline,
// independent of the idea lifecycle. Value is the canonical monetary column.
type Deal struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	BrandID   uuid.UUID
	Title     string
	Status    domain.DealStatus
	Value     float64
	Currency  string
	DueDate   sql.NullTime
	Notes     sql.NullString
	CreatedAt time.Time
	UpdatedAt time.Time
}
