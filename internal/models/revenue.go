package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Revenue is an additive ledger row. Other modules never mutate revenues;
// they are filtered and summed on read.
type Revenue struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      time.Time
	Amount    float64
	Currency  string
	Source    string
	DealID    uuid.NullUUID
	Notes     sql.NullString
	CreatedAt time.Time
}
