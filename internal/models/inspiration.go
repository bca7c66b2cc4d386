package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"creatorops-backend/internal/domain"
)

// Inspiration is a pre-idea note. IsProcessed flips only after an idea has
// actually been created from it; abandoning the idea form leaves it false.
type Inspiration struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Source      domain.InspirationSource
	Status      domain.InspirationStatus
	IsProcessed bool
	SourceURL   sql.NullString
	Notes       sql.NullString
	CreatedAt   time.Time
}
