package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Pillar is a user-defined content theme used to tag ideas.
type Pillar struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Color     sql.NullString
	CreatedAt time.Time
}

// Taxonomy is a flat named lookup row. Categories, content types and filming
// setups share the shape; each lives in its own table.
type Taxonomy struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
}
