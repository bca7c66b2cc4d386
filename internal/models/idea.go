package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"creatorops-backend/internal/domain"
)

// Idea is a unit of content moving through the nine-stage lifecycle.
// scheduled_date and publish_date are denormalized duplicates of the linked
// planner items, kept in lockstep by application code rather than a database
// constraint.
type Idea struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Title          string
	Status         domain.IdeaStatus
	Priority       domain.Priority
	PillarID       uuid.NullUUID
	CategoryID     uuid.NullUUID
	ContentTypeID  uuid.NullUUID
	FilmingSetupID uuid.NullUUID
	InspirationID  uuid.NullUUID
	ScheduledDate  sql.NullTime
	PublishDate    sql.NullTime
	FilmedAt       sql.NullTime
	PublishedAt    sql.NullTime
	ScriptText     sql.NullString
	Hook           sql.NullString
	CTA            sql.NullString
	FilmingNotes   sql.NullString
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ScriptBlock is an ordered sub-unit of an idea's script. order_index is
// assigned at append time and never resequenced on delete.
type ScriptBlock struct {
	ID         uuid.UUID
	IdeaID     uuid.UUID
	UserID     uuid.UUID
	BlockType  domain.ScriptBlockType
	Content    string
	Notes      sql.NullString
	OrderIndex int
	CreatedAt  time.Time
}

// BrollItem is a shot checklist entry under an idea.
type BrollItem struct {
	ID          uuid.UUID
	IdeaID      uuid.UUID
	UserID      uuid.UUID
	Description string
	Status      domain.BrollStatus
	SourceFile  sql.NullString
	CreatedAt   time.Time
}
