package models

import (
	"time"

	"github.com/google/uuid"

	"creatorops-backend/internal/domain"
)

// PlannerItem is a calendar entry. IdeaID is optional: standalone tasks and
// meetings have none, filming and publishing slots usually reference the
// idea they schedule.
type PlannerItem struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      time.Time
	StartTime string
	ItemType  domain.PlannerItemType
	Title     string
	IdeaID    uuid.NullUUID
	CreatedAt time.Time
}
