package services

import (
	"errors"

	"github.com/google/uuid"

	"creatorops-backend/internal/domain"
	"creatorops-backend/internal/logger"
	"creatorops-backend/internal/models"
)

// ErrAlreadyConverted is returned when a conversion targets an inspiration
// whose processed flag is already set.
var ErrAlreadyConverted = errors.New("inspiration already converted")

// ConversionStore is the slice of the database client the conversion flow
// needs.
type ConversionStore interface {
	GetInspiration(inspirationID, userID uuid.UUID) (*models.Inspiration, error)
	CreateIdea(idea *models.Idea) (*models.Idea, error)
	MarkInspirationProcessed(inspirationID, userID uuid.UUID) (*models.Inspiration, error)
}

// ConversionService turns a captured inspiration into a draft idea. Two
// writes, idea insert first: the processed flag flips only after the insert
// lands, so a failed insert leaves the inspiration available for another
// attempt.
type ConversionService struct {
	store ConversionStore
	log   *logger.Logger
}

func NewConversionService(store ConversionStore, log *logger.Logger) *ConversionService {
	return &ConversionService{
		store: store,
		log:   log,
	}
}

// Convert creates the idea and marks the inspiration processed. An empty
// title falls back to the inspiration's own.
func (s *ConversionService) Convert(userID, inspirationID uuid.UUID, title string, priority domain.Priority, pillarID uuid.NullUUID) (*models.Idea, *models.Inspiration, error) {
	insp, err := s.store.GetInspiration(inspirationID, userID)
	if err != nil {
		return nil, nil, err
	}

	if insp.IsProcessed {
		return nil, nil, ErrAlreadyConverted
	}

	if title == "" {
		title = insp.Title
	}

	idea, err := s.store.CreateIdea(&models.Idea{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         title,
		Status:        domain.IdeaDraft,
		Priority:      priority,
		PillarID:      pillarID,
		InspirationID: uuid.NullUUID{UUID: insp.ID, Valid: true},
		FilmingNotes:  insp.Notes,
	})
	if err != nil {
		return nil, nil, err
	}

	processed, err := s.store.MarkInspirationProcessed(inspirationID, userID)
	if err != nil {
		return idea, nil, &PartialWriteError{Completed: "idea insert", Err: err}
	}

	return idea, processed, nil
}
