package handlers_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creatorops-backend/internal/domain"
	"creatorops-backend/internal/handlers"
	"creatorops-backend/internal/logger"
	"creatorops-backend/internal/middleware"
	"creatorops-backend/internal/models"
	"creatorops-backend/internal/services"
)

// fakeConversionStore backs the convert flow in memory. Either write half
// can be forced to fail.
type fakeConversionStore struct {
	inspirations map[uuid.UUID]*models.Inspiration
	ideas        map[uuid.UUID]*models.Idea

	failCreateIdea bool
	failMark       bool
}

func newFakeConversionStore() *fakeConversionStore {
	return &fakeConversionStore{
		inspirations: make(map[uuid.UUID]*models.Inspiration),
		ideas:        make(map[uuid.UUID]*models.Idea),
	}
}

func (f *fakeConversionStore) addInspiration(userID uuid.UUID, title string) *models.Inspiration {
	insp := &models.Inspiration{
		ID:     uuid.New(),
		UserID: userID,
		Title:  title,
		Source: domain.SourceManual,
		Status: domain.InspirationPending,
	}
	f.inspirations[insp.ID] = insp
	return insp
}

func (f *fakeConversionStore) GetInspiration(inspirationID, userID uuid.UUID) (*models.Inspiration, error) {
	insp, ok := f.inspirations[inspirationID]
	if !ok || insp.UserID != userID {
		return nil, fmt.Errorf("failed to get inspiration: %w", sql.ErrNoRows)
	}
	copied := *insp
	return &copied, nil
}

func (f *fakeConversionStore) CreateIdea(idea *models.Idea) (*models.Idea, error) {
	if f.failCreateIdea {
		return nil, errors.New("forced idea insert failure")
	}
	copied := *idea
	f.ideas[idea.ID] = &copied
	returned := copied
	return &returned, nil
}

func (f *fakeConversionStore) MarkInspirationProcessed(inspirationID, userID uuid.UUID) (*models.Inspiration, error) {
	if f.failMark {
		return nil, errors.New("forced mark failure")
	}
	insp, ok := f.inspirations[inspirationID]
	if !ok || insp.UserID != userID {
		return nil, fmt.Errorf("failed to mark inspiration: %w", sql.ErrNoRows)
	}
	insp.IsProcessed = true
	insp.Status = domain.InspirationConverted
	copied := *insp
	return &copied, nil
}

func newConvertRouter(store *fakeConversionStore, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	conversion := services.NewConversionService(store, logger.NewNop())
	handler := handlers.NewInspirationsHandler(nil, conversion)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID.String())
	})
	router.POST("/inspirations/:inspiration_id/convert", handler.Convert)
	return router
}

func TestConvertInspiration_EmptyBodyUsesInspirationTitle(t *testing.T) {
	store := newFakeConversionStore()
	userID := uuid.New()
	insp := store.addInspiration(userID, "pov morning routine")
	router := newConvertRouter(store, userID)

	req, _ := http.NewRequest("POST", "/inspirations/"+insp.ID.String()+"/convert", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ConvertInspirationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pov morning routine", resp.Idea.Title)
	assert.True(t, resp.Inspiration.IsProcessed)
	assert.True(t, store.inspirations[insp.ID].IsProcessed)
	assert.Len(t, store.ideas, 1)
}

func TestConvertInspiration_FailedIdeaInsertLeavesUnprocessed(t *testing.T) {
	store := newFakeConversionStore()
	userID := uuid.New()
	insp := store.addInspiration(userID, "duet trend breakdown")
	store.failCreateIdea = true
	router := newConvertRouter(store, userID)

	req, _ := http.NewRequest("POST", "/inspirations/"+insp.ID.String()+"/convert", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// The processed flag flips only after the idea insert lands; the
	// inspiration stays available for another attempt.
	assert.False(t, store.inspirations[insp.ID].IsProcessed)
	assert.Empty(t, store.ideas)
}

func TestConvertInspiration_MarkFailureReportsIdeaCreated(t *testing.T) {
	store := newFakeConversionStore()
	userID := uuid.New()
	insp := store.addInspiration(userID, "studio tour")
	store.failMark = true
	router := newConvertRouter(store, userID)

	req, _ := http.NewRequest("POST", "/inspirations/"+insp.ID.String()+"/convert", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "idea created but inspiration was not marked processed")
	assert.False(t, store.inspirations[insp.ID].IsProcessed)
	assert.Len(t, store.ideas, 1)
}

func TestConvertInspiration_AlreadyConverted(t *testing.T) {
	store := newFakeConversionStore()
	userID := uuid.New()
	insp := store.addInspiration(userID, "city b-roll pack")
	insp.IsProcessed = true
	router := newConvertRouter(store, userID)

	req, _ := http.NewRequest("POST", "/inspirations/"+insp.ID.String()+"/convert", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Empty(t, store.ideas)
}

func TestConvertInspiration_UnknownInspirationIsNotFound(t *testing.T) {
	store := newFakeConversionStore()
	userID := uuid.New()
	router := newConvertRouter(store, userID)

	req, _ := http.NewRequest("POST", "/inspirations/"+uuid.New().String()+"/convert", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConvertInspiration_BodyOverridesTitle(t *testing.T) {
	store := newFakeConversionStore()
	userID := uuid.New()
	insp := store.addInspiration(userID, "original capture title")
	router := newConvertRouter(store, userID)

	body := bytes.NewBufferString(`{"title":"reworked for the channel","priority":1}`)
	req, _ := http.NewRequest("POST", "/inspirations/"+insp.ID.String()+"/convert", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ConvertInspirationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "reworked for the channel", resp.Idea.Title)
}
