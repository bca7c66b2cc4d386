package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"creatorops-backend/internal/domain"
	"creatorops-backend/internal/models"
	"creatorops-backend/internal/services"
	"creatorops-backend/internal/supabase"
)

// ProductionHandler serves the pipeline board: the five working stages
// between scripted and scheduled, plus the quick actions that move ideas
// through them.
type ProductionHandler struct {
	dbClient   *supabase.DatabaseClient
	scheduling *services.SchedulingService
}

func NewProductionHandler(dbClient *supabase.DatabaseClient, scheduling *services.SchedulingService) *ProductionHandler {
	return &ProductionHandler{
		dbClient:   dbClient,
		scheduling: scheduling,
	}
}

// ListIdeas godoc
// @Summary     List production ideas
// @Description Returns ideas in the scripted, planned, to_film, filmed and editing stages
// @Tags        production
// @Produce     json
// @Success     200 {object} models.IdeaListResponse
// @Failure     500 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /production/ideas [get]
func (h *ProductionHandler) ListIdeas(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ideas, err := h.dbClient.ListProductionIdeas(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list production ideas",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewIdeaListResponse(ideas))
}

// ScheduleFilming godoc
// @Summary     Schedule filming for an idea
// @Description Moves a scripted idea to to_film and inserts a filming slot in the planner
// @Tags        production
// @Accept      json
// @Produce     json
// @Param       idea_id path     string                 true "Idea ID"
// @Param       request body     models.ScheduleRequest true "Filming date"
// @Success     200     {object} models.ScheduleResponse
// @Failure     400     {object} models.ErrorResponse
// @Failure     500     {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /production/ideas/{idea_id}/schedule-filming [post]
func (h *ProductionHandler) ScheduleFilming(c *gin.Context) {
	if h.scheduling == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ideaID, ok := pathUUID(c, "idea_id")
	if !ok {
		return
	}

	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "date is required", Message: err.Error()})
		return
	}

	date, ok := parseDate(c, req.Date, "date")
	if !ok {
		return
	}

	startTime := req.StartTime
	if startTime == "" {
		startTime = domain.DefaultFilmingTime
	}

	idea, item, err := h.scheduling.ScheduleFilming(userID, ideaID, date, startTime)
	if err != nil {
		writeSchedulingError(c, err, "failed to schedule filming")
		return
	}

	c.JSON(http.StatusOK, models.ScheduleResponse{
		Idea:        models.NewIdeaResponse(idea),
		PlannerItem: models.NewPlannerItemResponse(item),
	})
}

// MarkFilmed moves a planned or to_film idea straight to filmed. The
// filmed_at stamp is set only on the first pass.
func (h *ProductionHandler) MarkFilmed(c *gin.Context) {
	if h.scheduling == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ideaID, ok := pathUUID(c, "idea_id")
	if !ok {
		return
	}

	idea, err := h.scheduling.MarkFilmed(userID, ideaID)
	if err != nil {
		writeSchedulingError(c, err, "failed to mark idea filmed")
		return
	}

	c.JSON(http.StatusOK, models.NewIdeaResponse(idea))
}

// MoveToEditing moves a filmed idea into the editing stage.
func (h *ProductionHandler) MoveToEditing(c *gin.Context) {
	if h.scheduling == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ideaID, ok := pathUUID(c, "idea_id")
	if !ok {
		return
	}

	idea, err := h.scheduling.MoveToEditing(userID, ideaID)
	if err != nil {
		writeSchedulingError(c, err, "failed to move idea to editing")
		return
	}

	c.JSON(http.StatusOK, models.NewIdeaResponse(idea))
}

// SchedulePost godoc
// @Summary     Schedule a post
// @Description Moves an idea to scheduled with its publish date and inserts a publishing slot
// @Tags        production
// @Accept      json
// @Produce     json
// @Param       idea_id path     string                 true "Idea ID"
// @Param       request body     models.ScheduleRequest true "Publish date"
// @Success     200     {object} models.ScheduleResponse
// @Failure     400     {object} models.ErrorResponse
// @Failure     500     {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /production/ideas/{idea_id}/schedule-post [post]
func (h *ProductionHandler) SchedulePost(c *gin.Context) {
	if h.scheduling == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ideaID, ok := pathUUID(c, "idea_id")
	if !ok {
		return
	}

	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "date is required", Message: err.Error()})
		return
	}

	date, ok := parseDate(c, req.Date, "date")
	if !ok {
		return
	}

	startTime := req.StartTime
	if startTime == "" {
		startTime = domain.DefaultPublishingTime
	}

	idea, item, err := h.scheduling.SchedulePost(userID, ideaID, date, startTime)
	if err != nil {
		writeSchedulingError(c, err, "failed to schedule post")
		return
	}

	c.JSON(http.StatusOK, models.ScheduleResponse{
		Idea:        models.NewIdeaResponse(idea),
		PlannerItem: models.NewPlannerItemResponse(item),
	})
}

// writeSchedulingError maps scheduling service failures onto the wire. A
// partial write is reported as a 500 that names the write that did land, so
// the client knows the tables have drifted. Only a missing row is a 404;
// any other store failure is a 500.
func writeSchedulingError(c *gin.Context, err error, fallback string) {
	var partial *services.PartialWriteError
	if errors.As(err, &partial) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   fallback + ": " + partial.Completed + " succeeded but the follow-up write failed",
			Message: partial.Err.Error(),
		})
		return
	}

	if errors.Is(err, services.ErrNotDroppable) {
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "idea cannot be dropped from its current status"})
		return
	}

	if errors.Is(err, services.ErrInvalidStatus) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid status"})
		return
	}

	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found", Message: err.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fallback, Message: err.Error()})
}
