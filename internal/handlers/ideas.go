package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"creatorops-backend/internal/domain"
	"creatorops-backend/internal/models"
	"creatorops-backend/internal/services"
	"creatorops-backend/internal/supabase"
)

type IdeasHandler struct {
	dbClient   *supabase.DatabaseClient
	scheduling *services.SchedulingService
}

func NewIdeasHandler(dbClient *supabase.DatabaseClient, scheduling *services.SchedulingService) *IdeasHandler {
	return &IdeasHandler{
		dbClient:   dbClient,
		scheduling: scheduling,
	}
}

// CreateIdea godoc
// @Summary     Create a new idea
// @Description Creates a content idea, optionally seeded from an inspiration. Title is required.
// @Tags        ideas
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.CreateIdeaRequest true "Idea fields"
// @Success     200 {object} models.IdeaResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /ideas [post]
func (h *IdeasHandler) CreateIdea(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "title is required", Message: err.Error()})
		return
	}

	status := domain.IdeaDraft
	if req.Status != "" {
		status = domain.IdeaStatus(req.Status)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid status"})
			return
		}
	}

	priority := domain.PriorityMedium
	if req.Priority != 0 {
		priority = domain.Priority(req.Priority)
		if !priority.Valid() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid priority"})
			return
		}
	}

	idea := &models.Idea{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        req.Title,
		Status:       status,
		Priority:     priority,
		ScriptText:   nullString(req.ScriptText),
		Hook:         nullString(req.Hook),
		CTA:          nullString(req.CTA),
		FilmingNotes: nullString(req.FilmingNotes),
	}

	var err error
	if idea.PillarID, err = nullUUIDFromString(req.PillarID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid pillar_id"})
		return
	}
	if idea.CategoryID, err = nullUUIDFromString(req.CategoryID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid category_id"})
		return
	}
	if idea.ContentTypeID, err = nullUUIDFromString(req.ContentTypeID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid content_type_id"})
		return
	}
	if idea.FilmingSetupID, err = nullUUIDFromString(req.FilmingSetupID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid filming_setup_id"})
		return
	}
	if idea.InspirationID, err = nullUUIDFromString(req.InspirationID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid inspiration_id"})
		return
	}

	created, err := h.dbClient.CreateIdea(idea)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create idea",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewIdeaResponse(created))
}

// ListIdeas godoc
// @Summary     List ideas
// @Description Lists the user's ideas, optionally filtered by status, pillar or priority.
// @Tags        ideas
// @Produce     json
// @Security    Bearer
// @Param       status query string false "Lifecycle status filter"
// @Param       pillar_id query string false "Pillar filter"
// @Param       priority query int false "Priority filter (1-3)"
// @Success     200 {object} models.IdeaListResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /ideas [get]
func (h *IdeasHandler) ListIdeas(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var filter supabase.IdeaFilter
	if status := c.Query("status"); status != "" {
		filter.Status = domain.IdeaStatus(status)
		if !filter.Status.Valid() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid status"})
			return
		}
	}
	if pillar := c.Query("pillar_id"); pillar != "" {
		var err error
		if filter.PillarID, err = nullUUIDFromString(pillar); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid pillar_id"})
			return
		}
	}
	if priority := c.Query("priority"); priority != "" {
		switch priority {
		case "1", "2", "3":
			filter.Priority = domain.Priority(priority[0] - '0')
		default:
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid priority"})
			return
		}
	}

	ideas, err := h.dbClient.ListIdeas(userID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list ideas",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewIdeaListResponse(ideas))
}

func (h *IdeasHandler) GetIdea(c *gin.Context) {
	if h.dbClient == nil {
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

	idea, err := h.dbClient.GetIdea(ideaID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "idea not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewIdeaResponse(idea))
}

func (h *IdeasHandler) UpdateIdea(c *gin.Context) {
	if h.dbClient == nil {
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

	var req models.UpdateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	idea, err := h.dbClient.GetIdea(ideaID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "idea not found",
			Message: err.Error(),
		})
		return
	}

	if req.Title != nil {
		if *req.Title == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "title cannot be empty"})
			return
		}
		idea.Title = *req.Title
	}
	if req.Priority != nil {
		priority := domain.Priority(*req.Priority)
		if !priority.Valid() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid priority"})
			return
		}
		idea.Priority = priority
	}
	if req.PillarID != nil {
		if idea.PillarID, err = nullUUIDFromString(*req.PillarID); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid pillar_id"})
			return
		}
	}
	if req.CategoryID != nil {
		if idea.CategoryID, err = nullUUIDFromString(*req.CategoryID); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid category_id"})
			return
		}
	}
	if req.ContentTypeID != nil {
		if idea.ContentTypeID, err = nullUUIDFromString(*req.ContentTypeID); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid content_type_id"})
			return
		}
	}
	if req.FilmingSetupID != nil {
		if idea.FilmingSetupID, err = nullUUIDFromString(*req.FilmingSetupID); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid filming_setup_id"})
			return
		}
	}
	if req.ScriptText != nil {
		idea.ScriptText = nullString(*req.ScriptText)
	}
	if req.Hook != nil {
		idea.Hook = nullString(*req.Hook)
	}
	if req.CTA != nil {
		idea.CTA = nullString(*req.CTA)
	}
	if req.FilmingNotes != nil {
		idea.FilmingNotes = nullString(*req.FilmingNotes)
	}

	updated, err := h.dbClient.UpdateIdea(idea)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update idea",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewIdeaResponse(updated))
}

// DeleteIdea removes the idea and, by cascade, its script blocks, b-roll
// items and planner slots. Irreversible.
func (h *IdeasHandler) DeleteIdea(c *gin.Context) {
	if h.dbClient == nil {
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

	if _, err := h.dbClient.GetIdea(ideaID, userID); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "idea not found",
			Message: err.Error(),
		})
		return
	}

	if err := h.dbClient.DeleteIdea(ideaID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete idea",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "idea deleted successfully"})
}

// AdvanceStatus godoc
// @Summary     Advance an idea to its next lifecycle stage
// @Description Moves the idea along the fixed successor table. Ideas at published or archived have no successor and come back unchanged.
// @Tags        ideas
// @Produce     json
// @Security    Bearer
// @Param       idea_id path string true "Idea ID"
// @Success     200 {object} models.IdeaResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /ideas/{idea_id}/advance [post]
func (h *IdeasHandler) AdvanceStatus(c *gin.Context) {
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

	idea, advanced, err := h.scheduling.Advance(userID, ideaID)
	if err != nil {
		writeSchedulingError(c, err, "failed to advance idea")
		return
	}

	resp := models.NewIdeaResponse(idea)
	c.JSON(http.StatusOK, gin.H{"idea": resp, "advanced": advanced})
}

// JumpStatus godoc
// @Summary     Set an idea's status directly
// @Description Jumps to any lifecycle status, forward or backward. Only set membership is validated; out-of-order moves are allowed by design.
// @Tags        ideas
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       idea_id path string true "Idea ID"
// @Param       request body models.JumpStatusRequest true "Target status"
// @Success     200 {object} models.IdeaResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /ideas/{idea_id}/status [post]
func (h *IdeasHandler) JumpStatus(c *gin.Context) {
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

	var req models.JumpStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "status is required", Message: err.Error()})
		return
	}

	idea, err := h.scheduling.Jump(userID, ideaID, domain.IdeaStatus(req.Status))
	if err != nil {
		writeSchedulingError(c, err, "failed to set idea status")
		return
	}

	c.JSON(http.StatusOK, models.NewIdeaResponse(idea))
}
