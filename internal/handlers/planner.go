package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"creatorops-backend/internal/domain"
	"creatorops-backend/internal/models"
	"creatorops-backend/internal/services"
	"creatorops-backend/internal/supabase"
)

// PlannerHandler serves the calendar: range reads, manual item creation,
// drag-and-drop scheduling and the two unscheduled drag source lists.
type PlannerHandler struct {
	dbClient   *supabase.DatabaseClient
	scheduling *services.SchedulingService
}

func NewPlannerHandler(dbClient *supabase.DatabaseClient, scheduling *services.SchedulingService) *PlannerHandler {
	return &PlannerHandler{
		dbClient:   dbClient,
		scheduling: scheduling,
	}
}

// ListItems godoc
// @Summary     List planner items
// @Description Returns every planner item in the inclusive date range
// @Tags        planner
// @Produce     json
// @Param       from query    string true "Range start (yyyy-MM-dd)"
// @Param       to   query    string true "Range end (yyyy-MM-dd)"
// @Success     200  {object} models.PlannerItemListResponse
// @Failure     400  {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /planner/items [get]
func (h *PlannerHandler) ListItems(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	from, ok := parseDate(c, c.Query("from"), "from")
	if !ok {
		return
	}
	to, ok := parseDate(c, c.Query("to"), "to")
	if !ok {
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "to must not precede from"})
		return
	}

	items, err := h.dbClient.ListPlannerItems(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list planner items",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewPlannerItemListResponse(items))
}

// CreateItem handles the manual creation dialog. Items bound to an idea
// trigger the matching idea patch for filming, publishing and editing slots.
func (h *PlannerHandler) CreateItem(c *gin.Context) {
	if h.scheduling == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreatePlannerItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "date and item_type are required", Message: err.Error()})
		return
	}

	itemType := domain.PlannerItemType(req.ItemType)
	if !itemType.Valid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid item_type"})
		return
	}

	date, ok := parseDate(c, req.Date, "date")
	if !ok {
		return
	}

	ideaID, err := nullUUIDFromString(req.IdeaID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid idea_id"})
		return
	}

	item, idea, err := h.scheduling.CreateManualItem(userID, date, req.StartTime, itemType, req.Title, ideaID)
	if err != nil {
		writeSchedulingError(c, err, "failed to create planner item")
		return
	}

	resp := gin.H{"planner_item": models.NewPlannerItemResponse(item)}
	if idea != nil {
		resp["idea"] = models.NewIdeaResponse(idea)
	}
	c.JSON(http.StatusOK, resp)
}

// DropIdea godoc
// @Summary     Drop an idea onto a planner day
// @Description Schedules a scripted idea for filming or a filmed idea for publishing on the target day
// @Tags        planner
// @Accept      json
// @Produce     json
// @Param       request body     models.DropIdeaRequest true "Idea and target day"
// @Success     200     {object} models.ScheduleResponse
// @Failure     400     {object} models.ErrorResponse
// @Failure     409     {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /planner/drop [post]
func (h *PlannerHandler) DropIdea(c *gin.Context) {
	if h.scheduling == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.DropIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "idea_id and date are required", Message: err.Error()})
		return
	}

	ideaID, err := nullUUIDFromString(req.IdeaID)
	if err != nil || !ideaID.Valid {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid idea_id"})
		return
	}

	date, ok := parseDate(c, req.Date, "date")
	if !ok {
		return
	}

	idea, item, err := h.scheduling.Drop(userID, ideaID.UUID, date)
	if err != nil {
		writeSchedulingError(c, err, "failed to drop idea")
		return
	}

	c.JSON(http.StatusOK, models.ScheduleResponse{
		Idea:        models.NewIdeaResponse(idea),
		PlannerItem: models.NewPlannerItemResponse(item),
	})
}

// DeleteItem removes a planner item and, for idea-bound items, reverts the
// idea to scripted with its schedule cleared.
func (h *PlannerHandler) DeleteItem(c *gin.Context) {
	if h.scheduling == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	itemID, ok := pathUUID(c, "item_id")
	if !ok {
		return
	}

	idea, err := h.scheduling.DeleteItem(userID, itemID)
	if err != nil {
		writeSchedulingError(c, err, "failed to delete planner item")
		return
	}

	resp := gin.H{"message": "planner item deleted successfully"}
	if idea != nil {
		resp["idea"] = models.NewIdeaResponse(idea)
	}
	c.JSON(http.StatusOK, resp)
}

// ListUnscheduled returns the two drag source lists: scripted ideas waiting
// for a filming day and filmed ideas waiting for a publish day.
func (h *PlannerHandler) ListUnscheduled(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	scripted, err := h.dbClient.ListUnscheduledScripted(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list unscheduled ideas",
			Message: err.Error(),
		})
		return
	}

	filmed, err := h.dbClient.ListUnscheduledFilmed(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list unscheduled ideas",
			Message: err.Error(),
		})
		return
	}

	resp := models.UnscheduledResponse{
		Scripted: make([]models.IdeaResponse, len(scripted)),
		Filmed:   make([]models.IdeaResponse, len(filmed)),
	}
	for i := range scripted {
		resp.Scripted[i] = models.NewIdeaResponse(&scripted[i])
	}
	for i := range filmed {
		resp.Filmed[i] = models.NewIdeaResponse(&filmed[i])
	}
	c.JSON(http.StatusOK, resp)
}
