package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"creatorops-backend/internal/models"
	"creatorops-backend/internal/supabase"
)

// DashboardHandler assembles the landing page composite. Each block is an
// independent read; there is no dashboard table.
type DashboardHandler struct {
	dbClient *supabase.DatabaseClient
}

func NewDashboardHandler(dbClient *supabase.DatabaseClient) *DashboardHandler {
	return &DashboardHandler{dbClient: dbClient}
}

// Overview godoc
// @Summary     Dashboard overview
// @Description Idea counts per status, planner items for the next seven days, pipeline value and unread email count
// @Tags        dashboard
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.DashboardOverviewResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /dashboard/overview [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	counts, err := h.dbClient.CountIdeasByStatus(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to count ideas",
			Message: err.Error(),
		})
		return
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	items, err := h.dbClient.ListPlannerItems(userID, today, today.AddDate(0, 0, 6))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list upcoming planner items",
			Message: err.Error(),
		})
		return
	}

	pipelineValue, err := h.dbClient.SumPipelineValue(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to sum pipeline value",
			Message: err.Error(),
		})
		return
	}

	unread, err := h.dbClient.CountUnreadEmails(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to count unread emails",
			Message: err.Error(),
		})
		return
	}

	upcoming := make([]models.PlannerItemResponse, len(items))
	for i := range items {
		upcoming[i] = models.NewPlannerItemResponse(&items[i])
	}

	c.JSON(http.StatusOK, models.DashboardOverviewResponse{
		IdeasByStatus: counts,
		UpcomingItems: upcoming,
		PipelineValue: pipelineValue,
		UnreadEmails:  unread,
	})
}
