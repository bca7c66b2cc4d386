package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"creatorops-backend/internal/models"
	"creatorops-backend/internal/services"
	"creatorops-backend/internal/supabase"
)

// RevenueHandler manages the additive revenue ledger and its summaries.
type RevenueHandler struct {
	dbClient  *supabase.DatabaseClient
	analytics *services.AnalyticsService
}

func NewRevenueHandler(dbClient *supabase.DatabaseClient, analytics *services.AnalyticsService) *RevenueHandler {
	return &RevenueHandler{
		dbClient:  dbClient,
		analytics: analytics,
	}
}

func (h *RevenueHandler) Create(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateRevenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "date and amount are required", Message: err.Error()})
		return
	}

	date, ok := parseDate(c, req.Date, "date")
	if !ok {
		return
	}

	dealID, err := nullUUIDFromString(req.DealID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid deal_id"})
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	rev, err := h.dbClient.CreateRevenue(&models.Revenue{
		ID:       uuid.New(),
		UserID:   userID,
		Date:     date,
		Amount:   req.Amount,
		Currency: currency,
		Source:   req.Source,
		DealID:   dealID,
		Notes:    nullString(req.Notes),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create revenue entry",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewRevenueResponse(rev))
}

func (h *RevenueHandler) List(c *gin.Context) {
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

	revenues, err := h.dbClient.ListRevenues(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list revenue entries",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.RevenueResponse, len(revenues))
	for i := range revenues {
		responses[i] = models.NewRevenueResponse(&revenues[i])
	}
	c.JSON(http.StatusOK, gin.H{"revenues": responses})
}

// Summary godoc
// @Summary     Revenue summary
// @Description Window total plus growth percent against the immediately preceding window of equal length. Zero prior revenue reports growth 0.
// @Tags        revenue
// @Produce     json
// @Security    Bearer
// @Param       from query string true "Window start (yyyy-MM-dd)"
// @Param       to   query string true "Window end (yyyy-MM-dd)"
// @Success     200 {object} models.RevenueSummaryResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /revenue/summary [get]
func (h *RevenueHandler) Summary(c *gin.Context) {
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

	summary, err := h.analytics.RevenueSummary(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to compute revenue summary",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.RevenueSummaryResponse{
		From:          from.Format(dateLayout),
		To:            to.Format(dateLayout),
		Total:         summary.Total,
		PriorTotal:    summary.PriorTotal,
		GrowthPercent: summary.GrowthPercent,
	})
}

func (h *RevenueHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	revenueID, ok := pathUUID(c, "revenue_id")
	if !ok {
		return
	}

	if err := h.dbClient.DeleteRevenue(revenueID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete revenue entry",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "revenue entry deleted successfully"})
}
