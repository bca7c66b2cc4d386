package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"creatorops-backend/internal/models"
	"creatorops-backend/internal/services"
)

// AnalyticsHandler serves the read-only window aggregations. Everything is
// computed on read; nothing is cached or denormalized.
type AnalyticsHandler struct {
	analytics *services.AnalyticsService
}

func NewAnalyticsHandler(analytics *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Overview godoc
// @Summary     Analytics overview
// @Description Returns idea, inspiration and revenue counts for the window
// @Tags        analytics
// @Produce     json
// @Security    Bearer
// @Param       from query string true "Window start (yyyy-MM-dd)"
// @Param       to   query string true "Window end (yyyy-MM-dd)"
// @Success     200 {object} models.AnalyticsOverviewResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /analytics/overview [get]
func (h *AnalyticsHandler) Overview(c *gin.Context) {
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

	overview, err := h.analytics.Overview(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to compute analytics overview",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.AnalyticsOverviewResponse{
		From:                  from.Format(dateLayout),
		To:                    to.Format(dateLayout),
		IdeasCreated:          overview.IdeasCreated,
		IdeasFilmed:           overview.IdeasFilmed,
		IdeasPublished:        overview.IdeasPublished,
		InspirationsCaptured:  overview.InspirationsCaptured,
		InspirationsConverted: overview.InspirationsConverted,
		RevenueTotal:          overview.RevenueTotal,
	})
}
