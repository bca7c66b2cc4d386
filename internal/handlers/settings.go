package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"creatorops-backend/internal/models"
	"creatorops-backend/internal/supabase"
)

// SettingsHandler manages the user's lookup lists: pillars plus the three
// flat taxonomies (categories, content types, filming setups). The taxonomy
// table name is fixed per route, never taken from the request.
type SettingsHandler struct {
	dbClient *supabase.DatabaseClient
}

func NewSettingsHandler(dbClient *supabase.DatabaseClient) *SettingsHandler {
	return &SettingsHandler{dbClient: dbClient}
}

func (h *SettingsHandler) CreatePillar(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateNamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "name is required", Message: err.Error()})
		return
	}

	pillar, err := h.dbClient.CreatePillar(&models.Pillar{
		ID:     uuid.New(),
		UserID: userID,
		Name:   req.Name,
		Color:  nullString(req.Color),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create pillar",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, newPillarResponse(pillar))
}

func (h *SettingsHandler) ListPillars(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	pillars, err := h.dbClient.ListPillars(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list pillars",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.NamedResponse, len(pillars))
	for i := range pillars {
		responses[i] = newPillarResponse(&pillars[i])
	}
	c.JSON(http.StatusOK, gin.H{"pillars": responses})
}

func (h *SettingsHandler) DeletePillar(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	pillarID, ok := pathUUID(c, "pillar_id")
	if !ok {
		return
	}

	if err := h.dbClient.DeletePillar(pillarID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete pillar",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "pillar deleted successfully"})
}

// CreateTaxonomy returns a gin handler bound to one taxonomy table.
func (h *SettingsHandler) CreateTaxonomy(table string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.dbClient == nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
			return
		}

		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var req models.CreateNamedRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "name is required", Message: err.Error()})
			return
		}

		row, err := h.dbClient.CreateTaxonomy(table, &models.Taxonomy{
			ID:     uuid.New(),
			UserID: userID,
			Name:   req.Name,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "failed to create " + table + " entry",
				Message: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, newTaxonomyResponse(row))
	}
}

func (h *SettingsHandler) ListTaxonomy(table string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.dbClient == nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
			return
		}

		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		rows, err := h.dbClient.ListTaxonomy(table, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "failed to list " + table,
				Message: err.Error(),
			})
			return
		}

		responses := make([]models.NamedResponse, len(rows))
		for i := range rows {
			responses[i] = newTaxonomyResponse(&rows[i])
		}
		c.JSON(http.StatusOK, gin.H{table: responses})
	}
}

func (h *SettingsHandler) DeleteTaxonomy(table string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		rowID, ok := pathUUID(c, "id")
		if !ok {
			return
		}

		if err := h.dbClient.DeleteTaxonomy(table, rowID, userID); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "failed to delete " + table + " entry",
				Message: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "entry deleted successfully"})
	}
}

func newPillarResponse(p *models.Pillar) models.NamedResponse {
	resp := models.NamedResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
	if p.Color.Valid {
		resp.Color = p.Color.String
	}
	return resp
}

func newTaxonomyResponse(t *models.Taxonomy) models.NamedResponse {
	return models.NamedResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
	}
}
