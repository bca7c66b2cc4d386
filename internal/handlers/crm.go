package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"creatorops-backend/internal/domain"
	"creatorops-backend/internal/models"
	"creatorops-backend/internal/supabase"
)

// CRMHandler manages brands, their deals and the pipeline board.
type CRMHandler struct {
	dbClient *supabase.DatabaseClient
}

func NewCRMHandler(dbClient *supabase.DatabaseClient) *CRMHandler {
	return &CRMHandler{dbClient: dbClient}
}

func (h *CRMHandler) CreateBrand(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "name is required", Message: err.Error()})
		return
	}

	brand, err := h.dbClient.CreateBrand(&models.Brand{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         req.Name,
		ContactName:  nullString(req.ContactName),
		ContactEmail: nullString(req.ContactEmail),
		Website:      nullString(req.Website),
		Notes:        nullString(req.Notes),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create brand",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewBrandResponse(brand))
}

func (h *CRMHandler) ListBrands(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	brands, err := h.dbClient.ListBrands(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list brands",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.BrandResponse, len(brands))
	for i := range brands {
		responses[i] = models.NewBrandResponse(&brands[i])
	}
	c.JSON(http.StatusOK, gin.H{"brands": responses})
}

func (h *CRMHandler) UpdateBrand(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	brandID, ok := pathUUID(c, "brand_id")
	if !ok {
		return
	}

	var req models.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	brand, err := h.dbClient.GetBrand(brandID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "brand not found", Message: err.Error()})
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "name cannot be empty"})
			return
		}
		brand.Name = *req.Name
	}
	if req.ContactName != nil {
		brand.ContactName = nullString(*req.ContactName)
	}
	if req.ContactEmail != nil {
		brand.ContactEmail = nullString(*req.ContactEmail)
	}
	if req.Website != nil {
		brand.Website = nullString(*req.Website)
	}
	if req.Notes != nil {
		brand.Notes = nullString(*req.Notes)
	}

	updated, err := h.dbClient.UpdateBrand(brand)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update brand",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewBrandResponse(updated))
}

// DeleteBrand removes a brand and, by cascade, its deals.
func (h *CRMHandler) DeleteBrand(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	brandID, ok := pathUUID(c, "brand_id")
	if !ok {
		return
	}

	if err := h.dbClient.DeleteBrand(brandID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete brand",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "brand deleted successfully"})
}

func (h *CRMHandler) CreateDeal(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "brand_id and title are required", Message: err.Error()})
		return
	}

	brandID, err := uuid.Parse(req.BrandID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid brand_id"})
		return
	}

	if _, err := h.dbClient.GetBrand(brandID, userID); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "brand not found", Message: err.Error()})
		return
	}

	status := domain.DealLead
	if req.Status != "" {
		status = domain.DealStatus(req.Status)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid status"})
			return
		}
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	deal := &models.Deal{
		ID:       uuid.New(),
		UserID:   userID,
		BrandID:  brandID,
		Title:    req.Title,
		Status:   status,
		Value:    req.Value,
		Currency: currency,
		Notes:    nullString(req.Notes),
	}
	if req.DueDate != "" {
		due, ok := parseDate(c, req.DueDate, "due_date")
		if !ok {
			return
		}
		deal.DueDate = sql.NullTime{Time: due, Valid: true}
	}

	created, err := h.dbClient.CreateDeal(deal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create deal",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewDealResponse(created))
}

func (h *CRMHandler) ListDeals(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	deals, err := h.dbClient.ListDeals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list deals",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.DealResponse, len(deals))
	for i := range deals {
		responses[i] = models.NewDealResponse(&deals[i])
	}
	c.JSON(http.StatusOK, gin.H{"deals": responses})
}

func (h *CRMHandler) UpdateDeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dealID, ok := pathUUID(c, "deal_id")
	if !ok {
		return
	}

	var req models.UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	deal, err := h.dbClient.GetDeal(dealID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "deal not found", Message: err.Error()})
		return
	}

	if req.Title != nil {
		if *req.Title == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "title cannot be empty"})
			return
		}
		deal.Title = *req.Title
	}
	if req.Value != nil {
		deal.Value = *req.Value
	}
	if req.Currency != nil {
		deal.Currency = *req.Currency
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			deal.DueDate = sql.NullTime{}
		} else {
			due, ok := parseDate(c, *req.DueDate, "due_date")
			if !ok {
				return
			}
			deal.DueDate = sql.NullTime{Time: due, Valid: true}
		}
	}
	if req.Notes != nil {
		deal.Notes = nullString(*req.Notes)
	}

	updated, err := h.dbClient.UpdateDeal(deal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update deal",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewDealResponse(updated))
}

// SetDealStatus is the explicit status menu: any of the twelve values,
// including the out-of-pipeline terminals lost and cancelled.
func (h *CRMHandler) SetDealStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dealID, ok := pathUUID(c, "deal_id")
	if !ok {
		return
	}

	var req models.DealStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "status is required", Message: err.Error()})
		return
	}

	status := domain.DealStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid status"})
		return
	}

	deal, err := h.dbClient.SetDealStatus(dealID, userID, status)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "deal not found", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.NewDealResponse(deal))
}

func (h *CRMHandler) DeleteDeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dealID, ok := pathUUID(c, "deal_id")
	if !ok {
		return
	}

	if err := h.dbClient.DeleteDeal(dealID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete deal",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deal deleted successfully"})
}

// Pipeline godoc
// @Summary     Pipeline board
// @Description Returns the six pipeline columns with their deals and value totals. Totals are recomputed on every request.
// @Tags        crm
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.PipelineResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /crm/pipeline [get]
func (h *CRMHandler) Pipeline(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	deals, err := h.dbClient.ListDeals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to load pipeline",
			Message: err.Error(),
		})
		return
	}

	byStatus := make(map[domain.DealStatus][]models.DealResponse)
	totals := make(map[domain.DealStatus]float64)
	for i := range deals {
		status := deals[i].Status
		byStatus[status] = append(byStatus[status], models.NewDealResponse(&deals[i]))
		totals[status] += deals[i].Value
	}

	resp := models.PipelineResponse{
		Columns: make([]models.PipelineColumn, len(domain.PipelineStages)),
	}
	for i, stage := range domain.PipelineStages {
		column := models.PipelineColumn{
			Status: string(stage),
			Label:  stage.Meta().Label,
			Total:  totals[stage],
			Deals:  byStatus[stage],
		}
		if column.Deals == nil {
			column.Deals = []models.DealResponse{}
		}
		resp.Columns[i] = column
	}

	c.JSON(http.StatusOK, resp)
}
