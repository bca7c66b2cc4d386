package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"creatorops-backend/internal/domain"
	"creatorops-backend/internal/models"
	"creatorops-backend/internal/services"
	"creatorops-backend/internal/supabase"
)

// InspirationsHandler manages the pre-idea capture list and conversion into
// real ideas.
type InspirationsHandler struct {
	dbClient   *supabase.DatabaseClient
	conversion *services.ConversionService
}

func NewInspirationsHandler(dbClient *supabase.DatabaseClient, conversion *services.ConversionService) *InspirationsHandler {
	return &InspirationsHandler{
		dbClient:   dbClient,
		conversion: conversion,
	}
}

func (h *InspirationsHandler) Create(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateInspirationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "title is required", Message: err.Error()})
		return
	}

	source := domain.SourceManual
	if req.Source != "" {
		source = domain.InspirationSource(req.Source)
		if !source.Valid() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid source"})
			return
		}
	}

	insp, err := h.dbClient.CreateInspiration(&models.Inspiration{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     req.Title,
		Source:    source,
		Status:    domain.InspirationPending,
		SourceURL: nullString(req.SourceURL),
		Notes:     nullString(req.Notes),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create inspiration",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewInspirationResponse(insp))
}

func (h *InspirationsHandler) List(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	inspirations, err := h.dbClient.ListInspirations(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list inspirations",
			Message: err.Error(),
		})
		return
	}

	resp := models.InspirationListResponse{
		Inspirations: make([]models.InspirationResponse, len(inspirations)),
	}
	for i := range inspirations {
		resp.Inspirations[i] = models.NewInspirationResponse(&inspirations[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InspirationsHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	inspirationID, ok := pathUUID(c, "inspiration_id")
	if !ok {
		return
	}

	var req models.UpdateInspirationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	insp, err := h.dbClient.GetInspiration(inspirationID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "inspiration not found", Message: err.Error()})
		return
	}

	if req.Title != nil {
		if *req.Title == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "title cannot be empty"})
			return
		}
		insp.Title = *req.Title
	}
	if req.Status != nil {
		status := domain.InspirationStatus(*req.Status)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid status"})
			return
		}
		insp.Status = status
	}
	if req.SourceURL != nil {
		insp.SourceURL = nullString(*req.SourceURL)
	}
	if req.Notes != nil {
		insp.Notes = nullString(*req.Notes)
	}

	updated, err := h.dbClient.UpdateInspiration(insp)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update inspiration",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewInspirationResponse(updated))
}

// Convert godoc
// @Summary     Convert an inspiration into an idea
// @Description Creates a draft idea seeded from the inspiration, then marks the inspiration processed. The flag flips only after the idea insert succeeds.
// @Tags        inspirations
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       inspiration_id path string true "Inspiration ID"
// @Param       request body models.ConvertInspirationRequest false "Overrides for the new idea"
// @Success     200 {object} models.ConvertInspirationResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /inspirations/{inspiration_id}/convert [post]
func (h *InspirationsHandler) Convert(c *gin.Context) {
	if h.conversion == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	inspirationID, ok := pathUUID(c, "inspiration_id")
	if !ok {
		return
	}

	// The body is optional; an empty request converts with the
	// inspiration's own title.
	var req models.ConvertInspirationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
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

	pillarID, err := nullUUIDFromString(req.PillarID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid pillar_id"})
		return
	}

	idea, processed, err := h.conversion.Convert(userID, inspirationID, req.Title, priority, pillarID)
	if err != nil {
		var partial *services.PartialWriteError
		switch {
		case errors.As(err, &partial):
			// The idea exists; report the half-finished conversion rather
			// than pretending it failed outright.
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "idea created but inspiration was not marked processed",
				Message: partial.Err.Error(),
			})
		case errors.Is(err, services.ErrAlreadyConverted):
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "inspiration already converted"})
		case errors.Is(err, sql.ErrNoRows):
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "inspiration not found", Message: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "failed to convert inspiration",
				Message: err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, models.ConvertInspirationResponse{
		Idea:        models.NewIdeaResponse(idea),
		Inspiration: models.NewInspirationResponse(processed),
	})
}

func (h *InspirationsHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	inspirationID, ok := pathUUID(c, "inspiration_id")
	if !ok {
		return
	}

	if err := h.dbClient.DeleteInspiration(inspirationID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete inspiration",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "inspiration deleted successfully"})
}
