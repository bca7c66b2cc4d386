package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"creatorops-backend/internal/domain"
	"creatorops-backend/internal/models"
	"creatorops-backend/internal/supabase"
)

// ScriptsHandler covers script blocks and the b-roll checklist under an
// idea.
type ScriptsHandler struct {
	dbClient      *supabase.DatabaseClient
	storageClient *supabase.StorageClient
}

func NewScriptsHandler(dbClient *supabase.DatabaseClient, storageClient *supabase.StorageClient) *ScriptsHandler {
	return &ScriptsHandler{
		dbClient:      dbClient,
		storageClient: storageClient,
	}
}

func (h *ScriptsHandler) CreateBlock(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ideaID, ok := pathUUID(c, "idea_id")
	if !ok {
		return
	}

	var req models.CreateScriptBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "block_type is required", Message: err.Error()})
		return
	}

	blockType := domain.ScriptBlockType(req.BlockType)
	if !blockType.Valid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid block_type"})
		return
	}

	if _, err := h.dbClient.GetIdea(ideaID, userID); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "idea not found", Message: err.Error()})
		return
	}

	block, err := h.dbClient.CreateScriptBlock(&models.ScriptBlock{
		ID:        uuid.New(),
		IdeaID:    ideaID,
		UserID:    userID,
		BlockType: blockType,
		Content:   req.Content,
		Notes:     nullString(req.Notes),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create script block",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewScriptBlockResponse(block))
}

func (h *ScriptsHandler) ListBlocks(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ideaID, ok := pathUUID(c, "idea_id")
	if !ok {
		return
	}

	blocks, err := h.dbClient.ListScriptBlocks(ideaID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list script blocks",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.ScriptBlockResponse, len(blocks))
	for i := range blocks {
		responses[i] = models.NewScriptBlockResponse(&blocks[i])
	}
	c.JSON(http.StatusOK, gin.H{"blocks": responses})
}

func (h *ScriptsHandler) UpdateBlock(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	blockID, ok := pathUUID(c, "block_id")
	if !ok {
		return
	}

	var req models.UpdateScriptBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	block, err := h.dbClient.GetScriptBlock(blockID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "script block not found", Message: err.Error()})
		return
	}

	if req.Content != nil {
		block.Content = *req.Content
	}
	if req.Notes != nil {
		block.Notes = nullString(*req.Notes)
	}

	updated, err := h.dbClient.UpdateScriptBlock(block)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update script block",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewScriptBlockResponse(updated))
}

func (h *ScriptsHandler) DeleteBlock(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	blockID, ok := pathUUID(c, "block_id")
	if !ok {
		return
	}

	if err := h.dbClient.DeleteScriptBlock(blockID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete script block",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "script block deleted successfully"})
}

func (h *ScriptsHandler) CreateBroll(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ideaID, ok := pathUUID(c, "idea_id")
	if !ok {
		return
	}

	var req models.CreateBrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "description is required", Message: err.Error()})
		return
	}

	if _, err := h.dbClient.GetIdea(ideaID, userID); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "idea not found", Message: err.Error()})
		return
	}

	item, err := h.dbClient.CreateBrollItem(&models.BrollItem{
		ID:          uuid.New(),
		IdeaID:      ideaID,
		UserID:      userID,
		Description: req.Description,
		Status:      domain.BrollNeeded,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create b-roll item",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewBrollItemResponse(item))
}

func (h *ScriptsHandler) ListBroll(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ideaID, ok := pathUUID(c, "idea_id")
	if !ok {
		return
	}

	items, err := h.dbClient.ListBrollItems(ideaID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list b-roll items",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.BrollItemResponse, len(items))
	for i := range items {
		responses[i] = models.NewBrollItemResponse(&items[i])
	}
	c.JSON(http.StatusOK, gin.H{"broll": responses})
}

func (h *ScriptsHandler) UpdateBroll(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	brollID, ok := pathUUID(c, "broll_id")
	if !ok {
		return
	}

	var req models.UpdateBrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	item, err := h.dbClient.GetBrollItem(brollID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "b-roll item not found", Message: err.Error()})
		return
	}

	if req.Description != nil {
		if *req.Description == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "description cannot be empty"})
			return
		}
		item.Description = *req.Description
	}

	updated, err := h.dbClient.UpdateBrollItem(item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update b-roll item",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewBrollItemResponse(updated))
}

// ToggleBroll flips a shot between needed and filmed.
func (h *ScriptsHandler) ToggleBroll(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	brollID, ok := pathUUID(c, "broll_id")
	if !ok {
		return
	}

	item, err := h.dbClient.GetBrollItem(brollID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "b-roll item not found", Message: err.Error()})
		return
	}

	updated, err := h.dbClient.SetBrollStatus(brollID, userID, item.Status.Toggle())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to toggle b-roll item",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewBrollItemResponse(updated))
}

// UploadBroll stores a footage file in the storage bucket and records its
// public URL on the checklist entry.
func (h *ScriptsHandler) UploadBroll(c *gin.Context) {
	if h.storageClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "storage not available"})
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

	brollID, ok := pathUUID(c, "broll_id")
	if !ok {
		return
	}

	if _, err := h.dbClient.GetBrollItem(brollID, userID); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "b-roll item not found", Message: err.Error()})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "file is required", Message: err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to open file", Message: err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read file", Message: err.Error()})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, publicURL, err := h.storageClient.UploadFootage(userID, ideaID, fileHeader.Filename, contentType, data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to upload footage",
			Message: err.Error(),
		})
		return
	}

	updated, err := h.dbClient.SetBrollSourceFile(brollID, userID, publicURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to record footage file",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewBrollItemResponse(updated))
}

func (h *ScriptsHandler) DeleteBroll(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	brollID, ok := pathUUID(c, "broll_id")
	if !ok {
		return
	}

	if err := h.dbClient.DeleteBrollItem(brollID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete b-roll item",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "b-roll item deleted successfully"})
}
