package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"creatorops-backend/internal/domain"
	"creatorops-backend/internal/logger"
	"creatorops-backend/internal/mailer"
	"creatorops-backend/internal/models"
	"creatorops-backend/internal/supabase"
)

// EmailsHandler runs the email hub: triage of inbound messages, outbound
// replies through the mail provider, and conversion into inspirations.
type EmailsHandler struct {
	dbClient     *supabase.DatabaseClient
	mailerClient *mailer.Client
	log          *logger.Logger
}

func NewEmailsHandler(dbClient *supabase.DatabaseClient, mailerClient *mailer.Client, log *logger.Logger) *EmailsHandler {
	return &EmailsHandler{
		dbClient:     dbClient,
		mailerClient: mailerClient,
		log:          log,
	}
}

func (h *EmailsHandler) Create(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "from_address and subject are required", Message: err.Error()})
		return
	}

	category := domain.EmailOtherCat
	if req.Category != "" {
		category = domain.EmailCategory(req.Category)
		if !category.Valid() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid category"})
			return
		}
	}

	receivedAt := time.Now().UTC()
	if req.ReceivedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.ReceivedAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid received_at",
				Message: "expected RFC 3339 timestamp",
			})
			return
		}
		receivedAt = parsed
	}

	email, err := h.dbClient.CreateEmail(&models.Email{
		ID:          uuid.New(),
		UserID:      userID,
		FromAddress: req.FromAddress,
		Subject:     req.Subject,
		Body:        nullString(req.Body),
		Category:    category,
		Status:      domain.EmailUnread,
		ReceivedAt:  receivedAt,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create email",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewEmailResponse(email))
}

func (h *EmailsHandler) List(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	emails, err := h.dbClient.ListEmails(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list emails",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.EmailResponse, len(emails))
	for i := range emails {
		responses[i] = models.NewEmailResponse(&emails[i])
	}
	c.JSON(http.StatusOK, gin.H{"emails": responses})
}

func (h *EmailsHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	emailID, ok := pathUUID(c, "email_id")
	if !ok {
		return
	}

	email, err := h.dbClient.GetEmail(emailID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "email not found", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.NewEmailResponse(email))
}

func (h *EmailsHandler) SetStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	emailID, ok := pathUUID(c, "email_id")
	if !ok {
		return
	}

	var req models.EmailStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "status is required", Message: err.Error()})
		return
	}

	status := domain.EmailStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid status"})
		return
	}

	email, err := h.dbClient.SetEmailStatus(emailID, userID, status)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "email not found", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.NewEmailResponse(email))
}

// Reply godoc
// @Summary     Reply to an email
// @Description Sends a reply through the mail provider and marks the email replied
// @Tags        emails
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       email_id path string true "Email ID"
// @Param       request body models.EmailReplyRequest true "Reply body"
// @Success     200 {object} models.EmailResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /emails/{email_id}/reply [post]
func (h *EmailsHandler) Reply(c *gin.Context) {
	if h.mailerClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "mailer not available"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	emailID, ok := pathUUID(c, "email_id")
	if !ok {
		return
	}

	var req models.EmailReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "body is required", Message: err.Error()})
		return
	}

	email, err := h.dbClient.GetEmail(emailID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "email not found", Message: err.Error()})
		return
	}

	var messageID string
	err = h.mailerClient.RetryWithBackoff(func() error {
		var sendErr error
		messageID, sendErr = h.mailerClient.Send(email.FromAddress, "Re: "+email.Subject, req.Body)
		return sendErr
	}, 3)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "failed to send reply",
			Message: err.Error(),
		})
		return
	}
	h.log.Infow("reply sent", "email_id", emailID, "message_id", messageID)

	updated, err := h.dbClient.SetEmailStatus(emailID, userID, domain.EmailReplied)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "reply sent but email was not marked replied",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewEmailResponse(updated))
}

// ConvertToInspiration captures a promising email into the inspiration list
// with source=email. The email itself is left as is.
func (h *EmailsHandler) ConvertToInspiration(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	emailID, ok := pathUUID(c, "email_id")
	if !ok {
		return
	}

	email, err := h.dbClient.GetEmail(emailID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "email not found", Message: err.Error()})
		return
	}

	insp, err := h.dbClient.CreateInspiration(&models.Inspiration{
		ID:     uuid.New(),
		UserID: userID,
		Title:  email.Subject,
		Source: domain.SourceEmail,
		Status: domain.InspirationPending,
		Notes:  email.Body,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create inspiration from email",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewInspirationResponse(insp))
}

func (h *EmailsHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	emailID, ok := pathUUID(c, "email_id")
	if !ok {
		return
	}

	if err := h.dbClient.DeleteEmail(emailID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete email",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "email deleted successfully"})
}
