package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"creatorops-backend/internal/config"
	"creatorops-backend/internal/logger"
	"creatorops-backend/internal/models"
	"creatorops-backend/internal/supabase"
)

// WebhookHandler receives subscription lifecycle callbacks from the payment
// provider. These arrive outside the JWT-authed surface; a shared token
// configured on both sides authenticates the caller.
type WebhookHandler struct {
	config   *config.Config
	dbClient *supabase.DatabaseClient
	log      *logger.Logger
}

func NewWebhookHandler(cfg *config.Config, dbClient *supabase.DatabaseClient, log *logger.Logger) *WebhookHandler {
	return &WebhookHandler{
		config:   cfg,
		dbClient: dbClient,
		log:      log,
	}
}

// PaymentWebhookEvent is the provider's subscription event payload.
type PaymentWebhookEvent struct {
	Event            string `json:"event"` // subscription_created, subscription_updated or subscription_cancelled
	UserID           string `json:"user_id"`
	Plan             string `json:"plan,omitempty"`
	Status           string `json:"status,omitempty"`
	CurrentPeriodEnd string `json:"current_period_end,omitempty"` // RFC 3339
	PaymentRef       string `json:"payment_ref,omitempty"`
}

// HandlePayments godoc
// @Summary     Payment provider webhook
// @Description Receives subscription lifecycle events and upserts the user's subscription row. Uses shared-token verification.
// @Tags        webhooks
// @Accept      json
// @Produce     json
// @Param       Authorization header string true "Shared webhook token"
// @Success     200 {object} map[string]string "status"
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /webhooks/payments [post]
func (h *WebhookHandler) HandlePayments(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "missing authorization token"})
		return
	}

	// The provider may send "Bearer <token>" or the bare token.
	token := strings.TrimPrefix(authHeader, "Bearer ")
	token = strings.TrimSpace(token)

	if h.config.PaymentsWebhookToken != "" && token != h.config.PaymentsWebhookToken {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid authorization token"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to read request body",
			Message: err.Error(),
		})
		return
	}

	var event PaymentWebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to parse event",
			Message: err.Error(),
		})
		return
	}

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid user_id"})
		return
	}

	var status string
	switch event.Event {
	case "subscription_created", "subscription_updated":
		status = event.Status
		if status == "" {
			status = "active"
		}
	case "subscription_cancelled":
		status = "cancelled"
	default:
		// Unknown events are acknowledged so the provider stops retrying.
		h.log.Infow("ignoring unknown webhook event", "event", event.Event)
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "event ignored"})
		return
	}

	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	var periodEnd *time.Time
	if event.CurrentPeriodEnd != "" {
		parsed, err := time.Parse(time.RFC3339, event.CurrentPeriodEnd)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid current_period_end",
				Message: "expected RFC 3339 timestamp",
			})
			return
		}
		periodEnd = &parsed
	}

	sub, err := h.dbClient.UpsertSubscription(userID, status, event.Plan, periodEnd, event.PaymentRef)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to upsert subscription",
			Message: err.Error(),
		})
		return
	}

	h.log.Infow("subscription upserted",
		"user_id", userID,
		"event", event.Event,
		"status", sub.Status,
		"plan", sub.Plan,
	)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
