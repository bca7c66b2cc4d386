package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"creatorops-backend/internal/config"
	"creatorops-backend/internal/handlers"
	"creatorops-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newWebhookRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewWebhookHandler(cfg, nil, logger.NewNop())
	router := gin.New()
	router.POST("/api/v1/webhooks/payments", handler.HandlePayments)
	return router
}

func TestPaymentWebhook_NoToken(t *testing.T) {
	router := newWebhookRouter(&config.Config{PaymentsWebhookToken: "shared-token"})

	body := bytes.NewBufferString(`{"event":"subscription_created","user_id":"abc"}`)
	req, _ := http.NewRequest("POST", "/api/v1/webhooks/payments", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPaymentWebhook_WrongToken(t *testing.T) {
	router := newWebhookRouter(&config.Config{PaymentsWebhookToken: "shared-token"})

	body := bytes.NewBufferString(`{"event":"subscription_created","user_id":"abc"}`)
	req, _ := http.NewRequest("POST", "/api/v1/webhooks/payments", body)
	req.Header.Set("Authorization", "Bearer not-the-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPaymentWebhook_InvalidBody(t *testing.T) {
	router := newWebhookRouter(&config.Config{PaymentsWebhookToken: "shared-token"})

	body := bytes.NewBufferString(`not-json`)
	req, _ := http.NewRequest("POST", "/api/v1/webhooks/payments", body)
	req.Header.Set("Authorization", "Bearer shared-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentWebhook_InvalidUserID(t *testing.T) {
	router := newWebhookRouter(&config.Config{PaymentsWebhookToken: "shared-token"})

	body := bytes.NewBufferString(`{"event":"subscription_created","user_id":"not-a-uuid"}`)
	req, _ := http.NewRequest("POST", "/api/v1/webhooks/payments", body)
	req.Header.Set("Authorization", "Bearer shared-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentWebhook_UnknownEventAcknowledged(t *testing.T) {
	router := newWebhookRouter(&config.Config{PaymentsWebhookToken: "shared-token"})

	body := bytes.NewBufferString(`{"event":"invoice_created","user_id":"5aeb9f64-31f0-4b30-9f5c-5b2d2a7fdc1f"}`)
	req, _ := http.NewRequest("POST", "/api/v1/webhooks/payments", body)
	req.Header.Set("Authorization", "Bearer shared-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Unknown events are acknowledged so the provider stops retrying.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ignored")
}

func TestPaymentWebhook_BareTokenAccepted(t *testing.T) {
	router := newWebhookRouter(&config.Config{PaymentsWebhookToken: "shared-token"})

	body := bytes.NewBufferString(`{"event":"ping","user_id":"5aeb9f64-31f0-4b30-9f5c-5b2d2a7fdc1f"}`)
	req, _ := http.NewRequest("POST", "/api/v1/webhooks/payments", body)
	req.Header.Set("Authorization", "shared-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
