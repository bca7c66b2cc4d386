package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"creatorops-backend/internal/handlers"
)

// Without DATABASE_URL the services are never constructed, but the routes
// stay registered. Every scheduling route must answer the degraded-mode 500
// instead of dereferencing a nil service. gin.New carries no Recovery
// middleware, so a nil dereference would fail these tests outright.
func TestSchedulingRoutes_DegradedWithoutDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ideasHandler := handlers.NewIdeasHandler(nil, nil)
	productionHandler := handlers.NewProductionHandler(nil, nil)
	plannerHandler := handlers.NewPlannerHandler(nil, nil)
	inspirationsHandler := handlers.NewInspirationsHandler(nil, nil)

	router := gin.New()
	router.POST("/ideas/:idea_id/advance", ideasHandler.AdvanceStatus)
	router.POST("/ideas/:idea_id/status", ideasHandler.JumpStatus)
	router.POST("/production/ideas/:idea_id/schedule-filming", productionHandler.ScheduleFilming)
	router.POST("/production/ideas/:idea_id/mark-filmed", productionHandler.MarkFilmed)
	router.POST("/production/ideas/:idea_id/move-to-editing", productionHandler.MoveToEditing)
	router.POST("/production/ideas/:idea_id/schedule-post", productionHandler.SchedulePost)
	router.POST("/planner/items", plannerHandler.CreateItem)
	router.POST("/planner/drop", plannerHandler.DropIdea)
	router.DELETE("/planner/items/:item_id", plannerHandler.DeleteItem)
	router.POST("/inspirations/:inspiration_id/convert", inspirationsHandler.Convert)

	ideaID := uuid.New().String()
	requests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/ideas/" + ideaID + "/advance"},
		{http.MethodPost, "/ideas/" + ideaID + "/status"},
		{http.MethodPost, "/production/ideas/" + ideaID + "/schedule-filming"},
		{http.MethodPost, "/production/ideas/" + ideaID + "/mark-filmed"},
		{http.MethodPost, "/production/ideas/" + ideaID + "/move-to-editing"},
		{http.MethodPost, "/production/ideas/" + ideaID + "/schedule-post"},
		{http.MethodPost, "/planner/items"},
		{http.MethodPost, "/planner/drop"},
		{http.MethodDelete, "/planner/items/" + uuid.New().String()},
		{http.MethodPost, "/inspirations/" + uuid.New().String() + "/convert"},
	}

	for _, r := range requests {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(r.method, r.path, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code, r.path)
		assert.Contains(t, w.Body.String(), "database not available", r.path)
	}
}
