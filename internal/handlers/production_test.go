package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"creatorops-backend/internal/services"
)

func TestWriteSchedulingError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "missing row is not found",
			err:  fmt.Errorf("failed to get idea: %w", sql.ErrNoRows),
			want: http.StatusNotFound,
		},
		{
			name: "store failure is a server error",
			err:  errors.New("connection refused"),
			want: http.StatusInternalServerError,
		},
		{
			name: "partial write is a server error",
			err:  &services.PartialWriteError{Completed: "idea update", Err: errors.New("insert failed")},
			want: http.StatusInternalServerError,
		},
		{
			name: "not droppable is a conflict",
			err:  services.ErrNotDroppable,
			want: http.StatusConflict,
		},
		{
			name: "invalid status is a bad request",
			err:  services.ErrInvalidStatus,
			want: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			writeSchedulingError(c, tt.err, "failed to schedule")

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestWriteSchedulingError_PartialWriteNamesCompletedHalf(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	writeSchedulingError(c, &services.PartialWriteError{
		Completed: "planner insert",
		Err:       errors.New("idea update lost"),
	}, "failed to drop idea")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "planner insert succeeded")
}
