package mailer_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creatorops-backend/internal/mailer"
)

func TestClient_Send(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req mailer.SendRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "studio@example.com", req.From)
		assert.Equal(t, []string{"brand@example.com"}, req.To)
		assert.Equal(t, "Re: Collab", req.Subject)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(mailer.SendResponse{ID: "msg-123"})
	}))
	defer server.Close()

	client := mailer.NewClient(server.URL, "test-key", "studio@example.com")

	id, err := client.Send("brand@example.com", "Re: Collab", "Sounds good.")
	require.NoError(t, err)
	assert.Equal(t, "msg-123", id)
}

func TestClient_SendErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer server.Close()

	client := mailer.NewClient(server.URL, "test-key", "bad-from")

	_, err := client.Send("brand@example.com", "Hi", "body")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 422")
}

func TestClient_RetryWithBackoff(t *testing.T) {
	client := mailer.NewClient("https://api.test.com/", "test-key", "studio@example.com")

	callCount := 0
	err := client.RetryWithBackoff(func() error {
		callCount++
		if callCount < 3 {
			return assert.AnError
		}
		return nil
	}, 3)

	assert.NoError(t, err)
	assert.Equal(t, 3, callCount)
}

func TestClient_RetryWithBackoff_Exhausted(t *testing.T) {
	client := mailer.NewClient("https://api.test.com/", "test-key", "studio@example.com")

	err := client.RetryWithBackoff(func() error {
		return assert.AnError
	}, 3)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed after 3 retries")
}
