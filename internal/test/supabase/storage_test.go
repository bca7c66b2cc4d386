package supabase_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"creatorops-backend/internal/supabase"
)

func TestStorageClient_GetPublicURL(t *testing.T) {
	client, err := supabase.NewStorageClient("https://example.supabase.co/", "test-key", "broll-footage")
	assert.NoError(t, err)

	url := client.GetPublicURL("users/abc/ideas/def/shot.mp4")
	assert.Equal(t, "https://example.supabase.co/storage/v1/object/public/broll-footage/users/abc/ideas/def/shot.mp4", url)
}

func TestFootagePathFormat(t *testing.T) {
	userID := uuid.New()
	ideaID := uuid.New()
	filename := "broll-01.mp4"

	expectedPath := "users/" + userID.String() + "/ideas/" + ideaID.String() + "/" + filename

	assert.Contains(t, expectedPath, "users/")
	assert.Contains(t, expectedPath, "ideas/")
	assert.Contains(t, expectedPath, filename)
}
