package supabase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/supabase-go"
)

// RealtimeClient notifies the dashboard of lifecycle changes. Database
// writes already trigger Supabase Realtime on the subscribed tables; this
// wrapper exists for explicit event publication if the dashboard moves to
// channel broadcasts.
type RealtimeClient struct {
	client *supabase.Client
}

func NewRealtimeClient(client *supabase.Client) *RealtimeClient {
	return &RealtimeClient{
		client: client,
	}
}

func (r *RealtimeClient) PublishEvent(channel string, event string, payload map[string]interface{}) error {
	// Database updates trigger Realtime automatically; explicit broadcast is
	// a placeholder until the dashboard subscribes to channels directly.
	return nil
}

func (r *RealtimeClient) PublishUserEvent(userID uuid.UUID, event string, payload map[string]interface{}) error {
	channel := fmt.Sprintf("user:%s", userID.String())
	return r.PublishEvent(channel, event, payload)
}

// Event payloads

func StatusChangedPayload(ideaID uuid.UUID, status string) map[string]interface{} {
	return map[string]interface{}{
		"idea_id": ideaID.String(),
		"status":  status,
	}
}

func FilmingScheduledPayload(ideaID uuid.UUID, date string) map[string]interface{} {
	return map[string]interface{}{
		"idea_id":        ideaID.String(),
		"status":         "to_film",
		"scheduled_date": date,
	}
}

func PostScheduledPayload(ideaID uuid.UUID, date string) map[string]interface{} {
	return map[string]interface{}{
		"idea_id":      ideaID.String(),
		"status":       "scheduled",
		"publish_date": date,
	}
}

func ScheduleClearedPayload(ideaID uuid.UUID) map[string]interface{} {
	return map[string]interface{}{
		"idea_id": ideaID.String(),
		"status":  "scripted",
	}
}
