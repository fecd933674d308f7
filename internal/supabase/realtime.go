package supabase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/supabase-go"
)

type RealtimeClient struct {
	client *supabase.Client
}

func NewRealtimeClient(client *supabase.Client) *RealtimeClient {
	return &RealtimeClient{
		client: client,
	}
}

func (r *RealtimeClient) PublishEvent(channel string, event string, payload map[string]interface{}) error {
	// Database writes trigger Realtime change events on their own; this
	// is the hook for explicit broadcast if the dashboard needs it later.
	return nil
}

func (r *RealtimeClient) PublishCampaignEvent(campaignID uuid.UUID, event string, payload map[string]interface{}) error {
	channel := fmt.Sprintf("campaign:%s", campaignID.String())
	return r.PublishEvent(channel, event, payload)
}

func (r *RealtimeClient) PublishUserEvent(userID string, event string, payload map[string]interface{}) error {
	channel := fmt.Sprintf("user:%s", userID)
	return r.PublishEvent(channel, event, payload)
}

// Event payloads
func StepAdvancedPayload(campaignID uuid.UUID, step string, stepIndex int) map[string]interface{} {
	return map[string]interface{}{
		"campaign_id":  campaignID.String(),
		"step":         step,
		"current_step": stepIndex,
	}
}

func StyleRevertedPayload(campaignID uuid.UUID) map[string]interface{} {
	return map[string]interface{}{
		"campaign_id":  campaignID.String(),
		"step":         "style",
		"current_step": 2,
	}
}

func GenerationStartedPayload(campaignID uuid.UUID, kind string) map[string]interface{} {
	return map[string]interface{}{
		"campaign_id": campaignID.String(),
		"status":      "generating",
		"kind":        kind,
	}
}

func GenerationCompletedPayload(campaignID uuid.UUID, kind, url string) map[string]interface{} {
	return map[string]interface{}{
		"campaign_id": campaignID.String(),
		"status":      "completed",
		"kind":        kind,
		"url":         url,
	}
}

func GenerationFailedPayload(campaignID uuid.UUID, kind, errorMsg string) map[string]interface{} {
	return map[string]interface{}{
		"campaign_id": campaignID.String(),
		"status":      "failed",
		"kind":        kind,
		"error":       errorMsg,
	}
}

func PostPublishedPayload(postID uuid.UUID, platform, postURI string) map[string]interface{} {
	return map[string]interface{}{
		"post_id":  postID.String(),
		"platform": platform,
		"post_uri": postURI,
		"status":   "posted",
	}
}
