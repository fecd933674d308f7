package models_test

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"adstudio-backend/internal/models"
)

func TestCampaign_ToResponse(t *testing.T) {
	id := uuid.New()
	now := time.Now()

	campaign := &models.Campaign{
		ID:          id,
		UserID:      "user-1",
		BrandName:   "Acme",
		Logo:        sql.NullString{String: "https://cdn.example.com/logo.png", Valid: true},
		BrandColors: json.RawMessage(`["#111111", "#222222"]`),
		Status:      models.CampaignStatusInProgress,
		CurrentStep: 4,
		VisualStyle: sql.NullString{String: "3d", Valid: true},
		Characters:  json.RawMessage(`[{"name": "Max"}]`),
		Script:      json.RawMessage(`{"title": "Launch", "totalDuration": 120, "scenes": []}`),
		ProgressLog: json.RawMessage(`[{"step": 2, "action": "style chosen", "status": "completed", "timestamp": "2026-01-02T10:00:00Z"}]`),
		Duration:    sql.NullInt64{Int64: 60, Valid: true},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	resp := campaign.ToResponse()

	assert.Equal(t, id.String(), resp.ID)
	assert.Equal(t, "Acme", resp.BrandName)
	assert.Equal(t, []string{"#111111", "#222222"}, resp.BrandColors)
	assert.Equal(t, "3d", resp.VisualStyle)
	assert.Equal(t, 4, resp.CurrentStep)
	assert.Equal(t, 60, resp.Duration)
	assert.Len(t, resp.Characters, 1)
	assert.Equal(t, "Max", resp.Characters[0].Name)
	assert.NotNil(t, resp.Script)
	assert.Equal(t, "Launch", resp.Script.Title)
	assert.Len(t, resp.ProgressLog, 1)
	assert.Equal(t, 2, resp.ProgressLog[0].Step)
}

func TestCampaign_ToResponse_SkipsNullColumns(t *testing.T) {
	campaign := &models.Campaign{
		ID:        uuid.New(),
		BrandName: "Bare",
		Status:    models.CampaignStatusDraft,
	}

	resp := campaign.ToResponse()

	assert.Empty(t, resp.Logo)
	assert.Empty(t, resp.VisualStyle)
	assert.Nil(t, resp.Script)
	assert.Empty(t, resp.Characters)
	assert.Zero(t, resp.Duration)
}

func TestScheduledPost_ToResponse(t *testing.T) {
	id := uuid.New()
	post := &models.ScheduledPost{
		ID:       id,
		UserID:   "user-1",
		Content:  "launch day!",
		Platform: "bluesky",
		HasMedia: true,
		ImageURL: sql.NullString{String: "https://cdn.example.com/a.jpg", Valid: true},
		Status:   models.PostStatusApproved,
		PostURI:  sql.NullString{String: "at://did/app.bsky.feed.post/1", Valid: true},
	}

	resp := post.ToResponse()

	assert.Equal(t, id.String(), resp.ID)
	assert.Equal(t, "launch day!", resp.Content)
	assert.True(t, resp.HasMedia)
	assert.Equal(t, "https://cdn.example.com/a.jpg", resp.ImageURL)
	assert.Equal(t, models.PostStatusApproved, resp.Status)
	assert.Equal(t, "at://did/app.bsky.feed.post/1", resp.PostURI)
	assert.Empty(t, resp.Error)
}
