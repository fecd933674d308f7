package models

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Campaign statuses.
const (
	CampaignStatusDraft      = "draft"
	CampaignStatusInProgress = "in_progress"
	CampaignStatusCompleted  = "completed"
)

// MaxBrandColors caps the brand color palette.
const MaxBrandColors = 5

// Campaign is one brand's ad/video project, carrying all workflow state.
// JSON-typed columns are kept raw here and decoded on the way out.
type Campaign struct {
	ID             uuid.UUID
	UserID         string
	BrandName      string
	Logo           sql.NullString
	BrandColors    json.RawMessage
	Status         string
	CurrentStep    int
	Content        sql.NullString
	ContentSummary sql.NullString
	VisualStyle    sql.NullString
	Characters     json.RawMessage
	Script         json.RawMessage
	Scenes         json.RawMessage
	Locations      json.RawMessage
	Thumbnails     json.RawMessage
	VideoClips     json.RawMessage
	FinalMediaURL  sql.NullString
	Duration       sql.NullInt64
	ProgressLog    json.RawMessage
	StudioMessages json.RawMessage
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Character struct {
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	ReferenceImage string   `json:"referenceImage,omitempty"`
	GeneratedViews []string `json:"generatedViews,omitempty"`
}

// Script is the generated video script as returned by script generation.
type Script struct {
	Title         string        `json:"title"`
	TotalDuration int           `json:"totalDuration"`
	Scenes        []ScriptScene `json:"scenes"`
}

type ScriptScene struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Duration   int      `json:"duration"`
	Visual     string   `json:"visual"`
	Narration  string   `json:"narration"`
	Characters []string `json:"characters,omitempty"`
}

// Scene is the flattened per-scene record stored on the campaign.
type Scene struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Dialogue    string   `json:"dialogue,omitempty"`
	Characters  []string `json:"characters,omitempty"`
	Location    string   `json:"location,omitempty"`
}

type LocationAsset struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

type Thumbnail struct {
	SceneID  string `json:"sceneId"`
	ImageURL string `json:"imageUrl"`
}

type VideoClip struct {
	SceneID  string `json:"sceneId"`
	VideoURL string `json:"videoUrl"`
	Duration int    `json:"duration,omitempty"`
}

// ProgressEntry is one audit-trail row. There is at most one entry per
// (step, action) pair; later updates overwrite status in place.
type ProgressEntry struct {
	Step      int    `json:"step"`
	Action    string `json:"action"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type ToolCall struct {
	Action string `json:"action"`
	Status string `json:"status"`
}

// StudioMessage is one entry of the campaign's append-only chat log.
type StudioMessage struct {
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	ToolCalls []ToolCall `json:"toolCalls,omitempty"`
	Timestamp string     `json:"timestamp"`
}

// ToResponse decodes the raw JSON columns into the API shape.
func (c *Campaign) ToResponse() CampaignResponse {
	resp := CampaignResponse{
		ID:          c.ID.String(),
		BrandName:   c.BrandName,
		Status:      c.Status,
		CurrentStep: c.CurrentStep,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}

	if c.Logo.Valid {
		resp.Logo = c.Logo.String
	}
	if c.Content.Valid {
		resp.Content = c.Content.String
	}
	if c.ContentSummary.Valid {
		resp.ContentSummary = c.ContentSummary.String
	}
	if c.VisualStyle.Valid {
		resp.VisualStyle = c.VisualStyle.String
	}
	if c.FinalMediaURL.Valid {
		resp.FinalMediaURL = c.FinalMediaURL.String
	}
	if c.Duration.Valid {
		resp.Duration = int(c.Duration.Int64)
	}

	unmarshalColumn(c.BrandColors, &resp.BrandColors)
	unmarshalColumn(c.Characters, &resp.Characters)
	unmarshalColumn(c.Script, &resp.Script)
	unmarshalColumn(c.Scenes, &resp.Scenes)
	unmarshalColumn(c.Locations, &resp.Locations)
	unmarshalColumn(c.Thumbnails, &resp.Thumbnails)
	unmarshalColumn(c.VideoClips, &resp.VideoClips)
	unmarshalColumn(c.ProgressLog, &resp.ProgressLog)
	unmarshalColumn(c.StudioMessages, &resp.StudioMessages)

	return resp
}

func unmarshalColumn(raw json.RawMessage, dst interface{}) {
	if len(raw) == 0 {
		return
	}
	// Malformed stored JSON is skipped rather than failing the whole read.
	_ = json.Unmarshal(raw, dst)
}
