package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Scheduled post statuses. Transitions are caller-driven; the store does
// not validate legality of a transition.
const (
	PostStatusDraft           = "draft"
	PostStatusPendingApproval = "pending_approval"
	PostStatusApproved        = "approved"
	PostStatusPosted          = "posted"
	PostStatusFailed          = "failed"
)

// ScheduledPost is one social-media post and its lifecycle status,
// independent of any campaign.
type ScheduledPost struct {
	ID           uuid.UUID
	UserID       string
	CampaignID   sql.NullString
	Content      string
	Platform     string
	ImageURL     sql.NullString
	HasMedia     bool
	AltText      sql.NullString
	Status       string
	ScheduledFor sql.NullString
	PostedAt     sql.NullString
	PostURI      sql.NullString
	ErrorMessage sql.NullString
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PostStats aggregates scheduled posts by status.
type PostStats struct {
	Total           int `json:"total"`
	Draft           int `json:"draft"`
	PendingApproval int `json:"pending_approval"`
	Approved        int `json:"approved"`
	Posted          int `json:"posted"`
	Failed          int `json:"failed"`
}

func (p *ScheduledPost) ToResponse() PostResponse {
	resp := PostResponse{
		ID:        p.ID.String(),
		Content:   p.Content,
		Platform:  p.Platform,
		HasMedia:  p.HasMedia,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.CampaignID.Valid {
		resp.CampaignID = p.CampaignID.String
	}
	if p.ImageURL.Valid {
		resp.ImageURL = p.ImageURL.String
	}
	if p.AltText.Valid {
		resp.AltText = p.AltText.String
	}
	if p.ScheduledFor.Valid {
		resp.ScheduledFor = p.ScheduledFor.String
	}
	if p.PostedAt.Valid {
		resp.PostedAt = p.PostedAt.String
	}
	if p.PostURI.Valid {
		resp.PostURI = p.PostURI.String
	}
	if p.ErrorMessage.Valid {
		resp.Error = p.ErrorMessage.String
	}
	return resp
}

// ChatSession is a legacy chat session attached to a campaign.
type ChatSession struct {
	ID         uuid.UUID
	CampaignID uuid.UUID
	Title      string
	CreatedAt  time.Time
}

// ChatMessage is one legacy chat message row.
type ChatMessage struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Role      string
	Content   string
	CreatedAt time.Time
}
