package models

import "time"

type CampaignResponse struct {
	ID             string          `json:"campaign_id"`
	BrandName      string          `json:"brand_name"`
	Logo           string          `json:"logo,omitempty"`
	BrandColors    []string        `json:"brand_colors,omitempty"`
	Status         string          `json:"status"`
	CurrentStep    int             `json:"current_step"`
	Content        string          `json:"content,omitempty"`
	ContentSummary string          `json:"content_summary,omitempty"`
	VisualStyle    string          `json:"visual_style,omitempty"`
	Characters     []Character     `json:"characters,omitempty"`
	Script         *Script         `json:"script,omitempty"`
	Scenes         []Scene         `json:"scenes,omitempty"`
	Locations      []LocationAsset `json:"locations,omitempty"`
	Thumbnails     []Thumbnail     `json:"thumbnails,omitempty"`
	VideoClips     []VideoClip     `json:"video_clips,omitempty"`
	FinalMediaURL  string          `json:"final_media_url,omitempty"`
	Duration       int             `json:"duration,omitempty"`
	ProgressLog    []ProgressEntry `json:"progress_log,omitempty"`
	StudioMessages []StudioMessage `json:"studio_messages,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type CampaignListResponse struct {
	Campaigns []CampaignResponse `json:"campaigns"`
}

type AdvanceResponse struct {
	CampaignID  string `json:"campaign_id"`
	Step        string `json:"step"`
	CurrentStep int    `json:"current_step"`
}

type SummaryResponse struct {
	Success bool   `json:"success"`
	Summary string `json:"summary"`
}

type ScriptResponse struct {
	Success bool   `json:"success"`
	Script  Script `json:"script"`
}

type CharactersResponse struct {
	Success    bool               `json:"success"`
	Characters []GeneratedProfile `json:"characters"`
}

// GeneratedProfile is a character profile as produced by text generation.
type GeneratedProfile struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Personality string `json:"personality"`
	Appearance  string `json:"appearance"`
	Outfit      string `json:"outfit"`
}

type ChatResponse struct {
	Message     string            `json:"message"`
	ToolCalls   []ToolCall        `json:"tool_calls,omitempty"`
	ProjectData map[string]string `json:"project_data,omitempty"`
	NextStep    string            `json:"next_step,omitempty"`
}

type ImageResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"image_url"`
	// Type is set on the fallback path so the caller knows which
	// modality was produced.
	Type string `json:"type,omitempty"`
}

type VideoResponse struct {
	Success  bool   `json:"success"`
	VideoURL string `json:"video_url"`
}

type MediaResponse struct {
	Success bool   `json:"success"`
	Type    string `json:"type"` // "video" or "image"
	URL     string `json:"url"`
}

type BlueskyPostResponse struct {
	Success bool   `json:"success"`
	PostURI string `json:"post_uri"`
	CID     string `json:"cid"`
}

type BlueskyProfileResponse struct {
	Success bool           `json:"success"`
	User    BlueskyProfile `json:"user"`
}

type BlueskyProfile struct {
	DID         string `json:"did"`
	Handle      string `json:"handle"`
	DisplayName string `json:"display_name,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
}

type TweetResponse struct {
	Success bool   `json:"success"`
	TweetID string `json:"tweet_id"`
	Text    string `json:"text"`
}

type TwitterProfileResponse struct {
	Success bool           `json:"success"`
	User    TwitterProfile `json:"user"`
}

type TwitterProfile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	ProfileImage string `json:"profile_image,omitempty"`
}

type PostResponse struct {
	ID           string    `json:"post_id"`
	CampaignID   string    `json:"campaign_id,omitempty"`
	Content      string    `json:"content"`
	Platform     string    `json:"platform"`
	ImageURL     string    `json:"image_url,omitempty"`
	HasMedia     bool      `json:"has_media"`
	AltText      string    `json:"alt_text,omitempty"`
	Status       string    `json:"status"`
	ScheduledFor string    `json:"scheduled_for,omitempty"`
	PostedAt     string    `json:"posted_at,omitempty"`
	PostURI      string    `json:"post_uri,omitempty"`
	Error        string    `json:"error,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type PostListResponse struct {
	Posts []PostResponse `json:"posts"`
}

type DashboardStatsResponse struct {
	TotalCampaigns      int `json:"total_campaigns"`
	CompletedCampaigns  int `json:"completed_campaigns"`
	DraftCampaigns      int `json:"draft_campaigns"`
	InProgressCampaigns int `json:"in_progress_campaigns"`
	TotalGenerations    int `json:"total_generations"`
	TotalMessages       int `json:"total_messages"`
}

type StyleCount struct {
	Style string `json:"style"`
	Count int    `json:"count"`
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type RecentCampaign struct {
	ID          string    `json:"campaign_id"`
	BrandName   string    `json:"brand_name"`
	Status      string    `json:"status"`
	VisualStyle string    `json:"visual_style,omitempty"`
	CurrentStep int       `json:"current_step"`
	HasMedia    bool      `json:"has_media"`
	CreatedAt   time.Time `json:"created_at"`
}

type PortfolioItem struct {
	ID          string    `json:"campaign_id"`
	BrandName   string    `json:"brand_name"`
	VisualStyle string    `json:"visual_style,omitempty"`
	Status      string    `json:"status"`
	MediaURL    string    `json:"media_url"`
	IsVideo     bool      `json:"is_video"`
	CreatedAt   time.Time `json:"created_at"`
}

type SessionResponse struct {
	ID         string    `json:"session_id"`
	CampaignID string    `json:"campaign_id"`
	Title      string    `json:"title"`
	CreatedAt  time.Time `json:"created_at"`
}

type ChatMessageResponse struct {
	ID        string    `json:"message_id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
