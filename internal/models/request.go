package models

type CreateCampaignRequest struct {
	BrandName string `json:"brand_name" binding:"required" example:"Acme"`
	// Logo is either an http(s) URL, a data URI, or raw base64 image data
	// to be uploaded to storage.
	Logo        string   `json:"logo,omitempty"`
	BrandColors []string `json:"brand_colors,omitempty"`
	Duration    int      `json:"duration,omitempty" example:"60"`
}

type AdvanceRequest struct {
	// Action is "advance" or "change_style".
	Action string `json:"action" binding:"required" example:"advance"`
}

type ProgressRequest struct {
	Step   int    `json:"step" binding:"required" example:"2"`
	Action string `json:"action" binding:"required" example:"Selected 3D style"`
	Status string `json:"status" binding:"required" example:"completed"`
}

type AppendMessageRequest struct {
	Role      string     `json:"role" binding:"required" example:"user"`
	Content   string     `json:"content" binding:"required"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

type AnalyzeRequest struct {
	Content string `json:"content" binding:"required"`
}

type ScriptRequest struct {
	Content    string      `json:"content" binding:"required"`
	Style      string      `json:"style,omitempty" example:"3d"`
	BrandName  string      `json:"brand_name,omitempty"`
	Characters []Character `json:"characters,omitempty"`
}

type CharactersRequest struct {
	Content   string `json:"content" binding:"required"`
	Style     string `json:"style,omitempty" example:"3d"`
	BrandName string `json:"brand_name,omitempty"`
}

type ChatRequest struct {
	Message     string            `json:"message" binding:"required"`
	History     []StudioMessage   `json:"history,omitempty"`
	ProjectData map[string]string `json:"project_data,omitempty"`
	ActiveStep  string            `json:"active_step,omitempty" example:"overview"`
}

type ImageRequest struct {
	Prompt      string `json:"prompt" binding:"required"`
	Style       string `json:"style,omitempty" example:"3d"`
	AspectRatio string `json:"aspect_ratio,omitempty" example:"16:9"`
}

type FallbackImageRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	Style  string `json:"style,omitempty"`
}

type VideoRequest struct {
	Prompt   string `json:"prompt" binding:"required"`
	ImageURL string `json:"image_url,omitempty"`
	Duration int    `json:"duration,omitempty" example:"5"`
}

type LumaVideoRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type MediaRequest struct {
	Prompt   string `json:"prompt" binding:"required"`
	ImageURL string `json:"image_url,omitempty"`
	Style    string `json:"style,omitempty"`
	Duration int    `json:"duration,omitempty" example:"5"`
	// Method selects the video path: "api" (default) or "scraper".
	Method string `json:"method,omitempty"`
}

type TweetRequest struct {
	Content string `json:"content" binding:"required"`
}

type CreatePostRequest struct {
	Content      string `json:"content" binding:"required"`
	Platform     string `json:"platform" binding:"required" example:"bluesky"`
	CampaignID   string `json:"campaign_id,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	ScheduledFor string `json:"scheduled_for,omitempty"`
	HasMedia     bool   `json:"has_media,omitempty"`
	AltText      string `json:"alt_text,omitempty"`
}

type UpdatePostRequest struct {
	Content      *string `json:"content,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
	ScheduledFor *string `json:"scheduled_for,omitempty"`
}

type PostStatusRequest struct {
	Status   string `json:"status" binding:"required" example:"approved"`
	Error    string `json:"error,omitempty"`
	PostURI  string `json:"post_uri,omitempty"`
	PostedAt string `json:"posted_at,omitempty"`
}

type CreateSessionRequest struct {
	CampaignID string `json:"campaign_id" binding:"required"`
	Title      string `json:"title" binding:"required"`
}

type SessionMessageRequest struct {
	Role    string `json:"role" binding:"required" example:"user"`
	Content string `json:"content" binding:"required"`
}

type BlueskyAccountRequest struct {
	Handle      string `json:"handle" binding:"required"`
	DID         string `json:"did" binding:"required"`
	DisplayName string `json:"display_name,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
