package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"adstudio-backend/internal/models"
	"adstudio-backend/internal/supabase"
)

// ChatsHandler serves the legacy chat-session API. Newer clients use
// the per-campaign studio message log instead.
type ChatsHandler struct {
	dbClient *supabase.DatabaseClient
}

func NewChatsHandler(dbClient *supabase.DatabaseClient) *ChatsHandler {
	return &ChatsHandler{
		dbClient: dbClient,
	}
}

func (h *ChatsHandler) CreateSession(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	campaignID, err := uuid.Parse(req.CampaignID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid campaign id"})
		return
	}

	session, err := h.dbClient.CreateChatSession(uuid.New(), campaignID, userID, req.Title)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "failed to create session",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.SessionResponse{
		ID:         session.ID.String(),
		CampaignID: session.CampaignID.String(),
		Title:      session.Title,
		CreatedAt:  session.CreatedAt,
	})
}

func (h *ChatsHandler) ListSessions(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid campaign id"})
		return
	}

	sessions, err := h.dbClient.ListChatSessions(campaignID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "failed to list sessions",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.SessionResponse, len(sessions))
	for i, s := range sessions {
		responses[i] = models.SessionResponse{
			ID:         s.ID.String(),
			CampaignID: s.CampaignID.String(),
			Title:      s.Title,
			CreatedAt:  s.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, gin.H{"sessions": responses})
}

func (h *ChatsHandler) AddMessage(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid session id"})
		return
	}

	var req models.SessionMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	if req.Role != "user" && req.Role != "assistant" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "role must be user or assistant"})
		return
	}

	message, err := h.dbClient.AddChatMessage(uuid.New(), sessionID, userID, req.Role, req.Content)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "failed to add message",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.ChatMessageResponse{
		ID:        message.ID.String(),
		SessionID: message.SessionID.String(),
		Role:      message.Role,
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
	})
}

func (h *ChatsHandler) ListMessages(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid session id"})
		return
	}

	messages, err := h.dbClient.ListChatMessages(sessionID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "failed to list messages",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.ChatMessageResponse, len(messages))
	for i, m := range messages {
		responses[i] = models.ChatMessageResponse{
			ID:        m.ID.String(),
			SessionID: m.SessionID.String(),
			Role:      m.Role,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, gin.H{"messages": responses})
}
