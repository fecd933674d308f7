package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"adstudio-backend/internal/models"
	"adstudio-backend/internal/supabase"
	"adstudio-backend/internal/workflow"
)

type WorkflowHandler struct {
	dbClient       *supabase.DatabaseClient
	realtimeClient *supabase.RealtimeClient
}

func NewWorkflowHandler(dbClient *supabase.DatabaseClient, realtimeClient *supabase.RealtimeClient) *WorkflowHandler {
	return &WorkflowHandler{
		dbClient:       dbClient,
		realtimeClient: realtimeClient,
	}
}

// Advance moves the campaign's workflow pointer. "advance" steps
// forward, "change_style" jumps back to the style step and drops the
// stored style selection.
func (h *WorkflowHandler) Advance(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid campaign id"})
		return
	}

	var req models.AdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	campaign, err := h.dbClient.GetCampaign(campaignID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "campaign not found",
			Message: err.Error(),
		})
		return
	}

	current, err := workflow.StepByIndex(campaign.CurrentStep)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "campaign has invalid step",
			Message: err.Error(),
		})
		return
	}

	next, clearStyle, err := workflow.Transition(current, req.Action)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid transition",
			Message: err.Error(),
		})
		return
	}

	status := campaign.Status
	switch {
	case next.Index >= workflow.LastStepIndex:
		status = models.CampaignStatusCompleted
	case next.Index > workflow.FirstStepIndex && status == models.CampaignStatusDraft:
		status = models.CampaignStatusInProgress
	}

	if err := h.dbClient.SetCurrentStep(campaignID, userID, next.Index, status); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to advance campaign",
			Message: err.Error(),
		})
		return
	}

	if clearStyle {
		if err := h.dbClient.ClearVisualStyle(campaignID, userID); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "failed to clear style",
				Message: err.Error(),
			})
			return
		}
		h.realtimeClient.PublishCampaignEvent(campaignID, "style_reverted",
			supabase.StyleRevertedPayload(campaignID))
	} else {
		h.realtimeClient.PublishCampaignEvent(campaignID, "step_advanced",
			supabase.StepAdvancedPayload(campaignID, next.ID, next.Index))
	}

	c.JSON(http.StatusOK, models.AdvanceResponse{
		CampaignID:  campaignID.String(),
		Step:        next.ID,
		CurrentStep: next.Index,
	})
}

// AddProgress records a progress-log entry. Repeating the same step and
// action overwrites the earlier entry instead of appending.
func (h *WorkflowHandler) AddProgress(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid campaign id"})
		return
	}

	var req models.ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	if req.Step < workflow.FirstStepIndex || req.Step > workflow.LastStepIndex {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid step"})
		return
	}

	entry := models.ProgressEntry{
		Step:   req.Step,
		Action: req.Action,
		Status: req.Status,
	}
	if err := h.dbClient.AddProgressLog(campaignID, userID, entry); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to record progress",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recorded": true})
}

// AppendMessage appends to the campaign's studio chat log.
func (h *WorkflowHandler) AppendMessage(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid campaign id"})
		return
	}

	var req models.AppendMessageRequest
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

	message := models.StudioMessage{
		Role:      req.Role,
		Content:   req.Content,
		ToolCalls: req.ToolCalls,
	}
	if err := h.dbClient.AppendStudioMessage(campaignID, userID, message); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to append message",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"appended": true})
}
