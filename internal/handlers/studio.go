package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adstudio-backend/internal/gemini"
	"adstudio-backend/internal/models"
	"adstudio-backend/internal/workflow"
)

type StudioHandler struct {
	geminiClient *gemini.Client
}

func NewStudioHandler(geminiClient *gemini.Client) *StudioHandler {
	return &StudioHandler{
		geminiClient: geminiClient,
	}
}

// Analyze summarizes uploaded campaign content.
func (h *StudioHandler) Analyze(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}

	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	summary, err := h.geminiClient.Analyze(c.Request.Context(), req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to analyze content",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.SummaryResponse{
		Success: true,
		Summary: summary,
	})
}

// GenerateScript produces a structured script from campaign content.
func (h *StudioHandler) GenerateScript(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}

	var req models.ScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	script, err := h.geminiClient.GenerateScript(c.Request.Context(), req.Content, req.Style, req.BrandName, req.Characters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to generate script",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ScriptResponse{
		Success: true,
		Script:  *script,
	})
}

// GenerateCharacters produces up to three character profiles.
func (h *StudioHandler) GenerateCharacters(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}

	var req models.CharactersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	characters, err := h.geminiClient.GenerateCharacters(c.Request.Context(), req.Content, req.Style, req.BrandName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to generate characters",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.CharactersResponse{
		Success:    true,
		Characters: characters,
	})
}

// Chat runs one director-chat turn: the model reply plus keyword
// extraction over the user message, merged into the project data.
func (h *StudioHandler) Chat(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	activeStep := req.ActiveStep
	if activeStep == "" {
		activeStep = "overview"
	}

	reply, err := h.geminiClient.Chat(c.Request.Context(), req.Message, activeStep, req.History)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to generate reply",
			Message: err.Error(),
		})
		return
	}

	known := req.ProjectData
	if known == nil {
		known = map[string]string{}
	}

	updates, toolCalls := workflow.ExtractFields(req.Message, activeStep, known)
	combined, _ := updates.Merge(known)

	c.JSON(http.StatusOK, models.ChatResponse{
		Message:     reply,
		ToolCalls:   toolCalls,
		ProjectData: combined,
		NextStep:    workflow.SuggestNextStep(activeStep, combined),
	})
}
