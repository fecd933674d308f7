package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adstudio-backend/internal/fal"
	"adstudio-backend/internal/luma"
	"adstudio-backend/internal/models"
	"adstudio-backend/internal/services"
	"adstudio-backend/internal/stability"
)

type MediaHandler struct {
	falClient       *fal.Client
	lumaClient      *luma.Client
	stabilityClient *stability.Client
	mediaService    *services.MediaService
}

func NewMediaHandler(falClient *fal.Client, lumaClient *luma.Client, stabilityClient *stability.Client, mediaService *services.MediaService) *MediaHandler {
	return &MediaHandler{
		falClient:       falClient,
		lumaClient:      lumaClient,
		stabilityClient: stabilityClient,
		mediaService:    mediaService,
	}
}

// GenerateImage renders a still image with FLUX.
func (h *MediaHandler) GenerateImage(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}

	var req models.ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	var imageURL string
	err := h.falClient.RetryWithBackoff(func() error {
		var err error
		imageURL, err = h.falClient.GenerateImage(req.Prompt, req.Style, req.AspectRatio)
		return err
	}, 3)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to generate image",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ImageResponse{
		Success:  true,
		ImageURL: imageURL,
	})
}

// GenerateFallbackImage renders an image with Stability, the secondary
// image provider.
func (h *MediaHandler) GenerateFallbackImage(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}

	var req models.FallbackImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	prompt := req.Prompt
	if req.Style != "" {
		prompt = req.Prompt + ", " + req.Style + " style"
	}

	imageURL, err := h.stabilityClient.GenerateImage(prompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to generate image",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ImageResponse{
		Success:  true,
		ImageURL: imageURL,
		Type:     "image",
	})
}

// GenerateVideo renders a clip through the FAL video models.
func (h *MediaHandler) GenerateVideo(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}

	var req models.VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	videoURL, err := h.falClient.GenerateVideo(req.Prompt, req.ImageURL, req.Duration)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to generate video",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.VideoResponse{
		Success:  true,
		VideoURL: videoURL,
	})
}

// GenerateLumaVideo renders a clip through the session-token Luma path.
func (h *MediaHandler) GenerateLumaVideo(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}

	var req models.LumaVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	videoURL, err := h.lumaClient.GenerateVideo(req.Prompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to generate video",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.VideoResponse{
		Success:  true,
		VideoURL: videoURL,
	})
}

// GenerateMedia runs the tiered pipeline: video first, image fallback.
func (h *MediaHandler) GenerateMedia(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}

	var req models.MediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.mediaService.GenerateMedia(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to generate media",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
