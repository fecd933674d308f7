package handlers

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"adstudio-backend/internal/models"
	"adstudio-backend/internal/supabase"
)

type CampaignsHandler struct {
	dbClient      *supabase.DatabaseClient
	storageClient *supabase.StorageClient
}

func NewCampaignsHandler(dbClient *supabase.DatabaseClient, storageClient *supabase.StorageClient) *CampaignsHandler {
	return &CampaignsHandler{
		dbClient:      dbClient,
		storageClient: storageClient,
	}
}

func (h *CampaignsHandler) CreateCampaign(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req models.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	if len(req.BrandColors) > models.MaxBrandColors {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "too many brand colors",
		})
		return
	}

	campaignID := uuid.New()

	logo, err := h.resolveLogo(userID, campaignID, req.Logo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to store logo",
			Message: err.Error(),
		})
		return
	}

	campaign, err := h.dbClient.CreateCampaign(campaignID, userID, req.BrandName, logo, req.BrandColors, req.Duration)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create campaign",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, campaign.ToResponse())
}

// resolveLogo stores inline logo data in object storage and returns the
// reference to persist. http(s) URLs pass through untouched.
func (h *CampaignsHandler) resolveLogo(userID string, campaignID uuid.UUID, logo string) (string, error) {
	if logo == "" || strings.HasPrefix(logo, "http://") || strings.HasPrefix(logo, "https://") {
		return logo, nil
	}

	contentType := "image/png"
	encoded := logo
	if strings.HasPrefix(logo, "data:") {
		rest := strings.TrimPrefix(logo, "data:")
		parts := strings.SplitN(rest, ";base64,", 2)
		if len(parts) != 2 {
			// Unrecognized data URI, keep it as-is.
			return logo, nil
		}
		contentType = parts[0]
		encoded = parts[1]
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		// Not base64 either; store the raw value.
		return logo, nil
	}

	_, publicURL, err := h.storageClient.UploadLogo(userID, campaignID, data, contentType)
	if err != nil {
		return "", err
	}

	return publicURL, nil
}

func (h *CampaignsHandler) ListCampaigns(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	campaigns, err := h.dbClient.ListCampaigns(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list campaigns",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.CampaignResponse, len(campaigns))
	for i := range campaigns {
		responses[i] = campaigns[i].ToResponse()
	}

	c.JSON(http.StatusOK, models.CampaignListResponse{Campaigns: responses})
}

func (h *CampaignsHandler) GetCampaign(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid campaign id"})
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

	resp := campaign.ToResponse()

	// Bare storage paths get resolved to public URLs on the way out.
	if resp.Logo != "" && !strings.HasPrefix(resp.Logo, "http") && !strings.HasPrefix(resp.Logo, "data:") {
		resp.Logo = h.storageClient.GetPublicURL(resp.Logo)
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CampaignsHandler) UpdateCampaign(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid campaign id"})
		return
	}

	var patch models.CampaignPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	if err := patch.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid patch",
			Message: err.Error(),
		})
		return
	}

	campaign, err := h.dbClient.UpdateCampaign(campaignID, userID, &patch)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "failed to update campaign",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, campaign.ToResponse())
}

func (h *CampaignsHandler) DeleteCampaign(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid campaign id"})
		return
	}

	if err := h.dbClient.DeleteCampaign(campaignID, userID); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "campaign not found",
			Message: err.Error(),
		})
		return
	}

	// Storage cleanup is best-effort; the row is already gone.
	_ = h.storageClient.DeleteCampaignFiles(userID, campaignID)

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
