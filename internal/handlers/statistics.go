package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"adstudio-backend/internal/models"
	"adstudio-backend/internal/supabase"
)

type StatisticsHandler struct {
	dbClient *supabase.DatabaseClient
}

func NewStatisticsHandler(dbClient *supabase.DatabaseClient) *StatisticsHandler {
	return &StatisticsHandler{
		dbClient: dbClient,
	}
}

func (h *StatisticsHandler) GetDashboard(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	stats, err := h.dbClient.GetDashboardStats(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get dashboard stats",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *StatisticsHandler) GetStyleDistribution(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	counts, err := h.dbClient.GetStyleDistribution(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get style distribution",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"styles": counts})
}

func (h *StatisticsHandler) GetDailyActivity(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	counts, err := h.dbClient.GetDailyActivity(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get daily activity",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"daily": counts})
}

func (h *StatisticsHandler) GetRecentCampaigns(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	recent, err := h.dbClient.GetRecentCampaigns(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get recent campaigns",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": recent})
}

func (h *StatisticsHandler) GetPortfolio(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	items, err := h.dbClient.GetPortfolio(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get portfolio",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
