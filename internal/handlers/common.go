package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adstudio-backend/internal/middleware"
	"adstudio-backend/internal/models"
)

// getUserID pulls the authenticated user id out of the request context.
// It writes the 401 itself so callers can just return on false.
func getUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return "", false
	}

	id, ok := userID.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid user id"})
		return "", false
	}

	return id, true
}
