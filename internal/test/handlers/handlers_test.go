package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"adstudio-backend/internal/handlers"
	"adstudio-backend/internal/middleware"
)

// stubAuth injects a fixed user id so handlers past the middleware can
// be exercised without real tokens.
func stubAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", handlers.HealthHandler)

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestPostToBluesky_TextTooLong(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewSocialHandler(nil, nil, nil)
	router := gin.New()
	router.Use(stubAuth("user-1"))
	router.POST("/bluesky/post", handler.PostToBluesky)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	writer.WriteField("text", strings.Repeat("a", 301))
	writer.Close()

	req, _ := http.NewRequest("POST", "/bluesky/post", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "300 character limit")
}

func TestPostToBluesky_MissingText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewSocialHandler(nil, nil, nil)
	router := gin.New()
	router.Use(stubAuth("user-1"))
	router.POST("/bluesky/post", handler.PostToBluesky)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	writer.Close()

	req, _ := http.NewRequest("POST", "/bluesky/post", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostTweet_TooLong(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewSocialHandler(nil, nil, nil)
	router := gin.New()
	router.Use(stubAuth("user-1"))
	router.POST("/twitter/tweet", handler.PostTweet)

	payload, _ := json.Marshal(map[string]string{"content": strings.Repeat("b", 281)})
	req, _ := http.NewRequest("POST", "/twitter/tweet", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "280 character limit")
}

func TestCreateCampaign_TooManyColors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewCampaignsHandler(nil, nil)
	router := gin.New()
	router.Use(stubAuth("user-1"))
	router.POST("/campaigns", handler.CreateCampaign)

	payload, _ := json.Marshal(map[string]interface{}{
		"brand_name":   "Acme",
		"brand_colors": []string{"#1", "#2", "#3", "#4", "#5", "#6"},
	})
	req, _ := http.NewRequest("POST", "/campaigns", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "too many brand colors")
}

func TestCreateCampaign_MissingBrandName(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewCampaignsHandler(nil, nil)
	router := gin.New()
	router.Use(stubAuth("user-1"))
	router.POST("/campaigns", handler.CreateCampaign)

	req, _ := http.NewRequest("POST", "/campaigns", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePost_UnknownPlatform(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewPostsHandler(nil, nil)
	router := gin.New()
	router.Use(stubAuth("user-1"))
	router.POST("/posts", handler.CreatePost)

	payload, _ := json.Marshal(map[string]string{
		"content":  "hello",
		"platform": "myspace",
	})
	req, _ := http.NewRequest("POST", "/posts", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "platform")
}

func TestUpdatePostStatus_UnknownStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewPostsHandler(nil, nil)
	router := gin.New()
	router.Use(stubAuth("user-1"))
	router.PUT("/posts/:post_id/status", handler.UpdateStatus)

	payload, _ := json.Marshal(map[string]string{"status": "archived"})
	req, _ := http.NewRequest("PUT", "/posts/11111111-2222-3333-4444-555555555555/status", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown status")
}

func TestGetCampaign_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewCampaignsHandler(nil, nil)
	router := gin.New()
	router.Use(stubAuth("user-1"))
	router.GET("/campaigns/:campaign_id", handler.GetCampaign)

	req, _ := http.NewRequest("GET", "/campaigns/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid campaign id")
}

func TestNoUser_Unauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewCampaignsHandler(nil, nil)
	router := gin.New()
	router.GET("/campaigns", handler.ListCampaigns)

	req, _ := http.NewRequest("GET", "/campaigns", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
