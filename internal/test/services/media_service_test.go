package services_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"adstudio-backend/internal/fal"
	"adstudio-backend/internal/models"
	"adstudio-backend/internal/services"
	"adstudio-backend/internal/stability"
)

func TestGenerateMedia_VideoSucceeds(t *testing.T) {
	falServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"video": map[string]string{"url": "https://cdn.example.com/clip.mp4"},
		})
	}))
	defer falServer.Close()

	svc := services.NewMediaService(
		fal.NewClient(falServer.URL, "key"),
		nil,
		stability.NewClient("https://unused.example.com", "key"),
	)

	resp, err := svc.GenerateMedia(&models.MediaRequest{Prompt: "a sunrise", Duration: 5})

	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "video", resp.Type)
	assert.Equal(t, "https://cdn.example.com/clip.mp4", resp.URL)
}

func TestGenerateMedia_FallsBackToImage(t *testing.T) {
	falServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "capacity exceeded", http.StatusServiceUnavailable)
	}))
	defer falServer.Close()

	stabilityServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"image": "aW1n"})
	}))
	defer stabilityServer.Close()

	svc := services.NewMediaService(
		fal.NewClient(falServer.URL, "key"),
		nil,
		stability.NewClient(stabilityServer.URL, "key"),
	)

	resp, err := svc.GenerateMedia(&models.MediaRequest{Prompt: "a sunrise", Style: "anime"})

	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "image", resp.Type)
	assert.Equal(t, "data:image/png;base64,aW1n", resp.URL)
}

func TestGenerateMedia_BothTiersFail(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer failing.Close()

	svc := services.NewMediaService(
		fal.NewClient(failing.URL, "key"),
		nil,
		stability.NewClient(failing.URL, "key"),
	)

	_, err := svc.GenerateMedia(&models.MediaRequest{Prompt: "a sunrise"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "image fallback failed")
}
