package fal_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"adstudio-backend/internal/fal"
)

func TestClient_RetryWithBackoff(t *testing.T) {
	client := fal.NewClient("https://fal.run/", "test-key")

	callCount := 0
	err := client.RetryWithBackoff(func() error {
		callCount++
		if callCount < 3 {
			return assert.AnError
		}
		return nil
	}, 3)

	assert.NoError(t, err)
	assert.Equal(t, 3, callCount)
}

func TestClient_RetryWithBackoff_Exhausted(t *testing.T) {
	client := fal.NewClient("https://fal.run/", "test-key")

	err := client.RetryWithBackoff(func() error {
		return assert.AnError
	}, 3)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed after 3 retries")
}

func TestGenerateImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fal-ai/flux/schnell", r.URL.Path)
		assert.Equal(t, "Key test-key", r.Header.Get("Authorization"))

		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "landscape_16_9", body["image_size"])
		assert.Contains(t, body["prompt"], "photorealistic")

		json.NewEncoder(w).Encode(map[string]interface{}{
			"images": []map[string]string{{"url": "https://cdn.example.com/img.png"}},
		})
	}))
	defer server.Close()

	client := fal.NewClient(server.URL, "test-key")

	url, err := client.GenerateImage("a city at night", "realistic", "16:9")

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/img.png", url)
}

func TestGenerateImage_NoResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"images": []map[string]string{}})
	}))
	defer server.Close()

	client := fal.NewClient(server.URL, "test-key")

	_, err := client.GenerateImage("anything", "", "")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no image generated")
}

func TestGenerateVideo_ImageToVideo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fal-ai/kling-video/v1/standard/image-to-video", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"video": map[string]string{"url": "https://cdn.example.com/clip.mp4"},
		})
	}))
	defer server.Close()

	client := fal.NewClient(server.URL, "test-key")

	url, err := client.GenerateVideo("pan across the scene", "https://img.example.com/ref.png", 5)

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/clip.mp4", url)
}

func TestGenerateVideo_TextToVideo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fal-ai/minimax/video-01", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{
			"video_url": "https://cdn.example.com/text.mp4",
		})
	}))
	defer server.Close()

	client := fal.NewClient(server.URL, "test-key")

	url, err := client.GenerateVideo("a rolling ocean", "", 0)

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/text.mp4", url)
}

func TestGenerateVideo_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := fal.NewClient(server.URL, "test-key")

	_, err := client.GenerateVideo("anything", "", 5)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}
