package luma_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"adstudio-backend/internal/luma"
)

func TestGenerateVideo_NoSessionToken(t *testing.T) {
	client := luma.NewClient("https://example.com/api/", "", 3, time.Millisecond)

	_, err := client.GenerateVideo("a cat")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no session token")
}

func TestGenerateVideo_CompletesAfterPolling(t *testing.T) {
	var polls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == "POST" {
			assert.Contains(t, r.Header.Get("Cookie"), "luma_session=tok")
			json.NewEncoder(w).Encode(map[string]string{"id": "job-1"})
			return
		}

		n := atomic.AddInt32(&polls, 1)
		resp := map[string]string{"id": "job-1", "state": "dreaming"}
		if n >= 3 {
			resp["state"] = "completed"
			resp["video_url"] = "https://cdn.example.com/out.mp4"
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := luma.NewClient(server.URL, "tok", 10, time.Millisecond)

	url, err := client.GenerateVideo("a cat surfing")

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/out.mp4", url)
	assert.GreaterOrEqual(t, atomic.LoadInt32(&polls), int32(3))
}

func TestGenerateVideo_JobFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == "POST" {
			json.NewEncoder(w).Encode(map[string]string{"id": "job-2"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"id": "job-2", "state": "failed", "failure_reason": "content policy",
		})
	}))
	defer server.Close()

	client := luma.NewClient(server.URL, "tok", 5, time.Millisecond)

	_, err := client.GenerateVideo("something")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "content policy")
}

func TestGenerateVideo_TimesOut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == "POST" {
			json.NewEncoder(w).Encode(map[string]string{"id": "job-3"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "job-3", "state": "queued"})
	}))
	defer server.Close()

	client := luma.NewClient(server.URL, "tok", 2, time.Millisecond)

	_, err := client.GenerateVideo("slow job")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "timed out waiting for job job-3 after 2 attempts")
}

func TestGenerateVideo_CompletedWithoutURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == "POST" {
			json.NewEncoder(w).Encode(map[string]string{"id": "job-4"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "job-4", "state": "completed"})
	}))
	defer server.Close()

	client := luma.NewClient(server.URL, "tok", 2, time.Millisecond)

	_, err := client.GenerateVideo("broken")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "without a video url")
}
