package bluesky_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"adstudio-backend/internal/bluesky"
)

func blueskyServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/xrpc/com.atproto.server.createSession":
			var req map[string]string
			json.NewDecoder(r.Body).Decode(&req)
			assert.Equal(t, "alice.bsky.social", req["identifier"])
			json.NewEncoder(w).Encode(map[string]string{
				"accessJwt": "jwt-token",
				"did":       "did:plc:abc123",
				"handle":    "alice.bsky.social",
			})
		case "/xrpc/com.atproto.repo.createRecord":
			assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))
			var req struct {
				Repo       string `json:"repo"`
				Collection string `json:"collection"`
				Record     struct {
					Type string `json:"$type"`
					Text string `json:"text"`
				} `json:"record"`
			}
			json.NewDecoder(r.Body).Decode(&req)
			assert.Equal(t, "did:plc:abc123", req.Repo)
			assert.Equal(t, "app.bsky.feed.post", req.Collection)
			assert.Equal(t, "app.bsky.feed.post", req.Record.Type)
			json.NewEncoder(w).Encode(map[string]string{
				"uri": "at://did:plc:abc123/app.bsky.feed.post/xyz",
				"cid": "bafyabc",
			})
		case "/xrpc/app.bsky.actor.getProfile":
			assert.Equal(t, "did:plc:abc123", r.URL.Query().Get("actor"))
			json.NewEncoder(w).Encode(map[string]string{
				"did":         "did:plc:abc123",
				"handle":      "alice.bsky.social",
				"displayName": "Alice",
			})
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestPost(t *testing.T) {
	server := blueskyServer(t)
	defer server.Close()

	client := bluesky.NewClient(server.URL, "alice.bsky.social", "app-pass")

	uri, cid, err := client.Post("hello from the studio", nil, "")

	assert.NoError(t, err)
	assert.Equal(t, "at://did:plc:abc123/app.bsky.feed.post/xyz", uri)
	assert.Equal(t, "bafyabc", cid)
}

func TestPost_TooLong(t *testing.T) {
	client := bluesky.NewClient("https://example.com", "alice.bsky.social", "app-pass")

	_, _, err := client.Post(strings.Repeat("a", bluesky.MaxPostLength+1), nil, "")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "300 character limit")
}

func TestPost_CountsRunes(t *testing.T) {
	server := blueskyServer(t)
	defer server.Close()

	client := bluesky.NewClient(server.URL, "alice.bsky.social", "app-pass")

	// 300 multibyte runes are 600 bytes but still within the limit; the
	// length check counts characters, not bytes.
	uri, _, err := client.Post(strings.Repeat("é", bluesky.MaxPostLength), nil, "")

	assert.NoError(t, err)
	assert.NotEmpty(t, uri)
}

func TestUploadImage_TooLarge(t *testing.T) {
	client := bluesky.NewClient("https://example.com", "alice.bsky.social", "app-pass")

	_, err := client.UploadImage(make([]byte, bluesky.MaxImageBytes+1), "image/jpeg")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "byte limit")
}

func TestGetProfile(t *testing.T) {
	server := blueskyServer(t)
	defer server.Close()

	client := bluesky.NewClient(server.URL, "alice.bsky.social", "app-pass")

	profile, err := client.GetProfile()

	assert.NoError(t, err)
	assert.Equal(t, "alice.bsky.social", profile.Handle)
	assert.Equal(t, "Alice", profile.DisplayName)
}

func TestPost_LoginFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid password", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := bluesky.NewClient(server.URL, "alice.bsky.social", "wrong")

	_, _, err := client.Post("hello", nil, "")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create session")
}
