package bluesky

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// MaxPostLength is the Bluesky character limit.
const MaxPostLength = 300

// MaxImageBytes is the blob size cap for image uploads.
const MaxImageBytes = 1_000_000

// Client talks to a Bluesky PDS over XRPC. A session is created lazily
// on the first authenticated call and reused for the client's lifetime.
type Client struct {
	service     string
	identifier  string
	appPassword string
	httpClient  *http.Client

	accessJwt string
	did       string
	handle    string
}

type sessionRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type sessionResponse struct {
	AccessJwt string `json:"accessJwt"`
	DID       string `json:"did"`
	Handle    string `json:"handle"`
}

type uploadBlobResponse struct {
	Blob json.RawMessage `json:"blob"`
}

type imageEmbed struct {
	Type   string       `json:"$type"`
	Images []embedImage `json:"images"`
}

type embedImage struct {
	Alt   string          `json:"alt"`
	Image json.RawMessage `json:"image"`
}

type postRecord struct {
	Type      string      `json:"$type"`
	Text      string      `json:"text"`
	CreatedAt string      `json:"createdAt"`
	Embed     *imageEmbed `json:"embed,omitempty"`
}

type createRecordRequest struct {
	Repo       string     `json:"repo"`
	Collection string     `json:"collection"`
	Record     postRecord `json:"record"`
}

type createRecordResponse struct {
	URI string `json:"uri"`
	CID string `json:"cid"`
}

// Profile is the authenticated account's public profile.
type Profile struct {
	DID         string `json:"did"`
	Handle      string `json:"handle"`
	DisplayName string `json:"displayName"`
	Avatar      string `json:"avatar"`
}

func NewClient(service, identifier, appPassword string) *Client {
	return &Client{
		service:     service,
		identifier:  identifier,
		appPassword: appPassword,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) login() error {
	jsonData, err := json.Marshal(sessionRequest{
		Identifier: c.identifier,
		Password:   c.appPassword,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.xrpcURL("com.atproto.server.createSession")
	resp, err := c.httpClient.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("failed to create session: status %d, body: %s", resp.StatusCode, string(body))
	}

	var session sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	c.accessJwt = session.AccessJwt
	c.did = session.DID
	c.handle = session.Handle
	return nil
}

func (c *Client) ensureSession() error {
	if c.accessJwt != "" {
		return nil
	}
	return c.login()
}

// UploadImage uploads an image blob and returns its blob reference for
// embedding. Callers must hold the blob under MaxImageBytes.
func (c *Client) UploadImage(data []byte, mimeType string) (json.RawMessage, error) {
	if len(data) > MaxImageBytes {
		return nil, fmt.Errorf("image exceeds %d byte limit", MaxImageBytes)
	}
	if err := c.ensureSession(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", c.xrpcURL("com.atproto.repo.uploadBlob"), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessJwt)
	req.Header.Set("Content-Type", mimeType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to upload blob: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result uploadBlobResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Blob, nil
}

// Post publishes a post, optionally with one image blob attached.
func (c *Client) Post(text string, image json.RawMessage, altText string) (uri, cid string, err error) {
	if len([]rune(text)) > MaxPostLength {
		return "", "", fmt.Errorf("post exceeds %d character limit", MaxPostLength)
	}
	if err := c.ensureSession(); err != nil {
		return "", "", err
	}

	record := postRecord{
		Type:      "app.bsky.feed.post",
		Text:      text,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if image != nil {
		record.Embed = &imageEmbed{
			Type:   "app.bsky.embed.images",
			Images: []embedImage{{Alt: altText, Image: image}},
		}
	}

	jsonData, err := json.Marshal(createRecordRequest{
		Repo:       c.did,
		Collection: "app.bsky.feed.post",
		Record:     record,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", c.xrpcURL("com.atproto.repo.createRecord"), bytes.NewBuffer(jsonData))
	if err != nil {
		return "", "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessJwt)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", "", fmt.Errorf("failed to create post: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result createRecordResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", "", fmt.Errorf("failed to decode response: %w", err)
	}

	return result.URI, result.CID, nil
}

// GetProfile fetches the authenticated account's profile.
func (c *Client) GetProfile() (*Profile, error) {
	if err := c.ensureSession(); err != nil {
		return nil, err
	}

	url := c.xrpcURL("app.bsky.actor.getProfile") + "?actor=" + c.did
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessJwt)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to get profile: status %d, body: %s", resp.StatusCode, string(body))
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &profile, nil
}

func (c *Client) xrpcURL(method string) string {
	return strings.TrimSuffix(c.service, "/") + "/xrpc/" + method
}
