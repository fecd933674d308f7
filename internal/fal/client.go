package fal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Model identifiers on the synchronous fal.run endpoint.
const (
	fluxModel         = "fal-ai/flux/schnell"
	klingVideoModel   = "fal-ai/kling-video/v1/standard/image-to-video"
	minimaxVideoModel = "fal-ai/minimax/video-01"
)

// Style prompt prefixes prepended to image prompts.
var stylePrompts = map[string]string{
	"3d":        "3D rendered, CGI animation style, Pixar-like quality, ",
	"2d":        "2D vector illustration, clean lines, flat design, ",
	"realistic": "photorealistic, cinematic lighting, 8k quality, ",
	"anime":     "anime style, vibrant colors, detailed character design, ",
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			// Video models are slow; the synchronous endpoint holds the
			// connection until the result is ready.
			Timeout: 5 * time.Minute,
		},
	}
}

type imageRequest struct {
	Prompt    string `json:"prompt"`
	ImageSize string `json:"image_size,omitempty"`
	NumImages int    `json:"num_images,omitempty"`
}

type imageResponse struct {
	Images []struct {
		URL string `json:"url"`
	} `json:"images"`
}

// GenerateImage renders one still image with FLUX. The style tag maps
// to a prompt prefix; unknown styles pass the prompt through unchanged.
func (c *Client) GenerateImage(prompt, style, aspectRatio string) (string, error) {
	imageSize := "square"
	if aspectRatio == "16:9" {
		imageSize = "landscape_16_9"
	}

	reqBody := imageRequest{
		Prompt:    stylePrompts[style] + prompt,
		ImageSize: imageSize,
		NumImages: 1,
	}

	var result imageResponse
	if err := c.invoke(fluxModel, reqBody, &result); err != nil {
		return "", err
	}

	if len(result.Images) == 0 || result.Images[0].URL == "" {
		return "", fmt.Errorf("no image generated")
	}
	return result.Images[0].URL, nil
}

type imageToVideoRequest struct {
	Prompt      string `json:"prompt"`
	ImageURL    string `json:"image_url"`
	Duration    string `json:"duration"`
	AspectRatio string `json:"aspect_ratio"`
}

type textToVideoRequest struct {
	Prompt string `json:"prompt"`
}

type videoResponse struct {
	Video struct {
		URL string `json:"url"`
	} `json:"video"`
	VideoURL string `json:"video_url"`
}

// GenerateVideo renders a clip. With a reference image it runs Kling
// image-to-video, otherwise MiniMax text-to-video.
func (c *Client) GenerateVideo(prompt, imageURL string, duration int) (string, error) {
	if duration <= 0 {
		duration = 5
	}

	var result videoResponse
	var err error
	if imageURL != "" {
		err = c.invoke(klingVideoModel, imageToVideoRequest{
			Prompt:      prompt,
			ImageURL:    imageURL,
			Duration:    strconv.Itoa(duration),
			AspectRatio: "16:9",
		}, &result)
	} else {
		err = c.invoke(minimaxVideoModel, textToVideoRequest{Prompt: prompt}, &result)
	}
	if err != nil {
		return "", err
	}

	videoURL := result.Video.URL
	if videoURL == "" {
		videoURL = result.VideoURL
	}
	if videoURL == "" {
		return "", fmt.Errorf("no video generated")
	}
	return videoURL, nil
}

func (c *Client) invoke(model string, reqBody, result interface{}) error {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimSuffix(c.baseURL, "/") + "/" + model
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Key "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("model %s failed: status %d, body: %s", model, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// RetryWithBackoff executes a function with exponential backoff retry logic
func (c *Client) RetryWithBackoff(fn func() error, maxRetries int) error {
	backoffs := []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err
		if i < len(backoffs) {
			time.Sleep(backoffs[i])
		}
	}

	return fmt.Errorf("failed after %d retries: %w", maxRetries, lastErr)
}
