package stability

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// Client calls the Stability image API. It serves as the fallback tier
// when video generation is unavailable.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type generateResponse struct {
	Image        string   `json:"image"`
	FinishReason string   `json:"finish_reason"`
	Errors       []string `json:"errors"`
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
}

// GenerateImage renders one image with sd3.5-large and returns it as a
// PNG data URI.
func (c *Client) GenerateImage(prompt string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	_ = writer.WriteField("prompt", prompt)
	_ = writer.WriteField("model", "sd3.5-large")
	_ = writer.WriteField("output_format", "png")
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build form: %w", err)
	}

	url := strings.TrimSuffix(c.baseURL, "/") + "/stable-image/generate/sd3"
	req, err := http.NewRequest("POST", url, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("failed to generate image: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if result.Image == "" {
		return "", fmt.Errorf("no image returned: %s", strings.Join(result.Errors, "; "))
	}

	return "data:image/png;base64," + result.Image, nil
}
