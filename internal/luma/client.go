package luma

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client drives the scraper-style Luma integration: it authenticates
// with a captured session token, submits a generation job and polls the
// job status in a bounded loop. The in-flight generation is not aborted
// when the loop gives up; the caller is told it timed out.
type Client struct {
	baseURL      string
	sessionToken string
	pollAttempts int
	pollDelay    time.Duration
	httpClient   *http.Client
}

type submitRequest struct {
	Prompt string `json:"prompt"`
}

type submitResponse struct {
	ID string `json:"id"`
}

type statusResponse struct {
	ID       string `json:"id"`
	State    string `json:"state"` // "queued", "dreaming", "completed", "failed"
	VideoURL string `json:"video_url"`
	Error    string `json:"failure_reason"`
}

func NewClient(baseURL, sessionToken string, pollAttempts int, pollDelay time.Duration) *Client {
	if pollAttempts <= 0 {
		pollAttempts = 30
	}
	if pollDelay <= 0 {
		pollDelay = 2 * time.Second
	}
	return &Client{
		baseURL:      baseURL,
		sessionToken: sessionToken,
		pollAttempts: pollAttempts,
		pollDelay:    pollDelay,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GenerateVideo submits a prompt and polls until the job completes,
// fails, or the configured attempts run out.
func (c *Client) GenerateVideo(prompt string) (string, error) {
	if c.sessionToken == "" {
		return "", fmt.Errorf("luma authentication failed: no session token provided")
	}

	jobID, err := c.submit(prompt)
	if err != nil {
		return "", err
	}

	for attempt := 0; attempt < c.pollAttempts; attempt++ {
		status, err := c.getStatus(jobID)
		if err != nil {
			return "", err
		}

		switch status.State {
		case "completed":
			if status.VideoURL == "" {
				return "", fmt.Errorf("job %s completed without a video url", jobID)
			}
			return status.VideoURL, nil
		case "failed":
			return "", fmt.Errorf("job %s failed: %s", jobID, status.Error)
		}

		time.Sleep(c.pollDelay)
	}

	return "", fmt.Errorf("timed out waiting for job %s after %d attempts", jobID, c.pollAttempts)
}

func (c *Client) submit(prompt string) (string, error) {
	jsonData, err := json.Marshal(submitRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimSuffix(c.baseURL, "/") + "/generations"
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Cookie", "luma_session="+c.sessionToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("failed to submit job: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if result.ID == "" {
		return "", fmt.Errorf("job id is empty in response")
	}

	return result.ID, nil
}

func (c *Client) getStatus(jobID string) (*statusResponse, error) {
	url := strings.TrimSuffix(c.baseURL, "/") + "/generations/" + jobID
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Cookie", "luma_session="+c.sessionToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to get job status: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}
