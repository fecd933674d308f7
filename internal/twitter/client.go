package twitter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dghubble/oauth1"
)

// MaxTweetLength is the Twitter character limit.
const MaxTweetLength = 280

const apiBaseURL = "https://api.twitter.com/2"

// Client posts tweets through the v2 API using OAuth 1.0a user context.
type Client struct {
	httpClient *http.Client
}

type tweetRequest struct {
	Text string `json:"text"`
}

type tweetResponse struct {
	Data struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
}

// Profile is the authenticated user's account info.
type Profile struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Username        string `json:"username"`
	ProfileImageURL string `json:"profile_image_url"`
}

type meResponse struct {
	Data Profile `json:"data"`
}

func NewClient(consumerKey, consumerSecret, accessToken, accessSecret string) *Client {
	config := oauth1.NewConfig(consumerKey, consumerSecret)
	token := oauth1.NewToken(accessToken, accessSecret)

	httpClient := config.Client(oauth1.NoContext, token)
	httpClient.Timeout = 30 * time.Second

	return &Client{httpClient: httpClient}
}

// PostTweet publishes a tweet and returns its id and canonical text.
func (c *Client) PostTweet(text string) (id, tweetText string, err error) {
	if len([]rune(text)) > MaxTweetLength {
		return "", "", fmt.Errorf("tweet exceeds %d character limit", MaxTweetLength)
	}

	jsonData, err := json.Marshal(tweetRequest{Text: text})
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", apiBaseURL+"/tweets", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return "", "", fmt.Errorf("failed to post tweet: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result tweetResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", "", fmt.Errorf("failed to decode response: %w", err)
	}
	if result.Data.ID == "" {
		return "", "", fmt.Errorf("tweet id is empty in response")
	}

	return result.Data.ID, result.Data.Text, nil
}

// GetProfile fetches the authenticated user's profile.
func (c *Client) GetProfile() (*Profile, error) {
	url := apiBaseURL + "/users/me?user.fields=profile_image_url,name,username"
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to get profile: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result meResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result.Data, nil
}
