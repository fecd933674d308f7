package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"adstudio-backend/internal/models"
)

// Client wraps the Gemini API for the studio's text-generation needs:
// content analysis, script generation, character generation and the
// director chat.
type Client struct {
	client *genai.Client
	model  string
}

var styleDescriptions = map[string]string{
	"3d":        "3D animated style with modern CGI aesthetics",
	"2d":        "2D animated style with clean vector graphics",
	"realistic": "photorealistic style with live-action feel",
	"anime":     "anime style with expressive characters",
}

const directorSystemPrompt = `You are an AI Video Director assistant. Your role is to help users create AI-generated videos step by step.

You guide users through a structured workflow:
1. Project Overview - Understand their content, duration, and format
2. Art Style - Help them choose a visual style (3D animation, 2D vector, realistic, etc.)
3. Brand Guidelines - Understand their brand colors and logo
4. Characters - Help create character references
5. Script & Scenes - Generate and refine the script
6. Assets & Video - Generate locations and video clips
7. Post & Save - Share or save the result

Current step: %s

Be conversational, helpful, and guide users naturally through the process. When users are unsure, suggest options. Always be encouraging and make the video creation process feel easy.`

// NewClient connects to the Gemini API. baseURL is normally empty; a
// non-empty value overrides the API endpoint.
func NewClient(ctx context.Context, apiKey, model, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// Analyze summarizes raw campaign content: brief summary, key topics,
// suggested video structure, target audience.
func (c *Client) Analyze(ctx context.Context, content string) (string, error) {
	prompt := fmt.Sprintf(`Analyze the following document content and provide:
1. A brief summary (2-3 sentences)
2. Key topics covered
3. Suggested video structure (3-5 main sections)
4. Target audience

Document content:
%s

Respond in a structured format.`, content)

	text, err := c.generate(ctx, prompt, "")
	if err != nil {
		return "", fmt.Errorf("failed to analyze content: %w", err)
	}
	return text, nil
}

// GenerateScript produces a structured video script. The model is asked
// for strict JSON; the response goes through the tiered extractor and a
// parse failure is surfaced as an error rather than a guessed script.
func (c *Client) GenerateScript(ctx context.Context, content, style, brandName string, characters []models.Character) (*models.Script, error) {
	styleDesc := styleDescriptions[style]
	if styleDesc == "" {
		styleDesc = "professional animated"
	}

	var characterNames []string
	for _, ch := range characters {
		characterNames = append(characterNames, ch.Name)
	}

	excerpt := content
	if len(excerpt) > 3000 {
		excerpt = excerpt[:3000]
	}

	prompt := fmt.Sprintf(`You are a professional video script writer. Create a video script based on the following content.

Brand: %s
Visual Style: %s
Characters available: %s

Content (excerpt):
%s

Requirements:
1. Write a compelling script that explains the key concepts
2. Break it into exactly 5 scenes
3. Keep the total length suitable for a 2-3 minute video
4. Only use the characters listed above

Respond ONLY with valid JSON in this exact format:
{
  "title": "Video Title",
  "totalDuration": 150,
  "scenes": [
    {
      "id": "scene-1",
      "title": "Scene Title",
      "duration": 30,
      "visual": "Visual description of the scene",
      "narration": "Narrator dialogue for the scene",
      "characters": ["Character Name"]
    }
  ]
}`, brandName, styleDesc, strings.Join(characterNames, ", "), excerpt)

	text, err := c.generate(ctx, prompt, "")
	if err != nil {
		return nil, fmt.Errorf("failed to generate script: %w", err)
	}

	raw, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}

	var script models.Script
	if err := json.Unmarshal(raw, &script); err != nil {
		return nil, fmt.Errorf("could not parse JSON from model response: %w", err)
	}
	if script.Title == "" || len(script.Scenes) == 0 {
		return nil, fmt.Errorf("could not parse JSON from model response: script is missing title or scenes")
	}

	return &script, nil
}

// GenerateCharacters produces character profiles for the campaign
// content. The result is truncated to three entries; an empty parse is
// an error.
func (c *Client) GenerateCharacters(ctx context.Context, content, style, brandName string) ([]models.GeneratedProfile, error) {
	if style == "" {
		style = "3D Animation"
	}
	if brandName == "" {
		brandName = "General"
	}

	prompt := fmt.Sprintf(`Based on the following content, generate exactly 3 unique character profiles for an AI-generated video.

Brand/Context: %s
Visual Style: %s

Content to analyze:
%s

For each character, provide:
1. name - A fitting name for the character
2. role - Their role in the video (e.g., "Narrator", "Expert", "Customer")
3. personality - 2-3 key personality traits
4. appearance - Physical appearance description suitable for %s style
5. outfit - What they're wearing, considering the brand context

Respond ONLY with valid JSON in this exact format:
{
  "characters": [
    {
      "name": "Character Name",
      "role": "Their Role",
      "personality": "Trait 1, Trait 2",
      "appearance": "Detailed appearance description",
      "outfit": "Clothing description"
    }
  ]
}

Generate exactly 3 characters that would work well for this video content.`, brandName, style, content, style)

	text, err := c.generate(ctx, prompt, "")
	if err != nil {
		return nil, fmt.Errorf("failed to generate characters: %w", err)
	}

	raw, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Characters []models.GeneratedProfile `json:"characters"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("could not parse JSON from model response: %w", err)
	}
	if len(parsed.Characters) == 0 {
		return nil, fmt.Errorf("could not parse character data from model response")
	}

	if len(parsed.Characters) > 3 {
		parsed.Characters = parsed.Characters[:3]
	}

	return parsed.Characters, nil
}

// Chat sends a director-chat turn with conversation history.
func (c *Client) Chat(ctx context.Context, message, activeStep string, history []models.StudioMessage) (string, error) {
	if activeStep == "" {
		activeStep = "overview"
	}

	contents := make([]*genai.Content, 0, len(history)+1)
	for _, m := range history {
		if m.Content == "" {
			continue
		}
		role := genai.Role(genai.RoleUser)
		if m.Role == "assistant" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(fmt.Sprintf(directorSystemPrompt, activeStep), genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to send chat message: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

func (c *Client) generate(ctx context.Context, prompt, system string) (string, error) {
	var config *genai.GenerateContentConfig
	if system != "" {
		config = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		}
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}
