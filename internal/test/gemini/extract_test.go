package gemini_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"adstudio-backend/internal/gemini"
)

func TestExtractJSON_Direct(t *testing.T) {
	raw, err := gemini.ExtractJSON(`{"title": "My Video", "scenes": []}`)

	assert.NoError(t, err)
	var parsed map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Contains(t, parsed, "title")
}

func TestExtractJSON_FencedBlock(t *testing.T) {
	text := "Here is your script:\n```json\n{\"title\": \"Fenced\"}\n```\nLet me know!"

	raw, err := gemini.ExtractJSON(text)

	assert.NoError(t, err)
	var parsed struct {
		Title string `json:"title"`
	}
	assert.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, "Fenced", parsed.Title)
}

func TestExtractJSON_FencedBlockWithoutLanguage(t *testing.T) {
	text := "```\n{\"title\": \"Plain fence\"}\n```"

	raw, err := gemini.ExtractJSON(text)

	assert.NoError(t, err)
	assert.Contains(t, string(raw), "Plain fence")
}

func TestExtractJSON_EmbeddedObject(t *testing.T) {
	text := `Sure! The result is {"title": "Embedded", "totalDuration": 90} as requested.`

	raw, err := gemini.ExtractJSON(text)

	assert.NoError(t, err)
	var parsed struct {
		Title string `json:"title"`
	}
	assert.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, "Embedded", parsed.Title)
}

func TestExtractJSON_ProseFails(t *testing.T) {
	_, err := gemini.ExtractJSON("I could not produce a script for that content, sorry.")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not parse JSON")
}

func TestExtractJSON_ArrayIsNotAnObject(t *testing.T) {
	_, err := gemini.ExtractJSON(`[1, 2, 3]`)

	assert.Error(t, err)
}
