package gemini

import (
	"encoding/json"
	"fmt"
	"regexp"
)

var (
	fencedBlockPattern = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")
	jsonObjectPattern  = regexp.MustCompile(`\{[\s\S]*\}`)
)

// ExtractJSON pulls a JSON object out of a model response. Three tiers
// are tried in order: the raw text as JSON, the contents of a fenced
// code block, and the first object-shaped substring. When none yields a
// valid object an explicit error is returned; no partial data is
// fabricated.
func ExtractJSON(text string) (json.RawMessage, error) {
	if raw, ok := tryParseObject(text); ok {
		return raw, nil
	}

	if m := fencedBlockPattern.FindStringSubmatch(text); m != nil {
		if raw, ok := tryParseObject(m[1]); ok {
			return raw, nil
		}
	}

	if m := jsonObjectPattern.FindString(text); m != "" {
		if raw, ok := tryParseObject(m); ok {
			return raw, nil
		}
	}

	return nil, fmt.Errorf("could not parse JSON from model response")
}

func tryParseObject(s string) (json.RawMessage, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return nil, false
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, false
	}
	return data, true
}
