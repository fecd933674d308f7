package workflow

import (
	"fmt"
	"regexp"
	"strings"

	"adstudio-backend/internal/models"
)

// FieldUpdates is a partial project-data update extracted from free
// chat text. Extraction is best-effort keyword matching and lossy by
// design; absent fields simply were not recognized.
type FieldUpdates struct {
	Topic    string
	Duration string
	Format   string
	Style    string
}

var durationPattern = regexp.MustCompile(`(?i)(\d+)\s*(minute|second|min|sec)`)

// Aspect-ratio keywords, checked in order; first hit wins.
var formatKeywords = []struct {
	keywords []string
	format   string
}{
	{[]string{"landscape", "16:9"}, "16:9 Landscape"},
	{[]string{"vertical", "9:16"}, "9:16 Vertical"},
	{[]string{"square", "1:1"}, "1:1 Square"},
}

var styleKeywords = []string{
	"3d animation",
	"2d vector",
	"realistic",
	"anime",
	"minimalist",
	"corporate",
}

// ExtractFields scans a chat message for duration, format, style and
// topic hints. It returns the recognized partial update together with
// tool-call annotations describing what was saved.
func ExtractFields(message, activeStep string, known map[string]string) (FieldUpdates, []models.ToolCall) {
	var updates FieldUpdates
	var toolCalls []models.ToolCall
	lower := strings.ToLower(message)

	if m := durationPattern.FindStringSubmatch(message); m != nil {
		updates.Duration = fmt.Sprintf("%s %ss", m[1], strings.ToLower(m[2]))
		toolCalls = append(toolCalls, models.ToolCall{Action: "Saving duration preference", Status: "completed"})
	}

	for _, f := range formatKeywords {
		for _, kw := range f.keywords {
			if strings.Contains(lower, kw) {
				updates.Format = f.format
				toolCalls = append(toolCalls, models.ToolCall{
					Action: "Setting format to " + strings.Fields(f.format)[0],
					Status: "completed",
				})
				break
			}
		}
		if updates.Format != "" {
			break
		}
	}

	for _, style := range styleKeywords {
		if strings.Contains(lower, style) {
			updates.Style = style
			toolCalls = append(toolCalls, models.ToolCall{
				Action: "Saving art style: " + style,
				Status: "completed",
			})
			break
		}
	}

	// A longer statement without a question mark on the overview step is
	// taken as the project topic.
	if activeStep == "overview" && len(message) > 20 && !strings.Contains(message, "?") && known["topic"] == "" {
		topic := message
		if len(topic) > 100 {
			topic = topic[:100]
		}
		updates.Topic = topic
		toolCalls = append(toolCalls, models.ToolCall{Action: "Saving project topic", Status: "completed"})
	}

	return updates, toolCalls
}

// SuggestNextStep decides whether the collected project data is enough
// to move the wizard forward. It returns the next step id or "" when
// the wizard should stay put.
func SuggestNextStep(activeStep string, data map[string]string) string {
	switch activeStep {
	case "overview":
		if data["topic"] != "" && data["duration"] != "" && data["format"] != "" {
			return "style"
		}
	case "style":
		if data["style"] != "" {
			return "brand"
		}
	}
	return ""
}

// Merge applies the extracted updates on top of the known project data
// and returns the combined map plus the updates that were actually set.
func (u FieldUpdates) Merge(known map[string]string) (map[string]string, map[string]string) {
	combined := make(map[string]string, len(known)+4)
	for k, v := range known {
		combined[k] = v
	}
	set := make(map[string]string)
	if u.Topic != "" {
		combined["topic"] = u.Topic
		set["topic"] = u.Topic
	}
	if u.Duration != "" {
		combined["duration"] = u.Duration
		set["duration"] = u.Duration
	}
	if u.Format != "" {
		combined["format"] = u.Format
		set["format"] = u.Format
	}
	if u.Style != "" {
		combined["style"] = u.Style
		set["style"] = u.Style
	}
	return combined, set
}
