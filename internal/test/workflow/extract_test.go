package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"adstudio-backend/internal/workflow"
)

func TestExtractFields_Duration(t *testing.T) {
	updates, toolCalls := workflow.ExtractFields("I want a 2 minute video", "overview", map[string]string{})

	assert.Equal(t, "2 minutes", updates.Duration)
	assert.NotEmpty(t, toolCalls)
}

func TestExtractFields_Format(t *testing.T) {
	updates, _ := workflow.ExtractFields("make it landscape please", "style", map[string]string{})

	assert.Equal(t, "16:9 Landscape", updates.Format)
}

func TestExtractFields_Style(t *testing.T) {
	updates, _ := workflow.ExtractFields("I'd like 3d animation", "style", map[string]string{})

	assert.Equal(t, "3d animation", updates.Style)
}

func TestExtractFields_TopicOnOverview(t *testing.T) {
	message := "An ad about our new line of ergonomic office chairs"

	updates, _ := workflow.ExtractFields(message, "overview", map[string]string{})

	assert.Equal(t, message, updates.Topic)
}

func TestExtractFields_NoTopicForQuestions(t *testing.T) {
	updates, _ := workflow.ExtractFields("What kind of video should I make for my brand?", "overview", map[string]string{})

	assert.Empty(t, updates.Topic)
}

func TestExtractFields_NoTopicWhenAlreadyKnown(t *testing.T) {
	known := map[string]string{"topic": "existing topic"}

	updates, _ := workflow.ExtractFields("A long statement about something entirely new here", "overview", known)

	assert.Empty(t, updates.Topic)
}

func TestExtractFields_TopicTruncated(t *testing.T) {
	long := make([]byte, 150)
	for i := range long {
		long[i] = 'a'
	}

	updates, _ := workflow.ExtractFields(string(long), "overview", map[string]string{})

	assert.Len(t, updates.Topic, 100)
}

func TestSuggestNextStep(t *testing.T) {
	assert.Equal(t, "", workflow.SuggestNextStep("overview", map[string]string{"topic": "x"}))

	complete := map[string]string{"topic": "x", "duration": "1 minute", "format": "16:9 Landscape"}
	assert.Equal(t, "style", workflow.SuggestNextStep("overview", complete))

	assert.Equal(t, "brand", workflow.SuggestNextStep("style", map[string]string{"style": "anime"}))
	assert.Equal(t, "", workflow.SuggestNextStep("brand", map[string]string{}))
}

func TestFieldUpdates_Merge(t *testing.T) {
	known := map[string]string{"topic": "chairs", "format": "1:1 Square"}
	updates := workflow.FieldUpdates{Duration: "30 seconds"}

	combined, set := updates.Merge(known)

	assert.Equal(t, "chairs", combined["topic"])
	assert.Equal(t, "1:1 Square", combined["format"])
	assert.Equal(t, "30 seconds", combined["duration"])
	assert.Equal(t, map[string]string{"duration": "30 seconds"}, set)
	// The input map is left untouched.
	assert.NotContains(t, known, "duration")
}
