package supabase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"adstudio-backend/internal/supabase"
)

func TestIsVideoURL(t *testing.T) {
	assert.True(t, supabase.IsVideoURL("https://cdn.example.com/final.mp4"))
	assert.True(t, supabase.IsVideoURL("https://cdn.example.com/FINAL.MP4"))
	assert.True(t, supabase.IsVideoURL("https://fal.media/files/video/abc"))
	assert.False(t, supabase.IsVideoURL("https://cdn.example.com/thumb.png"))
	assert.False(t, supabase.IsVideoURL("data:image/png;base64,abc"))
}
