package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"adstudio-backend/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestCampaignPatch_Validate(t *testing.T) {
	empty := ""
	assert.Error(t, (&models.CampaignPatch{BrandName: &empty}).Validate())

	tooMany := []string{"#111", "#222", "#333", "#444", "#555", "#666"}
	assert.Error(t, (&models.CampaignPatch{BrandColors: &tooMany}).Validate())

	assert.Error(t, (&models.CampaignPatch{CurrentStep: intPtr(0)}).Validate())
	assert.Error(t, (&models.CampaignPatch{CurrentStep: intPtr(8)}).Validate())

	fine := []string{"#111", "#222"}
	patch := &models.CampaignPatch{
		BrandName:   strPtr("Acme"),
		BrandColors: &fine,
		CurrentStep: intPtr(3),
	}
	assert.NoError(t, patch.Validate())
}

func TestCampaignPatch_Columns(t *testing.T) {
	patch := &models.CampaignPatch{
		BrandName:   strPtr("Acme"),
		VisualStyle: strPtr("anime"),
		CurrentStep: intPtr(4),
	}

	cols, vals := patch.Columns()

	assert.Equal(t, []string{"brand_name", "current_step", "visual_style"}, cols)
	assert.Len(t, vals, 3)
	assert.Equal(t, "Acme", vals[0])
	assert.Equal(t, 4, vals[1])
	assert.Equal(t, "anime", vals[2])
}

func TestCampaignPatch_ColumnsMarshalsJSON(t *testing.T) {
	colors := []string{"#ff0000"}
	patch := &models.CampaignPatch{BrandColors: &colors}

	cols, vals := patch.Columns()

	assert.Equal(t, []string{"brand_colors"}, cols)
	assert.JSONEq(t, `["#ff0000"]`, string(vals[0].([]byte)))
}

func TestCampaignPatch_IsEmpty(t *testing.T) {
	assert.True(t, (&models.CampaignPatch{}).IsEmpty())
	assert.False(t, (&models.CampaignPatch{BrandName: strPtr("Acme")}).IsEmpty())
}
