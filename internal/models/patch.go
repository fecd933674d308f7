package models

import (
	"encoding/json"
	"fmt"
)

// CampaignPatch is a partial campaign update. Only non-nil fields are
// written; everything else is left untouched. Applying the same patch
// twice yields the same stored state as applying it once.
type CampaignPatch struct {
	BrandName      *string          `json:"brandName,omitempty"`
	Logo           *string          `json:"logo,omitempty"`
	BrandColors    *[]string        `json:"brandColors,omitempty"`
	Status         *string          `json:"status,omitempty"`
	CurrentStep    *int             `json:"currentStep,omitempty"`
	Content        *string          `json:"content,omitempty"`
	ContentSummary *string          `json:"contentSummary,omitempty"`
	VisualStyle    *string          `json:"visualStyle,omitempty"`
	Characters     *[]Character     `json:"characters,omitempty"`
	Script         *Script          `json:"script,omitempty"`
	Scenes         *[]Scene         `json:"scenes,omitempty"`
	Locations      *[]LocationAsset `json:"locations,omitempty"`
	Thumbnails     *[]Thumbnail     `json:"thumbnails,omitempty"`
	VideoClips     *[]VideoClip     `json:"videoClips,omitempty"`
	FinalMediaURL  *string          `json:"finalMediaUrl,omitempty"`
	Duration       *int             `json:"duration,omitempty"`
}

// Validate checks the invariants a patch may not break.
func (p *CampaignPatch) Validate() error {
	if p.BrandName != nil && *p.BrandName == "" {
		return fmt.Errorf("brand name cannot be empty")
	}
	if p.BrandColors != nil && len(*p.BrandColors) > MaxBrandColors {
		return fmt.Errorf("at most %d brand colors are allowed", MaxBrandColors)
	}
	if p.CurrentStep != nil && (*p.CurrentStep < 1 || *p.CurrentStep > 7) {
		return fmt.Errorf("current step must be between 1 and 7")
	}
	return nil
}

// Columns returns the column names and values for the set fields, in a
// stable order, ready for a dynamic UPDATE.
func (p *CampaignPatch) Columns() ([]string, []interface{}) {
	var cols []string
	var vals []interface{}

	add := func(col string, val interface{}) {
		cols = append(cols, col)
		vals = append(vals, val)
	}
	addJSON := func(col string, v interface{}) {
		data, err := json.Marshal(v)
		if err != nil {
			return
		}
		add(col, data)
	}

	if p.BrandName != nil {
		add("brand_name", *p.BrandName)
	}
	if p.Logo != nil {
		add("logo", *p.Logo)
	}
	if p.BrandColors != nil {
		addJSON("brand_colors", *p.BrandColors)
	}
	if p.Status != nil {
		add("status", *p.Status)
	}
	if p.CurrentStep != nil {
		add("current_step", *p.CurrentStep)
	}
	if p.Content != nil {
		add("content", *p.Content)
	}
	if p.ContentSummary != nil {
		add("content_summary", *p.ContentSummary)
	}
	if p.VisualStyle != nil {
		add("visual_style", *p.VisualStyle)
	}
	if p.Characters != nil {
		addJSON("characters", *p.Characters)
	}
	if p.Script != nil {
		addJSON("script", *p.Script)
	}
	if p.Scenes != nil {
		addJSON("scenes", *p.Scenes)
	}
	if p.Locations != nil {
		addJSON("locations", *p.Locations)
	}
	if p.Thumbnails != nil {
		addJSON("thumbnails", *p.Thumbnails)
	}
	if p.VideoClips != nil {
		addJSON("video_clips", *p.VideoClips)
	}
	if p.FinalMediaURL != nil {
		add("final_media_url", *p.FinalMediaURL)
	}
	if p.Duration != nil {
		add("duration", *p.Duration)
	}

	return cols, vals
}

// IsEmpty reports whether no fields are set.
func (p *CampaignPatch) IsEmpty() bool {
	cols, _ := p.Columns()
	return len(cols) == 0
}
