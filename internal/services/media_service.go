package services

import (
	"fmt"
	"log"

	"adstudio-backend/internal/fal"
	"adstudio-backend/internal/luma"
	"adstudio-backend/internal/models"
	"adstudio-backend/internal/stability"
)

// Video generation methods for GenerateMedia.
const (
	MethodAPI     = "api"
	MethodScraper = "scraper"
)

// MediaService orchestrates media generation across providers: video
// first, still image as the fallback tier. The response always carries
// which modality was actually produced.
type MediaService struct {
	falClient       *fal.Client
	lumaClient      *luma.Client
	stabilityClient *stability.Client
}

func NewMediaService(
	falClient *fal.Client,
	lumaClient *luma.Client,
	stabilityClient *stability.Client,
) *MediaService {
	return &MediaService{
		falClient:       falClient,
		lumaClient:      lumaClient,
		stabilityClient: stabilityClient,
	}
}

// GenerateMedia tries video generation via the chosen method and falls
// back to a Stability image when video fails. A fallback result has
// Type "image" so the caller knows what it got.
func (s *MediaService) GenerateMedia(req *models.MediaRequest) (*models.MediaResponse, error) {
	videoURL, videoErr := s.generateVideo(req)
	if videoErr == nil {
		return &models.MediaResponse{
			Success: true,
			Type:    "video",
			URL:     videoURL,
		}, nil
	}

	log.Printf("Video generation failed, falling back to image: %v", videoErr)

	prompt := req.Prompt
	if req.Style != "" {
		prompt = fmt.Sprintf("%s, %s style", req.Prompt, req.Style)
	}

	imageURL, imageErr := s.stabilityClient.GenerateImage(prompt)
	if imageErr != nil {
		return nil, fmt.Errorf("video generation failed (%v) and image fallback failed: %w", videoErr, imageErr)
	}

	return &models.MediaResponse{
		Success: true,
		Type:    "image",
		URL:     imageURL,
	}, nil
}

func (s *MediaService) generateVideo(req *models.MediaRequest) (string, error) {
	if req.Method == MethodScraper {
		return s.lumaClient.GenerateVideo(req.Prompt)
	}
	return s.falClient.GenerateVideo(req.Prompt, req.ImageURL, req.Duration)
}
