package supabase

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceRoleKey, bucket string) (*StorageClient, error) {
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// UploadLogo stores a brand logo under the campaign's asset prefix and
// returns the storage path and public URL.
func (s *StorageClient) UploadLogo(userID string, campaignID uuid.UUID, data []byte, contentType string) (string, string, error) {
	ext := extensionFor(contentType)
	storagePath := fmt.Sprintf("users/%s/campaigns/%s/logo%s", userID, campaignID.String(), ext)
	return s.upload(storagePath, data, contentType)
}

// UploadMedia stores a generated asset (thumbnail, clip, final render)
// under the campaign's asset prefix.
func (s *StorageClient) UploadMedia(userID string, campaignID uuid.UUID, filename string, data []byte, contentType string) (string, string, error) {
	storagePath := fmt.Sprintf("users/%s/campaigns/%s/%s", userID, campaignID.String(), filename)
	return s.upload(storagePath, data, contentType)
}

func (s *StorageClient) upload(storagePath string, data []byte, contentType string) (string, string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	upsert := true
	_, err := s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload file: %w", err)
	}

	return storagePath, s.GetPublicURL(storagePath), nil
}

func (s *StorageClient) GetPublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, storagePath)
}

func (s *StorageClient) DownloadFile(storagePath string) ([]byte, error) {
	data, err := s.client.DownloadFile(s.bucket, storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}

	return data, nil
}

// DeleteCampaignFiles removes every stored object under the campaign's
// asset prefix.
func (s *StorageClient) DeleteCampaignFiles(userID string, campaignID uuid.UUID) error {
	prefix := fmt.Sprintf("users/%s/campaigns/%s/", userID, campaignID.String())

	files, err := s.client.ListFiles(s.bucket, prefix, storage.FileSearchOptions{
		Limit: 1000,
	})
	if err != nil {
		return fmt.Errorf("failed to list files: %w", err)
	}

	if len(files) > 0 {
		filePaths := make([]string, len(files))
		for i, file := range files {
			filePaths[i] = file.Name
		}
		if _, err := s.client.RemoveFile(s.bucket, filePaths); err != nil {
			return fmt.Errorf("failed to delete files: %w", err)
		}
	}

	return nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	default:
		return ""
	}
}
