package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"adstudio-backend/internal/bluesky"
	"adstudio-backend/internal/imagex"
	"adstudio-backend/internal/models"
	"adstudio-backend/internal/supabase"
	"adstudio-backend/internal/twitter"
)

type SocialHandler struct {
	blueskyClient *bluesky.Client
	twitterClient *twitter.Client
	dbClient      *supabase.DatabaseClient
}

func NewSocialHandler(blueskyClient *bluesky.Client, twitterClient *twitter.Client, dbClient *supabase.DatabaseClient) *SocialHandler {
	return &SocialHandler{
		blueskyClient: blueskyClient,
		twitterClient: twitterClient,
		dbClient:      dbClient,
	}
}

// PostToBluesky publishes a post, with an optional image attached as a
// multipart file field. Oversized images are recompressed before upload
// and rejected if they cannot be brought under the blob cap.
func (h *SocialHandler) PostToBluesky(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}

	text := c.PostForm("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "text is required"})
		return
	}
	if len([]rune(text)) > bluesky.MaxPostLength {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "post exceeds 300 character limit",
		})
		return
	}

	var imageBlob []byte
	fileHeader, err := c.FormFile("image")
	if err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "failed to read image",
				Message: err.Error(),
			})
			return
		}
		defer file.Close()

		imageBlob, err = io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "failed to read image",
				Message: err.Error(),
			})
			return
		}

		if len(imageBlob) > bluesky.MaxImageBytes {
			imageBlob, err = imagex.Compress(imageBlob, bluesky.MaxImageBytes)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse{
					Error:   "failed to compress image",
					Message: err.Error(),
				})
				return
			}
			if len(imageBlob) > bluesky.MaxImageBytes {
				c.JSON(http.StatusBadRequest, models.ErrorResponse{
					Error: "image exceeds 1MB limit even after compression",
				})
				return
			}
		}
	}

	var blobRef []byte
	if imageBlob != nil {
		// Compression always re-encodes as JPEG; pass the original type
		// only when the file went up untouched.
		mimeType := fileHeader.Header.Get("Content-Type")
		if mimeType == "" || len(imageBlob) != int(fileHeader.Size) {
			mimeType = "image/jpeg"
		}

		blobRef, err = h.blueskyClient.UploadImage(imageBlob, mimeType)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "failed to upload image",
				Message: err.Error(),
			})
			return
		}
	}

	uri, cid, err := h.blueskyClient.Post(text, blobRef, c.PostForm("alt"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to publish post",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.BlueskyPostResponse{
		Success: true,
		PostURI: uri,
		CID:     cid,
	})
}

func (h *SocialHandler) GetBlueskyProfile(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}

	profile, err := h.blueskyClient.GetProfile()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get profile",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.BlueskyProfileResponse{
		Success: true,
		User: models.BlueskyProfile{
			DID:         profile.DID,
			Handle:      profile.Handle,
			DisplayName: profile.DisplayName,
			Avatar:      profile.Avatar,
		},
	})
}

// SaveBlueskyAccount links a Bluesky identity to the current user.
func (h *SocialHandler) SaveBlueskyAccount(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req models.BlueskyAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	account, err := h.dbClient.SaveBlueskyAccount(userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to save account",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, account.ToResponse())
}

func (h *SocialHandler) GetBlueskyAccount(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	account, err := h.dbClient.GetBlueskyAccount(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "account not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, account.ToResponse())
}

func (h *SocialHandler) DeleteBlueskyAccount(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	if err := h.dbClient.DeleteBlueskyAccount(userID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete account",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// PostTweet publishes a tweet through the v2 API.
func (h *SocialHandler) PostTweet(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}

	var req models.TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	if len([]rune(req.Content)) > twitter.MaxTweetLength {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "tweet exceeds 280 character limit",
		})
		return
	}

	id, text, err := h.twitterClient.PostTweet(req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to post tweet",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.TweetResponse{
		Success: true,
		TweetID: id,
		Text:    text,
	})
}

func (h *SocialHandler) GetTwitterProfile(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}

	profile, err := h.twitterClient.GetProfile()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get profile",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.TwitterProfileResponse{
		Success: true,
		User: models.TwitterProfile{
			ID:           profile.ID,
			Name:         profile.Name,
			Username:     profile.Username,
			ProfileImage: profile.ProfileImageURL,
		},
	})
}
