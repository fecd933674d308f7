package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"adstudio-backend/internal/models"
	"adstudio-backend/internal/supabase"
)

type PostsHandler struct {
	dbClient       *supabase.DatabaseClient
	realtimeClient *supabase.RealtimeClient
}

func NewPostsHandler(dbClient *supabase.DatabaseClient, realtimeClient *supabase.RealtimeClient) *PostsHandler {
	return &PostsHandler{
		dbClient:       dbClient,
		realtimeClient: realtimeClient,
	}
}

func (h *PostsHandler) CreatePost(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	if req.Platform != "bluesky" && req.Platform != "twitter" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "platform must be bluesky or twitter"})
		return
	}

	if req.ImageURL != "" {
		req.HasMedia = true
	}

	post, err := h.dbClient.CreatePost(uuid.New(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create post",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, post.ToResponse())
}

func (h *PostsHandler) ListPosts(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	posts, err := h.dbClient.ListPosts(userID, c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list posts",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.PostResponse, len(posts))
	for i := range posts {
		responses[i] = posts[i].ToResponse()
	}

	c.JSON(http.StatusOK, models.PostListResponse{Posts: responses})
}

func (h *PostsHandler) GetPost(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	postID, err := uuid.Parse(c.Param("post_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid post id"})
		return
	}

	post, err := h.dbClient.GetPost(postID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "post not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, post.ToResponse())
}

func (h *PostsHandler) UpdatePost(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	postID, err := uuid.Parse(c.Param("post_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid post id"})
		return
	}

	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	if req.Content != nil && *req.Content == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "content cannot be empty"})
		return
	}

	post, err := h.dbClient.UpdatePost(postID, userID, &req)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "failed to update post",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, post.ToResponse())
}

// UpdateStatus moves a post through its lifecycle. Transitions are
// caller-driven; the handler only checks the status value is known.
func (h *PostsHandler) UpdateStatus(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	postID, err := uuid.Parse(c.Param("post_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid post id"})
		return
	}

	var req models.PostStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	switch req.Status {
	case models.PostStatusDraft, models.PostStatusPendingApproval, models.PostStatusApproved,
		models.PostStatusPosted, models.PostStatusFailed:
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "unknown status"})
		return
	}

	post, err := h.dbClient.UpdatePostStatus(postID, userID, &req)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "failed to update status",
			Message: err.Error(),
		})
		return
	}

	if req.Status == models.PostStatusPosted {
		h.realtimeClient.PublishUserEvent(userID, "post_published",
			supabase.PostPublishedPayload(post.ID, post.Platform, req.PostURI))
	}

	c.JSON(http.StatusOK, post.ToResponse())
}

func (h *PostsHandler) DeletePost(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	postID, err := uuid.Parse(c.Param("post_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid post id"})
		return
	}

	if err := h.dbClient.DeletePost(postID, userID); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "post not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *PostsHandler) GetStats(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	stats, err := h.dbClient.GetPostStats(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get post stats",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}
