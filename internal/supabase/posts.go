package supabase

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"adstudio-backend/internal/models"
)

const postColumns = `id, user_id, campaign_id, content, platform, image_url, has_media,
		alt_text, status, scheduled_for, posted_at, post_uri, error_message,
		created_at, updated_at`

func scanPost(row rowScanner) (*models.ScheduledPost, error) {
	var p models.ScheduledPost
	err := row.Scan(
		&p.ID, &p.UserID, &p.CampaignID, &p.Content, &p.Platform, &p.ImageURL, &p.HasMedia,
		&p.AltText, &p.Status, &p.ScheduledFor, &p.PostedAt, &p.PostURI, &p.ErrorMessage,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (d *DatabaseClient) CreatePost(postID uuid.UUID, userID string, req *models.CreatePostRequest) (*models.ScheduledPost, error) {
	var campaignID, imageURL, altText, scheduledFor interface{}
	if req.CampaignID != "" {
		campaignID = req.CampaignID
	}
	if req.ImageURL != "" {
		imageURL = req.ImageURL
	}
	if req.AltText != "" {
		altText = req.AltText
	}
	if req.ScheduledFor != "" {
		scheduledFor = req.ScheduledFor
	}

	row := d.db.QueryRow(`
		INSERT INTO scheduled_posts (id, user_id, campaign_id, content, platform, image_url, has_media, alt_text, status, scheduled_for)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+postColumns+`
	`, postID, userID, campaignID, req.Content, req.Platform, imageURL, req.HasMedia, altText, models.PostStatusDraft, scheduledFor)

	post, err := scanPost(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

func (d *DatabaseClient) GetPost(postID uuid.UUID, userID string) (*models.ScheduledPost, error) {
	row := d.db.QueryRow(`
		SELECT `+postColumns+`
		FROM scheduled_posts
		WHERE id = $1 AND user_id = $2
	`, postID, userID)

	post, err := scanPost(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// ListPosts returns the user's posts, optionally filtered by status.
func (d *DatabaseClient) ListPosts(userID, status string) ([]models.ScheduledPost, error) {
	query := `
		SELECT ` + postColumns + `
		FROM scheduled_posts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	args := []interface{}{userID}
	if status != "" {
		query = `
			SELECT ` + postColumns + `
			FROM scheduled_posts
			WHERE user_id = $1 AND status = $2
			ORDER BY created_at DESC
		`
		args = append(args, status)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []models.ScheduledPost
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, *post)
	}

	return posts, nil
}

func (d *DatabaseClient) UpdatePost(postID uuid.UUID, userID string, req *models.UpdatePostRequest) (*models.ScheduledPost, error) {
	post, err := d.GetPost(postID, userID)
	if err != nil {
		return nil, err
	}

	content := post.Content
	if req.Content != nil {
		content = *req.Content
	}
	imageURL := post.ImageURL
	if req.ImageURL != nil {
		imageURL = sql.NullString{String: *req.ImageURL, Valid: *req.ImageURL != ""}
	}
	scheduledFor := post.ScheduledFor
	if req.ScheduledFor != nil {
		scheduledFor = sql.NullString{String: *req.ScheduledFor, Valid: *req.ScheduledFor != ""}
	}

	row := d.db.QueryRow(`
		UPDATE scheduled_posts
		SET content = $1, image_url = $2, has_media = $3, scheduled_for = $4, updated_at = NOW()
		WHERE id = $5 AND user_id = $6
		RETURNING `+postColumns+`
	`, content, imageURL, imageURL.Valid, scheduledFor, postID, userID)

	updated, err := scanPost(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return updated, nil
}

// UpdatePostStatus sets the lifecycle status plus the outcome fields
// that go with it: post_uri and posted_at on success, error_message on
// failure.
func (d *DatabaseClient) UpdatePostStatus(postID uuid.UUID, userID string, req *models.PostStatusRequest) (*models.ScheduledPost, error) {
	var postURI, postedAt, errorMsg interface{}
	if req.PostURI != "" {
		postURI = req.PostURI
	}
	if req.PostedAt != "" {
		postedAt = req.PostedAt
	}
	if req.Error != "" {
		errorMsg = req.Error
	}

	row := d.db.QueryRow(`
		UPDATE scheduled_posts
		SET status = $1,
			post_uri = COALESCE($2, post_uri),
			posted_at = COALESCE($3, posted_at),
			error_message = $4,
			updated_at = NOW()
		WHERE id = $5 AND user_id = $6
		RETURNING `+postColumns+`
	`, req.Status, postURI, postedAt, errorMsg, postID, userID)

	post, err := scanPost(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update post status: %w", err)
	}

	return post, nil
}

func (d *DatabaseClient) DeletePost(postID uuid.UUID, userID string) error {
	result, err := d.db.Exec(`
		DELETE FROM scheduled_posts
		WHERE id = $1 AND user_id = $2
	`, postID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (d *DatabaseClient) GetPostStats(userID string) (*models.PostStats, error) {
	rows, err := d.db.Query(`
		SELECT status, COUNT(*)
		FROM scheduled_posts
		WHERE user_id = $1
		GROUP BY status
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post stats: %w", err)
	}
	defer rows.Close()

	var stats models.PostStats
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan post stats: %w", err)
		}

		stats.Total += count
		switch status {
		case models.PostStatusDraft:
			stats.Draft = count
		case models.PostStatusPendingApproval:
			stats.PendingApproval = count
		case models.PostStatusApproved:
			stats.Approved = count
		case models.PostStatusPosted:
			stats.Posted = count
		case models.PostStatusFailed:
			stats.Failed = count
		}
	}

	return &stats, nil
}

func (d *DatabaseClient) SaveBlueskyAccount(userID string, req *models.BlueskyAccountRequest) (*models.BlueskyAccount, error) {
	var account models.BlueskyAccount
	err := d.db.QueryRow(`
		INSERT INTO bluesky_accounts (id, user_id, handle, did, display_name, avatar)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET handle = EXCLUDED.handle, did = EXCLUDED.did,
			display_name = EXCLUDED.display_name, avatar = EXCLUDED.avatar
		RETURNING id, user_id, handle, did, display_name, avatar, created_at
	`, uuid.New(), userID, req.Handle, req.DID, req.DisplayName, req.Avatar).Scan(
		&account.ID, &account.UserID, &account.Handle, &account.DID,
		&account.DisplayName, &account.Avatar, &account.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save bluesky account: %w", err)
	}

	return &account, nil
}

func (d *DatabaseClient) GetBlueskyAccount(userID string) (*models.BlueskyAccount, error) {
	var account models.BlueskyAccount
	err := d.db.QueryRow(`
		SELECT id, user_id, handle, did, display_name, avatar, created_at
		FROM bluesky_accounts
		WHERE user_id = $1
	`, userID).Scan(
		&account.ID, &account.UserID, &account.Handle, &account.DID,
		&account.DisplayName, &account.Avatar, &account.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get bluesky account: %w", err)
	}

	return &account, nil
}

func (d *DatabaseClient) DeleteBlueskyAccount(userID string) error {
	_, err := d.db.Exec(`
		DELETE FROM bluesky_accounts
		WHERE user_id = $1
	`, userID)
	return err
}
