package supabase

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"adstudio-backend/internal/models"
)

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

const campaignColumns = `id, user_id, brand_name, logo, brand_colors, status, current_step,
		content, content_summary, visual_style, characters, script, scenes, locations,
		thumbnails, video_clips, final_media_url, duration, progress_log, studio_messages,
		created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCampaign(row rowScanner) (*models.Campaign, error) {
	var c models.Campaign
	err := row.Scan(
		&c.ID, &c.UserID, &c.BrandName, &c.Logo, &c.BrandColors, &c.Status, &c.CurrentStep,
		&c.Content, &c.ContentSummary, &c.VisualStyle, &c.Characters, &c.Script, &c.Scenes, &c.Locations,
		&c.Thumbnails, &c.VideoClips, &c.FinalMediaURL, &c.Duration, &c.ProgressLog, &c.StudioMessages,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (d *DatabaseClient) CreateCampaign(campaignID uuid.UUID, userID, brandName, logo string, brandColors []string, duration int) (*models.Campaign, error) {
	colorsJSON, _ := json.Marshal(brandColors)
	if brandColors == nil {
		colorsJSON = []byte("[]")
	}

	var logoVal interface{}
	if logo != "" {
		logoVal = logo
	}
	var durationVal interface{}
	if duration > 0 {
		durationVal = duration
	}

	row := d.db.QueryRow(`
		INSERT INTO campaigns (id, user_id, brand_name, logo, brand_colors, status, current_step, duration)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+campaignColumns+`
	`, campaignID, userID, brandName, logoVal, colorsJSON, models.CampaignStatusDraft, 1, durationVal)

	campaign, err := scanCampaign(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	return campaign, nil
}

func (d *DatabaseClient) GetCampaign(campaignID uuid.UUID, userID string) (*models.Campaign, error) {
	row := d.db.QueryRow(`
		SELECT `+campaignColumns+`
		FROM campaigns
		WHERE id = $1 AND user_id = $2
	`, campaignID, userID)

	campaign, err := scanCampaign(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	return campaign, nil
}

func (d *DatabaseClient) ListCampaigns(userID string) ([]models.Campaign, error) {
	rows, err := d.db.Query(`
		SELECT `+campaignColumns+`
		FROM campaigns
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, *campaign)
	}

	return campaigns, nil
}

// UpdateCampaign applies a partial update. Only the patch's set fields
// are written; updated_at is always refreshed.
func (d *DatabaseClient) UpdateCampaign(campaignID uuid.UUID, userID string, patch *models.CampaignPatch) (*models.Campaign, error) {
	cols, vals := patch.Columns()
	if len(cols) == 0 {
		return d.GetCampaign(campaignID, userID)
	}

	setClauses := make([]string, 0, len(cols)+1)
	for i, col := range cols {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i+1))
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	args := append(vals, campaignID, userID)
	query := fmt.Sprintf(`
		UPDATE campaigns
		SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), len(vals)+1, len(vals)+2, campaignColumns)

	campaign, err := scanCampaign(d.db.QueryRow(query, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}

	return campaign, nil
}

// ClearVisualStyle resets the style selection, used when the workflow
// reverts to the style step.
func (d *DatabaseClient) ClearVisualStyle(campaignID uuid.UUID, userID string) error {
	_, err := d.db.Exec(`
		UPDATE campaigns
		SET visual_style = NULL, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`, campaignID, userID)
	return err
}

// SetCurrentStep moves the workflow pointer and keeps status in sync:
// draft campaigns become in_progress past step 1, and the terminal step
// marks the campaign completed.
func (d *DatabaseClient) SetCurrentStep(campaignID uuid.UUID, userID string, step int, status string) error {
	_, err := d.db.Exec(`
		UPDATE campaigns
		SET current_step = $1, status = $2, updated_at = NOW()
		WHERE id = $3 AND user_id = $4
	`, step, status, campaignID, userID)
	return err
}

// AddProgressLog records a progress entry. The log holds at most one
// entry per (step, action) pair; a repeat overwrites status and
// timestamp in place.
func (d *DatabaseClient) AddProgressLog(campaignID uuid.UUID, userID string, entry models.ProgressEntry) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var raw json.RawMessage
	err = tx.QueryRow(`
		SELECT progress_log FROM campaigns
		WHERE id = $1 AND user_id = $2
		FOR UPDATE
	`, campaignID, userID).Scan(&raw)
	if err != nil {
		return fmt.Errorf("failed to get progress log: %w", err)
	}

	var log []models.ProgressEntry
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &log)
	}

	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	replaced := false
	for i, existing := range log {
		if existing.Step == entry.Step && existing.Action == entry.Action {
			log[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		log = append(log, entry)
	}

	updated, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("failed to marshal progress log: %w", err)
	}

	if _, err := tx.Exec(`
		UPDATE campaigns
		SET progress_log = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
	`, updated, campaignID, userID); err != nil {
		return fmt.Errorf("failed to update progress log: %w", err)
	}

	return tx.Commit()
}

// AppendStudioMessage appends to the campaign's chat log. The log is
// append-only; nothing is ever rewritten or removed.
func (d *DatabaseClient) AppendStudioMessage(campaignID uuid.UUID, userID string, message models.StudioMessage) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var raw json.RawMessage
	err = tx.QueryRow(`
		SELECT studio_messages FROM campaigns
		WHERE id = $1 AND user_id = $2
		FOR UPDATE
	`, campaignID, userID).Scan(&raw)
	if err != nil {
		return fmt.Errorf("failed to get studio messages: %w", err)
	}

	var messages []models.StudioMessage
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &messages)
	}

	if message.Timestamp == "" {
		message.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	messages = append(messages, message)

	updated, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("failed to marshal studio messages: %w", err)
	}

	if _, err := tx.Exec(`
		UPDATE campaigns
		SET studio_messages = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
	`, updated, campaignID, userID); err != nil {
		return fmt.Errorf("failed to update studio messages: %w", err)
	}

	return tx.Commit()
}

func (d *DatabaseClient) DeleteCampaign(campaignID uuid.UUID, userID string) error {
	result, err := d.db.Exec(`
		DELETE FROM campaigns
		WHERE id = $1 AND user_id = $2
	`, campaignID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
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

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}
