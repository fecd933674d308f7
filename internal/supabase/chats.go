package supabase

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"adstudio-backend/internal/models"
)

// Legacy chat sessions predate the per-campaign studio message log.
// They remain readable and writable for older dashboard clients.

func (d *DatabaseClient) CreateChatSession(sessionID, campaignID uuid.UUID, userID, title string) (*models.ChatSession, error) {
	// The campaign lookup doubles as the ownership check.
	if _, err := d.GetCampaign(campaignID, userID); err != nil {
		return nil, err
	}

	var session models.ChatSession
	err := d.db.QueryRow(`
		INSERT INTO chat_sessions (id, campaign_id, title)
		VALUES ($1, $2, $3)
		RETURNING id, campaign_id, title, created_at
	`, sessionID, campaignID, title).Scan(
		&session.ID, &session.CampaignID, &session.Title, &session.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat session: %w", err)
	}

	return &session, nil
}

func (d *DatabaseClient) ListChatSessions(campaignID uuid.UUID, userID string) ([]models.ChatSession, error) {
	if _, err := d.GetCampaign(campaignID, userID); err != nil {
		return nil, err
	}

	rows, err := d.db.Query(`
		SELECT id, campaign_id, title, created_at
		FROM chat_sessions
		WHERE campaign_id = $1
		ORDER BY created_at DESC
	`, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.ChatSession
	for rows.Next() {
		var session models.ChatSession
		if err := rows.Scan(&session.ID, &session.CampaignID, &session.Title, &session.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat session: %w", err)
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

func (d *DatabaseClient) AddChatMessage(messageID, sessionID uuid.UUID, userID, role, content string) (*models.ChatMessage, error) {
	if err := d.checkSessionOwnership(sessionID, userID); err != nil {
		return nil, err
	}

	var message models.ChatMessage
	err := d.db.QueryRow(`
		INSERT INTO chat_messages (id, session_id, role, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, session_id, role, content, created_at
	`, messageID, sessionID, role, content).Scan(
		&message.ID, &message.SessionID, &message.Role, &message.Content, &message.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add chat message: %w", err)
	}

	return &message, nil
}

func (d *DatabaseClient) ListChatMessages(sessionID uuid.UUID, userID string) ([]models.ChatMessage, error) {
	if err := d.checkSessionOwnership(sessionID, userID); err != nil {
		return nil, err
	}

	rows, err := d.db.Query(`
		SELECT id, session_id, role, content, created_at
		FROM chat_messages
		WHERE session_id = $1
		ORDER BY created_at ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ChatMessage
	for rows.Next() {
		var message models.ChatMessage
		if err := rows.Scan(&message.ID, &message.SessionID, &message.Role, &message.Content, &message.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		messages = append(messages, message)
	}

	return messages, nil
}

func (d *DatabaseClient) checkSessionOwnership(sessionID uuid.UUID, userID string) error {
	var count int
	err := d.db.QueryRow(`
		SELECT COUNT(*)
		FROM chat_sessions s
		JOIN campaigns c ON c.id = s.campaign_id
		WHERE s.id = $1 AND c.user_id = $2
	`, sessionID, userID).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check session ownership: %w", err)
	}
	if count == 0 {
		return sql.ErrNoRows
	}
	return nil
}
