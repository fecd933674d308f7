package models

import (
	"time"

	"github.com/google/uuid"
)

// BlueskyAccount is a Bluesky identity linked to a user, recorded after
// a successful login so the dashboard can show the connected handle.
type BlueskyAccount struct {
	ID          uuid.UUID
	UserID      string
	Handle      string
	DID         string
	DisplayName string
	Avatar      string
	CreatedAt   time.Time
}

func (a *BlueskyAccount) ToResponse() BlueskyAccountResponse {
	return BlueskyAccountResponse{
		ID:          a.ID.String(),
		Handle:      a.Handle,
		DID:         a.DID,
		DisplayName: a.DisplayName,
		Avatar:      a.Avatar,
		CreatedAt:   a.CreatedAt,
	}
}

type BlueskyAccountResponse struct {
	ID          string    `json:"account_id"`
	Handle      string    `json:"handle"`
	DID         string    `json:"did"`
	DisplayName string    `json:"display_name,omitempty"`
	Avatar      string    `json:"avatar,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
