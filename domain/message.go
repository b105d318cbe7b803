// Package domain contains core concepts of the presence system.
// This file defines direct messages exchanged between two users.
// Messages are immutable once stored.
package domain

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const previewLength = 30

// DirectMessage is a private message from Sender to Receiver.
// Either Content or FileURL must be set.
type DirectMessage struct {
	ID        uuid.UUID `json:"id"`
	Sender    UserID    `json:"sender"`
	Receiver  UserID    `json:"receiver"`
	Content   string    `json:"message"`
	FileURL   string    `json:"fileUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// Preview returns at most the first 30 runes of the content.
func (m DirectMessage) Preview() string {
	if utf8.RuneCountInString(m.Content) <= previewLength {
		return m.Content
	}
	return string([]rune(m.Content)[:previewLength])
}
