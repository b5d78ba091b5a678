package models

import (
	"time"

	"gorm.io/gorm"
)

// MessageTTL is how long a chat message stays readable. The window is
// exclusive at the boundary: a message created at T is gone at exactly
// T+24h.
const MessageTTL = 24 * time.Hour

// MessageExpiry returns the expiry for a message created at the given time.
func MessageExpiry(createdAt time.Time) time.Time {
	return createdAt.Add(MessageTTL)
}

// TeamMessage is a chat message scoped to a team's current members, with
// the same 24-hour visibility window as FriendMessage.
type TeamMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	SenderID  uint      `gorm:"not null" json:"sender_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	Sender    User      `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}

func (m *TeamMessage) BeforeCreate(tx *gorm.DB) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	if m.ExpiresAt.IsZero() {
		m.ExpiresAt = MessageExpiry(m.CreatedAt)
	}
	return nil
}

func (m *TeamMessage) Visible(now time.Time) bool {
	return now.Before(m.ExpiresAt)
}
