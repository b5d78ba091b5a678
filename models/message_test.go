package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMessageExpiry(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, createdAt.Add(24*time.Hour), MessageExpiry(createdAt))
}

func TestFriendMessageVisibility(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	msg := FriendMessage{CreatedAt: createdAt, ExpiresAt: MessageExpiry(createdAt)}

	assert.True(t, msg.Visible(createdAt))
	assert.True(t, msg.Visible(createdAt.Add(23*time.Hour+59*time.Minute)))

	// The boundary is exclusive: gone at exactly 24 hours
	assert.False(t, msg.Visible(createdAt.Add(24*time.Hour)))
	assert.False(t, msg.Visible(createdAt.Add(24*time.Hour+59*time.Minute)))
}

func TestTeamMessageVisibility(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	msg := TeamMessage{CreatedAt: createdAt, ExpiresAt: MessageExpiry(createdAt)}

	assert.True(t, msg.Visible(createdAt.Add(time.Hour)))
	assert.False(t, msg.Visible(createdAt.Add(24*time.Hour)))
}

func TestFriendMessageBeforeCreateStampsExpiry(t *testing.T) {
	msg := FriendMessage{SenderID: 1, ReceiverID: 2, Content: "hi"}
	err := msg.BeforeCreate(nil)

	assert.NoError(t, err)
	assert.False(t, msg.CreatedAt.IsZero())
	assert.Equal(t, msg.CreatedAt.Add(24*time.Hour), msg.ExpiresAt)
}

func TestTeamMessageBeforeCreateKeepsExistingExpiry(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	expiresAt := createdAt.Add(24 * time.Hour)
	msg := TeamMessage{CreatedAt: createdAt, ExpiresAt: expiresAt}

	err := msg.BeforeCreate(nil)

	assert.NoError(t, err)
	assert.Equal(t, createdAt, msg.CreatedAt)
	assert.Equal(t, expiresAt, msg.ExpiresAt)
}
