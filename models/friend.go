package models

import (
	"time"

	"gorm.io/gorm"
)

// RelationshipStatus describes the connection between a viewer and a target
// user. Exactly one status holds for any ordered pair at any time.
type RelationshipStatus string

const (
	RelationshipSelf            RelationshipStatus = "self"
	RelationshipFriend          RelationshipStatus = "friend"
	RelationshipPendingIncoming RelationshipStatus = "pending_incoming"
	RelationshipPendingOutgoing RelationshipStatus = "pending_outgoing"
	RelationshipNone            RelationshipStatus = "none"
)

type FriendRequestStatus string

const (
	FriendRequestPending   FriendRequestStatus = "pending"
	FriendRequestAccepted  FriendRequestStatus = "accepted"
	FriendRequestRejected  FriendRequestStatus = "rejected"
	FriendRequestCancelled FriendRequestStatus = "cancelled"
)

// FriendRequest is the only stored record behind the friend graph.
// Friendship itself is derived: an accepted request in either direction.
type FriendRequest struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	RequesterID uint                `gorm:"not null;index:idx_friend_request_pair" json:"requester_id"`
	TargetID    uint                `gorm:"not null;index:idx_friend_request_pair" json:"target_id"`
	Message     *string             `gorm:"type:text" json:"message"`
	Status      FriendRequestStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	Requester   User                `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Target      User                `gorm:"foreignKey:TargetID" json:"target,omitempty"`
}

// Active reports whether this request still occupies the pair's slot.
// Rejected and cancelled requests free the pair for a fresh request.
func (r *FriendRequest) Active() bool {
	return r.Status == FriendRequestPending || r.Status == FriendRequestAccepted
}

// CanTransition reports whether the request may move to the given status.
// Every transition starts from pending; accepted, rejected and cancelled
// are terminal.
func (r *FriendRequest) CanTransition(to FriendRequestStatus) bool {
	if r.Status != FriendRequestPending {
		return false
	}
	switch to {
	case FriendRequestAccepted, FriendRequestRejected, FriendRequestCancelled:
		return true
	}
	return false
}

// ResolveRelationship classifies viewer -> target from the request history
// between the two users. Records involving other users must not be passed in;
// rows for other pairs are ignored defensively. Precedence: self, friend,
// pending_incoming, pending_outgoing, none.
func ResolveRelationship(viewerID, targetID uint, between []FriendRequest) RelationshipStatus {
	if viewerID == targetID {
		return RelationshipSelf
	}

	samePair := func(r FriendRequest) bool {
		return (r.RequesterID == viewerID && r.TargetID == targetID) ||
			(r.RequesterID == targetID && r.TargetID == viewerID)
	}

	for _, r := range between {
		if samePair(r) && r.Status == FriendRequestAccepted {
			return RelationshipFriend
		}
	}
	for _, r := range between {
		if r.Status == FriendRequestPending && r.RequesterID == targetID && r.TargetID == viewerID {
			return RelationshipPendingIncoming
		}
	}
	for _, r := range between {
		if r.Status == FriendRequestPending && r.RequesterID == viewerID && r.TargetID == targetID {
			return RelationshipPendingOutgoing
		}
	}
	return RelationshipNone
}

// FriendMessage is a direct message between two friends, readable only
// while the 24-hour window is open.
type FriendMessage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"not null;index" json:"sender_id"`
	ReceiverID uint      `gorm:"not null;index" json:"receiver_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `gorm:"not null;index" json:"expires_at"`
	Sender     User      `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Receiver   User      `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
}

// BeforeCreate pins the expiry at creation time. It is never recomputed.
func (m *FriendMessage) BeforeCreate(tx *gorm.DB) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	if m.ExpiresAt.IsZero() {
		m.ExpiresAt = MessageExpiry(m.CreatedAt)
	}
	return nil
}

func (m *FriendMessage) Visible(now time.Time) bool {
	return now.Before(m.ExpiresAt)
}
