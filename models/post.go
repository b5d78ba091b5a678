package models

import (
	"time"
)

type TeamPostStatus string

const (
	TeamPostOpen   TeamPostStatus = "open"
	TeamPostClosed TeamPostStatus = "closed"
)

// TeamPost is a published call for collaborators. Only the owner mutates it.
type TeamPost struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Title          string         `gorm:"size:255;not null" json:"title"`
	Description    string         `gorm:"type:text" json:"description"`
	MaxMembers     int            `gorm:"not null" json:"max_members"`
	Status         TeamPostStatus `gorm:"size:20;not null;default:'open'" json:"status"`
	OwnerID        uint           `gorm:"not null;index" json:"owner_id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	Owner          User           `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	RequiredSkills []Skill        `gorm:"many2many:post_skills;" json:"required_skills,omitempty"`
}

type TeamRequestStatus string

const (
	TeamRequestPending  TeamRequestStatus = "pending"
	TeamRequestAccepted TeamRequestStatus = "accepted"
	TeamRequestRejected TeamRequestStatus = "rejected"
	// TeamRequestRemoved marks a formerly accepted member the owner kicked.
	// Rejoining takes a brand-new request.
	TeamRequestRemoved TeamRequestStatus = "removed"
)

// TeamRequest is an application to join a team post's project.
type TeamRequest struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	PostID          uint              `gorm:"not null;index:idx_team_request_post" json:"post_id"`
	RequesterID     uint              `gorm:"not null;index:idx_team_request_post" json:"requester_id"`
	Message         *string           `gorm:"type:text" json:"message"`
	ResponseMessage *string           `gorm:"type:text" json:"response_message"`
	Status          TeamRequestStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	Post            TeamPost          `gorm:"foreignKey:PostID" json:"post,omitempty"`
	Requester       User              `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
}

// Active reports whether this request blocks the requester from filing
// another one for the same post.
func (r *TeamRequest) Active() bool {
	return r.Status == TeamRequestPending || r.Status == TeamRequestAccepted
}

// CanTransition encodes the request state machine: the owner decides a
// pending request once, and can later remove an accepted member. Nothing
// moves backwards.
func (r *TeamRequest) CanTransition(to TeamRequestStatus) bool {
	switch r.Status {
	case TeamRequestPending:
		return to == TeamRequestAccepted || to == TeamRequestRejected
	case TeamRequestAccepted:
		return to == TeamRequestRemoved
	}
	return false
}
