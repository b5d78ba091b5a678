package models

import "time"

// Event is an entry on the events board: hackathons, meetups, contests.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Link        string    `gorm:"size:512" json:"link"`
	ImageURL    *string   `gorm:"size:512" json:"image_url"`
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	Owner       User      `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}
