package models

type Skill struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255;not null;unique" json:"name"`
	Category    string `gorm:"size:255" json:"category"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}
