package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Email          string    `gorm:"size:255;not null;unique" json:"email"`
	Password       string    `gorm:"size:255" json:"-"`
	GoogleID       *string   `gorm:"size:255;uniqueIndex" json:"-"`
	ProfilePicture *string   `gorm:"size:512" json:"profile_picture"`
	Bio            *string   `gorm:"type:text" json:"bio"`
	Department     *string   `gorm:"size:255" json:"department"`
	Year           *string   `gorm:"size:50" json:"year"`
	RollNumber     *string   `gorm:"size:50" json:"roll_number"`
	Linkedin       *string   `gorm:"size:512" json:"linkedin"`
	Github         *string   `gorm:"size:512" json:"github"`
	IsAdmin        bool      `gorm:"not null;default:false" json:"is_admin"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Skills         []Skill   `gorm:"many2many:user_skills;" json:"skills,omitempty"`
}

// UserSummary is the compact shape embedded in friend lists, rosters and
// request payloads.
type UserSummary struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	ProfilePicture *string `json:"profile_picture"`
	Bio            *string `json:"bio"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
		Bio:            u.Bio,
	}
}

// SetPassword hashes and stores the password for local accounts.
// Google-only accounts never have one.
func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// ValidatePassword checks if the provided password matches the stored hash
func (u *User) ValidatePassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}
