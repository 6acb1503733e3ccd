package models

import "time"

// Session backs the auth cookie. ID is a UUID handed to the browser.
type Session struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	UserID    uint      `json:"user_id" gorm:"index"`
	User      User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
