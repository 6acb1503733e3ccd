package models

import "time"

// Post is a user-authored text entry, optionally tagged to a Group and an image.
// Listings are newest-first, ties broken by primary key.
type Post struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Text     string    `json:"text" gorm:"not null"`
	Created  time.Time `json:"created" gorm:"autoCreateTime;index"`
	AuthorID uint      `json:"author_id" gorm:"index;not null"`
	Author   User      `json:"author" gorm:"constraint:OnDelete:CASCADE"`
	GroupID  *uint     `json:"group_id" gorm:"index"`
	Group    *Group    `json:"group,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	Image    string    `json:"image,omitempty"` // media-relative path, empty when no image
}
