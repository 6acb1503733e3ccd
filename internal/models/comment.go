package models

import "time"

// Comment is a reply attached to exactly one post. Newest-first.
type Comment struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	PostID   uint      `json:"post_id" gorm:"index;not null"`
	Post     Post      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	AuthorID uint      `json:"author_id" gorm:"index;not null"`
	Author   User      `json:"author" gorm:"constraint:OnDelete:CASCADE"`
	Text     string    `json:"text" gorm:"not null"`
	Created  time.Time `json:"created" gorm:"autoCreateTime"`
}
