package models

import "time"

// Follow is a directed edge: UserID's feed includes AuthorID's posts.
// The composite unique index keeps concurrent follow requests from
// creating duplicate edges.
type Follow struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_author_follow"`
	AuthorID  uint      `json:"author_id" gorm:"index;uniqueIndex:idx_user_author_follow"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Author    User      `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
}
