package models

// Group is a named topic posts can optionally belong to
type Group struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"size:200"`
	Slug        string `json:"slug" gorm:"size:50;uniqueIndex"` // URL key
	Description string `json:"description"`
}
