package models

import "time"

// User is an author account. Posts, comments and follow edges hang off it.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:150;uniqueIndex"` // unique across the system, used as URL key
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// SignupRequest defines the form fields for creating a new user
type SignupRequest struct {
	Username string `form:"username" validate:"required,min=2,max=150"`
	Password string `form:"password" validate:"required,min=6"`
}

// LoginRequest defines the form fields for logging in
type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}
