package models

import "time"

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	Role      string    `json:"role" gorm:"not null;default:'user'"`
	CreatedAt time.Time `json:"createdAt"`
}
