package model

import (
	"time"

	"taskphoto.com/taskphoto/internal/constants"
)

// User ids are assigned by the directory as max(id)+1, so the column is not auto-incremented.
type User struct {
	ID           uint           `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"not null;index" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Role         constants.Role `gorm:"type:varchar(10);not null" json:"role"`
	Avatar       string         `gorm:"size:4" json:"avatar"`
	Department   string         `json:"department"`
	Active       bool           `json:"active"`
	CreatedLabel string         `json:"created_label"`
	CreatedAt    time.Time      `json:"created_at"`
}
