package model

import (
	"time"

	"taskphoto.com/taskphoto/internal/constants"
)

type Notification struct {
	ID        uint                       `gorm:"primaryKey;autoIncrement" json:"id"`
	Text      string                     `gorm:"not null" json:"text"`
	Type      constants.NotificationType `gorm:"type:varchar(10);not null" json:"type"`
	Read      bool                       `gorm:"column:is_read;index" json:"read"`
	TaskID    *uint                      `json:"task_id,omitempty"`
	TimeLabel string                     `json:"time_label"`
	CreatedAt time.Time                  `json:"created_at"`
}
