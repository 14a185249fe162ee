package model

import (
	"time"

	"taskphoto.com/taskphoto/internal/constants"
)

type Task struct {
	ID             uint                 `gorm:"primaryKey;autoIncrement" json:"id"`
	Title          string               `gorm:"not null" json:"title"`
	Description    string               `json:"description"`
	Category       string               `json:"category"`
	Assignee       string               `gorm:"index" json:"assignee"`
	AssigneeAvatar string               `gorm:"size:4" json:"assignee_avatar"`
	Status         constants.TaskStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Priority       constants.Priority   `gorm:"type:varchar(10);not null" json:"priority"`
	Deadline       string               `json:"deadline"`
	Location       string               `json:"location"`
	PhotoRequired  bool                 `json:"photo_required"`
	PhotoURL       *string              `json:"photo_url,omitempty"`
	SubmittedAt    *time.Time           `json:"submitted_at,omitempty"`
	CreatedLabel   string               `json:"created_label"`
	Version        uint                 `gorm:"not null;default:1" json:"version"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}
