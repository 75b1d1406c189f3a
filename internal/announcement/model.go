package announcement

import (
	"time"
)

// Priorities for display ordering on the notice board.
const (
	PriorityHigh   = "high"
	PriorityNormal = "normal"
	PriorityLow    = "low"
)

type Announcement struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedBy string    `gorm:"type:varchar(255);not null" json:"created_by"` // free text, not validated against members
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	IsActive  bool      `gorm:"default:true;index" json:"is_active"`
	Priority  string    `gorm:"type:varchar(20);default:normal" json:"priority"`
}

func (Announcement) TableName() string {
	return "announcements"
}

type CreateAnnouncementRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	CreatedBy string `json:"created_by" binding:"required"`
	Priority  string `json:"priority"`
}
