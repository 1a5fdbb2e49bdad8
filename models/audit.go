package models

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLog struct {
	LogID        string         `gorm:"primaryKey;column:log_id;size:36" json:"log_id"`
	UserID       uint           `gorm:"column:user_id" json:"user_id"`
	Action       string         `gorm:"size:20;not null" json:"action"`
	ResourceType string         `gorm:"size:30;not null" json:"resource_type"`
	ResourceID   string         `gorm:"size:100" json:"resource_id"`
	OldData      datatypes.JSON `json:"old_data"`
	NewData      datatypes.JSON `json:"new_data"`
	IP           string         `gorm:"size:45" json:"ip"`
	UserAgent    string         `gorm:"size:255" json:"user_agent"`
	Description  string         `gorm:"size:255" json:"description"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
