package models

import "time"

type Project struct {
	PID         uint           `gorm:"primaryKey;column:p_id;autoIncrement" json:"p_id"`
	Title       string         `gorm:"size:100;not null" json:"title"`
	Description *string        `gorm:"type:text" json:"description"`
	Price       *float64       `gorm:"type:numeric" json:"price"`
	Deadline    *time.Time     `json:"deadline"`
	CreatorID   uint           `gorm:"column:creator_id;not null" json:"creator_id"`
	Creator     *User          `gorm:"foreignKey:CreatorID;references:UID" json:"creator,omitempty"`
	Skills      []ProjectSkill `gorm:"foreignKey:PID;references:PID" json:"skills,omitempty"`
	CreatedAt   time.Time      `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt   time.Time      `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}
