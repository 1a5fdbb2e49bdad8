package models

import "time"

type Skill struct {
	SID       uint      `gorm:"primaryKey;column:s_id;autoIncrement" json:"s_id"`
	Name      string    `gorm:"size:50;not null;unique" json:"name"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
}

// ProjectSkill links a project to a skill from the catalog.
// Membership per project is exactly the set requested at the last update.
type ProjectSkill struct {
	PID       uint      `gorm:"primaryKey;column:p_id" json:"p_id"`
	SID       uint      `gorm:"primaryKey;column:s_id" json:"s_id"`
	Skill     Skill     `gorm:"foreignKey:SID;references:SID" json:"skill"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
}

func (ProjectSkill) TableName() string {
	return "project_skills"
}
