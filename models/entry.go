package models

import "time"

type EntryStatus string

const (
	EntryStatusPending   EntryStatus = "PENDING"
	EntryStatusApproved  EntryStatus = "APPROVED"
	EntryStatusRejected  EntryStatus = "REJECTED"
	EntryStatusWithdrawn EntryStatus = "WITHDRAWN"
)

// ValidEntryStatus reports whether s is one of the four lifecycle statuses.
func ValidEntryStatus(s EntryStatus) bool {
	switch s {
	case EntryStatusPending, EntryStatusApproved, EntryStatusRejected, EntryStatusWithdrawn:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are permitted from s.
func (s EntryStatus) IsTerminal() bool {
	return s == EntryStatusApproved || s == EntryStatusRejected
}

// Entry is a user's application to a project. At most one row exists per
// (p_id, u_id) pair; the composite primary key enforces it.
type Entry struct {
	PID       uint      `gorm:"primaryKey;column:p_id" json:"p_id"`
	UID       uint      `gorm:"primaryKey;column:u_id" json:"u_id"`
	Status    string    `gorm:"type:entry_status;default:'PENDING';not null" json:"status"`
	EntryDate time.Time `gorm:"column:entry_date;not null" json:"entry_date"`
	Project   *Project  `gorm:"foreignKey:PID;references:PID" json:"project,omitempty"`
	User      *User     `gorm:"foreignKey:UID;references:UID" json:"user,omitempty"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}
