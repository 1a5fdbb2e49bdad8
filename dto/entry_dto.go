package dto

type CreateEntryDTO struct {
	PID       uint    `json:"p_id" form:"p_id" binding:"required" example:"1"`
	EntryDate *string `json:"entry_date,omitempty" form:"entry_date,omitempty" example:"2025-03-01T09:00:00Z"`
}

// UID is optional: regular users always act on their own entry, only
// admins address someone else's.
type UpdateEntryStatusDTO struct {
	PID    uint   `json:"p_id" form:"p_id" binding:"required" example:"1"`
	UID    uint   `json:"u_id,omitempty" form:"u_id,omitempty" example:"2"`
	Status string `json:"status" form:"status" binding:"required,oneof=PENDING APPROVED REJECTED WITHDRAWN" example:"WITHDRAWN"`
}
