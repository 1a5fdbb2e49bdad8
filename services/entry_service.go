package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/fumiya-dev/entrymarket-go/models"
	"github.com/fumiya-dev/entrymarket-go/repositories"
	"github.com/fumiya-dev/entrymarket-go/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	ErrEntryNotFound     = errors.New("entry not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// EntryService owns the entry lifecycle:
//
//	(absent) --apply--> PENDING --withdraw--> WITHDRAWN --re-apply--> PENDING
//	PENDING --admin review--> APPROVED | REJECTED (terminal)
//
// ApplyOrReactivate covers the two user-facing creation edges; every other
// status change goes through Transition, which validates the full table.
type EntryService struct {
	Repos *repositories.Repos
}

func NewEntryService(repos *repositories.Repos) *EntryService {
	return &EntryService{
		Repos: repos,
	}
}

// ApplyOrReactivate creates a PENDING entry for (pid, uid), or flips an
// existing WITHDRAWN entry back to PENDING. The entry date is set once at
// creation and never touched afterwards. When two first-time applications
// race, the insert is an atomic upsert; the loser falls through to the
// existing-row branch instead of failing on the uniqueness constraint.
func (s *EntryService) ApplyOrReactivate(c *gin.Context, pid, uid uint, entryDate *time.Time) (*models.Entry, error) {
	exists, err := s.Repos.Project.ProjectExists(pid)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrProjectNotFound
	}

	date := time.Now()
	if entryDate != nil {
		date = *entryDate
	}

	entry := &models.Entry{
		PID:       pid,
		UID:       uid,
		Status:    string(models.EntryStatusPending),
		EntryDate: date,
	}

	created, err := s.Repos.Entry.CreateEntry(entry)
	if err != nil {
		return nil, err
	}
	if created {
		utils.LogAuditWithConsole(c, "create", "entry",
			fmt.Sprintf("p_id=%d,u_id=%d", pid, uid), nil, entry, "", s.Repos.Audit)
		return entry, nil
	}

	existing, err := s.Repos.Entry.GetEntry(pid, uid)
	if err != nil {
		return nil, err
	}

	switch models.EntryStatus(existing.Status) {
	case models.EntryStatusPending:
		// Re-applying while already pending is a no-op.
		return &existing, nil
	case models.EntryStatusWithdrawn:
		if err := s.Repos.Entry.UpdateEntryStatus(pid, uid, models.EntryStatusPending); err != nil {
			return nil, err
		}
		oldEntry := existing
		existing.Status = string(models.EntryStatusPending)
		utils.LogAuditWithConsole(c, "update", "entry",
			fmt.Sprintf("p_id=%d,u_id=%d", pid, uid), oldEntry, existing, "re-apply", s.Repos.Audit)
		return &existing, nil
	default:
		return nil, fmt.Errorf("%w: cannot re-apply, entry is %s", ErrInvalidTransition, existing.Status)
	}
}

// Transition applies one validated status change. The entry date is never
// modified here.
func (s *EntryService) Transition(c *gin.Context, pid, uid uint, target models.EntryStatus, role models.UserRole) (*models.Entry, error) {
	if !models.ValidEntryStatus(target) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, target)
	}

	entry, err := s.Repos.Entry.GetEntry(pid, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	current := models.EntryStatus(entry.Status)
	if current.IsTerminal() {
		return nil, fmt.Errorf("%w: entry is already %s", ErrInvalidTransition, current)
	}
	if !utils.CanSetEntryStatus(role, target) {
		return nil, fmt.Errorf("%w: role %s may not set status %s", ErrInvalidTransition, role, target)
	}

	switch target {
	case models.EntryStatusWithdrawn:
		if current != models.EntryStatusPending {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, target)
		}
	case models.EntryStatusPending:
		if current != models.EntryStatusWithdrawn {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, target)
		}
	case models.EntryStatusApproved, models.EntryStatusRejected:
		if current != models.EntryStatusPending {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, target)
		}
	}

	if err := s.Repos.Entry.UpdateEntryStatus(pid, uid, target); err != nil {
		return nil, err
	}

	oldEntry := entry
	entry.Status = string(target)
	utils.LogAuditWithConsole(c, "update", "entry",
		fmt.Sprintf("p_id=%d,u_id=%d", pid, uid), oldEntry, entry, "", s.Repos.Audit)

	return &entry, nil
}

// Find returns the entry for (pid, uid), or nil when no application exists.
// Absence is an expected result, not an error.
func (s *EntryService) Find(pid, uid uint) (*models.Entry, error) {
	entry, err := s.Repos.Entry.GetEntry(pid, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// List returns entries matching the filter, newest application first.
func (s *EntryService) List(filter repositories.EntryFilter) ([]models.Entry, error) {
	return s.Repos.Entry.ListEntries(filter)
}

// Delete removes the row outright, bypassing the state machine. Reserved for
// administrative cleanup.
func (s *EntryService) Delete(c *gin.Context, pid, uid uint) error {
	entry, err := s.Repos.Entry.GetEntry(pid, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEntryNotFound
		}
		return err
	}

	if err := s.Repos.Entry.DeleteEntry(pid, uid); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "entry",
		fmt.Sprintf("p_id=%d,u_id=%d", pid, uid), entry, nil, "", s.Repos.Audit)
	return nil
}
