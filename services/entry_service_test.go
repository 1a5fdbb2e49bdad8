package services

import (
	"errors"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/fumiya-dev/entrymarket-go/models"
	"github.com/fumiya-dev/entrymarket-go/repositories"
	"github.com/fumiya-dev/entrymarket-go/repositories/mock_repositories"
	"github.com/fumiya-dev/entrymarket-go/utils"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupEntryMocks(t *testing.T) (*EntryService,
	*mock_repositories.MockEntryRepo,
	*mock_repositories.MockProjectRepo,
	*gin.Context) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockEntry := mock_repositories.NewMockEntryRepo(ctrl)
	mockProject := mock_repositories.NewMockProjectRepo(ctrl)
	mockAudit := mock_repositories.NewMockAuditRepo(ctrl)

	repos := &repositories.Repos{
		Entry:   mockEntry,
		Project: mockProject,
		Audit:   mockAudit,
	}

	service := NewEntryService(repos)
	ctx, _ := gin.CreateTestContext(nil)

	// override utils
	utils.LogAuditWithConsole = func(ctx *gin.Context, action, resourceType, resourceID string,
		oldData, newData interface{}, msg string, repos repositories.AuditRepo) {
	}

	return service, mockEntry, mockProject, ctx
}

//
// --- TESTS ---
//

// ---------- ApplyOrReactivate ----------
func TestApplyOrReactivate_FirstApplication(t *testing.T) {
	svc, entryRepo, projectRepo, ctx := setupEntryMocks(t)

	projectRepo.EXPECT().ProjectExists(uint(1)).Return(true, nil)
	entryRepo.EXPECT().CreateEntry(gomock.Any()).Return(true, nil)

	res, err := svc.ApplyOrReactivate(ctx, 1, 2, nil)

	assert.NoError(t, err)
	assert.Equal(t, uint(1), res.PID)
	assert.Equal(t, uint(2), res.UID)
	assert.Equal(t, string(models.EntryStatusPending), res.Status)
	assert.WithinDuration(t, time.Now(), res.EntryDate, time.Second)
}

func TestApplyOrReactivate_ExplicitEntryDate(t *testing.T) {
	svc, entryRepo, projectRepo, ctx := setupEntryMocks(t)

	date := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	projectRepo.EXPECT().ProjectExists(uint(1)).Return(true, nil)
	entryRepo.EXPECT().CreateEntry(gomock.Any()).Return(true, nil)

	res, err := svc.ApplyOrReactivate(ctx, 1, 2, &date)

	assert.NoError(t, err)
	assert.Equal(t, date, res.EntryDate)
}

func TestApplyOrReactivate_ProjectMissing(t *testing.T) {
	svc, _, projectRepo, ctx := setupEntryMocks(t)

	projectRepo.EXPECT().ProjectExists(uint(99)).Return(false, nil)

	res, err := svc.ApplyOrReactivate(ctx, 99, 2, nil)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestApplyOrReactivate_AlreadyPending_NoOp(t *testing.T) {
	svc, entryRepo, projectRepo, ctx := setupEntryMocks(t)

	existing := models.Entry{PID: 1, UID: 2, Status: string(models.EntryStatusPending)}
	projectRepo.EXPECT().ProjectExists(uint(1)).Return(true, nil)
	entryRepo.EXPECT().CreateEntry(gomock.Any()).Return(false, nil)
	entryRepo.EXPECT().GetEntry(uint(1), uint(2)).Return(existing, nil)

	res, err := svc.ApplyOrReactivate(ctx, 1, 2, nil)

	assert.NoError(t, err)
	assert.Equal(t, string(models.EntryStatusPending), res.Status)
}

func TestApplyOrReactivate_Withdrawn_Reactivates(t *testing.T) {
	svc, entryRepo, projectRepo, ctx := setupEntryMocks(t)

	originalDate := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	existing := models.Entry{PID: 1, UID: 2, Status: string(models.EntryStatusWithdrawn), EntryDate: originalDate}

	projectRepo.EXPECT().ProjectExists(uint(1)).Return(true, nil)
	entryRepo.EXPECT().CreateEntry(gomock.Any()).Return(false, nil)
	entryRepo.EXPECT().GetEntry(uint(1), uint(2)).Return(existing, nil)
	entryRepo.EXPECT().UpdateEntryStatus(uint(1), uint(2), models.EntryStatusPending).Return(nil)

	res, err := svc.ApplyOrReactivate(ctx, 1, 2, nil)

	assert.NoError(t, err)
	assert.Equal(t, string(models.EntryStatusPending), res.Status)
	// Re-applying keeps the original application date.
	assert.Equal(t, originalDate, res.EntryDate)
}

func TestApplyOrReactivate_Approved_Fails(t *testing.T) {
	svc, entryRepo, projectRepo, ctx := setupEntryMocks(t)

	existing := models.Entry{PID: 1, UID: 2, Status: string(models.EntryStatusApproved)}
	projectRepo.EXPECT().ProjectExists(uint(1)).Return(true, nil)
	entryRepo.EXPECT().CreateEntry(gomock.Any()).Return(false, nil)
	entryRepo.EXPECT().GetEntry(uint(1), uint(2)).Return(existing, nil)

	res, err := svc.ApplyOrReactivate(ctx, 1, 2, nil)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestApplyOrReactivate_Rejected_Fails(t *testing.T) {
	svc, entryRepo, projectRepo, ctx := setupEntryMocks(t)

	existing := models.Entry{PID: 1, UID: 2, Status: string(models.EntryStatusRejected)}
	projectRepo.EXPECT().ProjectExists(uint(1)).Return(true, nil)
	entryRepo.EXPECT().CreateEntry(gomock.Any()).Return(false, nil)
	entryRepo.EXPECT().GetEntry(uint(1), uint(2)).Return(existing, nil)

	res, err := svc.ApplyOrReactivate(ctx, 1, 2, nil)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestApplyOrReactivate_Fail_CreateRepo(t *testing.T) {
	svc, entryRepo, projectRepo, ctx := setupEntryMocks(t)

	projectRepo.EXPECT().ProjectExists(uint(1)).Return(true, nil)
	entryRepo.EXPECT().CreateEntry(gomock.Any()).Return(false, errors.New("db error"))

	res, err := svc.ApplyOrReactivate(ctx, 1, 2, nil)

	assert.Nil(t, res)
	assert.Error(t, err)
}

// ---------- Transition ----------
func TestTransition_UserWithdrawsPending(t *testing.T) {
	svc, entryRepo, _, ctx := setupEntryMocks(t)

	entry := models.Entry{PID: 1, UID: 2, Status: string(models.EntryStatusPending)}
	entryRepo.EXPECT().GetEntry(uint(1), uint(2)).Return(entry, nil)
	entryRepo.EXPECT().UpdateEntryStatus(uint(1), uint(2), models.EntryStatusWithdrawn).Return(nil)

	res, err := svc.Transition(ctx, 1, 2, models.EntryStatusWithdrawn, models.UserRoleUser)

	assert.NoError(t, err)
	assert.Equal(t, string(models.EntryStatusWithdrawn), res.Status)
}

func TestTransition_UserReappliesWithdrawn(t *testing.T) {
	svc, entryRepo, _, ctx := setupEntryMocks(t)

	entry := models.Entry{PID: 1, UID: 2, Status: string(models.EntryStatusWithdrawn)}
	entryRepo.EXPECT().GetEntry(uint(1), uint(2)).Return(entry, nil)
	entryRepo.EXPECT().UpdateEntryStatus(uint(1), uint(2), models.EntryStatusPending).Return(nil)

	res, err := svc.Transition(ctx, 1, 2, models.EntryStatusPending, models.UserRoleUser)

	assert.NoError(t, err)
	assert.Equal(t, string(models.EntryStatusPending), res.Status)
}

func TestTransition_AdminApprovesPending(t *testing.T) {
	svc, entryRepo, _, ctx := setupEntryMocks(t)

	entry := models.Entry{PID: 1, UID: 2, Status: string(models.EntryStatusPending)}
	entryRepo.EXPECT().GetEntry(uint(1), uint(2)).Return(entry, nil)
	entryRepo.EXPECT().UpdateEntryStatus(uint(1), uint(2), models.EntryStatusApproved).Return(nil)

	res, err := svc.Transition(ctx, 1, 2, models.EntryStatusApproved, models.UserRoleAdmin)

	assert.NoError(t, err)
	assert.Equal(t, string(models.EntryStatusApproved), res.Status)
}

func TestTransition_AdminRejectsPending(t *testing.T) {
	svc, entryRepo, _, ctx := setupEntryMocks(t)

	entry := models.Entry{PID: 1, UID: 2, Status: string(models.EntryStatusPending)}
	entryRepo.EXPECT().GetEntry(uint(1), uint(2)).Return(entry, nil)
	entryRepo.EXPECT().UpdateEntryStatus(uint(1), uint(2), models.EntryStatusRejected).Return(nil)

	res, err := svc.Transition(ctx, 1, 2, models.EntryStatusRejected, models.UserRoleAdmin)

	assert.NoError(t, err)
	assert.Equal(t, string(models.EntryStatusRejected), res.Status)
}

func TestTransition_UserMayNotApprove(t *testing.T) {
	svc, entryRepo, _, ctx := setupEntryMocks(t)

	entry := models.Entry{PID: 1, UID: 2, Status: string(models.EntryStatusPending)}
	entryRepo.EXPECT().GetEntry(uint(1), uint(2)).Return(entry, nil)

	res, err := svc.Transition(ctx, 1, 2, models.EntryStatusApproved, models.UserRoleUser)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransition_TerminalStateIsFrozen(t *testing.T) {
	svc, entryRepo, _, ctx := setupEntryMocks(t)

	for _, current := range []models.EntryStatus{models.EntryStatusApproved, models.EntryStatusRejected} {
		entry := models.Entry{PID: 1, UID: 2, Status: string(current)}
		entryRepo.EXPECT().GetEntry(uint(1), uint(2)).Return(entry, nil)

		res, err := svc.Transition(ctx, 1, 2, models.EntryStatusWithdrawn, models.UserRoleAdmin)

		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	}
}

func TestTransition_WithdrawRequiresPending(t *testing.T) {
	svc, entryRepo, _, ctx := setupEntryMocks(t)

	entry := models.Entry{PID: 1, UID: 2, Status: string(models.EntryStatusWithdrawn)}
	entryRepo.EXPECT().GetEntry(uint(1), uint(2)).Return(entry, nil)

	res, err := svc.Transition(ctx, 1, 2, models.EntryStatusWithdrawn, models.UserRoleUser)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransition_ApproveRequiresPending(t *testing.T) {
	svc, entryRepo, _, ctx := setupEntryMocks(t)

	entry := models.Entry{PID: 1, UID: 2, Status: string(models.EntryStatusWithdrawn)}
	entryRepo.EXPECT().GetEntry(uint(1), uint(2)).Return(entry, nil)

	res, err := svc.Transition(ctx, 1, 2, models.EntryStatusApproved, models.UserRoleAdmin)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransition_UnknownStatus(t *testing.T) {
	svc, _, _, ctx := setupEntryMocks(t)

	res, err := svc.Transition(ctx, 1, 2, models.EntryStatus("ARCHIVED"), models.UserRoleAdmin)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransition_EntryMissing(t *testing.T) {
	svc, entryRepo, _, ctx := setupEntryMocks(t)

	entryRepo.EXPECT().GetEntry(uint(1), uint(2)).Return(models.Entry{}, gorm.ErrRecordNotFound)

	res, err := svc.Transition(ctx, 1, 2, models.EntryStatusWithdrawn, models.UserRoleUser)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestTransition_KeepsEntryDate(t *testing.T) {
	svc, entryRepo, _, ctx := setupEntryMocks(t)

	date := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	entry := models.Entry{PID: 1, UID: 2, Status: string(models.EntryStatusPending), EntryDate: date}
	entryRepo.EXPECT().GetEntry(uint(1), uint(2)).Return(entry, nil)
	entryRepo.EXPECT().UpdateEntryStatus(uint(1), uint(2), models.EntryStatusWithdrawn).Return(nil)

	res, err := svc.Transition(ctx, 1, 2, models.EntryStatusWithdrawn, models.UserRoleUser)

	assert.NoError(t, err)
	assert.Equal(t, date, res.EntryDate)
}

// ---------- Find ----------
func TestFind_Present(t *testing.T) {
	svc, entryRepo, _, _ := setupEntryMocks(t)

	entry := models.Entry{PID: 1, UID: 2, Status: string(models.EntryStatusPending)}
	entryRepo.EXPECT().GetEntry(uint(1), uint(2)).Return(entry, nil)

	res, err := svc.Find(1, 2)

	assert.NoError(t, err)
	assert.Equal(t, uint(1), res.PID)
}

func TestFind_Absent(t *testing.T) {
	svc, entryRepo, _, _ := setupEntryMocks(t)

	entryRepo.EXPECT().GetEntry(uint(1), uint(2)).Return(models.Entry{}, gorm.ErrRecordNotFound)

	res, err := svc.Find(1, 2)

	assert.NoError(t, err)
	assert.Nil(t, res)
}

// ---------- List ----------
func TestList_PassesFilter(t *testing.T) {
	svc, entryRepo, _, _ := setupEntryMocks(t)

	status := models.EntryStatusPending
	uid := uint(2)
	filter := repositories.EntryFilter{Status: &status, UID: &uid}
	entries := []models.Entry{{PID: 1, UID: 2, Status: string(status)}}
	entryRepo.EXPECT().ListEntries(filter).Return(entries, nil)

	res, err := svc.List(filter)

	assert.NoError(t, err)
	assert.Len(t, res, 1)
}

// ---------- Delete ----------
func TestDelete_Success(t *testing.T) {
	svc, entryRepo, _, ctx := setupEntryMocks(t)

	entry := models.Entry{PID: 1, UID: 2, Status: string(models.EntryStatusApproved)}
	entryRepo.EXPECT().GetEntry(uint(1), uint(2)).Return(entry, nil)
	entryRepo.EXPECT().DeleteEntry(uint(1), uint(2)).Return(nil)

	err := svc.Delete(ctx, 1, 2)

	assert.NoError(t, err)
}

func TestDelete_Missing(t *testing.T) {
	svc, entryRepo, _, ctx := setupEntryMocks(t)

	entryRepo.EXPECT().GetEntry(uint(1), uint(2)).Return(models.Entry{}, gorm.ErrRecordNotFound)

	err := svc.Delete(ctx, 1, 2)

	assert.ErrorIs(t, err, ErrEntryNotFound)
}

// ---------- Full lifecycle ----------
// apply -> withdraw -> re-apply -> approve, with the entry date surviving
// every step.
func TestEntryLifecycle_RoundTrip(t *testing.T) {
	svc, entryRepo, projectRepo, ctx := setupEntryMocks(t)

	date := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	projectRepo.EXPECT().ProjectExists(uint(1)).Return(true, nil)
	entryRepo.EXPECT().CreateEntry(gomock.Any()).Return(true, nil)

	applied, err := svc.ApplyOrReactivate(ctx, 1, 2, &date)
	assert.NoError(t, err)
	assert.Equal(t, string(models.EntryStatusPending), applied.Status)

	state := *applied
	entryRepo.EXPECT().GetEntry(uint(1), uint(2)).Return(state, nil)
	entryRepo.EXPECT().UpdateEntryStatus(uint(1), uint(2), models.EntryStatusWithdrawn).Return(nil)

	withdrawn, err := svc.Transition(ctx, 1, 2, models.EntryStatusWithdrawn, models.UserRoleUser)
	assert.NoError(t, err)
	assert.Equal(t, string(models.EntryStatusWithdrawn), withdrawn.Status)

	state = *withdrawn
	projectRepo.EXPECT().ProjectExists(uint(1)).Return(true, nil)
	entryRepo.EXPECT().CreateEntry(gomock.Any()).Return(false, nil)
	entryRepo.EXPECT().GetEntry(uint(1), uint(2)).Return(state, nil)
	entryRepo.EXPECT().UpdateEntryStatus(uint(1), uint(2), models.EntryStatusPending).Return(nil)

	reapplied, err := svc.ApplyOrReactivate(ctx, 1, 2, nil)
	assert.NoError(t, err)
	assert.Equal(t, string(models.EntryStatusPending), reapplied.Status)
	assert.Equal(t, date, reapplied.EntryDate)

	state = *reapplied
	entryRepo.EXPECT().GetEntry(uint(1), uint(2)).Return(state, nil)
	entryRepo.EXPECT().UpdateEntryStatus(uint(1), uint(2), models.EntryStatusApproved).Return(nil)

	approved, err := svc.Transition(ctx, 1, 2, models.EntryStatusApproved, models.UserRoleAdmin)
	assert.NoError(t, err)
	assert.Equal(t, string(models.EntryStatusApproved), approved.Status)
	assert.Equal(t, date, approved.EntryDate)
}
