package services

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/fumiya-dev/entrymarket-go/dto"
	"github.com/fumiya-dev/entrymarket-go/models"
	"github.com/fumiya-dev/entrymarket-go/repositories"
	"github.com/fumiya-dev/entrymarket-go/repositories/mock_repositories"
	"github.com/fumiya-dev/entrymarket-go/utils"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupProjectMocks(t *testing.T) (*ProjectService,
	*mock_repositories.MockProjectRepo,
	*mock_repositories.MockSkillRepo,
	*gin.Context) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProject := mock_repositories.NewMockProjectRepo(ctrl)
	mockSkill := mock_repositories.NewMockSkillRepo(ctrl)
	mockAudit := mock_repositories.NewMockAuditRepo(ctrl)

	repos := &repositories.Repos{
		Project: mockProject,
		Skill:   mockSkill,
		Audit:   mockAudit,
	}

	service := NewProjectService(repos)
	ctx, _ := gin.CreateTestContext(nil)

	// override utils
	utils.LogAuditWithConsole = func(ctx *gin.Context, action, resourceType, resourceID string,
		oldData, newData interface{}, msg string, repos repositories.AuditRepo) {
	}

	return service, mockProject, mockSkill, ctx
}

//
// --- TESTS ---
//

// ---------- CreateProject ----------
func TestCreateProject_Success(t *testing.T) {
	svc, projectRepo, skillRepo, ctx := setupProjectMocks(t)

	skillRepo.EXPECT().GetSkillByName("Go").Return(models.Skill{SID: 10, Name: "Go"}, nil)
	skillRepo.EXPECT().GetSkillByName("PostgreSQL").Return(models.Skill{SID: 11, Name: "PostgreSQL"}, nil)
	projectRepo.EXPECT().CreateProject(gomock.Any()).DoAndReturn(func(p *models.Project) error {
		p.PID = 7
		return nil
	})
	projectRepo.EXPECT().AddProjectSkills(uint(7), []uint{10, 11}).Return(nil)
	projectRepo.EXPECT().GetProjectByID(uint(7)).Return(models.Project{PID: 7, Title: "Billing API rewrite"}, nil)

	input := dto.CreateProjectDTO{
		Title:      "Billing API rewrite",
		SkillNames: []string{"Go", "PostgreSQL"},
	}
	res, err := svc.CreateProject(ctx, 1, input)

	assert.NoError(t, err)
	assert.Equal(t, uint(7), res.PID)
}

func TestCreateProject_UnknownSkill(t *testing.T) {
	svc, _, skillRepo, ctx := setupProjectMocks(t)

	skillRepo.EXPECT().GetSkillByName("COBOL").Return(models.Skill{}, gorm.ErrRecordNotFound)

	input := dto.CreateProjectDTO{Title: "Legacy rescue", SkillNames: []string{"COBOL"}}
	res, err := svc.CreateProject(ctx, 1, input)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrSkillNotFound)
}

func TestCreateProject_InvalidDeadline(t *testing.T) {
	svc, _, _, ctx := setupProjectMocks(t)

	bad := "next tuesday"
	input := dto.CreateProjectDTO{Title: "Rush job", Deadline: &bad}
	res, err := svc.CreateProject(ctx, 1, input)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrInvalidDeadline)
}

func TestCreateProject_Fail_CreateRepo(t *testing.T) {
	svc, projectRepo, _, ctx := setupProjectMocks(t)

	projectRepo.EXPECT().CreateProject(gomock.Any()).Return(errors.New("db error"))

	input := dto.CreateProjectDTO{Title: "Doomed"}
	res, err := svc.CreateProject(ctx, 1, input)

	assert.Nil(t, res)
	assert.Error(t, err)
}

// ---------- UpdateProject ----------
func TestUpdateProject_PatchesFields(t *testing.T) {
	svc, projectRepo, _, ctx := setupProjectMocks(t)

	existing := models.Project{PID: 7, Title: "Old title", CreatorID: 1}
	newTitle := "New title"
	price := 9000.0

	projectRepo.EXPECT().GetProjectByID(uint(7)).Return(existing, nil)
	projectRepo.EXPECT().UpdateProject(gomock.Any()).DoAndReturn(func(p *models.Project) error {
		assert.Equal(t, newTitle, p.Title)
		assert.Equal(t, price, *p.Price)
		return nil
	})
	projectRepo.EXPECT().GetProjectByID(uint(7)).Return(models.Project{PID: 7, Title: newTitle, Price: &price}, nil)

	input := dto.UpdateProjectDTO{Title: &newTitle, Price: &price}
	res, err := svc.UpdateProject(ctx, 7, input)

	assert.NoError(t, err)
	assert.Equal(t, newTitle, res.Title)
}

func TestUpdateProject_NotFound(t *testing.T) {
	svc, projectRepo, _, ctx := setupProjectMocks(t)

	projectRepo.EXPECT().GetProjectByID(uint(99)).Return(models.Project{}, gorm.ErrRecordNotFound)

	res, err := svc.UpdateProject(ctx, 99, dto.UpdateProjectDTO{})

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

// ---------- ReconcileProjectSkills ----------
func TestReconcileProjectSkills_SetDifference(t *testing.T) {
	svc, projectRepo, skillRepo, _ := setupProjectMocks(t)

	// current {Go, React}, want {React, Docker}: add Docker, remove Go
	skillRepo.EXPECT().GetSkillByName("React").Return(models.Skill{SID: 2, Name: "React"}, nil)
	skillRepo.EXPECT().GetSkillByName("Docker").Return(models.Skill{SID: 3, Name: "Docker"}, nil)
	projectRepo.EXPECT().GetProjectSkills(uint(7)).Return([]models.ProjectSkill{
		{PID: 7, SID: 1},
		{PID: 7, SID: 2},
	}, nil)
	projectRepo.EXPECT().AddProjectSkills(uint(7), []uint{3}).Return(nil)
	projectRepo.EXPECT().RemoveProjectSkills(uint(7), []uint{1}).Return(nil)

	err := svc.ReconcileProjectSkills(7, []string{"React", "Docker"})

	assert.NoError(t, err)
}

func TestReconcileProjectSkills_NoChanges(t *testing.T) {
	svc, projectRepo, skillRepo, _ := setupProjectMocks(t)

	skillRepo.EXPECT().GetSkillByName("Go").Return(models.Skill{SID: 1, Name: "Go"}, nil)
	projectRepo.EXPECT().GetProjectSkills(uint(7)).Return([]models.ProjectSkill{{PID: 7, SID: 1}}, nil)
	projectRepo.EXPECT().AddProjectSkills(uint(7), gomock.Nil()).Return(nil)
	projectRepo.EXPECT().RemoveProjectSkills(uint(7), gomock.Nil()).Return(nil)

	err := svc.ReconcileProjectSkills(7, []string{"Go"})

	assert.NoError(t, err)
}

func TestReconcileProjectSkills_UnknownSkill(t *testing.T) {
	svc, _, skillRepo, _ := setupProjectMocks(t)

	skillRepo.EXPECT().GetSkillByName("Fortran").Return(models.Skill{}, gorm.ErrRecordNotFound)

	err := svc.ReconcileProjectSkills(7, []string{"Fortran"})

	assert.ErrorIs(t, err, ErrSkillNotFound)
}

// ---------- GetProjectSkills ----------
func TestGetProjectSkills_ProjectMissing(t *testing.T) {
	svc, projectRepo, _, _ := setupProjectMocks(t)

	projectRepo.EXPECT().ProjectExists(uint(99)).Return(false, nil)

	res, err := svc.GetProjectSkills(99)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

// ---------- DeleteProject ----------
func TestDeleteProject_Success(t *testing.T) {
	svc, projectRepo, _, ctx := setupProjectMocks(t)

	projectRepo.EXPECT().GetProjectByID(uint(7)).Return(models.Project{PID: 7}, nil)
	projectRepo.EXPECT().DeleteProject(uint(7)).Return(nil)

	err := svc.DeleteProject(ctx, 7)

	assert.NoError(t, err)
}

func TestDeleteProject_NotFound(t *testing.T) {
	svc, projectRepo, _, ctx := setupProjectMocks(t)

	projectRepo.EXPECT().GetProjectByID(uint(99)).Return(models.Project{}, gorm.ErrRecordNotFound)

	err := svc.DeleteProject(ctx, 99)

	assert.ErrorIs(t, err, ErrProjectNotFound)
}
