package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/fumiya-dev/entrymarket-go/dto"
	"github.com/fumiya-dev/entrymarket-go/models"
	"github.com/fumiya-dev/entrymarket-go/repositories"
	"github.com/fumiya-dev/entrymarket-go/utils"
	"github.com/gin-gonic/gin"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrSkillNotFound   = errors.New("skill not found")
	ErrInvalidDeadline = errors.New("invalid deadline format")
)

type ProjectService struct {
	Repos *repositories.Repos
}

func NewProjectService(repos *repositories.Repos) *ProjectService {
	return &ProjectService{
		Repos: repos,
	}
}

func (s *ProjectService) GetProject(id uint) (*models.Project, error) {
	project, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return nil, ErrProjectNotFound
	}
	return &project, nil
}

func (s *ProjectService) ListProjects() ([]models.Project, error) {
	return s.Repos.Project.ListProjects()
}

// resolveSkillIDs maps skill names to catalog IDs. Skills are referenced by
// name and must exist beforehand; an unknown name fails the whole request.
func (s *ProjectService) resolveSkillIDs(names []string) ([]uint, error) {
	ids := make([]uint, 0, len(names))
	for _, name := range names {
		skill, err := s.Repos.Skill.GetSkillByName(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrSkillNotFound, name)
		}
		ids = append(ids, skill.SID)
	}
	return ids, nil
}

func parseDeadline(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, ErrInvalidDeadline
	}
	return &t, nil
}

func (s *ProjectService) CreateProject(c *gin.Context, creatorID uint, input dto.CreateProjectDTO) (*models.Project, error) {
	deadline, err := parseDeadline(input.Deadline)
	if err != nil {
		return nil, err
	}

	skillIDs, err := s.resolveSkillIDs(input.SkillNames)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Deadline:    deadline,
		CreatorID:   creatorID,
	}

	err = s.Repos.ExecTx(func(tx *repositories.Repos) error {
		if err := tx.Project.CreateProject(project); err != nil {
			return err
		}
		return tx.Project.AddProjectSkills(project.PID, skillIDs)
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", "project",
		fmt.Sprintf("p_id=%d", project.PID), nil, project, "", s.Repos.Audit)

	return s.GetProject(project.PID)
}

func (s *ProjectService) UpdateProject(c *gin.Context, id uint, input dto.UpdateProjectDTO) (*models.Project, error) {
	project, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return nil, ErrProjectNotFound
	}

	oldProject := project

	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = input.Description
	}
	if input.Price != nil {
		project.Price = input.Price
	}
	if input.Deadline != nil {
		deadline, err := parseDeadline(input.Deadline)
		if err != nil {
			return nil, err
		}
		project.Deadline = deadline
	}

	// Save only column updates here; the skill set is reconciled separately.
	project.Skills = nil
	if err := s.Repos.Project.UpdateProject(&project); err != nil {
		return nil, err
	}

	if input.SkillNames != nil {
		if err := s.ReconcileProjectSkills(id, input.SkillNames); err != nil {
			return nil, err
		}
	}

	utils.LogAuditWithConsole(c, "update", "project",
		fmt.Sprintf("p_id=%d", project.PID), oldProject, project, "", s.Repos.Audit)

	return s.GetProject(id)
}

// ReconcileProjectSkills replaces the project's skill set with exactly the
// named set: skills missing from the request are removed, new ones added,
// existing links left alone.
func (s *ProjectService) ReconcileProjectSkills(pid uint, skillNames []string) error {
	wantIDs, err := s.resolveSkillIDs(skillNames)
	if err != nil {
		return err
	}

	current, err := s.Repos.Project.GetProjectSkills(pid)
	if err != nil {
		return err
	}

	haveSet := make(map[uint]bool, len(current))
	for _, link := range current {
		haveSet[link.SID] = true
	}
	wantSet := make(map[uint]bool, len(wantIDs))
	for _, sid := range wantIDs {
		wantSet[sid] = true
	}

	var toAdd, toRemove []uint
	for _, sid := range wantIDs {
		if !haveSet[sid] {
			toAdd = append(toAdd, sid)
		}
	}
	for _, link := range current {
		if !wantSet[link.SID] {
			toRemove = append(toRemove, link.SID)
		}
	}

	return s.Repos.ExecTx(func(tx *repositories.Repos) error {
		if err := tx.Project.AddProjectSkills(pid, toAdd); err != nil {
			return err
		}
		return tx.Project.RemoveProjectSkills(pid, toRemove)
	})
}

func (s *ProjectService) GetProjectSkills(pid uint) ([]models.ProjectSkill, error) {
	exists, err := s.Repos.Project.ProjectExists(pid)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrProjectNotFound
	}
	return s.Repos.Project.GetProjectSkills(pid)
}

func (s *ProjectService) DeleteProject(c *gin.Context, id uint) error {
	project, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return ErrProjectNotFound
	}

	if err := s.Repos.Project.DeleteProject(id); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "project",
		fmt.Sprintf("p_id=%d", project.PID), project, nil, "", s.Repos.Audit)
	return nil
}
