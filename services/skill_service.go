package services

import (
	"errors"
	"fmt"

	"github.com/fumiya-dev/entrymarket-go/models"
	"github.com/fumiya-dev/entrymarket-go/repositories"
	"gorm.io/gorm"
)

// SkillService is read-only: the catalog is seeded ahead of time and
// projects reference skills by name.
type SkillService struct {
	Repos *repositories.Repos
}

func NewSkillService(repos *repositories.Repos) *SkillService {
	return &SkillService{
		Repos: repos,
	}
}

func (s *SkillService) ListSkills() ([]models.Skill, error) {
	return s.Repos.Skill.ListSkills()
}

func (s *SkillService) FindByName(name string) (*models.Skill, error) {
	skill, err := s.Repos.Skill.GetSkillByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrSkillNotFound, name)
		}
		return nil, err
	}
	return &skill, nil
}
