package repositories

import (
	"github.com/fumiya-dev/entrymarket-go/models"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	GetProjectByID(id uint) (models.Project, error)
	ProjectExists(id uint) (bool, error)
	CreateProject(p *models.Project) error
	UpdateProject(p *models.Project) error
	DeleteProject(id uint) error
	ListProjects() ([]models.Project, error)
	GetProjectSkills(pid uint) ([]models.ProjectSkill, error)
	AddProjectSkills(pid uint, skillIDs []uint) error
	RemoveProjectSkills(pid uint, skillIDs []uint) error
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{
		db: db,
	}
}

func (r *DBProjectRepo) GetProjectByID(id uint) (models.Project, error) {
	var project models.Project
	err := r.db.
		Preload("Skills.Skill").
		Preload("Creator").
		First(&project, "p_id = ?", id).Error
	return project, err
}

func (r *DBProjectRepo) ProjectExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("p_id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DBProjectRepo) CreateProject(p *models.Project) error {
	return r.db.Create(p).Error
}

func (r *DBProjectRepo) UpdateProject(p *models.Project) error {
	return r.db.Save(p).Error
}

func (r *DBProjectRepo) DeleteProject(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("p_id = ?", id).Delete(&models.Entry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("p_id = ?", id).Delete(&models.ProjectSkill{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, id).Error
	})
}

func (r *DBProjectRepo) ListProjects() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.
		Preload("Skills.Skill").
		Order("create_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) GetProjectSkills(pid uint) ([]models.ProjectSkill, error) {
	var links []models.ProjectSkill
	err := r.db.
		Preload("Skill").
		Where("p_id = ?", pid).
		Find(&links).Error
	return links, err
}

func (r *DBProjectRepo) AddProjectSkills(pid uint, skillIDs []uint) error {
	if len(skillIDs) == 0 {
		return nil
	}
	links := make([]models.ProjectSkill, 0, len(skillIDs))
	for _, sid := range skillIDs {
		links = append(links, models.ProjectSkill{PID: pid, SID: sid})
	}
	return r.db.Create(&links).Error
}

func (r *DBProjectRepo) RemoveProjectSkills(pid uint, skillIDs []uint) error {
	if len(skillIDs) == 0 {
		return nil
	}
	return r.db.
		Where("p_id = ? AND s_id IN ?", pid, skillIDs).
		Delete(&models.ProjectSkill{}).Error
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{
		db: tx,
	}
}
