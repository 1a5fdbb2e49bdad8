package repositories

import (
	"github.com/fumiya-dev/entrymarket-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SkillRepo interface {
	ListSkills() ([]models.Skill, error)
	GetSkillByName(name string) (models.Skill, error)
	CreateSkill(skill *models.Skill) error
	WithTx(tx *gorm.DB) SkillRepo
}

type DBSkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *DBSkillRepo {
	return &DBSkillRepo{
		db: db,
	}
}

func (r *DBSkillRepo) ListSkills() ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.Order("name ASC").Find(&skills).Error
	return skills, err
}

func (r *DBSkillRepo) GetSkillByName(name string) (models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, "name = ?", name).Error
	return skill, err
}

// CreateSkill is used by seeding only; the catalog is read-only through the API.
func (r *DBSkillRepo) CreateSkill(skill *models.Skill) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(skill).Error
}

func (r *DBSkillRepo) WithTx(tx *gorm.DB) SkillRepo {
	if tx == nil {
		return r
	}
	return &DBSkillRepo{
		db: tx,
	}
}
