package repositories

import (
	"github.com/fumiya-dev/entrymarket-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntryFilter narrows ListEntries. Nil fields mean no constraint.
type EntryFilter struct {
	Status *models.EntryStatus
	UID    *uint
	PID    *uint
}

type EntryRepo interface {
	// CreateEntry inserts the row unless the (p_id, u_id) pair already
	// exists. Reports created=false when the row was already there, so a
	// concurrent first application loses the race silently instead of
	// failing on the uniqueness constraint.
	CreateEntry(entry *models.Entry) (created bool, err error)
	GetEntry(pid, uid uint) (models.Entry, error)
	UpdateEntryStatus(pid, uid uint, status models.EntryStatus) error
	ListEntries(filter EntryFilter) ([]models.Entry, error)
	DeleteEntry(pid, uid uint) error
	WithTx(tx *gorm.DB) EntryRepo
}

type DBEntryRepo struct {
	db *gorm.DB
}

func NewEntryRepo(db *gorm.DB) *DBEntryRepo {
	return &DBEntryRepo{
		db: db,
	}
}

func (r *DBEntryRepo) CreateEntry(entry *models.Entry) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "p_id"}, {Name: "u_id"}},
		DoNothing: true,
	}).Create(entry)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *DBEntryRepo) GetEntry(pid, uid uint) (models.Entry, error) {
	var entry models.Entry
	err := r.db.
		Preload("Project").
		Preload("User").
		First(&entry, "p_id = ? AND u_id = ?", pid, uid).Error
	return entry, err
}

func (r *DBEntryRepo) UpdateEntryStatus(pid, uid uint, status models.EntryStatus) error {
	return r.db.Model(&models.Entry{}).
		Where("p_id = ? AND u_id = ?", pid, uid).
		Update("status", string(status)).Error
}

func (r *DBEntryRepo) ListEntries(filter EntryFilter) ([]models.Entry, error) {
	var entries []models.Entry
	query := r.db.Model(&models.Entry{})

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.UID != nil {
		query = query.Where("u_id = ?", *filter.UID)
	}
	if filter.PID != nil {
		query = query.Where("p_id = ?", *filter.PID)
	}

	err := query.
		Preload("Project").
		Preload("User").
		Order("entry_date DESC").
		Find(&entries).Error
	return entries, err
}

func (r *DBEntryRepo) DeleteEntry(pid, uid uint) error {
	return r.db.Where("p_id = ? AND u_id = ?", pid, uid).Delete(&models.Entry{}).Error
}

func (r *DBEntryRepo) WithTx(tx *gorm.DB) EntryRepo {
	if tx == nil {
		return r
	}
	return &DBEntryRepo{
		db: tx,
	}
}
