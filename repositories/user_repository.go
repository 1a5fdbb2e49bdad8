package repositories

import (
	"github.com/fumiya-dev/entrymarket-go/models"
	"gorm.io/gorm"
)

type UserRepo interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (models.User, error)
	GetUserByUsername(username string) (models.User, error)
	ListUsers() ([]models.User, error)
	SaveUser(user *models.User) error
	DeleteUser(id uint) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *DBUserRepo) GetUserByID(id uint) (models.User, error) {
	var user models.User
	err := r.db.First(&user, "u_id = ?", id).Error
	return user, err
}

func (r *DBUserRepo) GetUserByUsername(username string) (models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	return user, err
}

func (r *DBUserRepo) ListUsers() ([]models.User, error) {
	var users []models.User
	err := r.db.Find(&users).Error
	return users, err
}

func (r *DBUserRepo) SaveUser(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
