package mysql

import (
	"gorm.io/gorm"

	"forum-admin/internal/model"
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

// ListByRole returns every user carrying the given role, ordered by id so
// menus render in a stable order.
func (r *UserRepository) ListByRole(role int) ([]model.User, error) {
	var list []model.User
	err := r.DB.Where("role = ?", role).Order("id asc").Find(&list).Error
	return list, err
}
