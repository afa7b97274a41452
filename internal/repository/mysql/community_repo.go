package mysql

import (
	"gorm.io/gorm"

	"forum-admin/internal/model"
)

type CommunityRepository struct {
	DB *gorm.DB
}

func (r *CommunityRepository) FindByName(name string) (*model.Community, error) {
	var community model.Community
	err := r.DB.Where("name = ?", name).First(&community).Error
	return &community, err
}

// ListNames fetches community names only; the full record is re-read by
// name once the operator has picked one.
func (r *CommunityRepository) ListNames() ([]string, error) {
	var names []string
	err := r.DB.Model(&model.Community{}).Order("id asc").Pluck("name", &names).Error
	return names, err
}
