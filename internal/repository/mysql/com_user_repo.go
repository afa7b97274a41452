package mysql

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"forum-admin/internal/model"
)

type CommunityMemberRepository struct {
	DB *gorm.DB
}

// AddModerator adds the user to the community's moderator set. One upsert:
// a missing membership row is inserted with the moderator role, an existing
// one has its role raised in place. The member set gains the user in the
// same statement, so moderators can never outrun members.
func (r *CommunityMemberRepository) AddModerator(communityID, userID uint64) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "community_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"role": model.RoleModerator}),
	}).Create(&model.CommunityMember{
		CommunityID: communityID,
		UserID:      userID,
		Role:        model.RoleModerator,
	}).Error
}

func (r *CommunityMemberRepository) IsModerator(communityID, userID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.CommunityMember{}).
		Where("community_id = ? AND user_id = ? AND role = ?", communityID, userID, model.RoleModerator).
		Count(&count).Error
	return count > 0, err
}

func (r *CommunityMemberRepository) IsMember(communityID, userID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.CommunityMember{}).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		Count(&count).Error
	return count > 0, err
}
