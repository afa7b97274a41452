package model

import "time"

type Community struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:64;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CommunityMember is one row per (community, user). Role marks the member
// as a community moderator; every moderator row is also a member row, so
// the moderator set is always a subset of the member set.
type CommunityMember struct {
	ID          uint64 `gorm:"primaryKey"`
	CommunityID uint64 `gorm:"not null;index;uniqueIndex:uk_community_user"`
	UserID      uint64 `gorm:"not null;index;uniqueIndex:uk_community_user"`
	Role        int    `gorm:"not null;default:0"` // 0=member, 1=moderator
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
