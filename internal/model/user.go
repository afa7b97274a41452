package model

import "time"

// User roles. Moderators gain community-moderation privileges in the
// forum application; this tool only ever creates moderator accounts.
const (
	RoleMember    = 0
	RoleModerator = 1
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"size:64;not null"`
	Email     string `gorm:"uniqueIndex;size:64;not null"`
	Password  string `gorm:"size:255;not null"` // bcrypt hash, never plaintext
	Role      int    `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
