package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	MemberSetKeyPrefix    = "community:members"    // cached member ID set per community
	ModeratorSetKeyPrefix = "community:moderators" // cached moderator ID set per community
)

// CommunityCacheRepository drops the forum services' cached membership sets
// after this tool writes around them.
type CommunityCacheRepository struct {
	RDB *redis.Client
}

func (r *CommunityCacheRepository) memberKey(communityID uint64) string {
	return fmt.Sprintf("%s:%d", MemberSetKeyPrefix, communityID)
}

func (r *CommunityCacheRepository) moderatorKey(communityID uint64) string {
	return fmt.Sprintf("%s:%d", ModeratorSetKeyPrefix, communityID)
}

// InvalidateMembers deletes both cached sets for the community. Idempotent;
// missing keys are not an error.
func (r *CommunityCacheRepository) InvalidateMembers(ctx context.Context, communityID uint64) error {
	return r.RDB.Del(ctx, r.memberKey(communityID), r.moderatorKey(communityID)).Err()
}
