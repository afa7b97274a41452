package handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"forum-admin/internal/cli"
	"forum-admin/internal/pkg"
	"forum-admin/internal/repository/redis"
	"forum-admin/internal/service"
)

// AssignModeratorHandler runs the "add an existing moderator to a
// community" conversation. Cache and Producer are optional; when set, a
// successful assignment is followed by best-effort cache invalidation and
// an event publish, neither of which changes the outcome.
type AssignModeratorHandler struct {
	UI       *cli.UI
	Svc      *service.ModeratorService
	Cache    *redis.CommunityCacheRepository
	Producer *pkg.KafkaProducer
	Log      *zap.Logger
}

func (h *AssignModeratorHandler) Run(ctx context.Context) error {
	mods, err := h.Svc.ListModerators()
	if err != nil {
		return err
	}
	if len(mods) == 0 {
		h.UI.Warn("No moderators found.")
		return nil
	}

	labels := make([]string, len(mods))
	for i, m := range mods {
		labels[i] = fmt.Sprintf("%s - %s", m.Name, m.Email)
	}
	answer, err := h.UI.Choose("Choose a moderator", labels)
	if err != nil {
		return err
	}
	idx, err := strconv.Atoi(answer)
	if err != nil {
		return err
	}
	// the list was fetched before the prompt; re-check the index against it
	if idx < 1 || idx > len(mods) {
		h.UI.Warn("Moderator not found.")
		return nil
	}
	mod := mods[idx-1]

	names, err := h.Svc.ListCommunityNames()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		h.UI.Warn("No communities found.")
		return nil
	}
	answer, err = h.UI.Choose("Choose a community", names)
	if err != nil {
		return err
	}
	idx, err = strconv.Atoi(answer)
	if err != nil {
		return err
	}

	// re-read the full record by name; it may be gone by now
	community, err := h.Svc.FindCommunity(names[idx-1])
	if errors.Is(err, gorm.ErrRecordNotFound) {
		h.UI.Warn(fmt.Sprintf("Community %s not found.", names[idx-1]))
		return nil
	}
	if err != nil {
		return err
	}

	added, err := h.Svc.AssignModerator(community, &mod)
	if err != nil {
		return err
	}
	if !added {
		h.UI.Warn(fmt.Sprintf("%s is already a moderator of %s.", mod.Name, community.Name))
		return nil
	}

	h.UI.Success(fmt.Sprintf("%s is now a moderator of %s.", mod.Name, community.Name))

	if h.Cache != nil {
		if err := h.Cache.InvalidateMembers(ctx, community.ID); err != nil {
			h.Log.Warn("member cache not invalidated", zap.Uint64("community_id", community.ID), zap.Error(err))
		}
	}
	if h.Producer != nil {
		if err := h.Producer.SendModeratorAdded(ctx, community.ID, mod.ID); err != nil {
			h.Log.Warn("moderator event not published", zap.Uint64("community_id", community.ID), zap.Error(err))
		}
	}
	return nil
}
