package handler

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"forum-admin/internal/cli"
	"forum-admin/internal/config"
	"forum-admin/internal/pkg"
	"forum-admin/internal/service"
)

// CreateModeratorHandler runs the "create a new moderator" conversation:
// name, email, password, then a single insert.
type CreateModeratorHandler struct {
	UI   *cli.UI
	Svc  *service.ModeratorService
	SMTP config.SMTPConfig
	Log  *zap.Logger
}

func (h *CreateModeratorHandler) Run() error {
	name, err := h.UI.Ask("Moderator name")
	if err != nil {
		return err
	}
	email, err := h.UI.Ask("Moderator email")
	if err != nil {
		return err
	}
	// read in the clear; this tool runs on an operator's own terminal
	password, err := h.UI.Ask("Moderator password")
	if err != nil {
		return err
	}

	user, err := h.Svc.CreateModerator(name, email, password)
	if errors.Is(err, service.ErrEmailTaken) {
		h.UI.Warn(fmt.Sprintf("A user with email %s already exists.", email))
		return nil
	}
	if err != nil {
		return err
	}

	h.UI.Success(fmt.Sprintf("Moderator %s (%s) created.", user.Name, user.Email))

	if h.SMTP.Enabled() {
		body := pkg.ModeratorWelcomeHTML(user.Name)
		if err := pkg.SendEmail(h.SMTP, user.Email, "Your moderator account", body); err != nil {
			h.Log.Warn("welcome email not sent", zap.String("email", user.Email), zap.Error(err))
		}
	}
	return nil
}
