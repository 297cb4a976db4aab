package service

import (
	"context"
	"errors"
	"strings"

	"taskboard/internal/config"

	"github.com/sirupsen/logrus"
)

// SeedAdminUser ensures the configured bootstrap admin row exists in the
// credential store. It goes through the privileged registration path and is
// idempotent across restarts.
func SeedAdminUser(ctx context.Context, users *UserService, cfg config.Config) error {
	username := strings.TrimSpace(cfg.AdminUsername)
	if username == "" || cfg.AdminPassword == "" {
		return nil
	}

	exists, err := users.UsernameExists(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if _, err := users.RegisterAdmin(ctx, username, cfg.AdminPassword); err != nil {
		// A concurrent start may have created the row first.
		if errors.Is(err, ErrConflict) {
			return nil
		}
		return err
	}

	logrus.WithField("username", username).Info("seeded bootstrap admin user")
	return nil
}
