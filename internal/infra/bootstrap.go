package infra

import (
	"context"

	"retailpos/internal/auth"
	"retailpos/internal/config"
	"retailpos/internal/model"
	"retailpos/internal/repository"

	"github.com/rs/zerolog/log"
)

// BootstrapAdmin creates the first administrator account when the users table
// is empty, so a fresh install is immediately usable. The credential comes
// from config and should be changed right after first login.
func BootstrapAdmin(ctx context.Context, repo repository.UserRepository, cfg *config.Config) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	salt, hash, err := auth.HashPassword(cfg.BootstrapAdminPassword)
	if err != nil {
		return err
	}
	admin := &model.User{
		Username:     cfg.BootstrapAdminUser,
		Salt:         salt,
		PasswordHash: hash,
		Role:         model.RoleAdministrator,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}

	log.Warn().
		Str("username", admin.Username).
		Msg("bootstrap administrator created with the default password, change it now")
	return nil
}
