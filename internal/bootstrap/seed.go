package bootstrap

import (
	"context"

	"github.com/samber/do"
	"go.uber.org/zap"

	"github.com/fieldtrack-io/fieldtrack/internal/config"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/repo"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/service"
)

// EnsureSeedUserExists creates the configured bootstrap account on startup so
// a fresh deployment has a login to work with. No-op when seeding is disabled
// or the account already exists.
func EnsureSeedUserExists(ctx context.Context, inj *do.Injector) error {
	cfg := do.MustInvoke[*config.Config](inj)
	if cfg.Auth.SeedUsername == "" || cfg.Auth.SeedPassword == "" {
		return nil
	}
	log := do.MustInvoke[*zap.Logger](inj)
	users := do.MustInvoke[repo.UserRepo](inj)
	auth := do.MustInvoke[service.AuthService](inj)

	exists, err := users.ExistsByIdentifier(ctx, cfg.Auth.SeedUsername, cfg.Auth.SeedEmail)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	u, err := auth.CreateUser(ctx, cfg.Auth.SeedUsername, cfg.Auth.SeedEmail, cfg.Auth.SeedPassword)
	if err != nil {
		return err
	}
	log.Info("seed user created", zap.String("username", u.Username))
	return nil
}
