package memory

import (
	"context"
	"log/slog"
	"time"

	"acai/config"
	"acai/internal/domain/lifecycle"
	"acai/internal/domain/repository"
	"acai/internal/errors"

	"go.uber.org/fx"
)

// SeedParams defines the dependencies of the demo data loader.
type SeedParams struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Catalog repository.CatalogRepository
	Stores  repository.StoreRepository
	Users   repository.UserRepository
}

// RegisterSeed loads the demo data on start when marketplace.seedDemoData is set.
func RegisterSeed(params SeedParams) {
	if params.Config.Marketplace == nil || !params.Config.Marketplace.SeedDemoData {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := Seed(ctx, params.Catalog, params.Stores, params.Users, time.Now().UTC()); err != nil {
				return errors.Wrap(err, "failed to seed demo data")
			}
			params.Logger.Info("Demo data seeded",
				slog.Int("stores", 2),
				slog.Int("users", 3),
			)

			return nil
		},
	})
}
