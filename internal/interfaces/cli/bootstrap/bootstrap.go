// Package bootstrap wires configuration, logging and the store for every
// CLI command.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/orris-inc/footprint/internal/infrastructure/config"
	"github.com/orris-inc/footprint/internal/infrastructure/database"
	"github.com/orris-inc/footprint/internal/infrastructure/migration"
	"github.com/orris-inc/footprint/internal/infrastructure/pubsub"
	apperrors "github.com/orris-inc/footprint/internal/shared/errors"
	"github.com/orris-inc/footprint/internal/shared/logger"
)

// Options holds the global flags.
type Options struct {
	Env        string
	ConfigPath string
}

// AddFlags registers --env and --config on cmd and its children.
func (o *Options) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&o.Env, "env", "e", "", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&o.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml or ~/.clip-log/config.yaml)")
}

// LoadConfig loads the configuration and initializes the global logger.
func LoadConfig(opts *Options) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(opts.Env, opts.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.App.Mode == "debug"); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// Runtime is everything a long-running command needs.
type Runtime struct {
	Config *config.Config
	Logger logger.Interface
	DB     *gorm.DB
	Redis  *redis.Client
}

// Open loads configuration, opens the store and, when migrate is set,
// brings the schema up to date with the configured strategy. Any store
// failure is returned as a StoreUnavailable error.
func Open(ctx context.Context, opts *Options, migrate bool) (*Runtime, error) {
	cfg, log, err := LoadConfig(opts)
	if err != nil {
		return nil, err
	}

	log.Infow("opening store",
		"environment", cfg.App.Env,
		"path", cfg.Store.Path(),
		"migration_strategy", cfg.Store.MigrationStrategy,
	)

	if err := database.Init(&cfg.Store); err != nil {
		return nil, err
	}

	rt := &Runtime{Config: cfg, Logger: log, DB: database.Get()}

	if migrate {
		manager, err := migration.NewManager(cfg.Store.MigrationStrategy, log)
		if err != nil {
			rt.Close()
			return nil, apperrors.NewStoreUnavailableError("invalid migration strategy", err)
		}
		if err := manager.Migrate(rt.DB); err != nil {
			rt.Close()
			return nil, apperrors.NewStoreUnavailableError("cannot prepare schema", err, cfg.Store.Path())
		}
	}

	if cfg.Redis.Enabled {
		client, err := pubsub.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			log.Warnw("event feed disabled", "address", cfg.Redis.GetAddr(), "error", err)
		} else {
			log.Infow("redis connection established", "address", cfg.Redis.GetAddr())
			rt.Redis = client
		}
	}

	return rt, nil
}

// EventFeed returns the Redis feed, or nil when redis is not connected.
func (r *Runtime) EventFeed() *pubsub.RedisEventFeed {
	if r.Redis == nil {
		return nil
	}
	return pubsub.NewRedisEventFeed(r.Redis, r.Config.Redis.Channel, r.Logger)
}

// Close releases the store and the redis client.
func (r *Runtime) Close() {
	if r.Redis != nil {
		if err := r.Redis.Close(); err != nil {
			r.Logger.Warnw("failed to close redis client", "error", err)
		}
	}
	if err := database.Close(); err != nil {
		r.Logger.Warnw("failed to close store", "error", err)
	}
	_ = logger.Sync()
}
