package migrate

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orris-inc/footprint/internal/infrastructure/migration"
	"github.com/orris-inc/footprint/internal/interfaces/cli/bootstrap"
)

const (
	defaultGooseDir   = "./internal/infrastructure/migration/scripts"
	defaultMigrateDir = "./internal/infrastructure/migration/scripts_migrate"
)

func NewCommand(opts *bootstrap.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage the schema of the local store: apply or roll back migrations, check status and create new migration files. The strategy comes from store.migration_strategy.`,
	}

	cmd.AddCommand(
		newUpCommand(opts),
		newDownCommand(opts),
		newStatusCommand(opts),
		newCreateCommand(opts),
	)

	return cmd
}

func newUpCommand(opts *bootstrap.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, strategy, err := openStore(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := migration.NewManagerWithStrategy(strategy, rt.Logger).Migrate(rt.DB); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Migrations applied with %s\n", strategy.GetName())
			return nil
		},
	}
}

func newDownCommand(opts *bootstrap.Options) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("steps must be at least 1, got %d", steps)
			}

			rt, strategy, err := openStore(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := strategy.MigrateDown(rt.DB, steps); err != nil {
				if errors.Is(err, migration.ErrDownNotSupported) {
					return fmt.Errorf("%s: %w", strategy.GetName(), err)
				}
				return fmt.Errorf("down migration failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Rolled back %d migration(s)\n", steps)
			return nil
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")
	return cmd
}

func newStatusCommand(opts *bootstrap.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, strategy, err := openStore(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			version, dirty, err := strategy.Version(rt.DB)
			if err != nil {
				return fmt.Errorf("failed to get migration version: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\nMigration Status:\n")
			fmt.Fprintf(out, "  Store:           %s\n", rt.Config.Store.Path())
			fmt.Fprintf(out, "  Strategy:        %s\n", strategy.GetName())
			fmt.Fprintf(out, "  Current Version: %d\n", version)
			fmt.Fprintf(out, "  Dirty:           %t\n", dirty)

			if goose, ok := strategy.(*migration.GooseStrategy); ok {
				if err := goose.Status(rt.DB); err != nil {
					return fmt.Errorf("failed to get detailed status: %w", err)
				}
			}
			return nil
		},
	}
}

func newCreateCommand(opts *bootstrap.Options) *cobra.Command {
	var name, dir string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create new migration files for the configured strategy. goose gets one annotated SQL file, golang_migrate an up/down pair.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap.LoadConfig(opts)
			if err != nil {
				return err
			}

			strategy, err := migration.NewStrategy(cfg.Store.MigrationStrategy, log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch s := strategy.(type) {
			case *migration.GooseStrategy:
				if dir == "" {
					dir = defaultGooseDir
				}
				if err := s.Create(dir, name); err != nil {
					return err
				}
				fmt.Fprintf(out, "Migration '%s' created in %s\n", name, dir)
			case *migration.GolangMigrateStrategy:
				if dir == "" {
					dir = defaultMigrateDir
				}
				up, down, err := migration.NewGenerator(dir, log).CreateMigration(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Created %s\nCreated %s\n", up, down)
			default:
				return fmt.Errorf("create is not supported with strategy %s", strategy.GetName())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory to write the migration into")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// openStore opens the store without applying migrations and resolves the
// configured strategy.
func openStore(ctx context.Context, opts *bootstrap.Options) (*bootstrap.Runtime, migration.Strategy, error) {
	rt, err := bootstrap.Open(ctx, opts, false)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store: %w", err)
	}

	strategy, err := migration.NewStrategy(rt.Config.Store.MigrationStrategy, rt.Logger)
	if err != nil {
		rt.Close()
		return nil, nil, err
	}
	return rt, strategy, nil
}
