package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mizan-app/mizan/internal/infrastructure/config"
	"github.com/mizan-app/mizan/internal/infrastructure/database"
	"github.com/mizan-app/mizan/internal/infrastructure/migration"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

var (
	env   string
	name  string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newVersionCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := initEnv()
			if err != nil {
				return err
			}
			defer database.Close()

			if err := strategy.Migrate(database.Get()); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			logger.Info("migrations applied")
			return nil
		},
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := initEnv()
			if err != nil {
				return err
			}
			defer database.Close()

			if err := strategy.MigrateDown(database.Get(), steps); err != nil {
				return fmt.Errorf("rollback failed: %w", err)
			}
			logger.Info("migrations rolled back", "steps", steps)
			return nil
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := initEnv()
			if err != nil {
				return err
			}
			defer database.Close()

			return strategy.Status(database.Get())
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show current migration version",
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := initEnv()
			if err != nil {
				return err
			}
			defer database.Close()

			version, err := strategy.GetVersion(database.Get())
			if err != nil {
				return fmt.Errorf("failed to get version: %w", err)
			}
			logger.Info("current migration version", "version", version)
			return nil
		},
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := scriptsStrategy()
			if err != nil {
				return err
			}
			if err := strategy.Create(name); err != nil {
				return fmt.Errorf("failed to create migration: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.MarkFlagRequired("name")

	return cmd
}

func initEnv() (*migration.GooseStrategy, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return scriptsStrategy()
}

func scriptsStrategy() (*migration.GooseStrategy, error) {
	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migration scripts path: %w", err)
	}
	return migration.NewGooseStrategy(scriptsPath), nil
}
