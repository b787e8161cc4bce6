// Package seed implements the `seed` command: it loads the YAML fixture of
// initial users, areas and request types.
package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"miniticker/internal/infrastructure/auth"
	"miniticker/internal/infrastructure/config"
	"miniticker/internal/infrastructure/database"
	"miniticker/internal/infrastructure/persistence/seeds"
	"miniticker/internal/infrastructure/repository"
	"miniticker/internal/shared/logger"
)

var (
	env      string
	seedPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load initial catalog data",
		Long:  `Create the users, areas and request types listed in the seed fixture. Existing rows are skipped, so the command is safe to rerun.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&seedPath, "file", "f", "./configs/seed.yaml", "Path to the seed fixture")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	seeder := seeds.NewSeeder(
		repository.NewUserRepository(database.Get()),
		repository.NewAreaRepository(database.Get()),
		repository.NewRequestTypeRepository(database.Get()),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		log,
	)

	if err := seeder.Run(context.Background(), seedPath); err != nil {
		log.Errorw("seeding failed", "error", err)
		return err
	}

	log.Infow("seeding completed", "file", seedPath)
	return nil
}
