package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/psds-microservice/country-seeder/internal/command"
	"github.com/psds-microservice/country-seeder/internal/database"
	"github.com/spf13/cobra"
)

var (
	seedDebug  bool
	seedConfig string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the countries reference rows (existing iso_codes are skipped)",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedDebug, "debug", false, "Debug logging")
	seedCmd.Flags().StringVar(&seedConfig, "config", "", "Path to config.yaml (optional)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	logger, err := newLogger(seedDebug)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	cfg := loadConfig(seedConfig, logger)

	db, err := database.Open(cfg.DSN())
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()
	if _, err := command.Seed(ctx, db, logger); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	// Контрольная выборка — только обратная связь оператору, данные не меняет
	countries, err := command.Verify(ctx, db)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	printCountries(countries)
	return nil
}
