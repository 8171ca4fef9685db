package cmd

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/psds-microservice/country-seeder/internal/command"
	"github.com/psds-microservice/country-seeder/internal/database"
	seederrors "github.com/psds-microservice/country-seeder/internal/errors"
	"github.com/psds-microservice/country-seeder/internal/seed"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verifyDebug  bool
	verifyConfig string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that all seeded countries are present (read-only)",
	RunE:  runVerify,
}

func init() {
	verifyCmd.Flags().BoolVar(&verifyDebug, "debug", false, "Debug logging")
	verifyCmd.Flags().StringVar(&verifyConfig, "config", "", "Path to config.yaml (optional)")
}

func runVerify(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	logger, err := newLogger(verifyDebug)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	cfg := loadConfig(verifyConfig, logger)

	db, err := database.Open(cfg.DSN())
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer db.Close()

	countries, err := command.Verify(cmd.Context(), db)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	printCountries(countries)

	if missing := seed.Missing(countries); len(missing) > 0 {
		logger.Error("Countries missing", zap.Strings("iso_codes", missing))
		return fmt.Errorf("%w: %s", seederrors.ErrIncompleteSeed, strings.Join(missing, ", "))
	}
	return nil
}
