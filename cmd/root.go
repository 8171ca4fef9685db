package cmd

import (
	"fmt"

	"github.com/psds-microservice/country-seeder/internal/config"
	"github.com/psds-microservice/country-seeder/internal/seed"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "country-seeder",
	Short: "Countries reference data seeder (insert-if-absent, never overwrites)",
	RunE:  runSeed, // по умолчанию — сидинг
}

// Execute запускает корневую команду (Cobra CLI)
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger создает zap-логгер: production по умолчанию, development при --debug
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// loadConfig загружает YAML-конфиг; без пути или при ошибке — только env
func loadConfig(path string, logger *zap.Logger) *config.Config {
	if path == "" {
		return config.LoadConfigFromEnv()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logger.Warn("Failed to load config", zap.Error(err))
		return config.LoadConfigFromEnv()
	}
	return cfg
}

// printCountries печатает контрольную выборку для оператора
func printCountries(countries []seed.Country) {
	for _, c := range countries {
		fmt.Printf("%-24s %s\n", c.Name, c.ISOCode)
	}
	fmt.Printf("%d of %d countries present\n", len(countries), len(seed.Countries))
}
