package main

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/de-tools/sales-atlas/pkg/server"
	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/report"
	"github.com/de-tools/sales-atlas/pkg/services/sales"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Sales Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a settings file (SALES_ATLAS_* env vars override it)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	settings, err := config.LoadSettings(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	registry := sales.DefaultRegistry()
	defaults := report.Formulas{
		Revenue: settings.RevenueFormula,
		Bonus:   settings.BonusFormula,
	}
	// Unknown default formulas are a startup error.
	if _, err := registry.Config(defaults.Revenue, defaults.Bonus); err != nil {
		return err
	}

	logger.Info().
		Str("revenue_formula", defaults.Revenue).
		Str("bonus_formula", defaults.Bonus).
		Msg("default formulas resolved")

	addr := net.JoinHostPort(settings.Server.Host, strconv.Itoa(settings.Server.Port))

	api := server.NewWebAPI(server.Config{
		Addr: addr,
		Dependencies: server.Dependencies{
			Reports:         report.NewService(registry),
			DefaultFormulas: defaults,
			Logger:          logger,
		},
	})

	return api.Start()
}
