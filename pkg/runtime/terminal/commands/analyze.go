package commands

import (
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/report"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type AnalyzeCmd struct {
	input        string
	profile      string
	profilesPath string
	revenue      string
	bonus        string
	output       string
	service      report.Service
	sources      SourceFactory
	settings     func() *config.Settings
}

func NewAnalyzeCmd(service report.Service, sources SourceFactory, settings func() *config.Settings) *cobra.Command {
	ac := &AnalyzeCmd{service: service, sources: sources, settings: settings}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Build the seller performance report",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.input, "input", "", "Path to a JSON bundle, or - for stdin")
	cmd.Flags().StringVar(&ac.profile, "profile", "", "Name of a data source profile")
	cmd.Flags().StringVar(&ac.profilesPath, "profiles", "", "Path to the profiles file (default is $HOME/.salesatlascfg)")
	cmd.Flags().StringVar(&ac.revenue, "revenue", "", "Revenue formula (default from settings)")
	cmd.Flags().StringVar(&ac.bonus, "bonus", "", "Bonus formula (default from settings)")
	cmd.Flags().StringVarP(&ac.output, "output", "o", "", "Output format: table or json (default from settings)")

	cmd.MarkFlagsMutuallyExclusive("input", "profile")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)
	settings := ac.settings()

	formulas := report.Formulas{
		Revenue: firstNonEmpty(ac.revenue, settings.RevenueFormula),
		Bonus:   firstNonEmpty(ac.bonus, settings.BonusFormula),
	}

	reporter, err := export.NewHandler(firstNonEmpty(ac.output, settings.Output), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	src, closeSource, err := ac.sources(ctx, SourceRequest{
		Input:        ac.input,
		Profile:      ac.profile,
		ProfilesPath: firstNonEmpty(ac.profilesPath, settings.ProfilesPath),
	})
	if err != nil {
		return fmt.Errorf("failed to open bundle source: %w", err)
	}
	defer func() {
		if err := closeSource(); err != nil {
			logger.Warn().Err(err).Msg("failed to close bundle source")
		}
	}()

	rep, err := ac.service.Generate(ctx, src, formulas)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	return reporter.Handle(rep)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
