package terminal

import (
	"io"
	"os"

	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/report"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	service    report.Service
	sources    commands.SourceFactory
	settings   *config.Settings
	configPath string
	logLevel   string
	rootCmd    *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Service report.Service
	// Sources resolves --input/--profile into a bundle source; defaults to commands.DefaultSourceFactory
	Sources commands.SourceFactory
	Output  io.Writer
	ErrOut  io.Writer
	Args    []string
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOut == nil {
		opts.ErrOut = os.Stderr
	}
	if opts.Sources == nil {
		opts.Sources = commands.DefaultSourceFactory
	}

	cli := &CLI{
		service: opts.Service,
		sources: opts.Sources,
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	cli.rootCmd.SetErr(opts.ErrOut)
	if opts.Args != nil {
		cli.rootCmd.SetArgs(opts.Args)
	}
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "sales-atlas",
		Short:             "Seller performance reporting tool",
		SilenceUsage:      true,
		PersistentPreRunE: cli.setup,
	}

	cmd.PersistentFlags().StringVar(&cli.configPath, "config", "", "Path to a settings file (yaml, json or toml)")
	cmd.PersistentFlags().StringVar(&cli.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.service, cli.sources, cli.Settings))
	cmd.AddCommand(commands.NewFormulasCmd(cli.service))
	cmd.AddCommand(commands.NewProfilesCmd(cli.Settings))

	return cmd
}

// Settings returns the settings loaded before the running command started
func (cli *CLI) Settings() *config.Settings {
	return cli.settings
}

func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings(cli.configPath)
	if err != nil {
		return err
	}
	if cli.logLevel != "" {
		settings.LogLevel = cli.logLevel
	}
	cli.settings = settings

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		return err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: "15:04:05"}).
		Level(level).
		With().
		Timestamp().
		Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))
	return nil
}
