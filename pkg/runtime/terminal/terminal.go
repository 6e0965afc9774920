package terminal

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/de-tools/deal-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/deal-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/deal-atlas/pkg/services/config"
	"github.com/de-tools/deal-atlas/pkg/services/deals"
	"github.com/de-tools/deal-atlas/pkg/store/document"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	flagConfig        = "config"
	flagLogLevel      = "log-level"
	flagSummary       = "summary"
	flagSummaryFormat = "summary-format"

	summaryFormatText  = "text"
	summaryFormatTable = "table"
)

// CLI represents the command-line interface
type CLI struct {
	env           *commands.Env
	output        io.Writer
	logOutput     io.Writer
	configPath    string
	summaryFormat string
	rootCmd       *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry  deals.Registry
	Store     document.Store
	Output    io.Writer
	LogOutput io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	if opts.Registry == nil {
		opts.Registry = deals.DefaultRegistry()
	}
	if opts.Store == nil {
		opts.Store = document.NewStore()
	}

	cli := &CLI{
		env: &commands.Env{
			Registry: opts.Registry,
			Store:    opts.Store,
		},
		output:    opts.Output,
		logOutput: opts.LogOutput,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "deal-atlas",
		Short:             "Synthetic grocery deals generator",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cli.setup,
	}
	cmd.SetOut(cli.output)

	flags := cmd.PersistentFlags()
	flags.StringVar(&cli.configPath, flagConfig, "", "Path to a settings file (yaml, json or toml)")
	flags.String(flagLogLevel, "info", "Log level (trace, debug, info, warn, error)")
	flags.Bool(flagSummary, false, "Print a summary report after each generated file")
	flags.StringVar(&cli.summaryFormat, flagSummaryFormat, summaryFormatText, "Summary layout: text or table")

	cmd.AddCommand(commands.NewRandomCmd(cli.env))
	cmd.AddCommand(commands.NewPositionalCmd(cli.env))
	cmd.AddCommand(commands.NewCategoryCmd(cli.env))
	cmd.AddCommand(commands.NewBatchCmd(cli.env))
	cmd.AddCommand(commands.NewClassifyCmd(cli.env))

	return cmd
}

// setup loads .env and settings, then stores the configured logger in the command context.
func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	envErr := godotenv.Load()
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", envErr)
	}

	settings, err := config.LoadSettings(cli.configPath, cmd.Flags(), map[string]string{
		config.KeyLogLevel: flagLogLevel,
		config.KeySummary:  flagSummary,
	})
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", settings.LogLevel, err)
	}
	logger := zerolog.New(cli.logOutput).Level(level).With().Timestamp().Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))

	cli.env.Settings = settings
	cli.env.Classifier = deals.NewClassifier(settings.Categories)
	cli.env.Reporter = nil
	if settings.Summary {
		switch cli.summaryFormat {
		case summaryFormatText:
			cli.env.Reporter = NewReporter(cli.output)
		case summaryFormatTable:
			cli.env.Reporter = export.NewReporter(cli.output)
		default:
			return fmt.Errorf("unsupported summary format %q", cli.summaryFormat)
		}
	}

	if cli.configPath != "" {
		logger.Debug().Msgf("Configuration found at `%s` successfully loaded.", cli.configPath)
	}
	return nil
}
