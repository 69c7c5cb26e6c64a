// Package cli provides the tabulate command line interface.
package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/Station-Manager/tabular"
	"github.com/Station-Manager/tabular/internal/config"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var Version = "0.1.0"

// app carries the state shared by the subcommands of one invocation.
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "tabulate",
		Short: "Turn JSON or YAML records into tables",
		Long: `tabulate reads a list of records from a JSON or YAML file, fills a table
from them and either renders it (text grid, Markdown, CSV or JSON) or stores
it in a SQLite or PostgreSQL database.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, err := config.Load(a.cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			if cfg.File != "" {
				a.logger.Debug("using config file", "path", cfg.File)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./tabulate.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("null-text", "", "Text written for null values")
	rootCmd.PersistentFlags().String("time-layout", "", "Go time layout for time values (default RFC3339)")
	rootCmd.PersistentFlags().Bool("dedup-columns", false, "Drop repeated column names")

	rootCmd.AddCommand(newRenderCommand(a))
	rootCmd.AddCommand(newStoreCommand(a))
	return rootCmd
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// adapter builds the table adapter from the loaded configuration.
func (a *app) adapter() *tabular.Adapter {
	return tabular.NewWithOptions(
		tabular.WithNullText(a.cfg.NullText),
		tabular.WithTimeLayout(a.cfg.TimeLayout),
		tabular.WithDedupColumns(a.cfg.DedupColumns),
		tabular.WithLogger(a.logger),
	)
}
