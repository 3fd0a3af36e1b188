package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"github.com/vytor/flexstats/internal/app"
	"github.com/vytor/flexstats/internal/config"
	"github.com/vytor/flexstats/internal/logger"
)

type options struct {
	dbPath      string
	weightsPath string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()
	opts := &options{
		dbPath:      cfg.DBPath,
		weightsPath: cfg.WeightsPath,
		logLevel:    "WARN",
	}

	root := &cobra.Command{
		Use:           "flexctl",
		Short:         "Flex queue match scoring tool",
		Long:          "Import League of Legends matches and rank players, histories and squads by MVP score.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetDefault(logger.New(
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithLevel(logger.ParseLevel(opts.logLevel)),
				logger.WithColors(false),
			))
		},
	}

	root.PersistentFlags().StringVar(&opts.dbPath, "db", opts.dbPath, "path to SQLite match store")
	root.PersistentFlags().StringVar(&opts.weightsPath, "weights", opts.weightsPath, "YAML file with MVP weights")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", opts.logLevel, "DEBUG, INFO, WARN or ERROR")

	root.AddCommand(newImportCmd(cfg, opts))
	root.AddCommand(newScoreCmd(cfg, opts))
	root.AddCommand(newHistoryCmd(cfg, opts))
	root.AddCommand(newCompareCmd(cfg, opts))
	return root
}

// open builds the services with flag overrides applied to cfg.
func open(cfg config.Config, opts *options) (*app.App, error) {
	cfg.DBPath = opts.dbPath
	cfg.WeightsPath = opts.weightsPath
	cfg.LogLevel = opts.logLevel
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return app.New(cfg)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
