package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/pixelbound/clientprint/pkg/config"
	"github.com/pixelbound/clientprint/pkg/fingerprint"
	"github.com/pixelbound/clientprint/pkg/logger"
)

type appConfig struct {
	Timeout   time.Duration `env:"CLIENTPRINT_TIMEOUT" envDefault:"1s"`
	LogLevel  string        `env:"CLIENTPRINT_LOG_LEVEL" envDefault:"info"`
	LogFormat string        `env:"CLIENTPRINT_LOG_FORMAT" envDefault:"text"`
}

func newRootCommand() *cobra.Command {
	var (
		timeoutFlag time.Duration
		verboseFlag bool
	)

	rootCmd := &cobra.Command{
		Use:           "clientprint",
		Short:         "Compute a fingerprint of the local host environment",
		Long: "clientprint collects a fixed set of host-derived signals, joins them\n" +
			"into a canonical string, and prints its SHA-256 digest: a stable\n" +
			"64-character identifier for this environment.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg appConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}

			timeout := cfg.Timeout
			if cmd.Flags().Changed("timeout") {
				timeout = timeoutFlag
			}

			level := logger.ParseLevel(cfg.LogLevel)
			if verboseFlag {
				level = slog.LevelDebug
			}
			log := logger.New(
				logger.WithLevel(level),
				logger.WithFormat(logger.Format(cfg.LogFormat)),
				logger.WithOutput(cmd.ErrOrStderr()),
			)

			gen := fingerprint.New(
				fingerprint.WithTimeout(timeout),
				fingerprint.WithLogger(log),
			)

			ctx := cmd.Context()
			if verboseFlag {
				signals, err := gen.Signals(ctx)
				if err != nil {
					return err
				}
				for i, s := range signals {
					log.Debug("signal",
						slog.Int("position", i),
						slog.String("name", s.Name),
						slog.String("value", s.Value),
					)
				}
			}

			fp, err := gen.Compute(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), fp)
			return nil
		},
	}

	rootCmd.Flags().DurationVar(&timeoutFlag, "timeout", fingerprint.DefaultTimeout,
		"per-signal deadline before a signal degrades to N/A (0 disables)")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"log each resolved signal at debug level")

	return rootCmd
}
