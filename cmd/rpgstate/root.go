package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-state/internal/codec"
	"github.com/KirkDiggler/rpg-state/internal/config"
	"github.com/KirkDiggler/rpg-state/internal/pkg/logging"
)

// rootOptions is shared by every subcommand and filled in before any of them run
type rootOptions struct {
	logLevel string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "rpgstate",
		Short: "Inspect RPG character-state documents",
		Long: `rpgstate prints the built-in character state and checks or converts
character-state documents written as JSON or YAML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides RPGSTATE_LOG_LEVEL)")

	cmd.AddCommand(newShowCmd(opts))
	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newConvertCmd(opts))

	return cmd
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.logger = logger.With("command", cmd.Name())
	return nil
}

// outputFormat prefers the flag value and falls back to the configured format
func (o *rootOptions) outputFormat(flag string) (codec.Format, error) {
	if flag != "" {
		return codec.ParseFormat(flag)
	}
	return o.cfg.OutputFormat()
}
