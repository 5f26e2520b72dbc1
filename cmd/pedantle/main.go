package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mariaschitik/ru-pedantle/config"
	"github.com/mariaschitik/ru-pedantle/internal/logging"
)

const version = "1.0.0"

type rootOptions struct {
	configPath string
	logLevel   string
	settings   *config.Settings
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "pedantle",
		Short:         "Guess the title of a masked Russian article",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if opts.logLevel != "" {
				settings.Log.Level = opts.logLevel
			}
			logging.Setup(settings.Log.Level, settings.Log.Pretty || cmd.Name() == "play")
			opts.settings = settings
			log.Debug().Str("command", cmd.Name()).Interface("settings", settings).Msg("configuration loaded")
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(
		newPlayCommand(opts),
		newServeCommand(opts),
		newCompileCommand(opts),
	)
	return root
}
