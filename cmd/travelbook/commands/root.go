package commands

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"travelbook/internal/app"
)

var (
	home       string
	configPath string
	passphrase string
	verbose    bool

	wire   *app.Wire
	appCtx *app.App
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return execute(newRootCmd())
}

// execute runs root and releases the wiring whether or not the command failed.
// Cobra skips the post-run hooks when RunE returns an error.
func execute(root *cobra.Command) error {
	err := root.Execute()
	if wire != nil {
		if err != nil {
			wire.Log.Debug("command failed", zap.Error(err))
		}
		wire.Close()
		wire, appCtx = nil, nil
	}
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "travelbook",
		Short:         "Manage contacts and trips for a travel agency",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(resolveConfigPath())
			if err != nil {
				return err
			}
			if home != "" {
				cfg.Home = home
			}
			if passphrase != "" {
				cfg.Passphrase = passphrase
			}
			if verbose {
				cfg.LogLevel = "debug"
			}

			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			wire, appCtx = w, w.App
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			saved, err := appCtx.Commit()
			if err != nil {
				return err
			}
			wire.Log.Debug("command finished", zap.String("command", cmd.CommandPath()), zap.Bool("saved", saved))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.travelbook)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to seal book files")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(contactCmd(), tripCmd(), clearCmd())
	return root
}

// resolveConfigPath prefers --config, then config.yaml under --home if it exists.
// An empty result lets app.LoadConfig fall back to its own lookup.
func resolveConfigPath() string {
	if configPath != "" || home == "" {
		return configPath
	}
	candidate := filepath.Join(home, "config.yaml")
	if _, err := os.Stat(candidate); errors.Is(err, os.ErrNotExist) {
		return ""
	}
	return candidate
}
