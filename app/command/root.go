package command

import (
	"log/slog"
	"os"

	"library/config"

	"github.com/spf13/cobra"
)

// configFile is set by the --config flag.
var configFile string

func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "library",
		Short:         "Library management REST backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (environment variables take precedence)")

	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRoot().Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func newLogger(cfg config.App) *slog.Logger {
	level := slog.LevelInfo
	if cfg.IsDev() {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
