package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Tyrn/damastes/internal/config"
)

var version = "dev"

var (
	configPath string
	verbose    bool
	quiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "damastes [flags] <source> <destination>",
	Short: "Audio album builder",
	Long: `damastes - audio album builder

Copies a directory tree of audio files to a destination, naturally
sorted, renumbered, renamed, and tagged as one album. The source is
never modified.`,
	Args: cobra.ExactArgs(2),
	RunE: runCopy,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "damastes: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: discovered)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Per-file output instead of a progress bar")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress and summary output")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("damastes {{.Version}}\n")
}

// loadConfig returns the configuration the current invocation runs under:
// the --config file when given, the discovered file when one exists, and
// built-in defaults otherwise.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	path, err := config.Discover()
	if err != nil {
		return config.Default(), nil
	}
	return config.Load(path)
}

// newLogger builds the process logger from the config's console settings.
func newLogger(cfg *config.Config) *slog.Logger {
	if quiet {
		return slog.New(slog.DiscardHandler)
	}
	level := slog.LevelInfo
	switch cfg.Console.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
