// Package main provides the rclip CLI entry point.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/matsen/rclip/internal/clipboard"
	"github.com/matsen/rclip/internal/command"
	"github.com/matsen/rclip/internal/config"
	"github.com/matsen/rclip/internal/store"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "1.0"

var (
	// dbPath overrides every other database location
	dbPath string
	// verbose enables debug logging on stderr
	verbose bool
)

// logger writes diagnostics to stderr; see configureLogger.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

// acquireClipboard is replaced in tests.
var acquireClipboard command.ClipboardFunc = func() (command.TextSetter, error) {
	cb, err := clipboard.Acquire()
	if err != nil {
		return nil, err
	}
	logger.Debug("clipboard acquired", "tool", cb.Name())
	return cb, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		outputError(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "rclip",
	Short: "A simple key-value store with clipboard support",
	Long: `rclip is a local key-value store with clipboard support.

Records are stored as (id, key, value) in a JSON file. Ids are assigned
on insert; keys need not be unique.

Database location, first match wins:
  --db <path>                        explicit path
  RCLIP_DB                           environment variable (a .env file is honored)
  db_path in ~/.config/rclip/config.yml
  rclip_db.json next to the rclip executable`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: configureLogger,
}

func init() {
	// Load .env file if present (for RCLIP_DB)
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the database file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")
	rootCmd.Version = Version
}

func configureLogger(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

// runCommand loads the database, executes c, saves if c mutated the store,
// and only then prints the result.
func runCommand(cmd *cobra.Command, c command.Command) error {
	loc, err := config.ResolveDBPath(dbPath)
	if err != nil {
		return withExitCode(ExitConfigError, fmt.Errorf("resolving database path: %w", err))
	}
	logger.Debug("database path resolved", "path", loc.Path, "source", loc.Source)

	s, res := store.Load(loc.Path)
	if res.Status == store.EmptyFallback {
		logger.Debug("starting with empty database", "reason", res.Reason, "error", res.Err)
	}

	ex := &command.Executor{
		Store:     s,
		Clipboard: acquireClipboard,
		OnClipboardError: func(err error) {
			logger.Debug("setting clipboard text failed", "error", err)
		},
	}

	result, err := ex.Execute(c)
	if err != nil {
		return err
	}

	if result.Mutated {
		if err := s.Save(); err != nil {
			return fmt.Errorf("saving database: %w", err)
		}
		logger.Debug("database saved", "path", s.Path(), "records", s.Len())
	}

	printLines(cmd.OutOrStdout(), result.Lines)
	return nil
}
