package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"noteboard/internal/board"
	"noteboard/internal/config"
	"noteboard/internal/seed"
	"noteboard/internal/ui"

	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	seedPath   string
	logFile    string
	pageSize   int

	cfg     config.AppConfig
	logSink io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "noteboard",
	Short: "A paginated board of short notes in the terminal",
	Long: `noteboard shows a board of short text notes, one page at a time, and lets you
add new ones. Notes live in memory for the session; the board starts from a
seed file or the built-in sample notes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.LoadOrInit(configPath)
		if cmd.Flags().Changed("seed") {
			cfg.SeedPath = seedPath
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
		}
		if cmd.Flags().Changed("page-size") {
			cfg.PageSize = pageSize
		}
		return setupLogging(cfg.LogFile)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logSink != nil {
			_ = logSink.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := seed.Load(config.ExpandPath(cfg.SeedPath))
		if err != nil {
			return err
		}
		b := board.New(
			board.WithPageSize(cfg.PageSize),
			board.WithResetDraftOnCancel(cfg.ResetDraftOnCancel),
			board.WithLogger(slog.Default()),
		)
		slog.Info("starting", "seed", cfg.SeedPath, "notes", len(notes), "page_size", cfg.PageSize)
		return ui.NewApp(b, slog.Default()).Run(notes)
	},
}

// setupLogging sends logs to path; the terminal belongs to the UI. An empty
// path discards them.
func setupLogging(path string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if path == "" {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}
	path = config.ExpandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	logSink = f
	slog.SetDefault(slog.New(slog.NewTextHandler(f, opts)))
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.noteboard/config.json)")
	rootCmd.PersistentFlags().StringVar(&seedPath, "seed", "", "Seed file with the initial notes (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file (default ~/.noteboard/noteboard.log)")
	rootCmd.PersistentFlags().IntVar(&pageSize, "page-size", board.DefaultPageSize, "Notes per page")
}
