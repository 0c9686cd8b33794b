package cmd

import (
	"fmt"

	"github.com/abhisek/undergrad/internal/logger"
	"github.com/abhisek/undergrad/internal/progress"
	"github.com/abhisek/undergrad/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "undergrad",
	Short: "K-12 course browser for the terminal",
	Long:  "Undergrad: browse K-12 courses, work through lessons, quizzes and worked examples, and keep your progress locally.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides UNDERGRAD_DB env var)")
	rootCmd.PersistentFlags().String("log-file", "", "Path to the log file (overrides UNDERGRAD_LOG env var)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then UNDERGRAD_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveLogPath follows the same order as resolveDBPath with --log-file
// and UNDERGRAD_LOG.
func resolveLogPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("log-file"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultLogPath()
}

// deps holds what every command needs: the open database, the progress
// store over it and the logger.
type deps struct {
	db       *store.Store
	progress *progress.Store
	log      *logger.Logger
}

func openDeps(cmd *cobra.Command) (*deps, error) {
	logPath, err := resolveLogPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve log path: %w", err)
	}
	level, _ := cmd.Flags().GetString("log-level")
	log, err := logger.New(logger.Config{Level: level, Path: logPath})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		log.Error("resolve database path failed", "error", err)
		log.Sync()
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	db, err := store.Open(dbPath)
	if err != nil {
		log.Error("open database failed", "path", dbPath, "error", err)
		log.Sync()
		return nil, fmt.Errorf("open database: %w", err)
	}
	log.Debug("database opened", "path", dbPath)

	ps := progress.NewStore(db.KVRepo(),
		progress.WithRecorder(db.EventRepo()),
		progress.WithLogger(log),
	)
	return &deps{db: db, progress: ps, log: log}, nil
}

func (d *deps) Close() {
	if err := d.db.Close(); err != nil {
		d.log.Warn("close database", "error", err)
	}
	d.log.Sync()
}
