// mines is a terminal minesweeper.
//
// Usage:
//
//	mines list              - List the difficulty modes
//	mines play [mode]       - Play a mode directly
//	mines menu              - Pick modes interactively
//	mines scores [mode]     - Show best times
//	mines serve             - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set database path (default: XDG data dir)
//	--config <path>      - Use a specific mines.yaml
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

var (
	appConfig config.MinesConfig
	logger    = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "mines"})
	logFile   *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Minesweeper in your terminal",
	Long: `Minesweeper for the terminal, playable with keyboard or mouse,
locally or over SSH.

Available commands:
  list     - Show the difficulty modes
  play     - Play a mode directly
  menu     - Interactive difficulty picker
  scores   - View best times
  serve    - Start SSH server for remote play

Examples:
  mines play expert
  mines play --rows 20 --cols 24 --mines 90
  mines menu
  mines serve --ssh :2222
  mines scores intermediate`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to mines.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup builds the logger, loads the config and hands it to the game package.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		logger.SetOutput(f)
	}

	appConfig, err = config.LoadMines(flagConfig)
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}
	logger.Debug("config loaded", "source", appConfig.Source)

	if err := minesweeper.SetCustomConfig(appConfig.Board()); err != nil {
		return fmt.Errorf("invalid custom board: %w", err)
	}
	minesweeper.SetSymbols(appConfig.Symbols())
	return nil
}

// quietLogs silences stderr logging while a full-screen program owns the
// terminal. A log file keeps receiving everything.
func quietLogs() {
	if logFile == nil {
		logger.SetOutput(io.Discard)
	}
}

// openStore opens the results database. Failures are logged and play
// continues without recording.
func openStore() *storage.Store {
	path := flagDBPath
	if path == "" {
		p, err := storage.DefaultPath()
		if err != nil {
			logger.Warn("could not resolve results database path", "error", err)
			return nil
		}
		path = p
	}

	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open results database", "path", path, "error", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close results database", "error", err)
	}
}
