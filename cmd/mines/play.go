package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

var (
	flagDifficulty string
	flagRows       int
	flagCols       int
	flagMines      int
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start a board of the given mode. Without a mode the configured
difficulty is used. Setting any of --rows, --cols or --mines plays a
custom board; unset values come from the config's custom section.

Controls:
  Arrows/hjkl      - Move cursor
  Space/Enter      - Open cell (on a number: chord)
  F                - Flag / unflag
  C                - Chord
  N/F2             - New game
  Esc/B, Q         - Quit
  Left click       - Open cell
  Right click      - Flag / unflag
  Left+Right click - Chord

Modes:
  beginner      9x9, 10 mines       (alias: easy)
  intermediate  16x16, 40 mines     (alias: normal, medium)
  expert        16x30, 99 mines     (alias: hard)
  custom        from config or flags

Examples:
  mines play
  mines play expert
  mines play --difficulty easy
  mines play --rows 20 --cols 24 --mines 90
  mines play beginner --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Mode to play: beginner, intermediate, expert, custom")
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Custom board rows")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Custom board columns")
	playCmd.Flags().IntVar(&flagMines, "mines", 0, "Custom board mines")
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: appConfig.TickRate(),
		Seed:     flagSeed,
	}
}

// playMode picks the mode from the argument, the flag or the config.
func playMode(args []string) (minesweeper.Difficulty, error) {
	name := flagDifficulty
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		return appConfig.DefaultDifficulty(), nil
	}
	return config.ParseDifficulty(name)
}

// newGame creates the game to play. Board flags force a custom game.
func newGame(cmd *cobra.Command, d minesweeper.Difficulty) (registry.Game, error) {
	flags := cmd.Flags()
	if !flags.Changed("rows") && !flags.Changed("cols") && !flags.Changed("mines") {
		return registry.Create(string(d))
	}

	board := appConfig.Board()
	if flags.Changed("rows") {
		board.Rows = flagRows
	}
	if flags.Changed("cols") {
		board.Cols = flagCols
	}
	if flags.Changed("mines") {
		board.Mines = flagMines
	}
	g, err := minesweeper.NewCustom(board)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	d, err := playMode(args)
	if err != nil {
		return fmt.Errorf("%w\nRun 'mines list' to see available modes", err)
	}

	game, err := newGame(cmd, d)
	if err != nil {
		var cfgErr *minesweeper.ConfigError
		if errors.As(err, &cfgErr) {
			return fmt.Errorf("invalid board %s: %s", cfgErr.Config, cfgErr.Reason)
		}
		return err
	}

	store := openStore()
	defer closeStore(store)

	quietLogs()
	return tui.Run(game, store, terminalConfig(), tui.Options{
		Logger:      logger,
		ChordWindow: appConfig.ChordWindow(),
	})
}
