package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
Custom opens a form for the board size; Best times shows the
fastest cleared boards. After a game, Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  mines menu
  mines menu --db ./results.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	defer closeStore(store)

	quietLogs()
	return tui.RunSession(store, terminalConfig(), tui.SessionOptions{
		Logger:      logger,
		ChordWindow: appConfig.ChordWindow(),
		Difficulty:  string(appConfig.DefaultDifficulty()),
		Seed:        flagSeed,
	})
}
