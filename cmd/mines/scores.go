package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/registry"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best times",
	Long: `Display the fastest cleared boards of a mode, or a summary of
every mode when none is given.

Examples:
  mines scores
  mines scores expert
  mines scores beginner --limit 20
  mines scores --interactive
  mines scores custom --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of times to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse times in the scoreboard screen")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the stored results of the mode (all modes without one)")
}

func runScores(_ *cobra.Command, args []string) error {
	mode := ""
	if len(args) > 0 {
		d, err := config.ParseDifficulty(args[0])
		if err != nil {
			return err
		}
		mode = string(d)
	}

	store := openStore()
	if store == nil {
		return fmt.Errorf("no results database")
	}
	defer closeStore(store)

	switch {
	case flagClear:
		if err := store.ClearResults(mode); err != nil {
			return err
		}
		logger.Info("results cleared", "mode", mode)
		return nil
	case flagInteractive:
		cfg := terminalConfig()
		quietLogs()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		return err
	case mode == "":
		return printSummary(store)
	}
	return printBestTimes(store, mode)
}

// printSummary prints one line per registered mode.
func printSummary(store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return err
	}

	fmt.Printf("  %-13s  %6s  %4s  %5s  %9s  %9s\n", "Mode", "Played", "Won", "Rate", "Best", "Average")
	fmt.Printf("  %-13s  %6s  %4s  %5s  %9s  %9s\n", "----", "------", "---", "----", "----", "-------")
	for _, m := range registry.List() {
		st, ok := all[m.ID]
		if !ok {
			st = &storage.Stats{Difficulty: m.ID}
		}
		fmt.Printf("  %-13s  %6d  %4d  %4.0f%%  %9s  %9s\n",
			m.ID, st.Played, st.Won, st.WinRate()*100, seconds(st.BestTime, st.Won), seconds(st.AvgTime, st.Won))
	}
	return nil
}

// printBestTimes prints the fastest won boards of one mode.
func printBestTimes(store *storage.Store, mode string) error {
	title := mode
	var (
		results []storage.Result
		err     error
	)
	if mode == string(minesweeper.DifficultyCustom) {
		// Custom boards only compare against the same dimensions
		board := appConfig.Board()
		title = fmt.Sprintf("%s %s", mode, board)
		results, err = store.BestTimesFor(board.Rows, board.Cols, board.Mines, flagLimit)
	} else {
		results, err = store.BestTimes(mode, flagLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Best Times - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No boards cleared yet.")
		fmt.Println()
		fmt.Printf("Play 'mines play %s' to set the first time!\n", mode)
		return nil
	}

	fmt.Printf("  %-4s  %-9s  %-9s  %s\n", "Rank", "Time", "Board", "Date")
	fmt.Printf("  %-4s  %-9s  %-9s  %s\n", "----", "----", "-----", "----")
	for i, r := range results {
		board := fmt.Sprintf("%dx%d/%d", r.Rows, r.Cols, r.Mines)
		fmt.Printf("  %-4d  %-9s  %-9s  %s\n", i+1, seconds(r.Elapsed, 1), board, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	st, err := store.Stats(mode)
	if err == nil {
		fmt.Println()
		fmt.Printf("Played %d, won %d (%.0f%%)\n", st.Played, st.Won, st.WinRate()*100)
	}
	return nil
}

// seconds formats a game time; won is the number of games it was taken from.
func seconds(d time.Duration, won int) string {
	if won == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
