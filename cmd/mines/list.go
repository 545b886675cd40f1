package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the difficulty modes",
	Long:  `Shows every registered mode with its board size.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, m := range modes {
		// Titles are taken at registration; build the game again so the
		// custom mode shows the loaded config.
		title := m.Title
		if g, err := registry.Create(m.ID); err == nil {
			title = g.Title()
		}
		fmt.Printf("  %-*s  %s\n", maxIDLen, m.ID, title)
	}

	fmt.Println()
	fmt.Println("Run 'mines play <id>' to play a mode.")
}
