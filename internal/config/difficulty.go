package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
)

// aliases maps accepted spellings to difficulties.
var aliases = map[string]minesweeper.Difficulty{
	"beginner":     minesweeper.DifficultyBeginner,
	"easy":         minesweeper.DifficultyBeginner,
	"intermediate": minesweeper.DifficultyIntermediate,
	"normal":       minesweeper.DifficultyIntermediate,
	"medium":       minesweeper.DifficultyIntermediate,
	"expert":       minesweeper.DifficultyExpert,
	"hard":         minesweeper.DifficultyExpert,
	"custom":       minesweeper.DifficultyCustom,
}

// ParseDifficulty normalizes a difficulty name. Empty means beginner.
func ParseDifficulty(s string) (minesweeper.Difficulty, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return minesweeper.DifficultyBeginner, nil
	}
	d, ok := aliases[key]
	if !ok {
		return "", fmt.Errorf("unknown difficulty %q (want beginner, intermediate, expert or custom)", s)
	}
	return d, nil
}
