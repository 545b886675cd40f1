package minesweeper

import (
	"fmt"
	"strings"
)

// Bounds for custom boards.
const (
	MinRows  = 9
	MaxRows  = 30
	MinCols  = 9
	MaxCols  = 30
	MinMines = 5
	MaxMines = 200
)

// Config describes the dimensions and mine count of a board.
type Config struct {
	Rows  int
	Cols  int
	Mines int
}

// String formats the config as "rowsxcols/mines".
func (c Config) String() string {
	return fmt.Sprintf("%dx%d/%d", c.Rows, c.Cols, c.Mines)
}

// Cells returns the number of cells on the board.
func (c Config) Cells() int {
	return c.Rows * c.Cols
}

// Validate checks the config against the supported bounds.
// The returned error wraps ErrInvalidConfiguration.
func (c Config) Validate() error {
	switch {
	case c.Rows < MinRows || c.Rows > MaxRows:
		return &ConfigError{Config: c, Reason: fmt.Sprintf("rows must be between %d and %d", MinRows, MaxRows)}
	case c.Cols < MinCols || c.Cols > MaxCols:
		return &ConfigError{Config: c, Reason: fmt.Sprintf("cols must be between %d and %d", MinCols, MaxCols)}
	case c.Mines < MinMines || c.Mines > MaxMines:
		return &ConfigError{Config: c, Reason: fmt.Sprintf("mines must be between %d and %d", MinMines, MaxMines)}
	case c.Mines >= c.Cells():
		return &ConfigError{Config: c, Reason: "mines must be fewer than cells"}
	}
	return nil
}

// Difficulty names a preset or the custom board.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyExpert       Difficulty = "expert"
	DifficultyCustom       Difficulty = "custom"
)

var presets = map[Difficulty]Config{
	DifficultyBeginner:     {Rows: 9, Cols: 9, Mines: 10},
	DifficultyIntermediate: {Rows: 16, Cols: 16, Mines: 40},
	DifficultyExpert:       {Rows: 16, Cols: 30, Mines: 99},
}

// Difficulties returns every difficulty in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyExpert, DifficultyCustom}
}

// Preset returns the fixed config for a preset difficulty.
// The second value is false for DifficultyCustom and unknown names.
func Preset(d Difficulty) (Config, bool) {
	cfg, ok := presets[d]
	return cfg, ok
}

// DifficultyOf reports which preset a config matches, or DifficultyCustom.
func DifficultyOf(cfg Config) Difficulty {
	for d, p := range presets {
		if p == cfg {
			return d
		}
	}
	return DifficultyCustom
}

// Title returns the display name of the difficulty.
func (d Difficulty) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}
