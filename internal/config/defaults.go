package config

import (
	_ "embed"
)

//go:embed defaults/mines.yaml
var defaultMinesYAML []byte

// DefaultMinesConfig returns the built-in configuration.
func DefaultMinesConfig() MinesConfig {
	return MinesConfig{
		Difficulty: "beginner",
		Custom: BoardConfig{
			Rows:  16,
			Cols:  30,
			Mines: 60,
		},
		Timer: TimerConfig{
			TickMS: 20,
		},
		Input: InputConfig{
			ChordWindowMS: 50,
		},
		Theme: ThemeConfig{
			Covered:   "■",
			Flag:      "⚑",
			Mine:      "*",
			FalseFlag: "X",
			Exploded:  "@",
			Empty:     "·",
		},
		Source: "builtin",
	}
}
