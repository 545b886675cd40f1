// Package config provides YAML-based configuration loading for the
// minesweeper platform: default difficulty, the custom board, timing and theme.
package config

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
)

// MinesConfig contains all configuration for the game.
type MinesConfig struct {
	Difficulty string      `yaml:"difficulty"`
	Custom     BoardConfig `yaml:"custom"`
	Timer      TimerConfig `yaml:"timer"`
	Input      InputConfig `yaml:"input"`
	Theme      ThemeConfig `yaml:"theme"`

	// Source is where the config was loaded from (path, "embedded" or "builtin").
	Source string `yaml:"-"`
}

// BoardConfig defines the custom board dimensions.
type BoardConfig struct {
	Rows  int `yaml:"rows"`
	Cols  int `yaml:"cols"`
	Mines int `yaml:"mines"`
}

// TimerConfig defines the elapsed-timer interval.
type TimerConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// InputConfig defines mouse disambiguation parameters.
type InputConfig struct {
	ChordWindowMS int `yaml:"chord_window_ms"` // Max gap between releases that counts as a chord
}

// ThemeConfig defines the glyph for each cell state. Each value is one rune.
type ThemeConfig struct {
	Covered   string `yaml:"covered"`
	Flag      string `yaml:"flag"`
	Mine      string `yaml:"mine"`
	FalseFlag string `yaml:"false_flag"`
	Exploded  string `yaml:"exploded"`
	Empty     string `yaml:"empty"`
}

// InvalidConfig reports a config value out of range.
type InvalidConfig struct {
	Field  string
	Reason string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config: invalid %s: %s", e.Field, e.Reason)
}

// Validate checks every section of the config.
func (c MinesConfig) Validate() error {
	if _, err := ParseDifficulty(c.Difficulty); err != nil {
		return &InvalidConfig{Field: "difficulty", Reason: err.Error()}
	}
	if err := c.Board().Validate(); err != nil {
		return &InvalidConfig{Field: "custom", Reason: err.Error()}
	}
	if c.Timer.TickMS < 1 || c.Timer.TickMS > 1000 {
		return &InvalidConfig{Field: "timer.tick_ms", Reason: "must be between 1 and 1000"}
	}
	if c.Input.ChordWindowMS < 0 || c.Input.ChordWindowMS > 1000 {
		return &InvalidConfig{Field: "input.chord_window_ms", Reason: "must be between 0 and 1000"}
	}

	glyphs := []struct{ field, value string }{
		{"theme.covered", c.Theme.Covered},
		{"theme.flag", c.Theme.Flag},
		{"theme.mine", c.Theme.Mine},
		{"theme.false_flag", c.Theme.FalseFlag},
		{"theme.exploded", c.Theme.Exploded},
		{"theme.empty", c.Theme.Empty},
	}
	for _, g := range glyphs {
		if g.value != "" && utf8.RuneCountInString(g.value) != 1 {
			return &InvalidConfig{Field: g.field, Reason: fmt.Sprintf("%q must be a single character", g.value)}
		}
	}
	return nil
}

// Board returns the custom board as a minesweeper config.
func (c MinesConfig) Board() minesweeper.Config {
	return minesweeper.Config{Rows: c.Custom.Rows, Cols: c.Custom.Cols, Mines: c.Custom.Mines}
}

// DefaultDifficulty returns the configured difficulty, falling back to beginner.
func (c MinesConfig) DefaultDifficulty() minesweeper.Difficulty {
	d, err := ParseDifficulty(c.Difficulty)
	if err != nil {
		return minesweeper.DifficultyBeginner
	}
	return d
}

// TickRate returns timer ticks per second.
func (c MinesConfig) TickRate() int {
	if c.Timer.TickMS <= 0 {
		return 50
	}
	return max(1, 1000/c.Timer.TickMS)
}

// ChordWindow returns the simultaneous-release window.
func (c MinesConfig) ChordWindow() time.Duration {
	return time.Duration(c.Input.ChordWindowMS) * time.Millisecond
}

// Symbols converts the theme to runes. Empty entries stay zero so the
// game keeps its default glyph.
func (c MinesConfig) Symbols() minesweeper.Symbols {
	first := func(s string) rune {
		r, _ := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError {
			return 0
		}
		return r
	}
	return minesweeper.Symbols{
		Covered:   first(c.Theme.Covered),
		Flag:      first(c.Theme.Flag),
		Mine:      first(c.Theme.Mine),
		FalseFlag: first(c.Theme.FalseFlag),
		Exploded:  first(c.Theme.Exploded),
		Empty:     first(c.Theme.Empty),
	}
}
