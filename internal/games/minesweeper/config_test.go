package minesweeper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresets(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want Config
	}{
		{DifficultyBeginner, Config{Rows: 9, Cols: 9, Mines: 10}},
		{DifficultyIntermediate, Config{Rows: 16, Cols: 16, Mines: 40}},
		{DifficultyExpert, Config{Rows: 16, Cols: 30, Mines: 99}},
	}

	for _, tc := range tests {
		cfg, ok := Preset(tc.d)
		assert.True(t, ok)
		assert.Equal(t, tc.want, cfg)
		assert.NoError(t, cfg.Validate())
		assert.Equal(t, tc.d, DifficultyOf(cfg))
	}

	_, ok := Preset(DifficultyCustom)
	assert.False(t, ok)
	assert.Equal(t, DifficultyCustom, DifficultyOf(Config{Rows: 10, Cols: 10, Mines: 10}))
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		cfg   Config
		valid bool
	}{
		{Config{Rows: 9, Cols: 9, Mines: 5}, true},
		{Config{Rows: 30, Cols: 30, Mines: 200}, true},
		{Config{Rows: 9, Cols: 9, Mines: 80}, true},
		{Config{Rows: 9, Cols: 9, Mines: 81}, false},
		{Config{Rows: 8, Cols: 9, Mines: 10}, false},
		{Config{Rows: 9, Cols: 31, Mines: 10}, false},
		{Config{Rows: 20, Cols: 20, Mines: 201}, false},
		{Config{Rows: 20, Cols: 20, Mines: 4}, false},
		{Config{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.cfg.String(), func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
			}
		})
	}
}

func TestDifficultyTitle(t *testing.T) {
	assert.Equal(t, "Beginner", DifficultyBeginner.Title())
	assert.Equal(t, "Custom", DifficultyCustom.Title())
	assert.Equal(t, "", Difficulty("").Title())
	assert.Len(t, Difficulties(), 4)
}

func TestOutcomeMutated(t *testing.T) {
	assert.False(t, OutcomeNoop.Mutated())
	assert.False(t, OutcomeChordRejected.Mutated())
	assert.True(t, OutcomeRevealed.Mutated())
	assert.True(t, OutcomeLost.Mutated())
	assert.Equal(t, "ChordRejected", OutcomeChordRejected.String())
	assert.Equal(t, "Playing", PhasePlaying.String())
	assert.True(t, PhaseWon.Terminal())
	assert.False(t, PhasePlaying.Terminal())
}
