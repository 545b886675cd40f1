package minesweeper

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-mines/internal/core"
)

var (
	// ErrOutOfBounds is returned when an intent targets a position outside the grid.
	ErrOutOfBounds = errors.New("minesweeper: position out of bounds")

	// ErrInvalidConfiguration is returned when a board is requested with
	// dimensions or a mine count outside the supported range.
	ErrInvalidConfiguration = errors.New("minesweeper: invalid configuration")
)

// BoundsError describes a rejected position. It matches ErrOutOfBounds.
type BoundsError struct {
	Point      core.Point
	Rows, Cols int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("minesweeper: position %v outside %dx%d board", e.Point, e.Rows, e.Cols)
}

func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// ConfigError describes a rejected board configuration. It matches
// ErrInvalidConfiguration.
type ConfigError struct {
	Config Config
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("minesweeper: invalid configuration %v: %s", e.Config, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}
