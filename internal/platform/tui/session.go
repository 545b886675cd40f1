package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/registry"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

// SessionOptions tunes the menu -> game flow.
type SessionOptions struct {
	Logger      *log.Logger
	ChordWindow time.Duration
	Difficulty  string // Mode the menu cursor starts on
	Seed        int64  // Zero means a time-based seed per game
}

type screenKind int

const (
	screenMenu screenKind = iota
	screenCustom
	screenScores
	screenGame
)

// SessionModel manages the full flow: menu -> custom form or scoreboard ->
// game -> menu. It runs as one Bubble Tea program, locally and over SSH.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	opts       SessionOptions
	screen     screenKind
	menu       MenuModel
	custom     CustomModel
	scores     ScoreboardModel
	game       *Model
	lastMode   string
	lastCustom minesweeper.Config
	games      int64 // Boards started, used to derive seeds
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, opts SessionOptions) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return SessionModel{
		store:      store,
		config:     cfg,
		opts:       opts,
		menu:       NewMenuModel(cfg, opts.Difficulty),
		lastMode:   opts.Difficulty,
		lastCustom: minesweeper.CustomConfig(),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenCustom:
		return m.updateCustom(msg)
	case screenScores:
		return m.updateScores(msg)
	case screenGame:
		if m.game != nil {
			return m.updateGame(msg)
		}
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	switch selected.Choice {
	case ChoicePlay:
		game, err := registry.Create(selected.GameID)
		if err != nil {
			// Shouldn't happen since menu only shows registered modes
			m.opts.Logger.Error("cannot create game", "mode", selected.GameID, "error", err)
			return m.toMenu()
		}
		return m.startGame(game)

	case ChoiceCustom:
		m.custom = NewCustomModel(m.lastCustom, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenCustom
		return m, m.custom.Init()

	case ChoiceScores:
		m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()
	}

	return m.toMenu()
}

// updateCustom handles updates on the custom board form.
func (m SessionModel) updateCustom(msg tea.Msg) (tea.Model, tea.Cmd) {
	newCustom, cmd := m.custom.Update(msg)
	if customModel, ok := newCustom.(CustomModel); ok {
		m.custom = customModel
	}

	switch {
	case m.custom.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.custom.IsGoingBack():
		return m.toMenu()
	}

	if res := m.custom.Result(); res != nil {
		game, err := minesweeper.NewCustom(*res)
		if err != nil {
			// The form validated the board already
			return m.toMenu()
		}
		m.lastCustom = *res
		return m.startGame(game)
	}
	return m, cmd
}

// updateScores handles updates on the scoreboard.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newScores, cmd := m.scores.Update(msg)
	if scoresModel, ok := newScores.(ScoreboardModel); ok {
		m.scores = scoresModel
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.toMenu()
	}
	return m, cmd
}

// startGame switches to the board of game.
func (m SessionModel) startGame(game registry.Game) (tea.Model, tea.Cmd) {
	m.games++
	cfg := m.config
	cfg.Seed = time.Now().UnixNano()
	if m.opts.Seed != 0 {
		cfg.Seed = m.opts.Seed + m.games - 1
	}

	model := NewModel(game, m.store, cfg, Options{
		Logger:      m.opts.Logger,
		ChordWindow: m.opts.ChordWindow,
		Embedded:    true,
	})
	m.game = &model
	m.lastMode = game.ID()
	m.screen = screenGame
	return m, model.Init()
}

// toMenu shows a fresh menu with the cursor on the last played mode.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.game = nil
	m.menu = NewMenuModel(m.config, m.lastMode)
	m.screen = screenMenu
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenCustom:
		return m.custom.View()
	case screenScores:
		return m.scores.View()
	case screenGame:
		if m.game != nil {
			return m.game.View()
		}
	}
	return m.menu.View()
}

// RunSession runs the whole menu flow until the user quits.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(store, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
