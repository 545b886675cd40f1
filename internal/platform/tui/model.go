package tui

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/registry"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

// generations hands every model its own tick stream, so a tick still in
// flight from a closed game never drives the next one.
var generations atomic.Uint64

// Options tunes a game model.
type Options struct {
	Logger      *log.Logger
	ChordWindow time.Duration // Zero means DefaultChordWindow
	Embedded    bool          // Back hands control to the caller instead of quitting
}

// Model is the Bubble Tea model for playing one game mode.
type Model struct {
	game        registry.Game
	pointer     registry.PointerGame // nil when the game has no mouse support
	screen      *core.Screen
	store       *storage.Store
	logger      *log.Logger
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	clicks      *ClickResolver
	help        help.Model
	inputFrame  core.InputFrame
	gameState   core.GameState
	gen         uint64
	embedded    bool
	quitting    bool
	backToMenu  bool
	resultSaved bool // Whether the result of the finished board has been stored
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	window := opts.ChordWindow
	if window == 0 {
		window = DefaultChordWindow
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		clicks:     NewClickResolver(window),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gen:        generations.Add(1),
		embedded:   opts.Embedded,
	}
	m.help.Width = cfg.ScreenW
	if pg, ok := game.(registry.PointerGame); ok {
		m.pointer = pg
	}
	if mg, ok := game.(*minesweeper.Game); ok {
		mg.Subscribe(minesweeper.ObserverFunc(func(s minesweeper.Snapshot) {
			if s.Event == minesweeper.EventTick {
				return
			}
			logger.Debug("board changed",
				"event", s.Event,
				"opened", s.Opened,
				"flags", s.Flags,
				"mines_left", s.MinesLeft,
			)
		}))
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logStart()
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case ClickExpiredMsg:
		m.queue(m.clicks.Expire(msg))
		return m, nil

	case tea.WindowSizeMsg:
		// The board is kept; the next frame lays it out for the new size.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.Back):
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse feeds button events through the click resolver.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.pointer == nil {
		return m, nil
	}

	p, onBoard := m.pointer.CellAt(msg.X, msg.Y)
	if !onBoard {
		// Off-board gestures still resolve but never land on a cell.
		p = core.Pt(-1, -1)
	}

	var cmd tea.Cmd
	switch msg.Action {
	case tea.MouseActionPress:
		if b, ok := buttonOf(msg.Button); ok {
			m.clicks.Press(b)
		}
	case tea.MouseActionRelease:
		cmd = m.release(msg.Button, p)
	}

	m.pointer.SetPressed(p, onBoard && m.clicks.Pressing())
	return m, cmd
}

// release resolves a button release. Some terminals report releases without
// a button; every held button is released then.
func (m *Model) release(btn tea.MouseButton, p core.Point) tea.Cmd {
	var buttons []Button
	if b, ok := buttonOf(btn); ok {
		buttons = append(buttons, b)
	} else {
		for _, b := range []Button{ButtonLeft, ButtonRight} {
			if m.clicks.Held(b) {
				buttons = append(buttons, b)
			}
		}
	}

	var cmds []tea.Cmd
	for _, b := range buttons {
		click, cmd := m.clicks.Release(b, p)
		m.queue(click)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// queue adds a resolved click to the next frame.
func (m *Model) queue(c Click) {
	if c.Action == core.ActionNone {
		return
	}
	m.inputFrame.SetAt(c.Action, c.At)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	newGame := m.inputFrame.Has(core.ActionNewGame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if newGame {
		m.logStart()
	}

	// Record the finished board once
	if !m.gameState.GameOver {
		m.resultSaved = false
	} else if !m.resultSaved {
		m.recordResult()
		m.resultSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate, m.gen)
}

// result describes the current board for storage.
func (m Model) result() storage.Result {
	st := m.gameState
	r := storage.Result{
		Difficulty: m.game.ID(),
		Won:        st.Won,
		Elapsed:    time.Duration(st.Elapsed * float64(time.Second)),
		Revealed:   st.Score,
	}
	if mg, ok := m.game.(*minesweeper.Game); ok && mg.Session() != nil {
		s := mg.Session()
		cfg := s.Config()
		r.Rows = cfg.Rows
		r.Cols = cfg.Cols
		r.Mines = cfg.Mines
		r.Seed = s.Seed()
	}
	return r
}

func (m Model) logStart() {
	r := m.result()
	m.logger.Info("new board",
		"mode", r.Difficulty,
		"board", fmt.Sprintf("%dx%d/%d", r.Rows, r.Cols, r.Mines),
		"seed", r.Seed,
	)
}

// recordResult logs the finished board and stores it. Storage is best effort.
func (m Model) recordResult() {
	r := m.result()
	m.logger.Info("game over",
		"mode", r.Difficulty,
		"seed", r.Seed,
		"won", r.Won,
		"elapsed", r.Elapsed.Round(time.Millisecond),
		"revealed", r.Revealed,
	)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveResult(r); err != nil {
		m.logger.Warn("could not save result", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.help.View(m.keyMapper.Keys())
	boardH := max(m.config.ScreenH-lipgloss.Height(helpView), 0)
	m.screen.Resize(m.config.ScreenW, boardH)

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpView
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	opts.Embedded = false
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Report presses, releases and drags
	)

	_, err := p.Run()
	return err
}
