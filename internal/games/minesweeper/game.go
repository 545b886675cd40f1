package minesweeper

import (
	"math/rand/v2"
	"sync"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

// Symbols are the runes used to draw cells.
type Symbols struct {
	Covered   rune
	Flag      rune
	Mine      rune
	FalseFlag rune
	Exploded  rune
	Empty     rune
}

// DefaultSymbols returns the built-in theme.
func DefaultSymbols() Symbols {
	return Symbols{
		Covered:   '■',
		Flag:      '⚑',
		Mine:      '*',
		FalseFlag: 'X',
		Exploded:  '@',
		Empty:     '·',
	}
}

// Package-level settings applied on the next Reset (like snake's start level).
var (
	settingsMu   sync.RWMutex
	customConfig = Config{Rows: 16, Cols: 30, Mines: 60}
	symbols      = DefaultSymbols()
)

// SetCustomConfig sets the board used by the custom mode.
func SetCustomConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	settingsMu.Lock()
	defer settingsMu.Unlock()
	customConfig = cfg
	return nil
}

// CustomConfig returns the board used by the custom mode.
func CustomConfig() Config {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return customConfig
}

// SetSymbols sets the rune theme. Zero fields keep their default.
func SetSymbols(s Symbols) {
	d := DefaultSymbols()
	pick := func(r, def rune) rune {
		if r == 0 {
			return def
		}
		return r
	}
	settingsMu.Lock()
	defer settingsMu.Unlock()
	symbols = Symbols{
		Covered:   pick(s.Covered, d.Covered),
		Flag:      pick(s.Flag, d.Flag),
		Mine:      pick(s.Mine, d.Mine),
		FalseFlag: pick(s.FalseFlag, d.FalseFlag),
		Exploded:  pick(s.Exploded, d.Exploded),
		Empty:     pick(s.Empty, d.Empty),
	}
}

func currentSymbols() Symbols {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return symbols
}

// Game adapts a Session to the platform's Game interface: keyboard cursor,
// pointer targets, timer ticks and terminal rendering.
type Game struct {
	difficulty Difficulty
	custom     *Config // Board of this instance only; overrides CustomConfig
	cfg        Config
	rng        *rand.Rand
	session    *Session
	observers  []Observer

	cursor     core.Point
	pressed    core.Point
	hasPressed bool

	tickSeconds float64
	screenW     int
	screenH     int
	layout      layout
}

// New creates a game for the given difficulty.
func New(d Difficulty) *Game {
	return &Game{difficulty: d}
}

// NewCustom creates a custom game with its own board dimensions, leaving
// the package-wide custom config alone.
func NewCustom(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{difficulty: DifficultyCustom, custom: &cfg}, nil
}

func init() {
	for _, d := range Difficulties() {
		registry.Register(string(d), func() registry.Game {
			return New(d)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.difficulty)
}

// Title returns the display name.
func (g *Game) Title() string {
	cfg := g.config()
	return "Minesweeper " + g.difficulty.Title() + " (" + cfg.String() + ")"
}

// Difficulty returns the difficulty of this game.
func (g *Game) Difficulty() Difficulty {
	return g.difficulty
}

func (g *Game) config() Config {
	if cfg, ok := Preset(g.difficulty); ok {
		return cfg
	}
	if g.custom != nil {
		return *g.custom
	}
	return CustomConfig()
}

// Reset starts a fresh board. The first board uses cfg.Seed; later boards
// draw their seed from it so a whole run is reproducible.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewPCG(uint64(cfg.Seed), 0))
	g.tickSeconds = cfg.TickSeconds()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.cfg = g.config()
	g.start(cfg.Seed)
}

// NewGame discards the current board and starts another one with cfg.
func (g *Game) NewGame(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(0, 0))
	}
	g.cfg = cfg
	g.start(g.rng.Int64())
	return nil
}

func (g *Game) start(seed int64) {
	s, err := Start(g.cfg, seed)
	if err != nil {
		// Only a custom config can fail here; fall back to the smallest preset.
		g.cfg, _ = Preset(DifficultyBeginner)
		s, _ = Start(g.cfg, seed)
	}
	for _, o := range g.observers {
		s.Subscribe(o)
	}
	g.session = s
	g.cursor = core.Pt(g.cfg.Rows/2, g.cfg.Cols/2)
	g.hasPressed = false
	g.layout = computeLayout(g.cfg, g.screenW, g.screenH)
}

// Session returns the current session.
func (g *Game) Session() *Session {
	return g.session
}

// Subscribe registers an observer on this and every future session.
func (g *Game) Subscribe(o Observer) {
	g.observers = append(g.observers, o)
	if g.session != nil {
		g.session.Subscribe(o)
	}
}

// Cursor returns the keyboard cursor position.
func (g *Game) Cursor() core.Point {
	return g.cursor
}

// SetPressed sets the anchor of the chord preview.
func (g *Game) SetPressed(p core.Point, on bool) {
	g.pressed = p
	g.hasPressed = on && g.session.Board().InBounds(p)
}

// Step applies this frame's intents and advances the clock by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionNewGame) {
		//nolint:errcheck // g.cfg was validated when the board was built
		g.NewGame(g.cfg)
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	target := g.cursor
	if in.HasTarget {
		target = in.Target
	}
	b := g.session.Board()
	if b.InBounds(target) {
		if in.HasTarget {
			g.cursor = target
		}
		g.apply(in, target)
	}

	g.session.Tick(g.tickSeconds)
	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	dr, dc := 0, 0
	switch {
	case in.Has(core.ActionUp):
		dr = -1
	case in.Has(core.ActionDown):
		dr = 1
	case in.Has(core.ActionLeft):
		dc = -1
	case in.Has(core.ActionRight):
		dc = 1
	}
	if dr == 0 && dc == 0 {
		return
	}
	next := g.cursor.Add(dr, dc)
	g.cursor = core.Pt(
		core.Clamp(next.Row, 0, g.cfg.Rows-1),
		core.Clamp(next.Col, 0, g.cfg.Cols-1),
	)
}

// apply routes the frame's intents to the session. target is in bounds.
func (g *Game) apply(in core.InputFrame, target core.Point) {
	s := g.session
	switch {
	case in.Has(core.ActionChord):
		s.Chord(target) //nolint:errcheck // target is in bounds
	case in.Has(core.ActionReveal):
		// Revealing an open number is the keyboard way to chord.
		if s.Board().Cell(target).Revealed() {
			s.Chord(target) //nolint:errcheck // target is in bounds
		} else {
			s.Reveal(target) //nolint:errcheck // target is in bounds
		}
	case in.Has(core.ActionFlag):
		s.ToggleFlag(target) //nolint:errcheck // target is in bounds
	}
}

// CellAt maps screen coordinates to a board position.
func (g *Game) CellAt(x, y int) (core.Point, bool) {
	if g.layout.tooSmall {
		return core.Point{}, false
	}
	dx := x - g.layout.cellX
	dy := y - g.layout.cellY
	if dx < 0 || dy < 0 {
		return core.Point{}, false
	}
	p := core.Pt(dy, dx/cellWidth)
	if !g.session.Board().InBounds(p) {
		return core.Point{}, false
	}
	return p, true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	if s == nil {
		return core.GameState{}
	}
	phase := s.Phase()
	return core.GameState{
		Score:    s.Board().Opened(),
		Started:  phase != PhaseNotStarted,
		GameOver: phase.Terminal(),
		Won:      phase == PhaseWon,
		Elapsed:  s.Elapsed(),
	}
}
