package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/registry"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

const (
	minWidthForCard = 84  // Below this the stats card folds into one line
	cardWidth       = 26  // Outer width of the stats card
	maxScores       = 100 // Max results to load per difficulty
)

var (
	scoreTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	scoreFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)
	scoreDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	scoreTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("11")).
			Padding(0, 1)
)

// scoreboardKeys reuses the board bindings for scrolling and leaving, and adds
// tab cycling through difficulties.
type scoreboardKeys struct {
	KeyMap
	NextMode key.Binding
	PrevMode key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextMode, k.PrevMode},
		{k.Back, k.Quit},
	}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		KeyMap: DefaultKeyMap(),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next difficulty"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev difficulty"),
		),
	}
}

// scoreMode is one difficulty tab and the board it is played on.
type scoreMode struct {
	ID    string
	Name  string
	Board minesweeper.Config
}

func scoreModes() []scoreMode {
	games := registry.List()
	modes := make([]scoreMode, 0, len(games))
	for _, g := range games {
		d := minesweeper.Difficulty(g.ID)
		board, ok := minesweeper.Preset(d)
		if !ok {
			board = minesweeper.CustomConfig()
		}
		modes = append(modes, scoreMode{ID: g.ID, Name: d.Title(), Board: board})
	}
	return modes
}

// ScoreboardModel lists the fastest won boards of each difficulty together
// with totals over every finished game.
type ScoreboardModel struct {
	store   *storage.Store
	modes   []scoreMode
	current int
	results []storage.Result
	stats   *storage.Stats
	table   table.Model
	help    help.Model
	keys    scoreboardKeys
	width   int
	height  int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the first difficulty.
// A nil store shows empty tables.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		modes:  scoreModes(),
		help:   help.New(),
		keys:   newScoreboardKeys(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForCard
}

func (m *ScoreboardModel) newTable() table.Model {
	dateWidth := 12
	avail := m.width - 6
	if m.wide() {
		avail -= cardWidth + 2
	}
	// Rank, time, board and seed take 40 columns with padding
	if avail > 40+dateWidth {
		dateWidth = min(avail-40, 18)
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Time", Width: 9},
			{Title: "Board", Width: 10},
			{Title: "Seed", Width: 9},
			{Title: "Date", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("238")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("11")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load fetches the best times and totals of the current difficulty.
func (m *ScoreboardModel) load() {
	m.results, m.stats = nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.current].ID
		if results, err := m.store.BestTimes(id, maxScores); err == nil {
			m.results = results
		}
		if stats, err := m.store.Stats(id); err == nil {
			m.stats = stats
		}
	}
	m.fillTable()
}

func (m *ScoreboardModel) fillTable() {
	rows := make([]table.Row, 0, len(m.results))
	for i, r := range m.results {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			formatElapsed(r.Elapsed),
			fmt.Sprintf("%dx%d/%d", r.Rows, r.Cols, r.Mines),
			strconv.FormatInt(r.Seed%1_000_000_000, 10),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatElapsed renders a game time with the HUD's precision.
func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}

func (m *ScoreboardModel) cycle(delta int) {
	if n := len(m.modes); n > 0 {
		m.current = (m.current + delta + n) % n
		m.load()
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.cycle(-1)
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(scoreTitleStyle.Render("BEST TIMES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerStyled(m.tabs(), m.width))
	b.WriteString("\n\n")

	times := scoreFrameStyle.Render(m.tableView())
	if m.wide() {
		body := lipgloss.JoinHorizontal(lipgloss.Top, times, "  ", m.card())
		b.WriteString(centerStyled(body, m.width))
	} else {
		b.WriteString(centerStyled(times, m.width))
		b.WriteString("\n")
		b.WriteString(centerText(m.statsLine(), m.width))
	}
	b.WriteString("\n")
	b.WriteString(scoreDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs renders the difficulty names with the current one highlighted. On a
// narrow terminal only the current one is shown.
func (m ScoreboardModel) tabs() string {
	if len(m.modes) == 0 {
		return ""
	}
	parts := make([]string, len(m.modes))
	for i, mode := range m.modes {
		if i == m.current {
			parts[i] = scoreTabStyle.Render(mode.Name)
		} else {
			parts[i] = scoreDimStyle.Render(" " + mode.Name + " ")
		}
	}
	line := strings.Join(parts, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = "< " + scoreTabStyle.Render(m.modes[m.current].Name) + " >"
	}
	return line
}

func (m ScoreboardModel) tableView() string {
	if len(m.results) == 0 {
		return scoreDimStyle.Italic(true).Padding(2, 4).
			Render("No boards cleared yet.\nWin a game to set a time!")
	}
	return m.table.View()
}

// card is the per-difficulty summary shown beside the table.
func (m ScoreboardModel) card() string {
	var b strings.Builder
	if len(m.modes) > 0 {
		board := m.modes[m.current].Board
		fmt.Fprintf(&b, "%dx%d, %d mines\n", board.Rows, board.Cols, board.Mines)
		b.WriteString(scoreDimStyle.Render(strings.Repeat("─", cardWidth-4)))
		b.WriteString("\n")
	}

	st := m.stats
	if st == nil || st.Played == 0 {
		b.WriteString(scoreDimStyle.Render("No games played"))
		return scoreFrameStyle.Width(cardWidth - 2).Render(b.String())
	}
	row := func(label, value string) {
		fmt.Fprintf(&b, "%-10s%s\n", label, value)
	}
	row("Played", strconv.Itoa(st.Played))
	row("Won", strconv.Itoa(st.Won))
	row("Win rate", fmt.Sprintf("%.0f%%", st.WinRate()*100))
	if st.Won > 0 {
		row("Best", formatElapsed(st.BestTime))
		row("Average", formatElapsed(st.AvgTime))
	}
	if !st.LastPlayed.IsZero() {
		row("Last", st.LastPlayed.Local().Format("Jan 02 15:04"))
	}
	return scoreFrameStyle.Width(cardWidth - 2).Render(strings.TrimSuffix(b.String(), "\n"))
}

// statsLine is the folded card used on narrow terminals.
func (m ScoreboardModel) statsLine() string {
	st := m.stats
	if st == nil || st.Played == 0 {
		return "No games played"
	}
	line := fmt.Sprintf("Played %d  Won %d  Win rate %.0f%%", st.Played, st.Won, st.WinRate()*100)
	if st.Won > 0 {
		line += "  Average " + formatElapsed(st.AvgTime)
	}
	return line
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard on its own.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
