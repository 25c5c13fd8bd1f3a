package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tigrao/internal/registry"
	"github.com/vovakirdan/tigrao/internal/storage"
)

// Scoreboard layout
const (
	boardListMinWidth = 80  // narrower terminals get board tabs instead of a list
	boardListWidth    = 20  // width of the board list column
	scoreRowsLimit    = 100 // runs loaded per board
	scoreChrome       = 8   // lines used by title, stats, borders and help
)

// scoreColumns are the fixed table columns; the last one takes what is left.
var scoreColumns = []table.Column{
	{Title: "#", Width: 5},
	{Title: "Score", Width: 10},
	{Title: "Passes", Width: 7},
	{Title: "Board", Width: 7},
	{Title: "When", Width: 14},
}

var (
	scoreTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	scoreMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	scoreStatsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	scoreFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	scoreActiveTab = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Scroll    key.Binding
	NextBoard key.Binding
	PrevBoard key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.NextBoard, k.PrevBoard, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "k", "j"),
			key.WithHelp("↑/↓", "scroll"),
		),
		NextBoard: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next board"),
		),
		PrevBoard: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev board"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the saved runs of one board at a time.
type ScoreboardModel struct {
	boards    []registry.GameInfo
	current   int
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on the first board.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		boards: registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.selectBoard(0)
	return m
}

// showBoardList reports whether the board list fits beside the table.
func (m ScoreboardModel) showBoardList() bool {
	return m.width >= boardListMinWidth
}

// newTable sizes the columns to the terminal.
func (m ScoreboardModel) newTable() table.Model {
	cols := make([]table.Column, len(scoreColumns))
	copy(cols, scoreColumns)

	avail := m.width - 6 // frame border and padding
	if m.showBoardList() {
		avail -= boardListWidth + 4
	}
	fixed := 0
	for _, c := range cols[:len(cols)-1] {
		fixed += c.Width
	}
	last := &cols[len(cols)-1]
	last.Width = min(max(avail-fixed, last.Width), 20)

	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(max(m.height-scoreChrome, 3)),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)

	return t
}

// selectBoard switches to board i, wrapping around, and loads its runs.
func (m *ScoreboardModel) selectBoard(i int) {
	m.scores, m.stats = nil, nil
	if len(m.boards) == 0 {
		m.table.SetRows(nil)
		return
	}
	m.current = (i%len(m.boards) + len(m.boards)) % len(m.boards)

	if m.store != nil {
		id := m.boards[m.current].ID
		if scores, err := m.store.TopScores(id, scoreRowsLimit); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.fillTable()
}

func (m *ScoreboardModel) fillTable() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			humanize.Comma(int64(s.Score)),
			fmt.Sprintf("%d", s.Passes),
			fmt.Sprintf("%dx%d", s.Rows, s.Cols),
			humanize.Time(s.CreatedAt),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
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
		case key.Matches(msg, m.keys.NextBoard):
			m.selectBoard(m.current + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevBoard):
			m.selectBoard(m.current - 1)
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

	title := "HIGH SCORES"
	if len(m.boards) > 0 {
		title += " · " + m.boards[m.current].Title
	}

	var b strings.Builder
	b.WriteString(scoreTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(m.statsLine())
	b.WriteString("\n\n")

	if m.showBoardList() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.boardList(), "  ", m.scoreFrame()))
	} else {
		b.WriteString(centerText(m.boardTabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(m.scoreFrame())
	}

	b.WriteString("\n")
	b.WriteString(scoreMutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// statsLine summarises every saved run of the current board.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	line := fmt.Sprintf("%s runs  |  avg %s  |  longest %d passes  |  last played %s",
		humanize.Comma(int64(m.stats.GamesCount)),
		humanize.CommafWithDigits(m.stats.AvgScore, 1),
		m.stats.MaxPasses,
		humanize.Time(m.stats.LastPlayed),
	)
	return scoreStatsStyle.Render(centerText(line, m.width))
}

// boardList is the column of boards shown on wide terminals.
func (m ScoreboardModel) boardList() string {
	lines := []string{"Boards", strings.Repeat("─", boardListWidth-4)}
	for i, info := range m.boards {
		name := truncate(info.Title, boardListWidth-6)
		if i == m.current {
			lines = append(lines, scoreTitleStyle.Render("▸ "+name))
		} else {
			lines = append(lines, "  "+name)
		}
	}
	return scoreFrameStyle.Width(boardListWidth).Render(strings.Join(lines, "\n"))
}

// boardTabs is the single line of boards shown on narrow terminals.
func (m ScoreboardModel) boardTabs() string {
	if len(m.boards) == 0 {
		return ""
	}
	tabs := make([]string, len(m.boards))
	for i, info := range m.boards {
		name := truncate(info.Title, 10)
		if i == m.current {
			tabs[i] = scoreActiveTab.Render(name)
		} else {
			tabs[i] = scoreMutedStyle.Render(" " + name + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("◂ %s ▸", m.boards[m.current].Title)
	}
	return line
}

func (m ScoreboardModel) scoreFrame() string {
	if len(m.scores) == 0 {
		empty := scoreMutedStyle.Italic(true).Padding(2, 4).
			Render("No runs saved for this board yet.\nFinish a game to get on the board!")
		return scoreFrameStyle.Render(empty)
	}
	return scoreFrameStyle.Render(m.table.View())
}

// truncate shortens s to at most n runes, marking the cut with a dot.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack reports whether the player asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard on its own. goBack is false when the
// player quit instead of returning to the menu.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
