package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bluebird-flight/internal/games/bluebird"
	"github.com/vovakirdan/bluebird-flight/internal/storage"
)

// maxRuns is the number of recent runs listed on the score screen.
const maxRuns = 20

// RunHistory records finished runs and lists them back.
// *storage.Store implements it.
type RunHistory interface {
	SaveRun(run storage.RunRecord) error
	RecentRuns(player string, limit int) ([]storage.RunRecord, error)
}

// ScoreboardKeyMap defines the key bindings for the score screen.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PlayAgain key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PlayAgain, k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PlayAgain, k.Quit},
		{k.Up, k.Down},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		PlayAgain: key.NewBinding(
			key.WithKeys("enter", "r", " "),
			key.WithHelp("enter/r", "play again"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the score screen: the result of the run that just
// ended, the best score and the player's recent runs.
type ScoreboardModel struct {
	player    string
	ended     bool // A run just ended and its score is shown
	score     int
	best      int
	runs      []storage.RunRecord
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	playAgain bool
}

// NewScoreboardModel creates a score screen. It consumes the run-ended
// marker in store, so a run is presented as just ended only once. history
// may be nil.
func NewScoreboardModel(store bluebird.PersistenceStore, history RunHistory, player string, width, height int) (ScoreboardModel, error) {
	score, ended, err := bluebird.ConsumeRunEnded(store)
	if err != nil {
		err = fmt.Errorf("tui: cannot read last run: %w", err)
	}

	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		player: player,
		ended:  ended,
		score:  score,
		best:   bluebird.BestScore(store),
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	if history != nil {
		runs, histErr := history.RecentRuns(player, maxRuns)
		if histErr != nil && err == nil {
			err = fmt.Errorf("tui: cannot load run history: %w", histErr)
		}
		m.runs = runs
	}

	m.table = m.createTable()
	m.updateTableRows()
	return m, err
}

// Standalone disables the play-again binding for a score screen shown
// outside of a game.
func (m ScoreboardModel) Standalone() ScoreboardModel {
	m.keys.PlayAgain.SetEnabled(false)
	return m
}

// createTable creates a new table sized to the screen.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Tier", Width: 8},
		{Title: "Ended by", Width: 14},
		{Title: "Date", Width: 14},
	}

	tableHeight := m.height - 12 // Header, result lines, help and margins
	if tableHeight < 3 {
		tableHeight = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table with the loaded runs.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			r.Tier,
			strings.ReplaceAll(r.Cause, "_", " "),
			r.CreatedAt.Format("Jan 02 15:04"),
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
	return m.update(msg)
}

func (m ScoreboardModel) update(msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.PlayAgain):
			m.playAgain = true
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	title := "HIGH SCORES"
	if m.ended {
		title = "GAME OVER"
		titleStyle = titleStyle.Foreground(lipgloss.Color("9"))
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle := lipgloss.NewStyle().Bold(true)
	if m.ended {
		b.WriteString(centerText(labelStyle.Render("Score: ")+valueStyle.Render(fmt.Sprintf("%d", m.score)), m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(labelStyle.Render("High score: ")+valueStyle.Render(fmt.Sprintf("%d", m.best)), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		return emptyStyle.Render("No runs recorded yet.")
	}
	return m.table.View()
}

// PlayAgain reports whether the player asked for another run.
func (m ScoreboardModel) PlayAgain() bool {
	return m.playAgain
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// Ended reports whether a just-ended run is shown, and its score.
func (m ScoreboardModel) Ended() (score int, ended bool) {
	return m.score, m.ended
}

// RunScoreboard shows the score screen on its own until the user quits.
func RunScoreboard(store bluebird.PersistenceStore, history RunHistory, player string, width, height int) error {
	model, err := NewScoreboardModel(store, history, player, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model.Standalone(),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
