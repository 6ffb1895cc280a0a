package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bluebird-flight/internal/config"
	"github.com/vovakirdan/bluebird-flight/internal/core"
	"github.com/vovakirdan/bluebird-flight/internal/games/bluebird"
	"github.com/vovakirdan/bluebird-flight/internal/storage"
)

// Options configures a game session.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Store   bluebird.PersistenceStore // Defaults to an in-memory store
	History RunHistory                // May be nil
	Player  string
	Logger  *log.Logger
	Metrics bluebird.Metrics // May be nil
}

type mode int

const (
	modePlay mode = iota
	modeScores
)

// Model is the Bubble Tea model for a Bluebird Flight session: the game,
// then the score screen, then the game again.
type Model struct {
	opts     Options
	game     *bluebird.Game
	screen   *core.Screen
	overlay  *overlay
	audio    *cueAudio
	keys     KeyMap
	input    core.InputFrame
	mode     mode
	scores   ScoreboardModel
	quitting bool
}

// NewModel creates a session model. The run starts when the program starts.
func NewModel(opts Options) (Model, error) {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Store == nil {
		opts.Store = storage.NewMemory()
	}

	ov := &overlay{}
	au := newCueAudio(opts.Logger)
	gameOpts := []bluebird.Option{
		bluebird.WithSeed(opts.Runtime.Seed),
		bluebird.WithStore(opts.Store),
		bluebird.WithLogger(opts.Logger),
		bluebird.WithAudio(au),
		bluebird.WithScenes(ov),
	}
	if opts.Metrics != nil {
		gameOpts = append(gameOpts, bluebird.WithMetrics(opts.Metrics))
	}

	game, err := bluebird.New(opts.Config, gameOpts...)
	if err != nil {
		return Model{}, err
	}

	return Model{
		opts:    opts,
		game:    game,
		screen:  core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		overlay: ov,
		audio:   au,
		keys:    DefaultKeyMap(),
		input:   core.NewInputFrame(),
	}, nil
}

// Init starts the first run and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.StartRun(m.opts.Config.Difficulty.Start)
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode == modeScores {
		return m.updateScores(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if a := MouseAction(msg); a != core.ActionNone {
			m.input.Set(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey maps a key press to an action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.game.Abandon()
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.input.Set(a)
	}
	return m, nil
}

// handleTick advances the game one step and switches to the score screen
// once a run ends.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Step(m.input, m.opts.Runtime.TickSeconds())
	m.input.Clear()
	m.audio.tick()

	if summary, ok := m.overlay.takeGameOver(); ok {
		m.recordRun(summary)
		scores, err := NewScoreboardModel(m.opts.Store, m.opts.History, m.opts.Player, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		if err != nil {
			m.opts.Logger.Warn("score screen incomplete", "error", err)
		}
		m.scores = scores
		m.mode = modeScores
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// updateScores forwards messages to the score screen until the player
// wants another run. Ticks keep flowing so the loop never stalls.
func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m, tickCmd(m.opts.Runtime.TickRate)
	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd
	m.scores, cmd = m.scores.update(msg)
	if m.scores.IsQuitting() {
		m.game.Abandon()
		m.quitting = true
		return m, cmd
	}
	if m.scores.PlayAgain() {
		m.mode = modePlay
		m.game.StartRun(m.opts.Config.Difficulty.Start)
	}
	return m, cmd
}

// recordRun saves a finished run to the history.
func (m Model) recordRun(s bluebird.Summary) {
	if m.opts.History == nil {
		return
	}
	err := m.opts.History.SaveRun(storage.RunRecord{
		ID:     s.RunID,
		Player: m.opts.Player,
		Score:  s.Score,
		Tier:   string(s.Tier),
		Cause:  string(s.Cause),
		Ticks:  s.Ticks,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save run", "run", s.RunID, "error", err)
		if m.opts.Metrics != nil {
			m.opts.Metrics.StoreError("save_run")
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".bluebird", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	filename := fmt.Sprintf("bluebird_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// draw renders the world, overlays and cues into the screen buffer.
func (m Model) draw() {
	m.game.Render(m.screen)
	m.overlay.draw(m.screen)
	m.audio.draw(m.screen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeScores {
		return m.scores.View()
	}
	m.draw()
	return RenderScreen(m.screen)
}

// Game returns the runtime driven by the model.
func (m Model) Game() *bluebird.Game {
	return m.game
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
