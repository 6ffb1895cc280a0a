package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bluebird-flight/internal/config"
	"github.com/vovakirdan/bluebird-flight/internal/core"
	"github.com/vovakirdan/bluebird-flight/internal/games/bluebird"
	"github.com/vovakirdan/bluebird-flight/internal/storage"
)

type fakeHistory struct {
	runs []storage.RunRecord
}

func (h *fakeHistory) SaveRun(run storage.RunRecord) error {
	h.runs = append([]storage.RunRecord{run}, h.runs...)
	return nil
}

func (h *fakeHistory) RecentRuns(player string, limit int) ([]storage.RunRecord, error) {
	var out []storage.RunRecord
	for _, r := range h.runs {
		if r.Player == player && len(out) < limit {
			out = append(out, r)
		}
	}
	return out, nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// newTestModel returns a started model whose obstacles are far enough away
// that the player falls out of the world before reaching one.
func newTestModel(t *testing.T) (Model, *storage.Memory, *fakeHistory) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Difficulty.Tiers.Easy.Horizontal = config.Range{Min: 700, Max: 750}

	mem := storage.NewMemory()
	hist := &fakeHistory{}
	m, err := NewModel(Options{
		Config:  cfg,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
		Store:   mem,
		History: hist,
		Player:  "alice",
	})
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	m.Init()
	return m, mem, hist
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func TestModelRunEndsOnScoreScreen(t *testing.T) {
	m, mem, hist := newTestModel(t)

	for i := 0; i < 300 && m.mode == modePlay; i++ {
		m = update(t, m, TickMsg(time.Now()))
	}
	if m.mode != modeScores {
		t.Fatal("run never ended")
	}

	if len(hist.runs) != 1 {
		t.Fatalf("saved runs = %d, want 1", len(hist.runs))
	}
	run := hist.runs[0]
	if run.Player != "alice" || run.Cause != string(bluebird.CauseOutOfBounds) || run.ID == "" {
		t.Errorf("saved run = %+v", run)
	}

	if _, ended := m.scores.Ended(); !ended {
		t.Error("score screen does not show the ended run")
	}
	if v, _, _ := mem.Get(bluebird.KeyGameOver); v != "false" {
		t.Errorf("run-ended marker = %q, want consumed", v)
	}
	if view := m.View(); !strings.Contains(view, "GAME OVER") {
		t.Errorf("view lacks GAME OVER:\n%s", view)
	}

	m = update(t, m, runes("r"))
	if m.mode != modePlay || m.Game().State() != bluebird.StatePlaying {
		t.Errorf("play again: mode=%v state=%v", m.mode, m.Game().State())
	}
}

func TestModelPauseOverlay(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = update(t, m, runes("p"))
	m = update(t, m, TickMsg(time.Now()))
	if m.Game().State() != bluebird.StatePaused {
		t.Fatalf("state = %v, want Paused", m.Game().State())
	}
	if view := m.View(); !strings.Contains(view, "PAUSED") {
		t.Errorf("view lacks pause overlay")
	}

	m = update(t, m, runes("p"))
	m = update(t, m, TickMsg(time.Now()))
	if _, active := m.Game().Countdown(); !active {
		t.Error("resume did not start the countdown")
	}
	if view := m.View(); !strings.Contains(view, "Get ready") {
		t.Errorf("view lacks countdown overlay")
	}
}

func TestModelFlapAndQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, TickMsg(time.Now()))
	if vy := m.Game().Player().VY; vy >= 0 {
		t.Errorf("VY after flap = %v, want upward", vy)
	}
	if m.audio.cue != bluebird.EffectFlap {
		t.Errorf("cue = %q, want flap", m.audio.cue)
	}

	next, cmd := m.Update(runes("q"))
	if cmd == nil || !next.(Model).quitting {
		t.Error("q did not quit")
	}
	if state := next.(Model).Game().State(); state != bluebird.StateIdle {
		t.Errorf("state after quit = %v, want Idle", state)
	}
}

func TestModelQuitWhilePausedPersistsNothing(t *testing.T) {
	m, mem, hist := newTestModel(t)

	m = update(t, m, runes("p"))
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, runes("q"))

	if state := m.Game().State(); state != bluebird.StateIdle {
		t.Errorf("state = %v, want Idle", state)
	}
	if _, ok, _ := mem.Get(bluebird.KeyCurrentScore); ok {
		t.Error("quitting wrote a current score")
	}
	if len(hist.runs) != 0 {
		t.Errorf("saved runs = %d, want 0", len(hist.runs))
	}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionFlap},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlap},
		{runes("w"), core.ActionFlap},
		{runes("p"), core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause},
		{runes("r"), core.ActionRestart},
		{runes("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runes("x"), core.ActionNone},
	}
	for _, tt := range tests {
		if got := km.Action(tt.msg); got != tt.want {
			t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestMouseAction(t *testing.T) {
	click := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if MouseAction(click) != core.ActionFlap {
		t.Error("left click should flap")
	}
	release := tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	if MouseAction(release) != core.ActionNone {
		t.Error("release should do nothing")
	}
}

func TestScoreboardStandalone(t *testing.T) {
	mem := storage.NewMemory()
	_ = mem.Set(bluebird.KeyBestScore, "23")
	hist := &fakeHistory{runs: []storage.RunRecord{{ID: "a", Player: "bob", Score: 23, Tier: "normal", Cause: "collision"}}}

	m, err := NewScoreboardModel(mem, hist, "bob", 80, 24)
	if err != nil {
		t.Fatalf("NewScoreboardModel() error = %v", err)
	}
	m = m.Standalone()

	view := m.View()
	if !strings.Contains(view, "HIGH SCORES") || !strings.Contains(view, "23") {
		t.Errorf("view:\n%s", view)
	}
	if _, ended := m.Ended(); ended {
		t.Error("no run ended, but one is shown")
	}

	next, _ := m.update(tea.KeyMsg{Type: tea.KeyEnter})
	if next.PlayAgain() {
		t.Error("play again enabled on standalone screen")
	}
}
