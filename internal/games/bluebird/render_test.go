package bluebird

import (
	"strings"
	"testing"

	"github.com/vovakirdan/bluebird-flight/internal/config"
	"github.com/vovakirdan/bluebird-flight/internal/core"
)

func TestRenderDrawsHUDPlayerAndObstacles(t *testing.T) {
	g, err := New(hoverConfig(), WithRand(midRand{}))
	if err != nil {
		t.Fatal(err)
	}
	g.StartRun(config.TierEasy)
	screen := core.NewScreen(80, 25)
	g.Render(screen)

	if hud := screen.Row(0); !strings.Contains(hud, "Score: 0") || !strings.Contains(hud, "easy") {
		t.Errorf("HUD row = %q", hud)
	}

	out := screen.String()
	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("player not drawn")
	}
	// Pair 0 starts at x=325, column 32 at 80 columns for 800 units.
	if got := screen.Get(32, 1); got != SegmentChar {
		t.Errorf("top segment cell = %q, want %q", got, SegmentChar)
	}
	if got := screen.GetCell(32, 1).Color; got != core.ColorGreen {
		t.Errorf("segment color = %v", got)
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g, _ := New(config.DefaultConfig())
	g.StartRun(config.TierEasy)
	screen := core.NewScreen(10, 1)
	g.Render(screen)
	if strings.TrimSpace(screen.String()) != "" {
		t.Errorf("expected blank screen, got %q", screen.String())
	}
}

func TestDrawMessage(t *testing.T) {
	screen := core.NewScreen(40, 11)
	DrawMessage(screen, "PAUSED", "Press P to resume", core.ColorCyan)

	if !strings.Contains(screen.Row(4), "PAUSED") {
		t.Errorf("title row = %q", screen.Row(4))
	}
	if !strings.Contains(screen.Row(6), "Press P to resume") {
		t.Errorf("subtitle row = %q", screen.Row(6))
	}
	if screen.Get(9, 3) != '┌' {
		t.Errorf("box corner = %q", screen.Get(9, 3))
	}
}
