package bluebird

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bluebird-flight/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar    = '▶'
	PlayerBody    = '●'
	SegmentChar   = '█'
	SegmentCapTop = '▄'
	SegmentCapBot = '▀'
	SkyLine       = '─'
)

// Render draws the world scaled to dst with a one-line HUD on top.
// Overlays for pause and game over are left to the host.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w == 0 || h < 2 {
		return
	}

	// Row 0 is the HUD, the world occupies the rest.
	v := viewport{
		top: 1,
		sx:  float64(w) / g.cfg.World.Width,
		sy:  float64(h-1) / g.cfg.World.Height,
	}

	width := g.pool.Width()
	for _, pair := range g.pool.Pairs() {
		g.drawPair(dst, v, pair, width)
	}
	g.drawPlayer(dst, v)

	dst.DrawHLine(0, 0, w, SkyLine, core.ColorGray)
	hud := fmt.Sprintf(" Score: %d  Best: %d  %s ", g.Score(), g.Best(), g.tier)
	dst.DrawTextColor(2, 0, hud, core.ColorBrightWhite)
}

// DrawMessage draws a framed two-line message centered on dst.
func DrawMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	titleLen, subLen := len([]rune(title)), len([]rune(subtitle))
	boxW := core.Max(titleLen, subLen) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextColor(box.X+(boxW-titleLen)/2, box.Y+1, title, c)
	dst.DrawText(box.X+(boxW-subLen)/2, box.Y+3, subtitle)
}

// viewport maps world units to screen cells.
type viewport struct {
	top    int
	sx, sy float64
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y*v.sy))
}

func (g *Game) drawPair(dst *core.Screen, v viewport, p ObstaclePair, width float64) {
	left, right := v.col(p.X), v.col(p.X+width)
	if right <= left {
		right = left + 1
	}
	gapTop := v.row(float64(p.GapY))
	gapBottom := v.row(float64(p.GapBottom()))
	floor := v.row(g.cfg.World.Height)

	for x := left; x < right; x++ {
		for y := v.top; y < gapTop; y++ {
			dst.SetColor(x, y, SegmentChar, core.ColorGreen)
		}
		if gapTop > v.top {
			dst.SetColor(x, gapTop-1, SegmentCapTop, core.ColorBrightGreen)
		}
		for y := gapBottom; y < floor; y++ {
			dst.SetColor(x, y, SegmentChar, core.ColorGreen)
		}
		if gapBottom < floor {
			dst.SetColor(x, gapBottom, SegmentCapBot, core.ColorBrightGreen)
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	p := g.player
	left, top := v.col(p.X), v.row(p.Y)
	right, bottom := core.Max(v.col(p.X+p.W), left+1), core.Max(v.row(p.Y+p.H), top+1)

	color := core.ColorBrightYellow
	if g.state == StateGameOver {
		color = core.ColorRed
	}
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			r := PlayerBody
			if x == right-1 && y == top {
				r = PlayerChar
			}
			dst.SetColor(x, y, r, color)
		}
	}
}
