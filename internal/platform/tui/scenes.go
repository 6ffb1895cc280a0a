package tui

import (
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bluebird-flight/internal/core"
	"github.com/vovakirdan/bluebird-flight/internal/games/bluebird"
)

// overlay presents pause and countdown messages on top of the world and
// hands the game-over summary to the model.
type overlay struct {
	title    string
	subtitle string
	color    core.Color
	ended    *bluebird.Summary
}

var _ bluebird.Scenes = (*overlay)(nil)

func (o *overlay) Paused() {
	o.show("PAUSED", "Press P to resume", core.ColorCyan)
}

func (o *overlay) Countdown(secondsRemaining int) {
	o.show(strconv.Itoa(secondsRemaining), "Get ready", core.ColorBrightYellow)
}

func (o *overlay) Resumed() {
	o.show("", "", core.ColorDefault)
}

func (o *overlay) GameOver(summary bluebird.Summary) {
	o.show("", "", core.ColorDefault)
	o.ended = &summary
}

func (o *overlay) show(title, subtitle string, c core.Color) {
	o.title, o.subtitle, o.color = title, subtitle, c
}

// takeGameOver returns the summary of a run that just ended, once.
func (o *overlay) takeGameOver() (bluebird.Summary, bool) {
	if o.ended == nil {
		return bluebird.Summary{}, false
	}
	s := *o.ended
	o.ended = nil
	return s, true
}

func (o *overlay) draw(dst *core.Screen) {
	if o.title == "" {
		return
	}
	bluebird.DrawMessage(dst, o.title, o.subtitle, o.color)
}

// cueFrames is how many frames a sound cue stays visible.
const cueFrames = 12

// cueAudio stands in for a sound device: music state and the latest effect
// are shown in the corner of the screen.
type cueAudio struct {
	logger *log.Logger
	music  bool
	cue    bluebird.Effect
	frames int
}

var _ bluebird.Audio = (*cueAudio)(nil)

func newCueAudio(logger *log.Logger) *cueAudio {
	return &cueAudio{logger: logger}
}

func (a *cueAudio) PlayMusic() {
	a.music = true
}

func (a *cueAudio) StopMusic() {
	a.music = false
}

func (a *cueAudio) StopAll() {
	a.music = false
	a.cue, a.frames = "", 0
}

func (a *cueAudio) Play(effect bluebird.Effect) {
	a.cue, a.frames = effect, cueFrames
	a.logger.Debug("sound cue", "effect", effect)
}

// tick fades the current cue.
func (a *cueAudio) tick() {
	if a.frames == 0 {
		return
	}
	a.frames--
	if a.frames == 0 {
		a.cue = ""
	}
}

func (a *cueAudio) draw(dst *core.Screen) {
	x := dst.Width() - 2
	if a.music {
		dst.SetColor(x, 0, '♪', core.ColorBrightGreen)
	}
	if a.cue != "" {
		label := "*" + string(a.cue) + "*"
		color := core.ColorWhite
		if a.cue == bluebird.EffectSplat {
			color = core.ColorRed
		}
		dst.DrawTextColor(x-len(label)-1, 0, label, color)
	}
}
