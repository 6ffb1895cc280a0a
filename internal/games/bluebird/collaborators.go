package bluebird

import "github.com/vovakirdan/bluebird-flight/internal/config"

// Effect names a one-shot sound cue.
type Effect string

const (
	EffectFlap  Effect = "flap"
	EffectSplat Effect = "splat"
)

// Cause records what ended a run.
type Cause string

const (
	CauseOutOfBounds Cause = "out_of_bounds"
	CauseCollision   Cause = "collision"
)

// Summary describes a finished run.
type Summary struct {
	RunID string
	Score int
	Best  int
	Tier  config.Tier
	Cause Cause
	Ticks int
}

// Audio plays background music and sound cues.
type Audio interface {
	PlayMusic()
	StopMusic()
	StopAll()
	Play(effect Effect)
}

// Scenes receives state changes that a host presents as overlays or screens.
type Scenes interface {
	Paused()
	Countdown(secondsRemaining int)
	Resumed()
	GameOver(summary Summary)
}

// Metrics receives gameplay counters. *metrics.Manager satisfies it.
type Metrics interface {
	RunStarted(tier string)
	PassThrough()
	Flap()
	Paused()
	TierChanged(tier string)
	GameOver(cause string, score int)
	RunAbandoned()
	StoreError(op string)
}

type nopAudio struct{}

func (nopAudio) PlayMusic() {}
func (nopAudio) StopMusic() {}
func (nopAudio) StopAll() {}
func (nopAudio) Play(Effect) {}

type nopScenes struct{}

func (nopScenes) Paused() {}
func (nopScenes) Countdown(int) {}
func (nopScenes) Resumed() {}
func (nopScenes) GameOver(Summary) {}

type nopMetrics struct{}

func (nopMetrics) RunStarted(string) {}
func (nopMetrics) PassThrough() {}
func (nopMetrics) Flap() {}
func (nopMetrics) Paused() {}
func (nopMetrics) TierChanged(string) {}
func (nopMetrics) GameOver(string, int) {}
func (nopMetrics) RunAbandoned() {}
func (nopMetrics) StoreError(string) {}
