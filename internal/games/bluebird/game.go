// Package bluebird implements the Bluebird Flight gameplay runtime: a flying
// player passing through a stream of recycled obstacle pairs, with
// score-driven difficulty and a persisted best score.
//
// The runtime is single-threaded and driven by a host through Tick, Flap,
// OnCollision and the run control methods. Audio, scene presentation and
// metrics are collaborators injected with options.
package bluebird

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vovakirdan/bluebird-flight/internal/config"
	"github.com/vovakirdan/bluebird-flight/internal/core"
	"github.com/vovakirdan/bluebird-flight/internal/storage"
)

// Game is one gameplay runtime. Create it with New and begin a run with
// StartRun.
type Game struct {
	cfg     config.Config
	store   PersistenceStore
	logger  *log.Logger
	audio   Audio
	scenes  Scenes
	metrics Metrics
	rng     Rand

	pool   *Pool
	scorer *Scorer
	player Player

	state     RunState
	tier      config.Tier
	countdown countdown
	runID     string
	ticks     int
	last      Summary
}

// New creates a runtime for cfg. The configuration is validated here so no
// invalid range can reach obstacle placement.
func New(cfg config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("bluebird: invalid configuration: %w", err)
	}

	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.store == nil {
		g.store = storage.NewMemory()
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.audio == nil {
		g.audio = nopAudio{}
	}
	if g.scenes == nil {
		g.scenes = nopScenes{}
	}
	if g.metrics == nil {
		g.metrics = nopMetrics{}
	}
	if g.rng == nil {
		g.rng = NewRand(0)
	}

	g.pool = NewPool(cfg, g.rng)
	g.scorer = NewScorer(g.store, g.logger, g.metrics.StoreError)
	g.tier = cfg.Difficulty.Start
	g.player = newPlayer(cfg)
	return g, nil
}

// StartRun begins a fresh run at the given tier. It panics on an unknown
// tier.
func (g *Game) StartRun(tier config.Tier) {
	if !tier.Valid() {
		panic(fmt.Sprintf("bluebird: unknown difficulty tier %q", tier))
	}
	g.Abandon()

	g.state = StatePlaying
	g.tier = tier
	g.ticks = 0
	g.runID = uuid.NewString()
	g.countdown.stop()
	g.player = newPlayer(g.cfg)
	g.pool.Init(tier)
	g.scorer.Reset()

	g.audio.PlayMusic()
	g.metrics.RunStarted(string(tier))
	g.logger.Debug("run started", "run", g.runID, "tier", tier, "best", g.scorer.Best())
}

// Abandon stops a run that is playing or paused without a game over.
// Nothing is persisted. It does nothing in any other state.
func (g *Game) Abandon() {
	if g.state != StatePlaying && g.state != StatePaused {
		return
	}
	g.logger.Debug("run abandoned", "run", g.runID, "score", g.scorer.Current(), "state", g.state)
	g.state = StateIdle
	g.countdown.stop()
	g.audio.StopAll()
	g.metrics.RunAbandoned()
}

// PauseRun freezes a run in progress. Pausing while already paused restarts
// the pause and cancels a running countdown.
func (g *Game) PauseRun() {
	switch g.state {
	case StatePlaying:
		g.state = StatePaused
		g.audio.StopAll()
		g.metrics.Paused()
	case StatePaused:
		g.countdown.stop()
	default:
		return
	}
	g.scenes.Paused()
}

// ResumeRun starts the countdown back to play. Only valid while paused with
// no countdown running.
func (g *Game) ResumeRun() {
	if g.state != StatePaused || g.countdown.active {
		return
	}
	seconds := g.cfg.Pause.CountdownSeconds
	if seconds <= 0 {
		g.resume()
		return
	}
	g.countdown.start(seconds)
	g.scenes.Countdown(seconds)
}

func (g *Game) resume() {
	g.state = StatePlaying
	g.audio.PlayMusic()
	g.scenes.Resumed()
}

// Flap sets the player's vertical velocity to the flap velocity, replacing
// whatever it was. Does nothing unless a run is playing.
func (g *Game) Flap() {
	if g.state != StatePlaying {
		return
	}
	g.player.VY = -g.cfg.Physics.FlapVelocity
	g.audio.Play(EffectFlap)
	g.metrics.Flap()
}

// Tick advances the runtime by dt seconds. While playing it moves the world,
// checks the bounds, recycles obstacles and checks for collisions, in that
// order. While paused it only advances a running countdown.
func (g *Game) Tick(dt float64) {
	switch g.state {
	case StatePaused:
		if g.countdown.advance(dt, g.scenes.Countdown) {
			g.resume()
		}
	case StatePlaying:
		g.ticks++
		g.player.integrate(g.cfg.Physics.Gravity, dt)
		g.pool.Advance(dt)

		if g.player.outOfBounds(g.cfg.World.Height) {
			g.endRun(CauseOutOfBounds)
			return
		}

		g.pool.RecycleTick(g.Tier, g.passThrough)

		if g.pool.Collides(g.player.Box()) {
			g.OnCollision()
		}
	}
}

// OnCollision reports contact between the player and an obstacle. It ends
// the run if one is playing.
func (g *Game) OnCollision() {
	g.endRun(CauseCollision)
}

// Step applies one frame of host input and then advances by dt. Pause
// toggles between pausing and resuming.
func (g *Game) Step(in core.InputFrame, dt float64) {
	switch {
	case in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateIdle):
		g.StartRun(g.cfg.Difficulty.Start)
	case in.Has(core.ActionPause) && g.state == StatePlaying:
		g.PauseRun()
	case in.Has(core.ActionPause) && g.state == StatePaused && g.countdown.active:
		g.PauseRun()
	case (in.Has(core.ActionPause) || in.Has(core.ActionResume)) && g.state == StatePaused:
		g.ResumeRun()
	}
	if in.Has(core.ActionFlap) {
		g.Flap()
	}
	g.Tick(dt)
}

func (g *Game) passThrough() {
	score := g.scorer.OnPassThrough()
	g.metrics.PassThrough()

	next := g.cfg.Difficulty.Progression.Next(g.tier, score)
	if next != g.tier {
		g.logger.Debug("difficulty increased", "run", g.runID, "from", g.tier, "to", next, "score", score)
		g.tier = next
		g.metrics.TierChanged(string(next))
	}
}

// endRun is the single game-over entry point. The first trigger in a run
// wins; later triggers are ignored.
func (g *Game) endRun(cause Cause) {
	if g.state != StatePlaying {
		return
	}
	g.state = StateGameOver
	g.scorer.OnGameOver()

	g.audio.StopMusic()
	g.audio.Play(EffectSplat)

	g.last = Summary{
		RunID: g.runID,
		Score: g.scorer.Current(),
		Best:  g.scorer.Best(),
		Tier:  g.tier,
		Cause: cause,
		Ticks: g.ticks,
	}
	g.metrics.GameOver(string(cause), g.last.Score)
	g.logger.Info("run ended", "run", g.runID, "score", g.last.Score, "best", g.last.Best, "tier", g.tier, "cause", cause)
	g.scenes.GameOver(g.last)
}

// State returns the current run state.
func (g *Game) State() RunState {
	return g.state
}

// Tier returns the current difficulty tier.
func (g *Game) Tier() config.Tier {
	return g.tier
}

// Score returns the score of the current run.
func (g *Game) Score() int {
	return g.scorer.Current()
}

// Best returns the best score.
func (g *Game) Best() int {
	return g.scorer.Best()
}

// Player returns the player entity.
func (g *Game) Player() Player {
	return g.player
}

// Obstacles returns the obstacle pairs.
func (g *Game) Obstacles() [PoolSize]ObstaclePair {
	return g.pool.Pairs()
}

// Countdown returns the seconds left before play resumes and whether a
// countdown is running.
func (g *Game) Countdown() (int, bool) {
	return g.countdown.remaining, g.countdown.active
}

// Ticks returns the number of simulated ticks in the current run.
func (g *Game) Ticks() int {
	return g.ticks
}

// RunID returns the identifier of the current or last run.
func (g *Game) RunID() string {
	return g.runID
}

// LastSummary returns the summary of the last ended run.
func (g *Game) LastSummary() Summary {
	return g.last
}

// Config returns the configuration the runtime was created with.
func (g *Game) Config() config.Config {
	return g.cfg
}
