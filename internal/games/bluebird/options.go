package bluebird

import "github.com/charmbracelet/log"

// Option configures a Game.
type Option func(*Game)

// WithStore sets the persistence store. Defaults to an in-memory store.
func WithStore(store PersistenceStore) Option {
	return func(g *Game) {
		g.store = store
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithAudio sets the audio collaborator.
func WithAudio(audio Audio) Option {
	return func(g *Game) {
		g.audio = audio
	}
}

// WithScenes sets the scene collaborator.
func WithScenes(scenes Scenes) Option {
	return func(g *Game) {
		g.scenes = scenes
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m Metrics) Option {
	return func(g *Game) {
		g.metrics = m
	}
}

// WithRand sets the random source used for obstacle placement.
func WithRand(rng Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithSeed seeds the default random source.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = NewRand(seed)
	}
}
