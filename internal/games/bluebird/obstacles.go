package bluebird

import (
	"github.com/vovakirdan/bluebird-flight/internal/config"
	"github.com/vovakirdan/bluebird-flight/internal/core"
)

// PoolSize is the number of obstacle pairs alive for the whole run.
const PoolSize = 4

// ObstaclePair is one gate: a top and a bottom segment sharing X, with a
// passable gap between them.
type ObstaclePair struct {
	X         float64 // Left edge of both segments
	GapY      int     // Bottom edge of the top segment
	GapHeight int     // Distance to the top edge of the bottom segment
}

// GapBottom returns the y-coordinate of the bottom segment's top edge.
func (p ObstaclePair) GapBottom() int {
	return p.GapY + p.GapHeight
}

// TopBox returns the collision box of the top segment.
func (p ObstaclePair) TopBox(width float64) core.Box {
	return core.NewBox(p.X, 0, width, float64(p.GapY))
}

// BottomBox returns the collision box of the bottom segment.
func (p ObstaclePair) BottomBox(width, worldHeight float64) core.Box {
	bottom := float64(p.GapBottom())
	return core.NewBox(p.X, bottom, width, worldHeight-bottom)
}

// Pool holds the fixed set of obstacle pairs and repositions them once they
// leave the world on the left.
type Pool struct {
	pairs       [PoolSize]ObstaclePair
	table       config.Table
	rng         Rand
	width       float64 // Segment width
	speed       float64 // Leftward speed, units/s
	margin      int
	worldHeight float64
}

// NewPool creates a pool for the given configuration. Call Init before use.
func NewPool(cfg config.Config, rng Rand) *Pool {
	return &Pool{
		table:       cfg.Difficulty.Tiers,
		rng:         rng,
		width:       cfg.Obstacles.Width,
		speed:       cfg.Physics.ObstacleSpeed,
		margin:      cfg.Obstacles.Margin,
		worldHeight: cfg.World.Height,
	}
}

// Init places every pair left to right, spaced for the given tier.
func (p *Pool) Init(tier config.Tier) {
	for i := range p.pairs {
		p.pairs[i] = ObstaclePair{}
	}
	for i := range p.pairs {
		p.PlacePair(i, tier)
	}
}

// PlacePair moves pair i to the right of the rightmost pair with a freshly
// drawn gap for the given tier.
func (p *Pool) PlacePair(i int, tier config.Tier) {
	horizontal, vertical := p.table.RangesFor(tier)
	rightmost := p.Rightmost()

	vGap := p.rng.IntBetween(vertical.Min, vertical.Max)
	gapY := p.rng.IntBetween(p.margin, int(p.worldHeight)-p.margin-vGap)
	hGap := p.rng.IntBetween(horizontal.Min, horizontal.Max)

	p.pairs[i] = ObstaclePair{
		X:         rightmost + float64(hGap),
		GapY:      gapY,
		GapHeight: vGap,
	}
}

// Rightmost returns the largest X over all pairs.
func (p *Pool) Rightmost() float64 {
	rightmost := 0.0
	for _, pair := range p.pairs {
		if pair.X > rightmost {
			rightmost = pair.X
		}
	}
	return rightmost
}

// Advance moves every pair left by speed*dt.
func (p *Pool) Advance(dt float64) {
	for i := range p.pairs {
		p.pairs[i].X -= p.speed * dt
	}
}

// RecycleTick re-places every pair whose right edge has crossed x=0 and
// calls passed once per recycled pair. tier is read before each placement so
// a difficulty change from an earlier pass applies to the next one.
// Returns the number of recycled pairs.
func (p *Pool) RecycleTick(tier func() config.Tier, passed func()) int {
	recycled := 0
	for i := range p.pairs {
		if p.pairs[i].X+p.width > 0 {
			continue
		}
		p.PlacePair(i, tier())
		recycled++
		if passed != nil {
			passed()
		}
	}
	return recycled
}

// Collides reports whether box overlaps any obstacle segment.
func (p *Pool) Collides(box core.Box) bool {
	for _, pair := range p.pairs {
		if box.Intersects(pair.TopBox(p.width)) || box.Intersects(pair.BottomBox(p.width, p.worldHeight)) {
			return true
		}
	}
	return false
}

// Pairs returns a copy of the current pairs.
func (p *Pool) Pairs() [PoolSize]ObstaclePair {
	return p.pairs
}

// Width returns the segment width.
func (p *Pool) Width() float64 {
	return p.width
}
