package bluebird

import (
	"github.com/vovakirdan/bluebird-flight/internal/config"
	"github.com/vovakirdan/bluebird-flight/internal/core"
)

// Player is the flying entity. Y grows downward.
type Player struct {
	X, Y float64 // Top-left corner
	VY   float64 // Vertical velocity, units/s
	W, H float64
}

// Box returns the player's collision box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

func newPlayer(cfg config.Config) Player {
	return Player{
		X: cfg.World.Width * cfg.Player.StartX,
		Y: cfg.World.Height*cfg.Player.StartY - cfg.Player.Height/2,
		W: cfg.Player.Width,
		H: cfg.Player.Height,
	}
}

// integrate applies gravity and moves the player by one step.
func (p *Player) integrate(gravity, dt float64) {
	p.VY += gravity * dt
	p.Y += p.VY * dt
}

// outOfBounds reports whether the player touches or leaves the vertical
// world bounds.
func (p Player) outOfBounds(worldHeight float64) bool {
	return p.Y <= 0 || p.Y+p.H >= worldHeight
}
