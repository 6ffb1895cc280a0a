package bluebird

// RunState is the lifecycle state of the runtime.
type RunState int

const (
	StateIdle     RunState = iota // No run started yet
	StatePlaying                  // World advances every tick
	StatePaused                   // World frozen, possibly counting down to resume
	StateGameOver                 // Run ended, waiting for StartRun
)

// String returns a human-readable name for the state.
func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// countdownEpsilon absorbs float drift from summing fixed tick steps.
const countdownEpsilon = 1e-9

// countdown tracks the resume grace period while paused.
type countdown struct {
	active    bool
	remaining int     // Whole seconds left
	elapsed   float64 // Time since the last whole second
}

func (c *countdown) start(seconds int) {
	c.active = true
	c.remaining = seconds
	c.elapsed = 0
}

func (c *countdown) stop() {
	*c = countdown{}
}

// advance moves the countdown by dt and calls onSecond for every whole
// second that elapses with the seconds still remaining. Reports whether the
// countdown reached zero.
func (c *countdown) advance(dt float64, onSecond func(remaining int)) bool {
	if !c.active {
		return false
	}
	c.elapsed += dt
	for c.remaining > 0 && c.elapsed+countdownEpsilon >= 1 {
		c.elapsed -= 1
		c.remaining--
		if c.remaining > 0 {
			onSecond(c.remaining)
		}
	}
	if c.remaining > 0 {
		return false
	}
	c.stop()
	return true
}
