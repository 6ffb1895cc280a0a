package config

import (
	"fmt"
	"strings"
)

// Tier is a named difficulty level controlling obstacle spacing.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierNormal Tier = "normal"
	TierHard   Tier = "hard"
)

// Tiers lists all tiers from easiest to hardest.
var Tiers = []Tier{TierEasy, TierNormal, TierHard}

// ParseTier converts a tier name to a Tier.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("config: %w: %q", ErrUnknownTier, s)
	}
	return t, nil
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	return t.rank() >= 0
}

// rank orders tiers from easy (0) to hard (2); -1 for unknown tiers.
func (t Tier) rank() int {
	switch t {
	case TierEasy:
		return 0
	case TierNormal:
		return 1
	case TierHard:
		return 2
	default:
		return -1
	}
}

// Harder returns whichever of t and other is more difficult.
func (t Tier) Harder(other Tier) Tier {
	if other.rank() > t.rank() {
		return other
	}
	return t
}

// Range is a closed integer interval [Min, Max].
type Range struct {
	Min int `yaml:"min" koanf:"min"`
	Max int `yaml:"max" koanf:"max"`
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.Min, r.Max)
}

// TierRanges holds the obstacle spacing ranges for one tier.
type TierRanges struct {
	Horizontal Range `yaml:"horizontal" koanf:"horizontal"` // Distance between consecutive gates
	Vertical   Range `yaml:"vertical" koanf:"vertical"`     // Height of the gap inside a gate
}

// Table maps every tier to its spacing ranges.
type Table struct {
	Easy   TierRanges `yaml:"easy" koanf:"easy"`
	Normal TierRanges `yaml:"normal" koanf:"normal"`
	Hard   TierRanges `yaml:"hard" koanf:"hard"`
}

// DefaultTable returns the stock difficulty table.
func DefaultTable() Table {
	return Table{
		Easy: TierRanges{
			Horizontal: Range{Min: 300, Max: 350},
			Vertical:   Range{Min: 150, Max: 200},
		},
		Normal: TierRanges{
			Horizontal: Range{Min: 280, Max: 330},
			Vertical:   Range{Min: 140, Max: 190},
		},
		Hard: TierRanges{
			Horizontal: Range{Min: 250, Max: 310},
			Vertical:   Range{Min: 120, Max: 170},
		},
	}
}

// RangesFor returns the horizontal and vertical ranges of a tier.
// An unknown tier is a programming error and panics.
func (t Table) RangesFor(tier Tier) (horizontal, vertical Range) {
	switch tier {
	case TierEasy:
		return t.Easy.Horizontal, t.Easy.Vertical
	case TierNormal:
		return t.Normal.Horizontal, t.Normal.Vertical
	case TierHard:
		return t.Hard.Horizontal, t.Hard.Vertical
	default:
		panic(fmt.Sprintf("config: unknown difficulty tier %q", tier))
	}
}

// Validate checks that every tier can be placed inside a world of the given
// height with the given top/bottom margin.
func (t Table) Validate(worldHeight float64, margin int) error {
	room := int(worldHeight) - 2*margin
	for _, tier := range Tiers {
		h, v := t.RangesFor(tier)
		if h.Min <= 0 || h.Min > h.Max {
			return fmt.Errorf("config: %w: %s horizontal %s", ErrInvalidRange, tier, h)
		}
		if v.Min <= 0 || v.Min > v.Max {
			return fmt.Errorf("config: %w: %s vertical %s", ErrInvalidRange, tier, v)
		}
		if v.Max > room {
			return fmt.Errorf("config: %w: %s vertical max %d exceeds %d", ErrNoGapRoom, tier, v.Max, room)
		}
	}
	return nil
}

// Progression defines the score thresholds at which the tier increases.
type Progression struct {
	Enabled  bool `yaml:"enabled" koanf:"enabled"`
	NormalAt int  `yaml:"normal_at" koanf:"normal_at"`
	HardAt   int  `yaml:"hard_at" koanf:"hard_at"`
}

// DefaultProgression returns the stock thresholds (normal at 30, hard at 60).
func DefaultProgression() Progression {
	return Progression{
		Enabled:  true,
		NormalAt: 30,
		HardAt:   60,
	}
}

// TierFor returns the tier earned by a score. Thresholds are inclusive
// lower bounds, so a score jumping past a threshold still upgrades.
func (p Progression) TierFor(score int) Tier {
	switch {
	case score >= p.HardAt:
		return TierHard
	case score >= p.NormalAt:
		return TierNormal
	default:
		return TierEasy
	}
}

// Next returns the tier to use after reaching score while on current.
// Tiers never go down, and stay fixed when progression is disabled.
func (p Progression) Next(current Tier, score int) Tier {
	if !p.Enabled {
		return current
	}
	return current.Harder(p.TierFor(score))
}
