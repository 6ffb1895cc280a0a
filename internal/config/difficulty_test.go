package config

import (
	"errors"
	"testing"
)

func TestRangesFor(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		tier       Tier
		horizontal Range
		vertical   Range
	}{
		{TierEasy, Range{300, 350}, Range{150, 200}},
		{TierNormal, Range{280, 330}, Range{140, 190}},
		{TierHard, Range{250, 310}, Range{120, 170}},
	}

	for _, tc := range tests {
		t.Run(string(tc.tier), func(t *testing.T) {
			h, v := table.RangesFor(tc.tier)
			if h != tc.horizontal {
				t.Errorf("horizontal = %s, expected %s", h, tc.horizontal)
			}
			if v != tc.vertical {
				t.Errorf("vertical = %s, expected %s", v, tc.vertical)
			}
		})
	}
}

func TestRangesForUnknownTierPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("RangesFor should panic on an unknown tier")
		}
	}()
	DefaultTable().RangesFor(Tier("insane"))
}

func TestTableValidate(t *testing.T) {
	if err := DefaultTable().Validate(600, 20); err != nil {
		t.Fatalf("default table should be valid: %v", err)
	}

	inverted := DefaultTable()
	inverted.Normal.Horizontal = Range{Min: 330, Max: 280}
	if err := inverted.Validate(600, 20); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("inverted range: expected ErrInvalidRange, got %v", err)
	}

	zero := DefaultTable()
	zero.Easy.Vertical = Range{Min: 0, Max: 10}
	if err := zero.Validate(600, 20); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("zero gap: expected ErrInvalidRange, got %v", err)
	}

	// 600 - 2*20 = 560 leaves no gapY for a 561 unit gap
	tooTall := DefaultTable()
	tooTall.Hard.Vertical = Range{Min: 120, Max: 561}
	if err := tooTall.Validate(600, 20); !errors.Is(err, ErrNoGapRoom) {
		t.Errorf("too tall gap: expected ErrNoGapRoom, got %v", err)
	}

	exact := DefaultTable()
	exact.Hard.Vertical = Range{Min: 120, Max: 560}
	if err := exact.Validate(600, 20); err != nil {
		t.Errorf("gap filling the whole room should be valid: %v", err)
	}

	// The default table does not fit a tiny world.
	if err := DefaultTable().Validate(200, 20); !errors.Is(err, ErrNoGapRoom) {
		t.Errorf("small world: expected ErrNoGapRoom, got %v", err)
	}
}

func TestProgressionTierFor(t *testing.T) {
	p := DefaultProgression()

	tests := []struct {
		score int
		tier  Tier
	}{
		{0, TierEasy},
		{29, TierEasy},
		{30, TierNormal},
		{59, TierNormal},
		{60, TierHard},
		{1000, TierHard},
	}

	for _, tc := range tests {
		if got := p.TierFor(tc.score); got != tc.tier {
			t.Errorf("TierFor(%d) = %s, expected %s", tc.score, got, tc.tier)
		}
	}
}

func TestProgressionNextNeverDowngrades(t *testing.T) {
	p := DefaultProgression()

	if got := p.Next(TierHard, 5); got != TierHard {
		t.Errorf("Next(hard, 5) = %s, expected hard", got)
	}
	if got := p.Next(TierNormal, 61); got != TierHard {
		t.Errorf("Next(normal, 61) = %s, expected hard", got)
	}
	// Skipping over a threshold still upgrades.
	if got := p.Next(TierEasy, 45); got != TierNormal {
		t.Errorf("Next(easy, 45) = %s, expected normal", got)
	}

	p.Enabled = false
	if got := p.Next(TierEasy, 100); got != TierEasy {
		t.Errorf("disabled progression should keep the tier, got %s", got)
	}
}

func TestParseTier(t *testing.T) {
	tier, err := ParseTier(" Normal ")
	if err != nil || tier != TierNormal {
		t.Errorf("ParseTier(\" Normal \") = %q, %v", tier, err)
	}

	if _, err := ParseTier("nightmare"); !errors.Is(err, ErrUnknownTier) {
		t.Errorf("expected ErrUnknownTier, got %v", err)
	}
}

func TestTierHarder(t *testing.T) {
	if TierEasy.Harder(TierNormal) != TierNormal {
		t.Error("normal should be harder than easy")
	}
	if TierHard.Harder(TierEasy) != TierHard {
		t.Error("hard should stay hard")
	}
}
