package config

import "errors"

var (
	// ErrUnknownTier is returned when a tier or preset name is not recognized.
	ErrUnknownTier = errors.New("unknown difficulty tier")

	// ErrInvalidRange is returned for inverted or non-positive spacing ranges.
	ErrInvalidRange = errors.New("invalid range")

	// ErrNoGapRoom is returned when a vertical gap cannot fit between the margins.
	ErrNoGapRoom = errors.New("vertical gap does not fit in world")

	// ErrInvalidConfig is returned for any other out-of-range setting.
	ErrInvalidConfig = errors.New("invalid config")
)
