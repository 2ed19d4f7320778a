package swipe

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by all errors returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid swipe configuration")

// Config tunes a Recognizer. Distances are in device-independent pixels.
type Config struct {
	// DirectionLockThreshold is the displacement along either axis after which the session's axis is decided.
	DirectionLockThreshold float32
	// SwipeThreshold is the offset a release has to exceed for an action to commit.
	SwipeThreshold float32
	// MaxSwipe bounds the absolute offset while dragging.
	MaxSwipe float32
	// Resistance scales the finger's raw displacement.
	Resistance float32
	// UnarmedResistance is applied on top of Resistance when dragging towards a direction without an action.
	UnarmedResistance float32
	// CommitOffset is the offset the row moves to when an action commits. It should put the row off-screen.
	CommitOffset float32
	// RevealThreshold is the offset after which an action's indicator becomes visible.
	RevealThreshold float32
	// MinIndicatorWidth is the smallest width of a visible indicator panel.
	MinIndicatorWidth float32

	// CommitDelay separates the row leaving the screen from the action being invoked.
	CommitDelay time.Duration
	// SettleDuration is the length of the eased transition after the finger lifts.
	SettleDuration time.Duration

	// BatchUpdates coalesces offset updates to one per frame and eases settle transitions. Disable it when the user
	// prefers reduced motion; the recognized gestures are the same either way.
	BatchUpdates bool
}

var DefaultConfig = Config{
	DirectionLockThreshold: 15,
	SwipeThreshold:         80,
	MaxSwipe:               150,
	Resistance:             0.7,
	UnarmedResistance:      0.3,
	CommitOffset:           200,
	RevealThreshold:        30,
	MinIndicatorWidth:      60,
	CommitDelay:            150 * time.Millisecond,
	SettleDuration:         200 * time.Millisecond,
	BatchUpdates:           true,
}

// ReducedMotion returns a copy of cfg suitable for users that prefer reduced motion.
func (cfg Config) ReducedMotion() Config {
	cfg.BatchUpdates = false
	return cfg
}

func (cfg Config) Validate() error {
	positive := []struct {
		name string
		v    float32
	}{
		{"direction lock threshold", cfg.DirectionLockThreshold},
		{"swipe threshold", cfg.SwipeThreshold},
		{"max swipe", cfg.MaxSwipe},
		{"resistance", cfg.Resistance},
		{"unarmed resistance", cfg.UnarmedResistance},
		{"commit offset", cfg.CommitOffset},
	}
	for _, p := range positive {
		if !(p.v > 0) {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidConfig, p.name, p.v)
		}
	}
	if cfg.RevealThreshold < 0 || cfg.MinIndicatorWidth < 0 {
		return fmt.Errorf("%w: reveal threshold and indicator width must not be negative", ErrInvalidConfig)
	}
	if cfg.SwipeThreshold >= cfg.MaxSwipe {
		// A drag could never get past the threshold.
		return fmt.Errorf("%w: swipe threshold %g is unreachable with max swipe %g",
			ErrInvalidConfig, cfg.SwipeThreshold, cfg.MaxSwipe)
	}
	if cfg.Resistance > 1 || cfg.UnarmedResistance > 1 {
		return fmt.Errorf("%w: resistance factors must not exceed 1", ErrInvalidConfig)
	}
	if cfg.CommitDelay < 0 || cfg.SettleDuration < 0 {
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidConfig)
	}
	return nil
}
