// Package config loads hndld's settings from a config file, the environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hndld.dev/hndld/swipe"

	"github.com/spf13/viper"
)

var ErrInvalid = errors.New("invalid configuration")

const EnvPrefix = "HNDLD"

// Keys understood by Load.
const (
	KeyReducedMotion = "reduced_motion"
	KeyAcceptMouse   = "accept_mouse"
	KeyReadOnly      = "read_only"
	KeyDebug         = "debug"
	KeyToastTTL      = "toast_ttl"
	KeyWindowWidth   = "window.width"
	KeyWindowHeight  = "window.height"
	KeyTasks         = "tasks"

	KeyDirectionLockThreshold = "swipe.direction_lock_threshold"
	KeySwipeThreshold         = "swipe.swipe_threshold"
	KeyMaxSwipe               = "swipe.max_swipe"
	KeyResistance             = "swipe.resistance"
	KeyUnarmedResistance      = "swipe.unarmed_resistance"
	KeyCommitOffset           = "swipe.commit_offset"
	KeyRevealThreshold        = "swipe.reveal_threshold"
	KeyMinIndicatorWidth      = "swipe.min_indicator_width"
	KeyCommitDelay            = "swipe.commit_delay"
	KeySettleDuration         = "swipe.settle_duration"
	KeyRightLabel             = "swipe.right_label"
	KeyLeftLabel              = "swipe.left_label"
)

var defaultTasks = []string{
	"Pick up dry cleaning",
	"Book the plumber for the upstairs bathroom",
	"Approve the landscaping invoice",
	"Renew the car registration",
	"Order groceries for the weekend",
	"Schedule the piano tuner",
}

type Config struct {
	Swipe      swipe.Config
	RightLabel string
	LeftLabel  string

	// ReducedMotion is the user's preference for reduced motion. Swipe has already been adjusted for it.
	ReducedMotion bool
	AcceptMouse   bool
	// ReadOnly disables all rows, for household members who may look but not act.
	ReadOnly bool
	Debug    bool

	ToastTTL     time.Duration
	WindowWidth  int
	WindowHeight int
	// Tasks seeds the task list.
	Tasks []string
}

// New returns a viper instance with hndld's defaults, reading HNDLD_* environment variables.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := swipe.DefaultConfig
	v.SetDefault(KeyDirectionLockThreshold, d.DirectionLockThreshold)
	v.SetDefault(KeySwipeThreshold, d.SwipeThreshold)
	v.SetDefault(KeyMaxSwipe, d.MaxSwipe)
	v.SetDefault(KeyResistance, d.Resistance)
	v.SetDefault(KeyUnarmedResistance, d.UnarmedResistance)
	v.SetDefault(KeyCommitOffset, d.CommitOffset)
	v.SetDefault(KeyRevealThreshold, d.RevealThreshold)
	v.SetDefault(KeyMinIndicatorWidth, d.MinIndicatorWidth)
	v.SetDefault(KeyCommitDelay, d.CommitDelay)
	v.SetDefault(KeySettleDuration, d.SettleDuration)
	v.SetDefault(KeyRightLabel, "Done")
	v.SetDefault(KeyLeftLabel, "Waiting")

	v.SetDefault(KeyReducedMotion, false)
	v.SetDefault(KeyAcceptMouse, false)
	v.SetDefault(KeyReadOnly, false)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyToastTTL, 2*time.Second)
	v.SetDefault(KeyWindowWidth, 420)
	v.SetDefault(KeyWindowHeight, 720)
	v.SetDefault(KeyTasks, defaultTasks)
	return v
}

// ReadFile merges the config file at path into v. The format is derived from the file's extension.
func ReadFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("couldn't read config file %s: %w", path, err)
	}
	return nil
}

// Load builds a Config from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Swipe: swipe.Config{
			DirectionLockThreshold: float32(v.GetFloat64(KeyDirectionLockThreshold)),
			SwipeThreshold:         float32(v.GetFloat64(KeySwipeThreshold)),
			MaxSwipe:               float32(v.GetFloat64(KeyMaxSwipe)),
			Resistance:             float32(v.GetFloat64(KeyResistance)),
			UnarmedResistance:      float32(v.GetFloat64(KeyUnarmedResistance)),
			CommitOffset:           float32(v.GetFloat64(KeyCommitOffset)),
			RevealThreshold:        float32(v.GetFloat64(KeyRevealThreshold)),
			MinIndicatorWidth:      float32(v.GetFloat64(KeyMinIndicatorWidth)),
			CommitDelay:            v.GetDuration(KeyCommitDelay),
			SettleDuration:         v.GetDuration(KeySettleDuration),
			BatchUpdates:           true,
		},
		RightLabel:    v.GetString(KeyRightLabel),
		LeftLabel:     v.GetString(KeyLeftLabel),
		ReducedMotion: v.GetBool(KeyReducedMotion),
		AcceptMouse:   v.GetBool(KeyAcceptMouse),
		ReadOnly:      v.GetBool(KeyReadOnly),
		Debug:         v.GetBool(KeyDebug),
		ToastTTL:      v.GetDuration(KeyToastTTL),
		WindowWidth:   v.GetInt(KeyWindowWidth),
		WindowHeight:  v.GetInt(KeyWindowHeight),
		Tasks:         v.GetStringSlice(KeyTasks),
	}
	if cfg.ReducedMotion {
		cfg.Swipe = cfg.Swipe.ReducedMotion()
	}

	if err := cfg.Swipe.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		return Config{}, fmt.Errorf("%w: window size %dx%d", ErrInvalid, cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.ToastTTL < 0 {
		return Config{}, fmt.Errorf("%w: negative toast TTL %s", ErrInvalid, cfg.ToastTTL)
	}
	return cfg, nil
}
