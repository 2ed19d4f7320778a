package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"hndld.dev/hndld/swipe"

	"github.com/google/go-cmp/cmp"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load(New())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(swipe.DefaultConfig, cfg.Swipe); diff != "" {
		t.Errorf("swipe config mismatch (-want +got):\n%s", diff)
	}
	if cfg.RightLabel != "Done" || cfg.LeftLabel != "Waiting" {
		t.Errorf("got labels %q and %q", cfg.RightLabel, cfg.LeftLabel)
	}
	if len(cfg.Tasks) == 0 {
		t.Error("no default tasks")
	}
}

func TestReadFile(t *testing.T) {
	const yaml = `
reduced_motion: true
toast_ttl: 5s
swipe:
  swipe_threshold: 90
  commit_delay: 250ms
  right_label: Approve
tasks:
  - Water the plants
`
	path := filepath.Join(t.TempDir(), "hndld.yaml")
	if err := os.WriteFile(path, []byte(strings.TrimSpace(yaml)), 0o644); err != nil {
		t.Fatal(err)
	}
	v := New()
	if err := ReadFile(v, path); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatal(err)
	}

	want := swipe.DefaultConfig.ReducedMotion()
	want.SwipeThreshold = 90
	want.CommitDelay = 250 * time.Millisecond
	if diff := cmp.Diff(want, cfg.Swipe); diff != "" {
		t.Errorf("swipe config mismatch (-want +got):\n%s", diff)
	}
	if cfg.RightLabel != "Approve" || cfg.ToastTTL != 5*time.Second {
		t.Errorf("got label %q and TTL %s", cfg.RightLabel, cfg.ToastTTL)
	}
	if diff := cmp.Diff([]string{"Water the plants"}, cfg.Tasks); diff != "" {
		t.Errorf("tasks mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvironment(t *testing.T) {
	t.Setenv("HNDLD_ACCEPT_MOUSE", "true")
	t.Setenv("HNDLD_SWIPE_MAX_SWIPE", "120")
	cfg, err := Load(New())
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.AcceptMouse || cfg.Swipe.MaxSwipe != 120 {
		t.Errorf("got accept mouse %t and max swipe %g", cfg.AcceptMouse, cfg.Swipe.MaxSwipe)
	}
}

func TestInvalid(t *testing.T) {
	for key, val := range map[string]any{
		KeySwipeThreshold: 200,
		KeyResistance:     0,
		KeyWindowWidth:    -1,
		KeyToastTTL:       "-1s",
	} {
		v := New()
		v.Set(key, val)
		if _, err := Load(v); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s=%v: got %v, want ErrInvalid", key, val, err)
		}
	}
}

func TestMissingFile(t *testing.T) {
	if err := ReadFile(New(), filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("reading a missing file succeeded")
	}
}
