// Package swipe recognizes swipe-to-act gestures on list rows.
//
// A Recognizer turns a sequence of pointer positions into at most one committed action per gesture. Horizontal drags
// move the row and, when released past a threshold, commit the action for that direction. Vertical drags are left to
// the enclosing scroller. The recognizer is driven entirely by its caller: pointer positions go into Press, Move and
// Release, and Frame advances time. It never starts goroutines or timers of its own.
package swipe

import (
	"time"

	"gioui.org/f32"
	"golang.org/x/exp/slices"
)

type State uint8

const (
	StateIdle State = iota
	StateDragging
	StateSettling
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateSettling:
		return "settling"
	default:
		return "invalid"
	}
}

// Axis is the axis a gesture session has locked to.
type Axis uint8

const (
	AxisUnlocked Axis = iota
	AxisHorizontal
	AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisUnlocked:
		return "unlocked"
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "invalid"
	}
}

// Direction is the direction of a swipe. A right swipe moves the row's content towards the right.
type Direction int8

const (
	None  Direction = 0
	Left  Direction = -1
	Right Direction = 1
)

func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "invalid"
	}
}

func directionOf(offset float32) Direction {
	switch {
	case offset > 0:
		return Right
	case offset < 0:
		return Left
	default:
		return None
	}
}

type commit struct {
	fn  func()
	dir Direction
	at  time.Time
	gen uint64
}

// Recognizer holds the gesture state of a single row. The zero value is ready to use and uses DefaultConfig.
type Recognizer struct {
	Config Config

	// OnRight and OnLeft are the row's actions. A nil action disarms its direction: the row can still be dragged that
	// way, with extra resistance, but releasing it never commits.
	OnRight func()
	OnLeft  func()

	// Disabled rows don't start new gestures and reset in-flight ones on release.
	Disabled bool

	state  State
	axis   Axis
	origin f32.Point
	// offset is the published offset, pending the latest computed one. They only differ while batching.
	offset  float32
	pending float32
	dirty   bool
	// gen identifies the current session.
	gen uint64
	// commits are the scheduled actions, in the order they are due. A rapid re-touch can schedule a second one before
	// the first has run.
	commits     []commit
	settleUntil time.Time
}

func (r *Recognizer) cfg() *Config {
	if r.Config == (Config{}) {
		return &DefaultConfig
	}
	return &r.Config
}

// Press starts a new gesture session at pos and reports whether one was started. Disabled rows don't start sessions.
//
// A commit scheduled by an earlier session stays scheduled and still fires exactly once, but it no longer resets
// the row's offset when it does.
func (r *Recognizer) Press(pos f32.Point) bool {
	if r.Disabled {
		return false
	}
	r.gen++
	r.state = StateDragging
	r.axis = AxisUnlocked
	r.origin = pos
	r.pending = r.offset
	r.dirty = false
	return true
}

// Move updates the session with the pointer's current position.
func (r *Recognizer) Move(pos f32.Point) {
	if r.state != StateDragging || r.Disabled {
		return
	}
	cfg := r.cfg()
	dx := pos.X - r.origin.X
	dy := pos.Y - r.origin.Y

	if r.axis == AxisUnlocked {
		adx, ady := abs(dx), abs(dy)
		if adx <= cfg.DirectionLockThreshold && ady <= cfg.DirectionLockThreshold {
			return
		}
		if adx > ady {
			r.axis = AxisHorizontal
		} else {
			r.axis = AxisVertical
			r.publish(0)
			return
		}
	}
	if r.axis != AxisHorizontal {
		return
	}

	// The offset is derived from the total displacement every time, not accumulated from previous moves.
	v := clamp(dx*cfg.Resistance, -cfg.MaxSwipe, cfg.MaxSwipe)
	if !r.Armed(directionOf(v)) {
		v *= cfg.UnarmedResistance
	}
	if cfg.BatchUpdates {
		r.pending = v
		r.dirty = true
	} else {
		r.publish(v)
	}
}

// Release ends the session. If the row was dragged past the swipe threshold towards an armed direction, the row moves
// off-screen and the action is scheduled to run after the commit delay. Otherwise the row returns to rest.
func (r *Recognizer) Release(now time.Time) {
	if r.state != StateDragging {
		return
	}
	if r.dirty {
		r.publish(r.pending)
	}
	cfg := r.cfg()

	if r.Disabled || r.axis != AxisHorizontal {
		r.reject(now)
		return
	}

	switch {
	case r.offset > cfg.SwipeThreshold && r.OnRight != nil:
		r.schedule(now, Right, r.OnRight)
	case r.offset < -cfg.SwipeThreshold && r.OnLeft != nil:
		r.schedule(now, Left, r.OnLeft)
	default:
		r.reject(now)
	}
}

// Cancel aborts the session without committing, for example because the enclosing list has taken over the pointer.
func (r *Recognizer) Cancel(now time.Time) {
	if r.state != StateDragging {
		return
	}
	r.reject(now)
}

// Frame advances the recognizer to now. It publishes batched offset updates and runs a scheduled action once its
// delay has passed. It returns the direction of the last action that ran, if any.
func (r *Recognizer) Frame(now time.Time) Direction {
	if r.dirty {
		r.publish(r.pending)
	}

	var fired Direction
	for len(r.commits) > 0 && !now.Before(r.commits[0].at) {
		c := r.commits[0]
		r.commits = r.commits[1:]
		if c.gen == r.gen {
			r.publish(0)
			r.idle()
		}
		fired = c.dir
		c.fn()
	}
	if len(r.commits) == 0 {
		r.commits = nil
	}

	if r.state == StateSettling && len(r.commits) == 0 && !now.Before(r.settleUntil) {
		r.idle()
	}
	return fired
}

// Teardown drops all gesture state, including a scheduled action, which will not run.
func (r *Recognizer) Teardown() {
	r.commits = nil
	r.publish(0)
	r.idle()
}

// Deadline returns the time at which Frame next has work to do, if any. Callers should arrange for a frame at that
// time.
func (r *Recognizer) Deadline() (time.Time, bool) {
	switch {
	case r.dirty:
		return time.Time{}, true
	case len(r.commits) > 0:
		return r.commits[0].at, true
	case r.state == StateSettling:
		return r.settleUntil, true
	default:
		return time.Time{}, false
	}
}

func (r *Recognizer) schedule(now time.Time, dir Direction, fn func()) {
	cfg := r.cfg()
	r.state = StateSettling
	r.publish(float32(dir) * cfg.CommitOffset)
	c := commit{
		fn:  fn,
		dir: dir,
		at:  now.Add(cfg.CommitDelay),
		gen: r.gen,
	}
	// Keep the queue ordered by due time, even if the commit delay was changed in between.
	i := len(r.commits)
	for i > 0 && c.at.Before(r.commits[i-1].at) {
		i--
	}
	r.commits = slices.Insert(r.commits, i, c)
}

func (r *Recognizer) reject(now time.Time) {
	moved := r.offset != 0
	r.publish(0)
	if !moved || !r.cfg().BatchUpdates {
		// Nothing to animate back.
		r.idle()
		return
	}
	r.state = StateSettling
	r.settleUntil = now.Add(r.cfg().SettleDuration)
}

func (r *Recognizer) idle() {
	r.state = StateIdle
	r.axis = AxisUnlocked
}

func (r *Recognizer) publish(v float32) {
	r.offset = v
	r.pending = v
	r.dirty = false
}

// Armed reports whether dir has an action.
func (r *Recognizer) Armed(dir Direction) bool {
	switch dir {
	case Right:
		return r.OnRight != nil
	case Left:
		return r.OnLeft != nil
	default:
		return false
	}
}

func (r *Recognizer) State() State { return r.state }
func (r *Recognizer) Axis() Axis   { return r.axis }

// Offset returns the row's signed horizontal offset.
func (r *Recognizer) Offset() float32 { return r.offset }

// Dragging reports whether the row is following the finger along the horizontal axis.
func (r *Recognizer) Dragging() bool {
	return r.state == StateDragging && r.axis == AxisHorizontal
}

// Transition returns the duration over which changes to the offset should be animated. It is zero while the row
// follows the finger and when batching is disabled.
func (r *Recognizer) Transition() time.Duration {
	cfg := r.cfg()
	if r.Dragging() || !cfg.BatchUpdates {
		return 0
	}
	return cfg.SettleDuration
}

// Indicator reports whether the indicator for dir is visible and how far the gesture has progressed towards
// committing dir, from 0 to 1.
func (r *Recognizer) Indicator(dir Direction) (visible bool, progress float32) {
	if dir == None || !r.Armed(dir) || directionOf(r.offset) != dir {
		return false, 0
	}
	cfg := r.cfg()
	a := abs(r.offset)
	if a <= cfg.RevealThreshold {
		return false, 0
	}
	return true, min(1, a/cfg.SwipeThreshold)
}

// IndicatorWidth returns the width of the panel revealed behind the row.
func (r *Recognizer) IndicatorWidth() float32 {
	return max(r.cfg().MinIndicatorWidth, abs(r.offset))
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi float32) float32 {
	return max(lo, min(hi, v))
}
