// Package gesture implements pointer gestures that Gio's own gesture package doesn't provide.
package gesture

import (
	"time"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op"
)

const (
	// KindPress is reported when a pointer starts a swipe session.
	KindPress SwipeKind = iota
	// KindMove is reported for every movement of the session's pointer.
	KindMove
	// KindRelease is reported when the session's pointer is lifted.
	KindRelease
	// KindCancel is reported when the session is aborted, for example because another handler grabbed the pointer.
	KindCancel
)

type SwipeKind uint8

func (k SwipeKind) String() string {
	switch k {
	case KindPress:
		return "press"
	case KindMove:
		return "move"
	case KindRelease:
		return "release"
	case KindCancel:
		return "cancel"
	default:
		return "invalid"
	}
}

type SwipeEvent struct {
	Kind     SwipeKind
	Position f32.Point
	Source   pointer.Source
	Time     time.Duration
}

// Swipe tracks a single pointer from press to release, reporting its positions as SwipeEvents. Interpreting the
// movement is left to the caller.
type Swipe struct {
	// AcceptMouse makes the gesture respond to drags with the primary mouse button, not just to touches.
	AcceptMouse bool

	// pressed tracks whether a session is in progress.
	pressed bool
	// pid is the pointer.ID of the session's pointer.
	pid pointer.ID
	// grab is set once the caller has claimed the session's pointer.
	grab bool
}

// Add the handler to the operation list to receive swipe events.
func (s *Swipe) Add(ops *op.Ops) {
	pointer.InputOp{
		Tag:   s,
		Grab:  s.grab,
		Kinds: pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
	}.Add(ops)
}

// Grab claims the current session's pointer, preventing other handlers, such as an enclosing scrollable list, from
// receiving it. The claim takes effect the next time the gesture is added and lasts until the session ends.
func (s *Swipe) Grab() {
	if s.pressed {
		s.grab = true
	}
}

// Pressed reports whether a session is in progress.
func (s *Swipe) Pressed() bool {
	return s.pressed
}

// Grabbed reports whether the current session's pointer has been claimed.
func (s *Swipe) Grabbed() bool {
	return s.grab
}

// Update processes pointer events and returns the resulting swipe events, if any.
func (s *Swipe) Update(q event.Queue) []SwipeEvent {
	var events []SwipeEvent
	for _, evt := range q.Events(s) {
		e, ok := evt.(pointer.Event)
		if !ok {
			continue
		}

		switch e.Kind {
		case pointer.Press:
			if s.pressed || !s.accepts(e) {
				continue
			}
			s.pressed = true
			s.pid = e.PointerID
			events = append(events, SwipeEvent{Kind: KindPress, Position: e.Position, Source: e.Source, Time: e.Time})
		case pointer.Drag:
			if !s.pressed || e.PointerID != s.pid {
				continue
			}
			events = append(events, SwipeEvent{Kind: KindMove, Position: e.Position, Source: e.Source, Time: e.Time})
		case pointer.Release:
			if !s.pressed || e.PointerID != s.pid {
				continue
			}
			s.reset()
			events = append(events, SwipeEvent{Kind: KindRelease, Position: e.Position, Source: e.Source, Time: e.Time})
		case pointer.Cancel:
			// Cancel affects all pointers
			if !s.pressed {
				continue
			}
			s.reset()
			events = append(events, SwipeEvent{Kind: KindCancel, Time: e.Time})
		}
	}
	return events
}

func (s *Swipe) accepts(e pointer.Event) bool {
	switch e.Source {
	case pointer.Touch:
		return true
	case pointer.Mouse:
		return s.AcceptMouse && e.Buttons == pointer.ButtonPrimary
	default:
		return false
	}
}

func (s *Swipe) reset() {
	s.pressed = false
	s.grab = false
}

func (SwipeEvent) ImplementsEvent() {}
