package gesture

import (
	"testing"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"github.com/google/go-cmp/cmp"
)

type queue []event.Event

func (q queue) Events(event.Tag) []event.Event { return q }

func touch(typ pointer.Kind, id pointer.ID, x, y float32) pointer.Event {
	return pointer.Event{Kind: typ, Source: pointer.Touch, PointerID: id, Position: f32.Pt(x, y)}
}

func kinds(evs []SwipeEvent) []SwipeKind {
	var out []SwipeKind
	for _, ev := range evs {
		out = append(out, ev.Kind)
	}
	return out
}

func TestSwipeTracksSinglePointer(t *testing.T) {
	var s Swipe
	evs := s.Update(queue{
		touch(pointer.Press, 1, 10, 10),
		touch(pointer.Press, 2, 50, 50),
		touch(pointer.Drag, 2, 80, 50),
		touch(pointer.Drag, 1, 30, 12),
		touch(pointer.Release, 2, 80, 50),
		touch(pointer.Release, 1, 40, 12),
	})
	want := []SwipeKind{KindPress, KindMove, KindRelease}
	if diff := cmp.Diff(want, kinds(evs)); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
	if got := evs[1].Position; got != f32.Pt(30, 12) {
		t.Errorf("got move position %v, want (30,12)", got)
	}
	if s.Pressed() {
		t.Error("session still pressed after release")
	}
}

func TestSwipeIgnoresMouseByDefault(t *testing.T) {
	mouse := pointer.Event{Kind: pointer.Press, Source: pointer.Mouse, Buttons: pointer.ButtonPrimary}
	var s Swipe
	if evs := s.Update(queue{mouse}); len(evs) != 0 {
		t.Fatalf("got %v, want no events", kinds(evs))
	}

	s.AcceptMouse = true
	if evs := s.Update(queue{mouse}); len(evs) != 1 || evs[0].Kind != KindPress {
		t.Fatalf("got %v, want a press", kinds(evs))
	}

	var other Swipe
	other.AcceptMouse = true
	secondary := mouse
	secondary.Buttons = pointer.ButtonSecondary
	if evs := other.Update(queue{secondary}); len(evs) != 0 {
		t.Fatalf("got %v for secondary button, want no events", kinds(evs))
	}
}

func TestSwipeGrabLastsForSession(t *testing.T) {
	var s Swipe
	s.Grab()
	if s.Grabbed() {
		t.Fatal("grabbed without a session")
	}
	s.Update(queue{touch(pointer.Press, 1, 0, 0)})
	s.Grab()
	if !s.Grabbed() {
		t.Fatal("grab request was ignored")
	}
	evs := s.Update(queue{pointer.Event{Kind: pointer.Cancel}})
	if diff := cmp.Diff([]SwipeKind{KindCancel}, kinds(evs)); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
	if s.Grabbed() || s.Pressed() {
		t.Error("cancel did not end the session")
	}
}
