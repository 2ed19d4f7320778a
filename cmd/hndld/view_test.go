package main

import (
	"image"
	"testing"
	"time"

	"hndld.dev/hndld/config"
	"hndld.dev/hndld/gesture"
	"hndld.dev/hndld/layout"
	"hndld.dev/hndld/swipe"
	"hndld.dev/hndld/task"
	"hndld.dev/hndld/theme"
	"hndld.dev/hndld/toast"

	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"gioui.org/unit"
	"go.uber.org/zap/zaptest"
)

func newTestView(t *testing.T, titles ...string) (*taskView, *theme.Window) {
	t.Helper()
	tasks := &task.List{}
	for _, title := range titles {
		if _, err := tasks.Add(title); err != nil {
			t.Fatal(err)
		}
	}
	cfg := config.Config{RightLabel: "Done", LeftLabel: "Waiting", ToastTTL: time.Second}
	tv := newTaskView(cfg, tasks, zaptest.NewLogger(t))
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	tv.now = func() time.Time { return now }
	return tv, &theme.Window{Toasts: &toast.Store{}}
}

func TestRowActions(t *testing.T) {
	tv, win := newTestView(t, "Feed the cat", "Call the plumber")
	rows := tv.sync(win, tv.tasks.Pending())
	if len(rows) != 2 || len(tv.rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	rows[1].OnLeft()
	pending := tv.tasks.Pending()
	if pending[1].Status != task.StatusWaiting {
		t.Fatalf("got status %s, want waiting", pending[1].Status)
	}
	rows = tv.sync(win, pending)
	if rows[1].OnLeft != nil {
		t.Error("waiting task can still be swiped left")
	}
	if rows[1].OnRight == nil {
		t.Error("waiting task can't be swiped right")
	}

	rows[0].OnRight()
	rows = tv.sync(win, tv.tasks.Pending())
	if len(rows) != 1 || len(tv.rows) != 1 {
		t.Fatalf("got %d rows after completing a task, want 1", len(rows))
	}

	active := win.Toasts.Active(tv.now())
	if len(active) != 2 {
		t.Fatalf("got %d notifications, want 2", len(active))
	}
	if got, want := active[1].Message, "Done: Feed the cat"; got != want {
		t.Errorf("got notification %q, want %q", got, want)
	}
	if active[1].Kind != toast.KindSuccess {
		t.Errorf("got kind %d, want success", active[1].Kind)
	}
}

func TestUndo(t *testing.T) {
	tv, win := newTestView(t, "Feed the cat")
	rows := tv.sync(win, tv.tasks.Pending())
	rows[0].OnRight()
	if n := len(tv.tasks.Pending()); n != 0 {
		t.Fatalf("got %d pending tasks, want 0", n)
	}

	tv.undoLast(win)
	if n := len(tv.tasks.Pending()); n != 1 {
		t.Fatalf("got %d pending tasks after undo, want 1", n)
	}
	if tv.hasLast {
		t.Error("undo can be repeated")
	}
	// Nothing left to undo.
	tv.undoLast(win)
	if n := len(win.Toasts.Active(tv.now())); n != 2 {
		t.Errorf("got %d notifications, want 2", n)
	}
}

func TestStaleAction(t *testing.T) {
	tv, win := newTestView(t, "Feed the cat")
	rows := tv.sync(win, tv.tasks.Pending())
	right := rows[0].OnRight
	right()
	// A second commit for the same task, e.g. from a row that was swiped again before it went away.
	right()

	active := win.Toasts.Active(tv.now())
	if len(active) != 2 || active[1].Kind != toast.KindError {
		t.Fatalf("got %+v, want a success and an error notification", active)
	}
}

func TestDispose(t *testing.T) {
	tv, win := newTestView(t, "Feed the cat", "Call the plumber")
	tv.sync(win, tv.tasks.Pending())
	tv.Dispose()
	if len(tv.rows) != 0 {
		t.Errorf("got %d rows after Dispose, want 0", len(tv.rows))
	}
}

// swipeQueue delivers its events once, to the first swipe gesture that asks for them.
type swipeQueue struct {
	events []event.Event
}

func (q *swipeQueue) Events(tag event.Tag) []event.Event {
	if _, ok := tag.(*gesture.Swipe); !ok {
		return nil
	}
	evs := q.events
	q.events = nil
	return evs
}

func touch(typ pointer.Kind, x float32) event.Event {
	return pointer.Event{Kind: typ, Source: pointer.Touch, PointerID: 1, Position: f32.Pt(x, 20)}
}

var t0 = time.Unix(1_700_000_000, 0)

// layoutFrames lays out tv once per batch of events, 10ms apart, and then for another second so that scheduled
// actions run.
func layoutFrames(tv *taskView, win *theme.Window, batches ...[]event.Event) {
	ops := new(op.Ops)
	now := t0
	step := func(evs []event.Event) {
		ops.Reset()
		gtx := layout.Context{
			Ops:         ops,
			Now:         now,
			Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
			Queue:       &swipeQueue{events: evs},
			Constraints: layout.Exact(image.Pt(400, 600)),
		}
		tv.Layout(win, gtx)
		now = now.Add(10 * time.Millisecond)
	}
	for _, evs := range batches {
		step(evs)
	}
	for i := 0; i < 100; i++ {
		step(nil)
	}
}

func newLayoutWindow() *theme.Window {
	return &theme.Window{Theme: theme.NewTheme(gofont.Collection()), Toasts: &toast.Store{}}
}

func TestLayoutCommitsSwipe(t *testing.T) {
	tv, _ := newTestView(t, "Feed the cat")
	win := newLayoutWindow()
	var commits int
	tv.OnCommit = func() { commits++ }

	layoutFrames(tv, win,
		[]event.Event{touch(pointer.Press, 10), touch(pointer.Drag, 310)},
		[]event.Event{touch(pointer.Release, 310)},
	)

	if commits != 1 {
		t.Errorf("OnCommit ran %d times, want 1", commits)
	}
	if n := len(tv.tasks.Pending()); n != 0 {
		t.Errorf("got %d pending tasks, want 0", n)
	}
	if len(tv.rows) != 0 {
		t.Errorf("got %d rows, want the finished task's row to be gone", len(tv.rows))
	}
	if !tv.hasLast {
		t.Error("the swiped task can't be undone")
	}
}

func TestLayoutReadOnly(t *testing.T) {
	tv, _ := newTestView(t, "Feed the cat")
	tv.cfg.ReadOnly = true
	win := newLayoutWindow()
	var commits int
	tv.OnCommit = func() { commits++ }
	id := tv.tasks.Pending()[0].ID

	layoutFrames(tv, win,
		[]event.Event{touch(pointer.Press, 10), touch(pointer.Drag, 310)},
		[]event.Event{touch(pointer.Release, 310)},
	)

	row, ok := tv.rows[id]
	if !ok {
		t.Fatal("read-only task has no row")
	}
	if !row.Disabled {
		t.Error("read-only row isn't disabled")
	}
	if row.State() != swipe.StateIdle || row.Dragging() {
		t.Errorf("read-only row is in state %s", row.State())
	}
	gtx := layout.Context{Ops: new(op.Ops), Now: t0.Add(time.Minute), Metric: unit.Metric{PxPerDp: 1, PxPerSp: 1}}
	if off := row.Offset(gtx); off != 0 {
		t.Errorf("read-only row moved to %dpx", off)
	}
	if ind, _ := row.Indicator(swipe.Right); ind {
		t.Error("read-only row shows an indicator")
	}
	if commits != 0 {
		t.Errorf("OnCommit ran %d times, want 0", commits)
	}
	if tk, err := tv.tasks.Get(id); err != nil || tk.Status != task.StatusOpen {
		t.Errorf("got task %+v, %v, want it still open", tk, err)
	}
	if len(win.Toasts.Active(tv.now())) != 0 {
		t.Error("read-only swipe produced a notification")
	}
}
