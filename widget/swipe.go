package widget

import (
	"context"
	"image"
	"math"
	rtrace "runtime/trace"

	"hndld.dev/hndld/gesture"
	"hndld.dev/hndld/layout"
	"hndld.dev/hndld/swipe"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
)

const (
	DefaultRightLabel = "Done"
	DefaultLeftLabel  = "Waiting"
)

// SwipeRow holds the persistent state of a list row that can be swiped to the right or to the left to trigger an
// action. Distances in Config are in Dp.
type SwipeRow struct {
	// OnRight and OnLeft are the row's actions. A nil action disarms its direction.
	OnRight func()
	OnLeft  func()
	// RightLabel and LeftLabel describe the actions. Empty labels use DefaultRightLabel and DefaultLeftLabel.
	RightLabel string
	LeftLabel  string
	Disabled   bool
	// Config tunes the gesture. The zero value uses swipe.DefaultConfig.
	Config swipe.Config
	// AcceptMouse lets the row be swiped with the mouse.
	AcceptMouse bool

	gesture gesture.Swipe
	rec     swipe.Recognizer
	// shown animates the rendered offset, in Dp, towards the recognizer's offset.
	shown  Animation[float32]
	target float32
}

func (row *SwipeRow) Labels() (right, left string) {
	right, left = row.RightLabel, row.LeftLabel
	if right == "" {
		right = DefaultRightLabel
	}
	if left == "" {
		left = DefaultLeftLabel
	}
	return right, left
}

// Update processes pointer input and advances the row's gesture. It returns the direction of the action that ran
// during this call, if any.
func (row *SwipeRow) Update(gtx layout.Context) swipe.Direction {
	row.rec.OnRight = row.OnRight
	row.rec.OnLeft = row.OnLeft
	row.rec.Disabled = row.Disabled
	row.rec.Config = row.Config
	row.gesture.AcceptMouse = row.AcceptMouse

	for _, ev := range row.gesture.Update(gtx.Queue) {
		pos := toDp(gtx, ev.Position)
		switch ev.Kind {
		case gesture.KindPress:
			row.rec.Press(pos)
		case gesture.KindMove:
			row.rec.Move(pos)
			if row.rec.Dragging() {
				// Keep the enclosing list from scrolling while the row follows the finger.
				row.gesture.Grab()
			}
		case gesture.KindRelease:
			row.rec.Release(gtx.Now)
		case gesture.KindCancel:
			row.rec.Cancel(gtx.Now)
		}
	}

	fired := row.rec.Frame(gtx.Now)
	if at, ok := row.rec.Deadline(); ok {
		op.InvalidateOp{At: at}.Add(gtx.Ops)
	}

	if off := row.rec.Offset(); off != row.target {
		row.target = off
		if d := row.rec.Transition(); d > 0 {
			StartSimpleAnimation(gtx, &row.shown, row.shown.Value(gtx), off, d, EaseOut(2))
		} else {
			row.shown.Jump(off)
		}
	}
	return fired
}

// Offset returns the horizontal offset of the row's content, in pixels.
func (row *SwipeRow) Offset(gtx layout.Context) int {
	return int(math.Round(float64(row.shown.Value(gtx) * gtx.Metric.PxPerDp)))
}

// Indicator reports whether the indicator for dir is visible and how far the gesture has progressed towards
// committing dir.
func (row *SwipeRow) Indicator(dir swipe.Direction) (visible bool, progress float32) {
	return row.rec.Indicator(dir)
}

// IndicatorWidth returns the width of the visible indicator panel, in pixels.
func (row *SwipeRow) IndicatorWidth(gtx layout.Context) int {
	return int(row.rec.IndicatorWidth() * gtx.Metric.PxPerDp)
}

// Dragging reports whether the row is following the pointer.
func (row *SwipeRow) Dragging() bool {
	return row.rec.Dragging()
}

func (row *SwipeRow) State() swipe.State {
	return row.rec.State()
}

// Dispose tears down the row's gesture. A scheduled action that hasn't run yet will not run.
func (row *SwipeRow) Dispose() {
	row.rec.Teardown()
	row.shown.Jump(0)
	row.target = 0
}

// Layout updates the row and lays out w, translated by the row's offset.
func (row *SwipeRow) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "widget.SwipeRow.Layout").End()

	row.Update(gtx)
	m := op.Record(gtx.Ops)
	stack := op.Offset(image.Pt(row.Offset(gtx), 0)).Push(gtx.Ops)
	dims := w(gtx)
	stack.Pop()
	c := m.Stop()

	defer clip.Rect(image.Rectangle{Max: dims.Size}).Push(gtx.Ops).Pop()
	row.gesture.Add(gtx.Ops)
	c.Add(gtx.Ops)
	return dims
}

func toDp(gtx layout.Context, pt f32.Point) f32.Point {
	return pt.Div(gtx.Metric.PxPerDp)
}
