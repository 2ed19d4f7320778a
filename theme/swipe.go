package theme

import (
	"context"
	"image"
	"image/color"
	rtrace "runtime/trace"

	hcolor "hndld.dev/hndld/color"
	"hndld.dev/hndld/layout"
	"hndld.dev/hndld/swipe"
	"hndld.dev/hndld/widget"

	"gioui.org/font"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	gwidget "gioui.org/widget"
)

type SwipeRowStyle struct {
	Row *widget.SwipeRow

	RightColor color.NRGBA
	LeftColor  color.NRGBA
	LabelColor color.NRGBA
	Background color.NRGBA
	TextSize   unit.Sp
	// LabelInset is the distance between a label and the edge of the row.
	LabelInset unit.Dp
}

func SwipeRow(th *Theme, row *widget.SwipeRow) SwipeRowStyle {
	return SwipeRowStyle{
		Row:        row,
		RightColor: th.Palette.Swipe.Right,
		LeftColor:  th.Palette.Swipe.Left,
		LabelColor: th.Palette.Swipe.Label,
		Background: th.Palette.Background,
		TextSize:   th.TextSize,
		LabelInset: 16,
	}
}

// Layout lays out w as the content of the row. The action indicators are painted behind the content and become
// visible as the content moves out of the way.
func (s SwipeRowStyle) Layout(win *Window, gtx layout.Context, w Widget) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "theme.SwipeRowStyle.Layout").End()

	m := op.Record(gtx.Ops)
	dims := s.Row.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		// The content needs an opaque background, or the indicators would shine through it.
		return widget.Background{Color: s.Background}.Layout(gtx, Dumb(win, w))
	})
	call := m.Stop()

	defer clip.Rect{Max: dims.Size}.Push(gtx.Ops).Pop()

	right, left := s.Row.Labels()
	width := min(s.Row.IndicatorWidth(gtx), dims.Size.X)
	for _, ind := range [...]struct {
		dir   swipe.Direction
		color color.NRGBA
		label string
		area  image.Rectangle
		align layout.Direction
	}{
		{swipe.Right, s.RightColor, right, image.Rect(0, 0, width, dims.Size.Y), layout.W},
		{swipe.Left, s.LeftColor, left, image.Rect(dims.Size.X-width, 0, dims.Size.X, dims.Size.Y), layout.E},
	} {
		visible, progress := s.Row.Indicator(ind.dir)
		if !visible {
			continue
		}
		// The panel starts out close to the background and saturates as the gesture nears its threshold.
		paint.FillShape(gtx.Ops, hcolor.Mix(s.Background, ind.color, 0.4+0.6*progress), clip.Rect(ind.area).Op())

		f := font.Font{}
		if progress >= 1 {
			// The action will commit if the row is released now.
			f.Weight = font.Bold
		}
		lgtx := gtx
		lgtx.Constraints = layout.Exact(ind.area.Size())
		stack := op.Offset(ind.area.Min).Push(gtx.Ops)
		inset := layout.Inset{Left: s.LabelInset, Right: s.LabelInset}
		ind.align.Layout(lgtx, func(gtx layout.Context) layout.Dimensions {
			return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min = image.Point{}
				mat := widget.ColorTextMaterial(gtx, widget.MulAlpha(s.LabelColor, progress))
				return gwidget.Label{MaxLines: 1}.Layout(gtx, win.Theme.Shaper, f, s.TextSize, ind.label, mat)
			})
		})
		stack.Pop()
	}

	call.Add(gtx.Ops)
	return dims
}
