package widget

import (
	"context"
	"image"
	"image/color"
	rtrace "runtime/trace"

	"hndld.dev/hndld/layout"

	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

// Border draws a border around a widget, insetting the widget by the border's width.
type Border struct {
	Color color.NRGBA
	Width unit.Dp
}

func (b Border) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "widget.Border.Layout").End()

	dims := layout.UniformInset(b.Width).Layout(gtx, w)
	sz := dims.Size
	bwidth := gtx.Dp(b.Width)

	top := clip.Rect{Max: image.Pt(sz.X, bwidth)}.Op()
	right := clip.Rect{Min: image.Pt(sz.X-bwidth, bwidth), Max: image.Pt(sz.X, sz.Y-bwidth)}.Op()
	left := clip.Rect{Min: image.Pt(0, bwidth), Max: image.Pt(bwidth, sz.Y-bwidth)}.Op()
	bottom := clip.Rect{Min: image.Pt(0, sz.Y-bwidth), Max: sz}.Op()

	paint.FillShape(gtx.Ops, b.Color, top)
	paint.FillShape(gtx.Ops, b.Color, right)
	paint.FillShape(gtx.Ops, b.Color, left)
	paint.FillShape(gtx.Ops, b.Color, bottom)

	return dims
}

func ColorTextMaterial(gtx layout.Context, c color.NRGBA) op.CallOp {
	m := op.Record(gtx.Ops)
	paint.ColorOp{Color: c}.Add(gtx.Ops)
	return m.Stop()
}

// Background fills the area of a widget with a color.
type Background struct {
	Color color.NRGBA
}

func (b Background) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "widget.Background.Layout").End()

	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()

	paint.FillShape(gtx.Ops, b.Color, clip.Rect{Max: dims.Size}.Op())
	call.Add(gtx.Ops)
	return dims
}

// MulAlpha scales the alpha channel of c by alpha, which must be in [0, 1].
func MulAlpha(c color.NRGBA, alpha float32) color.NRGBA {
	c.A = uint8(float32(c.A)*alpha + 0.5)
	return c
}
