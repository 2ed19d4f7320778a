package theme

import (
	"context"
	"image"
	rtrace "runtime/trace"

	"hndld.dev/hndld/layout"
	"hndld.dev/hndld/toast"

	"gioui.org/io/system"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

type Window struct {
	Theme *Theme
	// Toasts holds the notifications shown at the bottom of the window. It may be nil.
	Toasts *toast.Store
}

type Widget func(win *Window, gtx layout.Context) layout.Dimensions

func Dumb(win *Window, w Widget) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		return w(win, gtx)
	}
}

func (win *Window) Render(ops *op.Ops, ev system.FrameEvent, w func(win *Window, gtx layout.Context) layout.Dimensions) {
	defer rtrace.StartRegion(context.Background(), "theme.Window.Render").End()
	gtx := layout.NewContext(ops, ev)

	paint.Fill(gtx.Ops, win.Theme.Palette.Background)

	stack := clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops)
	w(win, gtx)
	win.layoutToasts(gtx)
	stack.Pop()
}

func (win *Window) layoutToasts(gtx layout.Context) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "theme.Window.layoutToasts").End()

	if win.Toasts == nil {
		return layout.Dimensions{}
	}
	win.Toasts.Expire(gtx.Now)
	if at, ok := win.Toasts.NextExpiry(); ok {
		op.InvalidateOp{At: at}.Add(gtx.Ops)
	}

	active := win.Toasts.Active(gtx.Now)
	if len(active) == 0 {
		return layout.Dimensions{}
	}

	// Stack toasts upwards from the bottom of the window, newest at the bottom.
	ngtx := gtx
	ngtx.Constraints.Min = image.Point{}
	ngtx.Constraints.Max.X = min(gtx.Constraints.Max.X-2*gtx.Dp(16), gtx.Dp(480))
	y := gtx.Constraints.Max.Y - gtx.Dp(24)
	gap := gtx.Dp(8)
	for i := len(active) - 1; i >= 0; i-- {
		t := active[i]
		style := BorderedText(win.Theme, t.Message)
		style.BackgroundColor = win.Theme.Palette.Toast.Background
		style.TextColor = win.Theme.Palette.Toast.Foreground
		style.BorderColor = style.BackgroundColor
		switch t.Kind {
		case toast.KindSuccess:
			style.BorderColor = win.Theme.Palette.Toast.Success
		case toast.KindError:
			style.BorderColor = win.Theme.Palette.Toast.Error
		}

		macro := op.Record(gtx.Ops)
		dims := style.Layout(win, ngtx)
		call := macro.Stop()

		y -= dims.Size.Y
		stack := op.Offset(image.Pt(gtx.Constraints.Max.X/2-dims.Size.X/2, y)).Push(gtx.Ops)
		call.Add(gtx.Ops)
		stack.Pop()
		y -= gap
	}
	return layout.Dimensions{Size: gtx.Constraints.Max}
}
