package theme

import (
	"context"
	"image"
	"image/color"
	rtrace "runtime/trace"

	"hndld.dev/hndld/layout"
	"hndld.dev/hndld/widget"

	"gioui.org/font"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	gwidget "gioui.org/widget"
)

type Theme struct {
	Shaper        *text.Shaper
	Palette       Palette
	TextSize      unit.Sp
	TextSizeLarge unit.Sp

	WindowPadding unit.Dp
	WindowBorder  unit.Dp
}

type Palette struct {
	Background         color.NRGBA
	Foreground         color.NRGBA
	ForegroundDisabled color.NRGBA
	Border             color.NRGBA
	Divider            color.NRGBA

	Swipe struct {
		// Right is the color of the panel revealed by swiping right, Left that of swiping left.
		Right color.NRGBA
		Left  color.NRGBA
		Label color.NRGBA
	}

	Toast struct {
		Background color.NRGBA
		Foreground color.NRGBA
		Success    color.NRGBA
		Error      color.NRGBA
	}
}

var DefaultPalette = Palette{
	Background:         rgba(0xFAF8F5FF),
	Foreground:         rgba(0x1F1D1AFF),
	ForegroundDisabled: rgba(0x8A857DFF),
	Border:             rgba(0x1F1D1AFF),
	Divider:            rgba(0xE4E0D9FF),

	Swipe: struct {
		Right color.NRGBA
		Left  color.NRGBA
		Label color.NRGBA
	}{
		Right: rgba(0x2E8B57FF),
		Left:  rgba(0xD98E04FF),
		Label: rgba(0xFFFFFFFF),
	},

	Toast: struct {
		Background color.NRGBA
		Foreground color.NRGBA
		Success    color.NRGBA
		Error      color.NRGBA
	}{
		Background: rgba(0x2B2926F0),
		Foreground: rgba(0xFFFFFFFF),
		Success:    rgba(0x7FD1A0FF),
		Error:      rgba(0xF28B82FF),
	},
}

func NewTheme(fontCollection []font.FontFace) *Theme {
	return &Theme{
		Palette:       DefaultPalette,
		Shaper:        text.NewShaper(text.WithCollection(fontCollection)),
		TextSize:      14,
		TextSizeLarge: 18,

		WindowPadding: 8,
		WindowBorder:  1,
	}
}

func rgba(c uint32) color.NRGBA {
	return color.NRGBA{
		A: uint8(c & 0xFF),
		B: uint8(c >> 8 & 0xFF),
		G: uint8(c >> 16 & 0xFF),
		R: uint8(c >> 24 & 0xFF),
	}
}

type BorderedTextStyle struct {
	Text string

	Padding         unit.Dp
	BorderSize      unit.Dp
	BorderColor     color.NRGBA
	TextSize        unit.Sp
	TextColor       color.NRGBA
	BackgroundColor color.NRGBA
}

func BorderedText(th *Theme, s string) BorderedTextStyle {
	return BorderedTextStyle{
		Text:            s,
		BorderSize:      th.WindowBorder,
		BorderColor:     th.Palette.Border,
		Padding:         th.WindowPadding,
		TextSize:        th.TextSize,
		TextColor:       th.Palette.Foreground,
		BackgroundColor: th.Palette.Background,
	}
}

func (bt BorderedTextStyle) Layout(win *Window, gtx layout.Context) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "theme.BorderedTextStyle.Layout").End()

	return widget.Border{Color: bt.BorderColor, Width: bt.BorderSize}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		// Don't inherit the minimum constraint from the parent widget.
		gtx.Constraints.Min = image.Point{}
		padding := gtx.Dp(bt.Padding)

		macro := op.Record(gtx.Ops)
		lgtx := gtx
		lgtx.Constraints.Max.X -= 2 * padding
		dims := gwidget.Label{}.Layout(lgtx, win.Theme.Shaper, font.Font{}, bt.TextSize, bt.Text, widget.ColorTextMaterial(gtx, bt.TextColor))
		call := macro.Stop()

		total := clip.Rect{Max: image.Pt(dims.Size.X+2*padding, dims.Size.Y+2*padding)}
		paint.FillShape(gtx.Ops, bt.BackgroundColor, total.Op())

		stack := op.Offset(image.Pt(padding, padding)).Push(gtx.Ops)
		call.Add(gtx.Ops)
		stack.Pop()

		return layout.Dimensions{
			Baseline: dims.Baseline,
			Size:     total.Max,
		}
	})
}

type ButtonStyle struct {
	Text   string
	Button *gwidget.Clickable

	ActiveBackgroundColor color.NRGBA
	BackgroundColor       color.NRGBA
	BorderColor           color.NRGBA
	TextColor             color.NRGBA
	TextColorDisabled     color.NRGBA
}

func Button(th *Theme, button *gwidget.Clickable, txt string) ButtonStyle {
	return ButtonStyle{
		Text:                  txt,
		Button:                button,
		ActiveBackgroundColor: rgba(0xE4E0D9FF),
		BackgroundColor:       rgba(0xFFFFFFFF),
		BorderColor:           th.Palette.Border,
		TextColor:             th.Palette.Foreground,
		TextColorDisabled:     th.Palette.ForegroundDisabled,
	}
}

func (b ButtonStyle) Layout(win *Window, gtx layout.Context) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "theme.ButtonStyle.Layout").End()

	bg := b.BackgroundColor
	if b.Button.Pressed() {
		bg = b.ActiveBackgroundColor
	}
	fg := b.TextColor
	if gtx.Queue == nil {
		fg = b.TextColorDisabled
	}

	return b.Button.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return widget.Background{Color: bg}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return widget.Border{Color: b.BorderColor, Width: 1}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.UniformInset(6).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return gwidget.Label{Alignment: text.Middle}.Layout(gtx, win.Theme.Shaper, font.Font{}, win.Theme.TextSize, b.Text, widget.ColorTextMaterial(gtx, fg))
				})
			})
		})
	})
}

// Divider draws a horizontal line across the available width.
func Divider(win *Window, gtx layout.Context) layout.Dimensions {
	sz := image.Pt(gtx.Constraints.Max.X, gtx.Dp(1))
	paint.FillShape(gtx.Ops, win.Theme.Palette.Divider, clip.Rect{Max: sz}.Op())
	return layout.Dimensions{Size: sz}
}
