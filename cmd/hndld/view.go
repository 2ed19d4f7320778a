package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	rtrace "runtime/trace"
	"time"

	"hndld.dev/hndld/config"
	"hndld.dev/hndld/layout"
	"hndld.dev/hndld/swipe"
	"hndld.dev/hndld/task"
	"hndld.dev/hndld/theme"
	"hndld.dev/hndld/toast"
	"hndld.dev/hndld/widget"

	"gioui.org/font"
	"gioui.org/op"
	gwidget "gioui.org/widget"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// taskView lists the pending tasks. Each task is a swipe row: swiping right marks it done, swiping left marks it as
// waiting.
type taskView struct {
	// OnCommit is called after a swipe action has run.
	OnCommit func()

	cfg    config.Config
	tasks  *task.List
	logger *zap.Logger
	now    func() time.Time

	list layout.List
	rows map[uuid.UUID]*widget.SwipeRow
	undo gwidget.Clickable

	// last is the task most recently changed by a swipe, for undo.
	last    uuid.UUID
	hasLast bool
}

func newTaskView(cfg config.Config, tasks *task.List, logger *zap.Logger) *taskView {
	return &taskView{
		cfg:    cfg,
		tasks:  tasks,
		logger: logger,
		now:    time.Now,
		list:   layout.List{Axis: layout.Vertical},
		rows:   make(map[uuid.UUID]*widget.SwipeRow),
	}
}

// row returns the row for t, allocating it on first use, and configures its actions for t's current status.
func (tv *taskView) row(win *theme.Window, t task.Task) *widget.SwipeRow {
	row, ok := tv.rows[t.ID]
	if !ok {
		row = &widget.SwipeRow{}
		tv.rows[t.ID] = row
	}
	row.Config = tv.cfg.Swipe
	row.AcceptMouse = tv.cfg.AcceptMouse
	row.Disabled = tv.cfg.ReadOnly
	row.RightLabel = tv.cfg.RightLabel
	row.LeftLabel = tv.cfg.LeftLabel

	id := t.ID
	row.OnRight = func() { tv.apply(win, id, tv.tasks.MarkDone, "Done: %s", toast.KindSuccess) }
	if t.Status == task.StatusWaiting {
		// Already waiting, there is nothing to do on the left.
		row.OnLeft = nil
	} else {
		row.OnLeft = func() { tv.apply(win, id, tv.tasks.MarkWaiting, "Waiting: %s", toast.KindInfo) }
	}
	return row
}

func (tv *taskView) apply(win *theme.Window, id uuid.UUID, fn func(uuid.UUID) (task.Task, error), format string, kind toast.Kind) {
	t, err := fn(id)
	if err != nil {
		tv.logger.Warn("couldn't update task", zap.Stringer("id", id), zap.Error(err))
		tv.notify(win, err.Error(), toast.KindError)
		return
	}
	tv.logger.Info("task updated", zap.Stringer("id", t.ID), zap.String("title", t.Title), zap.Stringer("status", t.Status))
	tv.last, tv.hasLast = id, true
	tv.notify(win, fmt.Sprintf(format, t.Title), kind)
}

func (tv *taskView) notify(win *theme.Window, msg string, kind toast.Kind) {
	if win.Toasts == nil {
		return
	}
	win.Toasts.Push(tv.now(), msg, kind, tv.cfg.ToastTTL)
}

// sync allocates rows for pending tasks and disposes of the rows of tasks that are gone.
func (tv *taskView) sync(win *theme.Window, pending []task.Task) []*widget.SwipeRow {
	keep := make(map[uuid.UUID]struct{}, len(pending))
	rows := make([]*widget.SwipeRow, len(pending))
	for i, t := range pending {
		keep[t.ID] = struct{}{}
		rows[i] = tv.row(win, t)
	}
	for id, row := range tv.rows {
		if _, ok := keep[id]; !ok {
			row.Dispose()
			delete(tv.rows, id)
		}
	}
	return rows
}

func (tv *taskView) undoLast(win *theme.Window) {
	if !tv.hasLast {
		return
	}
	tv.hasLast = false
	t, err := tv.tasks.Reopen(tv.last)
	if err != nil {
		tv.logger.Warn("couldn't undo", zap.Stringer("id", tv.last), zap.Error(err))
		tv.notify(win, err.Error(), toast.KindError)
		return
	}
	tv.logger.Info("task reopened", zap.Stringer("id", t.ID), zap.String("title", t.Title))
	tv.notify(win, fmt.Sprintf("Reopened: %s", t.Title), toast.KindInfo)
}

// Dispose tears down all rows. Scheduled actions don't run.
func (tv *taskView) Dispose() {
	for id, row := range tv.rows {
		row.Dispose()
		delete(tv.rows, id)
	}
}

func (tv *taskView) Layout(win *theme.Window, gtx layout.Context) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "main.taskView.Layout").End()

	for tv.undo.Clicked(gtx) {
		tv.undoLast(win)
		op.InvalidateOp{}.Add(gtx.Ops)
	}

	pending := tv.tasks.Pending()
	rows := tv.sync(win, pending)
	// Advance every row, including those scrolled out of view, so that scheduled actions run on time.
	for _, row := range rows {
		if dir := row.Update(gtx); dir != swipe.None {
			if tv.OnCommit != nil {
				tv.OnCommit()
			}
			op.InvalidateOp{}.Add(gtx.Ops)
		}
	}

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(theme.Dumb(win, tv.layoutHeader)),
		layout.Rigid(theme.Dumb(win, theme.Divider)),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			if len(pending) == 0 {
				return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return tv.label(win, gtx, "Nothing left to do.", font.Font{}, win.Theme.Palette.ForegroundDisabled)
				})
			}
			return tv.list.Layout(gtx, len(pending), func(gtx layout.Context, index int) layout.Dimensions {
				return tv.layoutRow(win, gtx, pending[index], rows[index])
			})
		}),
	)
}

func (tv *taskView) layoutHeader(win *theme.Window, gtx layout.Context) layout.Dimensions {
	return layout.UniformInset(win.Theme.WindowPadding).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min.X = 0
				title := fmt.Sprintf("%d open tasks", len(tv.rows))
				return tv.label(win, gtx, title, font.Font{Weight: font.Bold}, win.Theme.Palette.Foreground)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if !tv.hasLast || tv.cfg.ReadOnly {
					// Disable the button by not giving it any events.
					gtx.Queue = nil
				}
				return theme.Button(win.Theme, &tv.undo, "Undo").Layout(win, gtx)
			}),
		)
	})
}

func (tv *taskView) layoutRow(win *theme.Window, gtx layout.Context, t task.Task, row *widget.SwipeRow) layout.Dimensions {
	content := func(win *theme.Window, gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return layout.Inset{Top: 14, Bottom: 14, Left: 16, Right: 16}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					gtx.Constraints.Min.X = 0
					fg := win.Theme.Palette.Foreground
					if tv.cfg.ReadOnly {
						fg = win.Theme.Palette.ForegroundDisabled
					}
					return tv.label(win, gtx, t.Title, font.Font{}, fg)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if t.Status != task.StatusWaiting {
						return layout.Dimensions{}
					}
					return layout.Inset{Left: 8}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						return tv.label(win, gtx, "waiting", font.Font{Style: font.Italic}, win.Theme.Palette.Swipe.Left)
					})
				}),
			)
		})
	}

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return theme.SwipeRow(win.Theme, row).Layout(win, gtx, content)
		}),
		layout.Rigid(theme.Dumb(win, theme.Divider)),
	)
}

func (tv *taskView) label(win *theme.Window, gtx layout.Context, s string, f font.Font, fg color.NRGBA) layout.Dimensions {
	gtx.Constraints.Min = image.Point{}
	return gwidget.Label{MaxLines: 1}.Layout(gtx, win.Theme.Shaper, f, win.Theme.TextSize, s, widget.ColorTextMaterial(gtx, fg))
}
