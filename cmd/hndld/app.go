package main

import (
	"fmt"
	"os"

	"hndld.dev/hndld/config"
	"hndld.dev/hndld/task"
	"hndld.dev/hndld/theme"
	"hndld.dev/hndld/toast"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/x/haptic"
	"go.uber.org/zap"
)

func runApp(cfg config.Config, logger *zap.Logger) error {
	tasks := &task.List{}
	for _, title := range cfg.Tasks {
		if _, err := tasks.Add(title); err != nil {
			logger.Warn("skipping task", zap.String("title", title), zap.Error(err))
		}
	}

	go func() {
		w := app.NewWindow(
			app.Title("hndld"),
			app.Size(unit.Dp(cfg.WindowWidth), unit.Dp(cfg.WindowHeight)),
		)
		err := run(w, cfg, tasks, logger)
		if err != nil {
			logger.Error("window closed", zap.Error(err))
			_ = logger.Sync()
			os.Exit(1)
		}
		_ = logger.Sync()
		os.Exit(0)
	}()
	app.Main()
	return nil
}

func run(w *app.Window, cfg config.Config, tasks *task.List, logger *zap.Logger) error {
	win := &theme.Window{
		Theme:  theme.NewTheme(gofont.Collection()),
		Toasts: &toast.Store{},
	}
	sub := win.Toasts.Subscribe(func(ev toast.Event) {
		if ev.Kind == toast.Added {
			logger.Debug("notification", zap.String("message", ev.Toast.Message), zap.Uint64("id", uint64(ev.Toast.ID)))
		}
	})
	defer sub.Unsubscribe()

	// The buzzer only does something on platforms with a vibration motor. It receives its view once the window
	// has one.
	buzzer := haptic.NewBuzzer(w)
	defer buzzer.Shutdown()
	go func() {
		for err := range buzzer.Errors() {
			logger.Debug("haptic feedback failed", zap.Error(err))
		}
	}()

	tv := newTaskView(cfg, tasks, logger)
	tv.OnCommit = func() { buzzer.Buzz() }
	defer tv.Dispose()

	var ops op.Ops
	for {
		e := w.NextEvent()
		switch ev := e.(type) {
		case system.DestroyEvent:
			if ev.Err != nil {
				return fmt.Errorf("window destroyed: %w", ev.Err)
			}
			return nil
		case app.ViewEvent:
			buzzer.SetView(ev)
		case system.FrameEvent:
			win.Render(&ops, ev, tv.Layout)
			ev.Frame(&ops)
		}
	}
}
