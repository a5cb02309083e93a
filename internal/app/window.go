package app

import (
	"context"
	"fmt"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"xtime/internal/domain"
)

// wailsWindow drives the main window through the Wails runtime.
type wailsWindow struct {
	ctx        context.Context
	show       func(context.Context)
	hide       func(context.Context)
	unminimise func(context.Context)
}

func newWailsWindow(ctx context.Context) *wailsWindow {
	return &wailsWindow{
		ctx:        ctx,
		show:       wailsRuntime.WindowShow,
		hide:       wailsRuntime.WindowHide,
		unminimise: wailsRuntime.WindowUnminimise,
	}
}

func (w *wailsWindow) check(op string) error {
	if w.ctx == nil {
		return fmt.Errorf("%s: runtime not started: %w", op, domain.ErrWindowOp)
	}
	return nil
}

func (w *wailsWindow) Show() error {
	if err := w.check("show"); err != nil {
		return err
	}
	w.show(w.ctx)
	return nil
}

func (w *wailsWindow) Hide() error {
	if err := w.check("hide"); err != nil {
		return err
	}
	w.hide(w.ctx)
	return nil
}

// Focus restores a minimised window. Wails v2 has no focus call; the
// preceding Show raises the restored window.
func (w *wailsWindow) Focus() error {
	if err := w.check("focus"); err != nil {
		return err
	}
	w.unminimise(w.ctx)
	return nil
}

// wailsEmitter forwards service events to the frontend event bus.
type wailsEmitter struct{}

func (wailsEmitter) Emit(ctx context.Context, event string, data any) {
	wailsRuntime.EventsEmit(ctx, event, data)
}
