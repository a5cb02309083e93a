package shell_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"xtime/internal/domain"
	"xtime/internal/logging"
	"xtime/internal/shell"
)

// fakeWindow records window operations.
type fakeWindow struct {
	mu      sync.Mutex
	ops     []string
	visible bool
	focused bool
	hideErr error
}

func (w *fakeWindow) Show() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ops = append(w.ops, "show")
	w.visible = true
	return nil
}

func (w *fakeWindow) Hide() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ops = append(w.ops, "hide")
	if w.hideErr != nil {
		return w.hideErr
	}
	w.visible = false
	w.focused = false
	return nil
}

func (w *fakeWindow) Focus() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ops = append(w.ops, "focus")
	w.focused = true
	return nil
}

type exitRecorder struct {
	mu    sync.Mutex
	codes []int
}

func (e *exitRecorder) exit(code int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.codes = append(e.codes, code)
}

func (e *exitRecorder) calls() []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]int(nil), e.codes...)
}

// runEvents posts evs followed by a stop and waits for the loop to finish.
func runEvents(t *testing.T, c *shell.Controller, evs ...shell.Event) {
	t.Helper()
	for _, ev := range evs {
		c.Post(ev)
	}
	c.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := c.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestController_CloseHidesWithoutExit(t *testing.T) {
	w := &fakeWindow{visible: true}
	ex := &exitRecorder{}
	c := shell.NewController(w, shell.Visible, ex.exit, logging.Nop())

	if prevent := c.BeforeClose(context.Background()); !prevent {
		t.Fatal("BeforeClose must prevent the close")
	}
	runEvents(t, c)

	if c.State() != shell.Hidden {
		t.Errorf("expected hidden, got %s", c.State())
	}
	if w.visible {
		t.Error("window should be hidden")
	}
	if len(ex.calls()) != 0 {
		t.Errorf("close request must not exit, got %v", ex.calls())
	}
}

func TestController_HideFailureStillSuppressesClose(t *testing.T) {
	var buf bytes.Buffer
	w := &fakeWindow{visible: true, hideErr: fmt.Errorf("hide: %w", domain.ErrWindowOp)}
	ex := &exitRecorder{}
	c := shell.NewController(w, shell.Visible, ex.exit, logging.New(&buf, false))

	if !c.BeforeClose(context.Background()) {
		t.Fatal("BeforeClose must prevent the close even if hiding fails")
	}
	runEvents(t, c)

	if len(ex.calls()) != 0 {
		t.Errorf("hide failure must not exit, got %v", ex.calls())
	}
	if !strings.Contains(buf.String(), "failed to hide window") {
		t.Errorf("expected hide failure to be logged, got %q", buf.String())
	}
}

func TestController_ShowAfterHide(t *testing.T) {
	tests := []struct {
		name string
		show func(c *shell.Controller)
	}{
		{"menu", func(c *shell.Controller) { c.Post(shell.ShowRequested) }},
		{"icon click", func(c *shell.Controller) { c.Show() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &fakeWindow{visible: true}
			c := shell.NewController(w, shell.Visible, (&exitRecorder{}).exit, logging.Nop())

			c.Close()
			tt.show(c)
			runEvents(t, c)

			if c.State() != shell.Visible {
				t.Errorf("expected visible, got %s", c.State())
			}
			if !w.visible || !w.focused {
				t.Errorf("window should be visible and focused: visible=%v focused=%v", w.visible, w.focused)
			}
			want := []string{"hide", "show", "focus"}
			if strings.Join(w.ops, ",") != strings.Join(want, ",") {
				t.Errorf("ops = %v, want %v", w.ops, want)
			}
		})
	}
}

func TestController_ShowWhenVisibleStaysVisible(t *testing.T) {
	w := &fakeWindow{visible: true}
	c := shell.NewController(w, shell.Visible, (&exitRecorder{}).exit, logging.Nop())

	runEvents(t, c, shell.ShowRequested, shell.ShowRequested)

	if c.State() != shell.Visible {
		t.Errorf("expected visible, got %s", c.State())
	}
}

func TestController_QuitFromAnyState(t *testing.T) {
	for _, initial := range []shell.State{shell.Hidden, shell.Visible} {
		t.Run(initial.String(), func(t *testing.T) {
			w := &fakeWindow{visible: initial == shell.Visible}
			ex := &exitRecorder{}
			c := shell.NewController(w, initial, ex.exit, logging.Nop())

			c.Quit()
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := c.Run(ctx); err != nil {
				t.Fatalf("Run: %v", err)
			}

			got := ex.calls()
			if len(got) != 1 || got[0] != 0 {
				t.Fatalf("expected a single exit(0), got %v", got)
			}
			if !c.Quitting() {
				t.Error("expected Quitting to be true")
			}
			if c.BeforeClose(context.Background()) {
				t.Error("BeforeClose must allow the close once quitting")
			}
		})
	}
}

func TestController_PostAfterStop(t *testing.T) {
	c := shell.NewController(&fakeWindow{}, shell.Hidden, (&exitRecorder{}).exit, logging.Nop())
	runEvents(t, c)

	if c.Post(shell.ShowRequested) {
		t.Error("Post after the loop stopped should report false")
	}
}

func TestController_ContextCancel(t *testing.T) {
	c := shell.NewController(&fakeWindow{}, shell.Hidden, (&exitRecorder{}).exit, logging.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := c.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestController_ConcurrentPosts(t *testing.T) {
	w := &fakeWindow{visible: true}
	c := shell.NewController(w, shell.Visible, (&exitRecorder{}).exit, logging.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				c.Show()
			} else {
				c.Close()
			}
		}(i)
	}
	wg.Wait()
	c.Show()
	c.Stop()

	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.State() != shell.Visible {
		t.Errorf("last event was show, expected visible, got %s", c.State())
	}
}

func TestEvent_String(t *testing.T) {
	tests := map[shell.Event]string{
		shell.ShowRequested:  "show",
		shell.QuitRequested:  "quit",
		shell.CloseRequested: "close",
		shell.Event(99):      "unknown",
	}
	for ev, want := range tests {
		if got := ev.String(); got != want {
			t.Errorf("Event(%d).String() = %q, want %q", int(ev), got, want)
		}
	}
}
