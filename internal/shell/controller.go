package shell

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

const eventBuffer = 16

// Controller runs the dispatch loop. Only the loop touches the window;
// everything else posts events.
type Controller struct {
	win  Window
	exit ExitFunc
	log  zerolog.Logger

	events   chan Event
	done     chan struct{}
	doneOnce sync.Once

	state    atomic.Int32
	quitting atomic.Bool
}

// NewController creates a controller for win. initial is the visibility
// assigned by the host at startup.
func NewController(win Window, initial State, exit ExitFunc, log zerolog.Logger) *Controller {
	c := &Controller{
		win:    win,
		exit:   exit,
		log:    log.With().Str("component", "shell").Logger(),
		events: make(chan Event, eventBuffer),
		done:   make(chan struct{}),
	}
	c.state.Store(int32(initial))
	return c
}

// State returns the last visibility published by the loop.
func (c *Controller) State() State {
	return State(c.state.Load())
}

// Quitting reports whether a quit has been dispatched.
func (c *Controller) Quitting() bool {
	return c.quitting.Load()
}

// Post enqueues ev. It returns false if the loop has already stopped.
func (c *Controller) Post(ev Event) bool {
	select {
	case <-c.done:
		c.log.Debug().Stringer("event", ev).Msg("dispatch loop stopped, event dropped")
		return false
	default:
	}
	select {
	case c.events <- ev:
		return true
	case <-c.done:
		return false
	}
}

// Show, Quit and Close are shorthands used as host callbacks.
func (c *Controller) Show()  { c.Post(ShowRequested) }
func (c *Controller) Quit()  { c.Post(QuitRequested) }
func (c *Controller) Close() { c.Post(CloseRequested) }

// Stop makes Run return after the events already queued are handled.
func (c *Controller) Stop() { c.Post(stopRequested) }

// BeforeClose is the host close-request hook. It returns true to prevent
// the window from closing. Once a quit is under way it returns false so
// the host can tear the window down.
func (c *Controller) BeforeClose(_ context.Context) bool {
	if c.quitting.Load() {
		return false
	}
	c.Post(CloseRequested)
	return true
}

// Run dispatches events until a quit or stop is handled or ctx is done.
func (c *Controller) Run(ctx context.Context) error {
	defer c.doneOnce.Do(func() { close(c.done) })

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-c.events:
			if !c.handle(ev) {
				return nil
			}
		}
	}
}

// handle applies ev and reports whether the loop should keep running.
func (c *Controller) handle(ev Event) bool {
	c.log.Debug().Stringer("event", ev).Stringer("state", c.State()).Msg("dispatch")

	switch ev {
	case ShowRequested:
		c.show()
	case CloseRequested:
		c.hide()
	case QuitRequested:
		c.quitting.Store(true)
		c.log.Info().Msg("quit requested")
		c.exit(0)
		return false
	case stopRequested:
		return false
	default:
		c.log.Warn().Int("event", int(ev)).Msg("unknown event")
	}
	return true
}

func (c *Controller) show() {
	if err := c.win.Show(); err != nil {
		c.log.Error().Err(err).Msg("failed to show window")
		return
	}
	c.state.Store(int32(Visible))
	if err := c.win.Focus(); err != nil {
		c.log.Warn().Err(err).Msg("failed to focus window")
	}
}

// hide never lets the close request end the process, even on error.
func (c *Controller) hide() {
	if err := c.win.Hide(); err != nil {
		c.log.Error().Err(err).Msg("failed to hide window")
		return
	}
	c.state.Store(int32(Hidden))
}
