// Package shell owns the main window: it serialises show, quit and close
// requests coming from the tray, the window manager and the UI onto a
// single dispatch loop.
package shell

// Event is a typed request for the dispatch loop.
type Event int

const (
	// ShowRequested shows and focuses the main window.
	ShowRequested Event = iota + 1
	// QuitRequested terminates the process with exit code 0.
	QuitRequested
	// CloseRequested hides the main window; the process keeps running.
	CloseRequested

	stopRequested
)

func (e Event) String() string {
	switch e {
	case ShowRequested:
		return "show"
	case QuitRequested:
		return "quit"
	case CloseRequested:
		return "close"
	case stopRequested:
		return "stop"
	}
	return "unknown"
}

// State is the observable visibility of the main window.
type State int32

const (
	Hidden State = iota
	Visible
)

func (s State) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// Window is the handle to the host window. Errors should wrap
// domain.ErrWindowOp.
type Window interface {
	Show() error
	Hide() error
	Focus() error
}

// ExitFunc ends the process with the given exit code.
type ExitFunc func(code int)
