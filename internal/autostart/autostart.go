// Package autostart registers the application to start at login with
// the --silent flag, so it comes up in the tray without a window.
package autostart

import (
	"errors"
	"strings"
)

// SilentFlag is appended to the launch command.
const SilentFlag = "--silent"

var ErrUnsupported = errors.New("autostart: unsupported platform")

// Manager enables or disables launch at login for one executable.
type Manager struct {
	name string
	exec string
	args []string
}

// New creates a Manager for the executable at execPath, launched with args.
func New(name, execPath string, args ...string) *Manager {
	return &Manager{name: name, exec: execPath, args: args}
}

// command renders the launch command line, quoting the executable.
func (m *Manager) command() string {
	parts := []string{`"` + m.exec + `"`}
	parts = append(parts, m.args...)
	return strings.Join(parts, " ")
}

// Enable registers the launch entry, replacing an existing one.
func (m *Manager) Enable() error { return m.enable() }

// Disable removes the launch entry. Removing a missing entry is not an error.
func (m *Manager) Disable() error { return m.disable() }

// IsEnabled reports whether the launch entry exists.
func (m *Manager) IsEnabled() bool { return m.isEnabled() }

// Apply enables or disables to match want.
func (m *Manager) Apply(want bool) error {
	if want == m.IsEnabled() {
		return nil
	}
	if want {
		return m.Enable()
	}
	return m.Disable()
}
