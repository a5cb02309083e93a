//go:build !linux && !darwin && !windows

package autostart

func (m *Manager) enable() error { return ErrUnsupported }
func (m *Manager) disable() error { return ErrUnsupported }
func (m *Manager) isEnabled() bool { return false }
