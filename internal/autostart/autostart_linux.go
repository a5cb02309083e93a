package autostart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// XDG autostart entry in $XDG_CONFIG_HOME/autostart.
func (m *Manager) path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "autostart", m.name+".desktop"), nil
}

func (m *Manager) enable() error {
	p, err := m.path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return fmt.Errorf("autostart: %w", err)
	}
	entry := fmt.Sprintf("[Desktop Entry]\nType=Application\nName=%s\nExec=%s\nX-GNOME-Autostart-enabled=true\n", m.name, m.command())
	return os.WriteFile(p, []byte(entry), 0644)
}

func (m *Manager) disable() error {
	p, err := m.path()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("autostart: %w", err)
	}
	return nil
}

func (m *Manager) isEnabled() bool {
	p, err := m.path()
	if err != nil {
		return false
	}
	_, err = os.Stat(p)
	return err == nil
}
