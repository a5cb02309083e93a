package autostart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LaunchAgent plist in ~/Library/LaunchAgents.
func (m *Manager) path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Library", "LaunchAgents", m.name+".plist"), nil
}

func (m *Manager) enable() error {
	p, err := m.path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return fmt.Errorf("autostart: %w", err)
	}
	var args strings.Builder
	for _, a := range append([]string{m.exec}, m.args...) {
		fmt.Fprintf(&args, "\t\t<string>%s</string>\n", a)
	}
	plist := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>` + m.name + `</string>
	<key>ProgramArguments</key>
	<array>
` + args.String() + `	</array>
	<key>RunAtLoad</key>
	<true/>
</dict>
</plist>
`
	return os.WriteFile(p, []byte(plist), 0644)
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
