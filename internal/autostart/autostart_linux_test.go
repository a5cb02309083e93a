package autostart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestManager_LinuxDesktopEntry(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	m := New("xtime", "/opt/xtime/xtime", SilentFlag)
	if m.IsEnabled() {
		t.Fatal("expected disabled before Enable")
	}

	if err := m.Apply(true); err != nil {
		t.Fatalf("Apply(true): %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "autostart", "xtime.desktop"))
	if err != nil {
		t.Fatalf("read entry: %v", err)
	}
	if !strings.Contains(string(data), `Exec="/opt/xtime/xtime" --silent`) {
		t.Errorf("unexpected entry:\n%s", data)
	}
	if !m.IsEnabled() {
		t.Error("expected enabled")
	}

	if err := m.Apply(false); err != nil {
		t.Fatalf("Apply(false): %v", err)
	}
	if m.IsEnabled() {
		t.Error("expected disabled")
	}
	if err := m.Disable(); err != nil {
		t.Errorf("disabling twice should be a no-op, got %v", err)
	}
}
