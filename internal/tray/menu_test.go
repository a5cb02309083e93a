package tray

import "testing"

type recordingHandler struct {
	shows, quits int
}

func (h *recordingHandler) Show() { h.shows++ }
func (h *recordingHandler) Quit() { h.quits++ }

func TestItems_Locales(t *testing.T) {
	tests := []struct {
		locale string
		show   string
		quit   string
	}{
		{"tr", "Göster", "Çıkış"},
		{"en", "Show", "Quit"},
		{"de", "Show", "Quit"},
		{"", "Show", "Quit"},
	}
	for _, tt := range tests {
		items := Items(tt.locale)
		if len(items) != 2 {
			t.Fatalf("locale %q: expected 2 items, got %d", tt.locale, len(items))
		}
		if items[0].ID != ItemShow || items[1].ID != ItemQuit {
			t.Errorf("locale %q: unexpected order %q, %q", tt.locale, items[0].ID, items[1].ID)
		}
		if items[0].Label != tt.show || items[1].Label != tt.quit {
			t.Errorf("locale %q: labels = %q/%q, want %q/%q",
				tt.locale, items[0].Label, items[1].Label, tt.show, tt.quit)
		}
	}
}

func TestSelect_Routes(t *testing.T) {
	h := &recordingHandler{}

	if !Select(h, ItemShow) {
		t.Error("show should be handled")
	}
	if !Select(h, ItemQuit) {
		t.Error("quit should be handled")
	}
	if Select(h, "settings") {
		t.Error("unknown id should be ignored")
	}
	if h.shows != 1 || h.quits != 1 {
		t.Errorf("shows=%d quits=%d, want 1/1", h.shows, h.quits)
	}
}
