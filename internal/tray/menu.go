// Package tray shows the status-area icon and its Show/Quit menu.
package tray

// Menu item ids.
const (
	ItemShow = "show"
	ItemQuit = "quit"
)

// MenuItem is a fixed tray menu entry.
type MenuItem struct {
	ID      string
	Label   string
	Tooltip string
}

var labels = map[string]map[string][2]string{
	"tr": {
		ItemShow: {"Göster", "Pencereyi göster"},
		ItemQuit: {"Çıkış", "Uygulamadan çık"},
	},
	"en": {
		ItemShow: {"Show", "Show the main window"},
		ItemQuit: {"Quit", "Quit the application"},
	},
}

// DefaultLocale is used for unknown locales.
const DefaultLocale = "en"

// Items returns the menu entries in display order, labelled for locale.
func Items(locale string) []MenuItem {
	l, ok := labels[locale]
	if !ok {
		l = labels[DefaultLocale]
	}
	items := make([]MenuItem, 0, 2)
	for _, id := range []string{ItemShow, ItemQuit} {
		items = append(items, MenuItem{ID: id, Label: l[id][0], Tooltip: l[id][1]})
	}
	return items
}

// Handler receives the actions triggered from the tray.
type Handler interface {
	Show()
	Quit()
}

// Select routes a menu selection to h. Unknown ids are ignored and
// reported as false.
func Select(h Handler, id string) bool {
	switch id {
	case ItemShow:
		h.Show()
	case ItemQuit:
		h.Quit()
	default:
		return false
	}
	return true
}
