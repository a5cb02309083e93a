package tray

import (
	"sync"

	"github.com/energye/systray"
	"github.com/rs/zerolog"
)

// Tray owns the status-area icon. It runs on an external loop so the
// Wails main loop keeps the main thread.
type Tray struct {
	icon    []byte
	tooltip string
	items   []MenuItem
	handler Handler
	log     zerolog.Logger

	once sync.Once
	end  func()
}

// New creates a tray; nothing is shown until Start.
func New(icon []byte, tooltip, locale string, h Handler, log zerolog.Logger) *Tray {
	return &Tray{
		icon:    icon,
		tooltip: tooltip,
		items:   Items(locale),
		handler: h,
		log:     log.With().Str("component", "tray").Logger(),
	}
}

// Start shows the icon.
func (t *Tray) Start() {
	start, end := systray.RunWithExternalLoop(t.onReady, t.onExit)
	t.end = end
	start()
}

// Stop removes the icon. Safe to call more than once.
func (t *Tray) Stop() {
	t.once.Do(func() {
		if t.end != nil {
			t.end()
		}
	})
}

func (t *Tray) onReady() {
	systray.SetIcon(t.icon)
	systray.SetTooltip(t.tooltip)

	// Left click brings the window back; the menu only opens on right click.
	systray.SetOnClick(func(menu systray.IMenu) {
		t.log.Debug().Msg("icon clicked")
		t.handler.Show()
	})
	systray.SetOnRClick(func(menu systray.IMenu) {
		if err := menu.ShowMenu(); err != nil {
			t.log.Warn().Err(err).Msg("show tray menu")
		}
	})

	for _, it := range t.items {
		id := it.ID
		mi := systray.AddMenuItem(it.Label, it.Tooltip)
		mi.Click(func() {
			t.log.Debug().Str("item", id).Msg("menu selected")
			Select(t.handler, id)
		})
	}
	t.log.Info().Msg("tray ready")
}

func (t *Tray) onExit() {
	t.log.Debug().Msg("tray stopped")
}
