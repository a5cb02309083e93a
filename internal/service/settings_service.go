package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"xtime/internal/domain"
)

// ─────────────────────────────────────────────────────────────
// Settings Service — preferences and window size persistence
// ─────────────────────────────────────────────────────────────
//
// Preferences are key/value rows in the app_settings table. The window
// size is stored the same way and restored when the app starts.

const (
	settingTheme               = "theme"
	settingNotificationEnabled = "notification_enabled"
	settingNotificationTime    = "notification_time"
	settingActiveAccount       = "active_account_id"
	settingAutostart           = "autostart"
	settingWindowWidth         = "window_width"
	settingWindowHeight        = "window_height"

	defaultWindowWidth  = 1280
	defaultWindowHeight = 800
	minWindowWidth      = 800
	minWindowHeight     = 600
)

// EventSettingsChanged is emitted with the new Settings after an update.
const EventSettingsChanged = "settings:changed"

// WindowSize holds the saved window dimensions.
type WindowSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SettingsService reads and writes user preferences.
type SettingsService struct {
	store   domain.SettingsStore
	emitter EventEmitter
}

// NewSettingsService creates a SettingsService. emitter may be nil.
func NewSettingsService(store domain.SettingsStore, emitter EventEmitter) *SettingsService {
	return &SettingsService{store: store, emitter: emitter}
}

// Load returns the saved settings merged over the defaults.
func (s *SettingsService) Load() (domain.Settings, error) {
	st := domain.DefaultSettings()

	if v, ok, err := s.store.Get(settingTheme); err != nil {
		return st, err
	} else if ok && (v == string(domain.ThemeLight) || v == string(domain.ThemeDark)) {
		st.Theme = domain.Theme(v)
	}
	if v, ok, err := s.store.Get(settingNotificationEnabled); err != nil {
		return st, err
	} else if ok {
		st.NotificationEnabled = v == "true"
	}
	if v, ok, err := s.store.Get(settingNotificationTime); err != nil {
		return st, err
	} else if ok {
		if _, _, err := ParseClock(v); err == nil {
			st.NotificationTime = v
		}
	}
	if v, ok, err := s.store.Get(settingActiveAccount); err != nil {
		return st, err
	} else if ok {
		st.ActiveAccountID = v
	}
	if v, ok, err := s.store.Get(settingAutostart); err != nil {
		return st, err
	} else if ok {
		st.Autostart = v == "true"
	}
	return st, nil
}

// Save validates and persists st, then emits EventSettingsChanged.
// ActiveAccountID is ignored; it only changes through SetActiveAccount.
func (s *SettingsService) Save(ctx context.Context, st domain.Settings) error {
	if st.Theme != domain.ThemeLight && st.Theme != domain.ThemeDark {
		return fmt.Errorf("settings: unknown theme %q: %w", st.Theme, domain.ErrInvalidInput)
	}
	if _, _, err := ParseClock(st.NotificationTime); err != nil {
		return err
	}

	kv := [][2]string{
		{settingTheme, string(st.Theme)},
		{settingNotificationEnabled, strconv.FormatBool(st.NotificationEnabled)},
		{settingNotificationTime, st.NotificationTime},
		{settingAutostart, strconv.FormatBool(st.Autostart)},
	}
	for _, p := range kv {
		if err := s.store.Set(p[0], p[1]); err != nil {
			return fmt.Errorf("save setting %s: %w", p[0], err)
		}
	}
	if s.emitter != nil {
		if saved, err := s.Load(); err == nil {
			s.emitter.Emit(ctx, EventSettingsChanged, saved)
		}
	}
	return nil
}

// SetActiveAccount stores the active account id without touching the
// other preferences.
func (s *SettingsService) SetActiveAccount(id string) error {
	return s.store.Set(settingActiveAccount, id)
}

// LoadWindowSize returns the saved window dimensions, or sensible defaults.
func (s *SettingsService) LoadWindowSize() WindowSize {
	w := s.intSetting(settingWindowWidth, defaultWindowWidth)
	h := s.intSetting(settingWindowHeight, defaultWindowHeight)
	if w < minWindowWidth {
		w = defaultWindowWidth
	}
	if h < minWindowHeight {
		h = defaultWindowHeight
	}
	return WindowSize{Width: w, Height: h}
}

// SaveWindowSize persists the current window dimensions.
func (s *SettingsService) SaveWindowSize(width, height int) error {
	if err := s.store.Set(settingWindowWidth, strconv.Itoa(width)); err != nil {
		return err
	}
	return s.store.Set(settingWindowHeight, strconv.Itoa(height))
}

func (s *SettingsService) intSetting(key string, def int) int {
	v, ok, err := s.store.Get(key)
	if err != nil || !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// ParseClock parses a 24h "HH:MM" string.
func ParseClock(v string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", v)
	if err != nil || len(v) != 5 {
		return 0, 0, fmt.Errorf("settings: invalid time %q, want HH:MM: %w", v, domain.ErrInvalidInput)
	}
	return t.Hour(), t.Minute(), nil
}
