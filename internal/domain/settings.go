package domain

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Settings holds the user preferences shown on the settings page.
type Settings struct {
	Theme               Theme  `json:"theme"`
	NotificationEnabled bool   `json:"notificationEnabled"`
	NotificationTime    string `json:"notificationTime"` // HH:MM, 24h
	ActiveAccountID     string `json:"activeAccountId"`
	Autostart           bool   `json:"autostart"`
}

// DefaultSettings returns the settings used before anything is saved.
func DefaultSettings() Settings {
	return Settings{
		Theme:            ThemeDark,
		NotificationTime: "17:00",
	}
}

type SettingsStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}
