package app

import "xtime/internal/domain"

// ============================================================
// Settings
// ============================================================

// GetSettings returns the saved preferences. Autostart reflects the
// launch entry actually registered with the OS.
func (a *App) GetSettings() (domain.Settings, error) {
	st, err := a.settings.Load()
	if err != nil {
		return st, err
	}
	if a.launcher != nil {
		st.Autostart = a.launcher.IsEnabled()
	}
	return st, nil
}

// UpdateSettings saves st, applies the autostart choice and reschedules
// the daily reminder.
func (a *App) UpdateSettings(st domain.Settings) error {
	if err := a.settings.Save(a.ctx, st); err != nil {
		return err
	}
	if a.launcher != nil {
		if err := a.launcher.Apply(st.Autostart); err != nil {
			a.log.Warn().Err(err).Bool("autostart", st.Autostart).Msg("failed to update autostart")
		}
	}
	return a.reminder.Reschedule(st)
}
