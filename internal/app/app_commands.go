package app

// ============================================================
// Shell commands (notification + credential store)
// ============================================================

// SendJiraNotification shows a desktop notification. The notification
// service error, if any, is returned to the UI.
func (a *App) SendJiraNotification(title, body string) error {
	return a.notifier.Notify(title, body)
}

// SaveToken stores token under (service, user), overwriting any old value.
func (a *App) SaveToken(service, user, token string) error {
	return a.secrets.Set(service, user, token)
}

// GetToken returns the secret stored under (service, user).
func (a *App) GetToken(service, user string) (string, error) {
	return a.secrets.Get(service, user)
}

// DeleteToken removes the secret stored under (service, user).
func (a *App) DeleteToken(service, user string) error {
	return a.secrets.Delete(service, user)
}
