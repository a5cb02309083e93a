package app

import (
	"xtime/internal/domain"
	"xtime/internal/service"
)

// ============================================================
// Jira accounts and worklogs
// ============================================================

func (a *App) ListAccounts() ([]domain.Account, error) {
	accounts, err := a.accounts.List()
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, err
}

// AddAccount stores the API token in the OS keychain and makes the new
// account active.
func (a *App) AddAccount(email, jiraDomain, token string) (*domain.Account, error) {
	return a.accounts.Add(email, jiraDomain, token)
}

func (a *App) DeleteAccount(id string) error {
	return a.accounts.Delete(id)
}

func (a *App) SetActiveAccount(id string) error {
	return a.accounts.SetActive(id)
}

// GetWorklogSummary returns the active account's worklogs for the week or
// month containing today, shifted by offset periods.
func (a *App) GetWorklogSummary(mode string, offset int) (*domain.WorklogSummary, error) {
	vm := service.ViewMode(mode)
	if vm != service.ViewMonthly {
		vm = service.ViewWeekly
	}
	return a.worklogs.Summary(a.ctx, vm, offset)
}

// SaveWorklog logs the timer's elapsed seconds against issueKey.
func (a *App) SaveWorklog(issueKey string, seconds int, comment string) error {
	return a.worklogs.Save(a.ctx, issueKey, seconds, comment)
}
