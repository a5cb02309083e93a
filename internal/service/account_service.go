package service

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"xtime/internal/domain"
	"xtime/internal/secret"
)

// ─────────────────────────────────────────────────────────────
// Account Service — Jira accounts and their API tokens
// ─────────────────────────────────────────────────────────────
//
// Account metadata lives in SQLite; the API token lives in the OS
// credential store under (domain.TokenService, account ID), so accounts
// sharing an email on different Jira sites keep separate tokens.

// AccountService manages Jira accounts.
type AccountService struct {
	accounts domain.AccountStore
	secrets  secret.SecretStore
	settings *SettingsService
}

// NewAccountService creates an AccountService.
func NewAccountService(accounts domain.AccountStore, secrets secret.SecretStore, settings *SettingsService) *AccountService {
	return &AccountService{accounts: accounts, secrets: secrets, settings: settings}
}

// List returns all accounts, oldest first.
func (s *AccountService) List() ([]domain.Account, error) {
	return s.accounts.ListAccounts()
}

// Add records the account, stores token in the credential store and makes
// it the active one.
func (s *AccountService) Add(email, jiraDomain, token string) (*domain.Account, error) {
	email = strings.TrimSpace(email)
	jiraDomain = strings.TrimRight(strings.TrimSpace(jiraDomain), "/")
	if email == "" || token == "" {
		return nil, fmt.Errorf("add account: email and token are required: %w", domain.ErrInvalidInput)
	}
	if u, err := url.Parse(jiraDomain); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("add account: invalid domain %q: %w", jiraDomain, domain.ErrInvalidInput)
	}

	a := &domain.Account{
		ID:        uuid.New().String(),
		Email:     email,
		Domain:    jiraDomain,
		CreatedAt: time.Now(),
	}
	// A duplicate (email, domain) fails here, before any secret is written.
	if err := s.accounts.CreateAccount(a); err != nil {
		return nil, err
	}
	if err := s.secrets.Set(domain.TokenService, a.ID, token); err != nil {
		if derr := s.accounts.DeleteAccount(a.ID); derr != nil {
			return nil, fmt.Errorf("add account: %w (rollback: %v)", err, derr)
		}
		return nil, fmt.Errorf("add account: %w", err)
	}
	if err := s.settings.SetActiveAccount(a.ID); err != nil {
		return nil, fmt.Errorf("add account: set active: %w", err)
	}
	return a, nil
}

// Delete removes the account and its token. A token that is already gone
// is not an error. If the account was active, the first remaining account
// becomes active.
func (s *AccountService) Delete(id string) error {
	a, err := s.accounts.GetAccount(id)
	if err != nil {
		return err
	}
	if err := s.secrets.Delete(domain.TokenService, a.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete account: %w", err)
	}
	if err := s.accounts.DeleteAccount(id); err != nil {
		return err
	}

	st, err := s.settings.Load()
	if err != nil {
		return err
	}
	if st.ActiveAccountID != id {
		return nil
	}
	next := ""
	if rest, err := s.accounts.ListAccounts(); err == nil && len(rest) > 0 {
		next = rest[0].ID
	}
	return s.settings.SetActiveAccount(next)
}

// SetActive marks id as the active account.
func (s *AccountService) SetActive(id string) error {
	if _, err := s.accounts.GetAccount(id); err != nil {
		return err
	}
	return s.settings.SetActiveAccount(id)
}

// Active returns the active account and its token.
func (s *AccountService) Active() (*domain.Account, string, error) {
	st, err := s.settings.Load()
	if err != nil {
		return nil, "", err
	}
	if st.ActiveAccountID == "" {
		return nil, "", fmt.Errorf("no active account: %w", domain.ErrNotFound)
	}
	a, err := s.accounts.GetAccount(st.ActiveAccountID)
	if err != nil {
		return nil, "", err
	}
	token, err := s.secrets.Get(domain.TokenService, a.ID)
	if err != nil {
		return nil, "", fmt.Errorf("token for %s: %w", a.Email, err)
	}
	return a, token, nil
}
