package domain

import "time"

// Account is a Jira Cloud account. The API token is never part of this
// struct; it lives in the OS credential store under (TokenService, ID).
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Domain    string    `json:"domain"` // https://example.atlassian.net, no trailing slash
	CreatedAt time.Time `json:"createdAt"`
}

// TokenService is the credential store service name for Jira API tokens.
const TokenService = "xtime-jira"

type AccountStore interface {
	CreateAccount(a *Account) error
	GetAccount(id string) (*Account, error)
	ListAccounts() ([]Account, error)
	DeleteAccount(id string) error
}
