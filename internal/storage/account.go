package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"xtime/internal/domain"
)

// AccountStore implements domain.AccountStore using SQLite.
type AccountStore struct {
	db *DB
}

func NewAccountStore(db *DB) *AccountStore {
	return &AccountStore{db: db}
}

func (s *AccountStore) CreateAccount(a *domain.Account) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	_, err := s.db.conn.Exec(
		`INSERT INTO accounts (id, email, domain, created_at) VALUES (?, ?, ?, ?)`,
		a.ID, a.Email, a.Domain, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

func (s *AccountStore) GetAccount(id string) (*domain.Account, error) {
	a := &domain.Account{}
	err := s.db.conn.QueryRow(
		`SELECT id, email, domain, created_at FROM accounts WHERE id = ?`, id,
	).Scan(&a.ID, &a.Email, &a.Domain, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get account %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}

func (s *AccountStore) ListAccounts() ([]domain.Account, error) {
	rows, err := s.db.conn.Query(
		`SELECT id, email, domain, created_at FROM accounts ORDER BY created_at ASC, rowid ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.Email, &a.Domain, &a.CreatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (s *AccountStore) DeleteAccount(id string) error {
	res, err := s.db.conn.Exec(`DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete account %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
