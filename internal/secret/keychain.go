package secret

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"xtime/internal/domain"
)

// KeychainStore implements SecretStore on top of the platform keychain:
// macOS Keychain, Windows Credential Manager or the Secret Service on Linux.
type KeychainStore struct{}

// NewKeychainStore creates a new KeychainStore.
func NewKeychainStore() *KeychainStore {
	return &KeychainStore{}
}

// Set stores a secret in the keychain. An existing entry is overwritten.
func (k *KeychainStore) Set(service, user, token string) error {
	if err := checkIdentity(service, user); err != nil {
		return err
	}
	if err := keyring.Set(service, user, token); err != nil {
		return fmt.Errorf("keychain set %s/%s: %w", service, user, backendErr(err))
	}
	return nil
}

// Get retrieves a secret from the keychain.
func (k *KeychainStore) Get(service, user string) (string, error) {
	if err := checkIdentity(service, user); err != nil {
		return "", err
	}
	token, err := keyring.Get(service, user)
	if err != nil {
		return "", fmt.Errorf("keychain get %s/%s: %w", service, user, backendErr(err))
	}
	return token, nil
}

// Delete removes a secret from the keychain.
func (k *KeychainStore) Delete(service, user string) error {
	if err := checkIdentity(service, user); err != nil {
		return err
	}
	if err := keyring.Delete(service, user); err != nil {
		return fmt.Errorf("keychain delete %s/%s: %w", service, user, backendErr(err))
	}
	return nil
}

func checkIdentity(service, user string) error {
	if service == "" || user == "" {
		return fmt.Errorf("keychain: service and user are required: %w", domain.ErrInvalidInput)
	}
	return nil
}

// backendErr maps keyring errors onto the domain taxonomy.
func backendErr(err error) error {
	if errors.Is(err, keyring.ErrNotFound) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%w: %v", domain.ErrBackend, err)
}
