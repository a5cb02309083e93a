package secret

// SecretStore maps a (service, user) identity to an opaque secret held by
// the OS credential backend. The OS store enforces uniqueness of the
// identity; implementations add no caching and no retries.
type SecretStore interface {
	// Set stores token under (service, user), overwriting any existing value.
	Set(service, user, token string) error

	// Get returns the secret for (service, user).
	// Returns domain.ErrNotFound if no entry exists.
	Get(service, user string) (string, error)

	// Delete removes the entry for (service, user).
	// Returns domain.ErrNotFound if no entry exists.
	Delete(service, user string) error
}
