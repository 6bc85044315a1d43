package store

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringSlot persists a credential in the OS keychain.
// Used for long-lived tokens that should not sit in a plain file.
type KeyringSlot struct {
	service string
	key     string
}

// NewKeyringSlot creates a slot in the system keyring under the given service name
func NewKeyringSlot(service, key string) *KeyringSlot {
	return &KeyringSlot{service: service, key: key}
}

// Read returns the stored value or ErrNotFound
func (s *KeyringSlot) Read() (string, error) {
	value, err := keyring.Get(s.service, s.key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read credential from keyring: %w", err)
	}
	return value, nil
}

// Write stores the value
func (s *KeyringSlot) Write(value string) error {
	if err := keyring.Set(s.service, s.key, value); err != nil {
		return fmt.Errorf("failed to store credential in keyring: %w", err)
	}
	return nil
}

// Clear removes the stored value
func (s *KeyringSlot) Clear() error {
	if err := keyring.Delete(s.service, s.key); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil // Already cleared
		}
		return fmt.Errorf("failed to delete credential from keyring: %w", err)
	}
	return nil
}
