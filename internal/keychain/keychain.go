// Package keychain stores string values in the operating system keyring.
package keychain

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// Store is a key/value store namespaced by a keyring service name.
type Store struct {
	service string
}

// New returns a Store for service.
func New(service string) *Store {
	return &Store{service: service}
}

// Service returns the keyring service name.
func (s *Store) Service() string {
	return s.service
}

// Get returns the value for key. A missing entry reports false with no error.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	value, err := keyring.Get(s.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("keyring get %s/%s: %w", s.service, key, err)
	}
	return value, true, nil
}

// Set stores value under key.
func (s *Store) Set(_ context.Context, key, value string) error {
	if err := keyring.Set(s.service, key, value); err != nil {
		return fmt.Errorf("keyring set %s/%s: %w", s.service, key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(_ context.Context, key string) error {
	err := keyring.Delete(s.service, key)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("keyring delete %s/%s: %w", s.service, key, err)
	}
	return nil
}
