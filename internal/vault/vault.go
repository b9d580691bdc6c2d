// Package vault is the only place secret material touches disk.
// Values are sealed with AES-256-GCM under a key derived from the user's
// password with scrypt; every record is bound to its key name.
package vault

import (
	"errors"
	"fmt"
)

// Vault is an encrypted string key-value store. Operations are atomic per key:
// once Put returns nil the value survives a restart.
type Vault interface {
	Put(key, value string) error
	Get(key string) (value string, ok bool, err error)
	Delete(key string) error
	DeleteMany(keys []string) error
}

var (
	// ErrInvalidPassword is returned when the vault key cannot open the vault
	ErrInvalidPassword = errors.New("invalid password")
	// ErrClosed is returned for operations on a closed vault
	ErrClosed = errors.New("vault is closed")
)

// StorageError wraps any I/O or encryption failure
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("vault %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("vault %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError checks if error is StorageError
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
