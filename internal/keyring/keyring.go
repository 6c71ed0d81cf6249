// Package keyring holds the logistics database connection string for wall
// displays that set DATABASE_PATH=keyring, so the display account's
// environment and unit files never contain a database password.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/vdc-display/internal/constants"
)

// statusEntry is looked up by IsAvailable and is never written.
const statusEntry = "display-status"

var (
	// ErrNotFound means `keyring set` has not been run for this display account
	ErrNotFound = errors.New("no logistics connection string stored for this display")
	// ErrKeyringUnavailable means the session has no usable secret service,
	// which is common on kiosk logins without a desktop session
	ErrKeyringUnavailable = errors.New("OS keyring is not available to the display")
)

// GetConnectionString reads the logistics connection string saved by `keyring set`.
func GetConnectionString() (string, error) {
	connStr, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	switch {
	case err == nil:
		return connStr, nil
	case errors.Is(err, keyring.ErrNotFound):
		return "", ErrNotFound
	default:
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
}

// SetConnectionString saves the connection string the display reads at startup.
// It replaces any earlier entry.
func SetConnectionString(connStr string) error {
	if connStr == "" {
		return errors.New("logistics connection string is empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, connStr); err != nil {
		return fmt.Errorf("save logistics connection string: %w", err)
	}
	return nil
}

// DeleteConnectionString forgets the saved connection string. Displays started
// with DATABASE_PATH=keyring afterwards show demo figures until it is set again.
func DeleteConnectionString() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, keyring.ErrNotFound):
		return ErrNotFound
	default:
		return fmt.Errorf("remove logistics connection string: %w", err)
	}
}

// IsAvailable reports whether the display account can reach a secret service.
// A missing entry still counts as available.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, statusEntry)
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}

// ResolveDatabasePath maps DATABASE_PATH to what the readers open. The literal
// "keyring" is swapped for the saved connection string and fromKeyring is set,
// which lets a stored string carry a password that the environment may not.
func ResolveDatabasePath(path string) (resolved string, fromKeyring bool, err error) {
	if path != constants.KeyringDatabasePath {
		return path, false, nil
	}
	connStr, err := GetConnectionString()
	if err != nil {
		return "", true, err
	}
	return connStr, true, nil
}
