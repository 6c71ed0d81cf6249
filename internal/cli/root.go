package cli

import (
	"errors"

	"github.com/julianstephens/vdc-display/internal/config"
	"github.com/julianstephens/vdc-display/internal/constants"
	apperrors "github.com/julianstephens/vdc-display/internal/errors"
	"github.com/julianstephens/vdc-display/internal/keyring"
	"github.com/julianstephens/vdc-display/internal/logger"
	"github.com/julianstephens/vdc-display/internal/storage"
	"github.com/julianstephens/vdc-display/internal/storage/postgres"
	"github.com/julianstephens/vdc-display/internal/storage/sqlite"
)

// Context is shared by every command
type Context struct {
	Config config.Config
	Reader storage.Reader
}

func NewContext(cfg config.Config) (*Context, error) {
	reader, err := NewReader(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	return &Context{Config: cfg, Reader: reader}, nil
}

// NewReader picks the backend for a DATABASE_PATH value. A keyring that
// cannot be read yields a reader that always fails, so the display still
// starts on demo data.
func NewReader(path string) (storage.Reader, error) {
	resolved, fromKeyring, err := keyring.ResolveDatabasePath(path)
	if err != nil {
		logger.Warn("Could not read connection string from keyring", "error", err)
		return storage.Unavailable(constants.KeyringDatabasePath, err), nil
	}

	if !postgres.IsConnString(resolved) {
		return sqlite.New(resolved), nil
	}

	if err := postgres.ValidateConnString(resolved); err != nil {
		// the keyring is an acceptable home for a password
		if !(fromKeyring && errors.Is(err, postgres.ErrEmbeddedCredentials)) {
			return nil, &apperrors.ConfigError{Key: constants.EnvDatabasePath, Reason: err.Error()}
		}
	}
	return postgres.New(resolved), nil
}
