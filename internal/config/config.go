// Package config builds the process-wide display configuration.
//
// The configuration is read once at startup and passed by value to the
// reader and the render loop; nothing below the CLI looks at the environment.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/vdc-display/internal/constants"
	apperrors "github.com/julianstephens/vdc-display/internal/errors"
)

// LookupFunc matches os.LookupEnv
type LookupFunc func(key string) (string, bool)

// Config is the immutable display configuration
type Config struct {
	DatabasePath    string
	RefreshInterval time.Duration
	Port            int
}

// Load reads DATABASE_PATH and REFRESH_INTERVAL_MINUTES through lookup and
// combines them with the port chosen on the command line.
func Load(lookup LookupFunc, port int) (Config, error) {
	cfg := Config{
		DatabasePath:    constants.DefaultDatabasePath,
		RefreshInterval: constants.DefaultRefreshIntervalMinutes * time.Minute,
		Port:            port,
	}

	if v, ok := lookup(constants.EnvDatabasePath); ok {
		v = strings.TrimSpace(v)
		if v == "" {
			return Config{}, &apperrors.ConfigError{Key: constants.EnvDatabasePath, Reason: "must not be empty"}
		}
		cfg.DatabasePath = v
	}

	if v, ok := lookup(constants.EnvRefreshInterval); ok {
		minutes, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, &apperrors.ConfigError{Key: constants.EnvRefreshInterval, Value: v, Reason: "must be a whole number of minutes"}
		}
		if minutes <= 0 {
			return Config{}, &apperrors.ConfigError{Key: constants.EnvRefreshInterval, Value: v, Reason: "must be greater than zero"}
		}
		if minutes > constants.MaxRefreshIntervalMinutes {
			return Config{}, &apperrors.ConfigError{Key: constants.EnvRefreshInterval, Value: v,
				Reason: fmt.Sprintf("must be at most %d minutes", constants.MaxRefreshIntervalMinutes)}
		}
		cfg.RefreshInterval = time.Duration(minutes) * time.Minute
	}

	if port < 1 || port > 65535 {
		return Config{}, &apperrors.ConfigError{Key: "--port", Value: strconv.Itoa(port), Reason: "must be between 1 and 65535"}
	}

	return cfg, nil
}

// Addr is the listen address for the web display
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// RefreshMinutes is the refresh interval in whole minutes
func (c Config) RefreshMinutes() int {
	return int(c.RefreshInterval / time.Minute)
}
