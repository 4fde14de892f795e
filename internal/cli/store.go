package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/liftshift/internal/constants"
	"github.com/julianstephens/liftshift/internal/keyring"
	"github.com/julianstephens/liftshift/internal/logger"
	"github.com/julianstephens/liftshift/internal/storage"
	"github.com/julianstephens/liftshift/internal/storage/postgres"
	"github.com/julianstephens/liftshift/internal/storage/sqlite"
)

// ConfigSource records where the database location came from.
type ConfigSource string

const (
	SourceFlag    ConfigSource = "flag"
	SourceEnv     ConfigSource = "env"
	SourceKeyring ConfigSource = "keyring"
	SourceDefault ConfigSource = "default"
)

// ResolveConfig picks the database location: the environment variable wins,
// then an explicit --config, then a keyring entry, then the default path.
func ResolveConfig(flag string) (string, ConfigSource) {
	if env := strings.TrimSpace(os.Getenv(constants.EnvDBConnection)); env != "" {
		return env, SourceEnv
	}
	if flag != "" && flag != constants.DefaultConfigPath {
		return flag, SourceFlag
	}
	if connStr, err := keyring.GetConnectionString(); err == nil {
		return connStr, SourceKeyring
	} else if !errors.Is(err, keyring.ErrNotFound) {
		logger.Debug("Keyring lookup failed", "error", err)
	}
	return constants.DefaultConfigPath, SourceDefault
}

// IsPostgres reports whether config is a PostgreSQL URL or DSN.
func IsPostgres(config string) bool {
	return strings.HasPrefix(config, "postgres://") ||
		strings.HasPrefix(config, "postgresql://") ||
		strings.Contains(config, "host=")
}

// OpenStore builds the provider for config without connecting. Connection
// strings typed on the command line must not embed a password.
func OpenStore(config string, source ConfigSource) (storage.Provider, error) {
	if IsPostgres(config) {
		if _, err := postgres.ValidateConnString(config); err != nil {
			if !errors.Is(err, postgres.ErrEmbeddedCredentials) || source == SourceFlag {
				return nil, fmt.Errorf("%w (store secrets with 'liftshift keyring set' or %s)", err, constants.EnvDBConnection)
			}
		}
		return postgres.New(config), nil
	}

	path, err := expandHome(config)
	if err != nil {
		return nil, err
	}
	return sqlite.NewStore(path), nil
}

// ConfigDir is the directory that holds logs next to a sqlite database.
func ConfigDir(config string) string {
	if IsPostgres(config) {
		config = constants.DefaultConfigPath
	}
	path, err := expandHome(config)
	if err != nil {
		return "."
	}
	return filepath.Dir(path)
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
