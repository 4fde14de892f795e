package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	pq "github.com/lib/pq"

	"github.com/julianstephens/liftshift/internal/constants"
	"github.com/julianstephens/liftshift/internal/logger"
	"github.com/julianstephens/liftshift/internal/migration"
	"github.com/julianstephens/liftshift/internal/models"
	"github.com/julianstephens/liftshift/internal/storage"
	"github.com/julianstephens/liftshift/migrations"
)

var _ storage.Provider = (*Store)(nil)

type Store struct {
	connStr string
	db      *sql.DB
}

var (
	ErrInvalidConnectionString = errors.New("invalid PostgreSQL connection string")
	ErrEmbeddedCredentials     = errors.New("connection string must not contain a password")
)

func New(connStr string) *Store {
	return &Store{connStr: withSearchPath(connStr)}
}

func isURL(connStr string) bool {
	return strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://")
}

// dsnHasKey reports whether a key=value DSN sets key, ignoring case.
func dsnHasKey(connStr, key string) bool {
	for _, field := range strings.Fields(connStr) {
		k, _, ok := strings.Cut(field, "=")
		if ok && strings.EqualFold(strings.TrimSpace(k), key) {
			return true
		}
	}
	return false
}

// withSearchPath points connections at the application schema unless the
// caller already chose a search_path.
func withSearchPath(connStr string) string {
	if !isURL(connStr) {
		if dsnHasKey(connStr, "search_path") {
			return connStr
		}
		return strings.TrimSpace(connStr) + " search_path=" + constants.AppName
	}

	u, err := url.Parse(connStr)
	if err != nil {
		logger.Warn("Failed to parse Postgres connection string", "error", err)
		return connStr
	}
	q := u.Query()
	if q.Get("search_path") != "" {
		return connStr
	}
	q.Set("search_path", constants.AppName)
	u.RawQuery = q.Encode()
	return u.String()
}

func hasSSLMode(connStr string) bool {
	if u, err := url.Parse(connStr); err == nil && u.Scheme != "" {
		for key := range u.Query() {
			if strings.EqualFold(key, "sslmode") {
				return true
			}
		}
	}
	return dsnHasKey(connStr, "sslmode")
}

// ValidateConnString accepts a URL or DSN connection string that carries no
// password. Credentials belong in the keyring, the environment or .pgpass.
func ValidateConnString(connStr string) (bool, error) {
	if strings.TrimSpace(connStr) == "" {
		return false, fmt.Errorf("%w: connection string cannot be empty", ErrInvalidConnectionString)
	}
	if _, err := pq.NewConnector(connStr); err != nil {
		return false, fmt.Errorf("%w: invalid connection string format: %v", ErrInvalidConnectionString, err)
	}

	if !isURL(connStr) {
		if dsnHasKey(connStr, "password") {
			return false, ErrEmbeddedCredentials
		}
		return true, nil
	}

	u, err := url.Parse(connStr)
	if err != nil {
		return false, fmt.Errorf("%w: failed to parse connection URL: %v", ErrInvalidConnectionString, err)
	}
	if _, ok := u.User.Password(); ok {
		return false, ErrEmbeddedCredentials
	}
	if u.Host == "" && u.User == nil && (u.Path == "" || u.Path == "/") {
		return false, fmt.Errorf("%w: connection URL is incomplete", ErrInvalidConnectionString)
	}
	return true, nil
}

// open connects with a bounded pool. With createSchema set the application
// schema is created before the store takes the handle.
func (s *Store) open(createSchema bool) error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		if strings.Contains(err.Error(), "SSL is not enabled on the server") && !hasSSLMode(s.connStr) {
			return fmt.Errorf("failed to connect to database: %w (hint: try adding ?sslmode=disable to your connection string)", err)
		}
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if createSchema {
		if _, err := db.Exec("CREATE SCHEMA IF NOT EXISTS " + constants.AppName); err != nil {
			db.Close()
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	s.db = db
	return nil
}

func (s *Store) Init() error {
	if err := s.open(true); err != nil {
		return err
	}
	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}
	return nil
}

// Load opens an initialized database and refuses a schema older or newer
// than the embedded migrations.
func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}
	if err := s.open(false); err != nil {
		return err
	}
	return s.validateSchemaVersion()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) runner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		return nil, fmt.Errorf("failed to access postgres migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS, migration.DriverPostgres), nil
}

func (s *Store) runMigrations() error {
	runner, err := s.runner()
	if err != nil {
		return err
	}

	_, err = runner.ApplyMigrations(func(msg string) {
		logger.Info(msg, "store", "postgres")
	})
	return err
}

func (s *Store) validateSchemaVersion() error {
	runner, err := s.runner()
	if err != nil {
		return err
	}
	return runner.ValidateVersion()
}

func (s *Store) SchemaStatus() (int, int, error) {
	runner, err := s.runner()
	if err != nil {
		return 0, 0, err
	}
	return runner.Status()
}

// GetConfigPath never exposes the connection string.
func (s *Store) GetConfigPath() string {
	return "postgresql"
}
