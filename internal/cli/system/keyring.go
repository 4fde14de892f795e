package system

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/julianstephens/liftshift/internal/cli"
	"github.com/julianstephens/liftshift/internal/keyring"
	"github.com/julianstephens/liftshift/internal/storage/postgres"
)

// KeyringCmd groups the commands that manage the stored PostgreSQL DSN.
type KeyringCmd struct {
	Set    KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
	Get    KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the password masked."`
	Delete KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	Status KeyringStatusCmd `cmd:"" help:"Check keyring availability."`
}

type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in keyring."`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	if !cli.IsPostgres(cmd.ConnectionString) {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if _, err := postgres.ValidateConnString(cmd.ConnectionString); err != nil {
		if !errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return fmt.Errorf("invalid connection string: %w", err)
		}
		// The keyring is encrypted, so an embedded password is tolerated here
		fmt.Println(cli.WarningStyle.Render("⚠️  Connection string contains embedded credentials; storing it in the encrypted OS keyring."))
	}

	if err := keyring.SetConnectionString(cmd.ConnectionString); err != nil {
		return err
	}

	fmt.Println(cli.SuccessStyle.Render("✓ Connection string for " + hostOf(cmd.ConnectionString) + " stored in OS keyring"))
	fmt.Println(cli.MutedStyle.Render("  liftshift will use it when --config is not given"))
	return nil
}

type KeyringGetCmd struct{}

func (cmd *KeyringGetCmd) Run(ctx *cli.Context) error {
	connStr, err := keyring.GetConnectionString()
	if errors.Is(err, keyring.ErrNotFound) {
		return errors.New("no connection string found in keyring, use 'liftshift keyring set' to store one")
	}
	if err != nil {
		return err
	}

	fmt.Println(maskPassword(connStr))
	return nil
}

type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string stored in keyring")
		}
		return err
	}

	fmt.Println(cli.SuccessStyle.Render("✓ Connection string deleted from OS keyring"))
	return nil
}

type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *cli.Context) error {
	status := keyring.CurrentStatus()
	if !status.Available {
		fmt.Println(cli.ErrorStyle.Render("❌ OS keyring is not available on this system"))
		return keyring.ErrKeyringUnavailable
	}

	fmt.Println(cli.SuccessStyle.Render("✓ OS keyring is available"))
	if status.Stored {
		fmt.Println(cli.SuccessStyle.Render("✓ Connection string is stored in keyring"))
	} else {
		fmt.Println("ℹ No connection string stored in keyring")
	}
	return nil
}

// maskPassword hides the password of a URL or DSN connection string.
func maskPassword(connStr string) string {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		scheme := connStr[:strings.Index(connStr, "://")+3]
		rest := connStr[len(scheme):]
		// the last @ separates user info from host; passwords may contain @
		at := strings.LastIndex(rest, "@")
		if at == -1 {
			return connStr
		}
		user, _, hasPassword := strings.Cut(rest[:at], ":")
		if !hasPassword {
			return connStr
		}
		return scheme + user + ":****" + rest[at:]
	}

	fields := strings.Fields(connStr)
	for i, f := range fields {
		if strings.HasPrefix(strings.ToLower(f), "password=") {
			fields[i] = "password=****"
		}
	}
	return strings.Join(fields, " ")
}

// hostOf returns the host part of a URL connection string for display.
func hostOf(connStr string) string {
	if u, err := url.Parse(connStr); err == nil && u.Host != "" {
		return u.Host
	}
	for _, f := range strings.Fields(connStr) {
		if v, ok := strings.CutPrefix(f, "host="); ok {
			return v
		}
	}
	return "unknown"
}
