package system

import (
	"fmt"

	"github.com/julianstephens/liftshift/internal/cli"
)

type MigrateCmd struct{}

// Run applies pending embedded migrations. Init is idempotent and migrates
// an existing database in place, so this is a thin wrapper with reporting.
func (c *MigrateCmd) Run(ctx *cli.Context) error {
	before, latest, err := ctx.Store.SchemaStatus()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if before == latest {
		fmt.Printf("No migrations to apply. Database is up to date (version %d).\n", latest)
		return nil
	}

	if err := ctx.Store.Init(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Printf("Successfully migrated schema from version %d to %d.\n", before, latest)
	return nil
}
