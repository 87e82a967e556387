package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

// The kv schema ships embedded so the store can bootstrap whatever
// database file it is pointed at.
//
//go:embed migrations/*.sql
var migrationFS embed.FS

func MigrateUp(db *sql.DB) error {
	return runMigrations(db, "up")
}

func MigrateDown(db *sql.DB) error {
	return runMigrations(db, "down")
}

func runMigrations(db *sql.DB, direction string) error {
	names, err := fs.Glob(migrationFS, "migrations/*."+direction+".sql")
	if err != nil {
		return fmt.Errorf("glob %s migrations: %w", direction, err)
	}
	sort.Strings(names)
	for _, name := range names {
		stmt, err := migrationFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.Exec(string(stmt)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return nil
}
