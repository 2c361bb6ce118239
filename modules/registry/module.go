// Package registry implements the /register side-channel: a raw insert into
// a users table that lives in its own SQLite database, independent of the
// catalog/orders store. It shares the process but nothing else with the
// storefront core.
package registry

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
	_ "github.com/mattn/go-sqlite3"
)

// Module provides the registration side-channel as a mono module.
type Module struct {
	db      *sql.DB
	service *Service
	dbPath  string
}

var _ mono.Module = (*Module)(nil)

// NewModule creates a new registry module writing to dbPath.
func NewModule(dbPath string) *Module {
	return &Module{dbPath: dbPath}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "registry"
}

// Start opens the side-channel database. The users table is otherwise
// unmanaged; it is created here only so a fresh install does not fail the
// first insert.
func (m *Module) Start(ctx context.Context) error {
	db, err := sql.Open("sqlite3", m.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open registry database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping registry database: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL,
		company TEXT NOT NULL,
		president TEXT NOT NULL
	)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to ensure users table: %w", err)
	}

	m.db = db
	m.service = NewService(db)
	log.Printf("[registry] Database initialized at %s", m.dbPath)
	return nil
}

// Stop closes the database connection.
func (m *Module) Stop(_ context.Context) error {
	if m.db == nil {
		return nil
	}
	if err := m.db.Close(); err != nil {
		return fmt.Errorf("failed to close registry database: %w", err)
	}
	log.Println("[registry] Database connection closed")
	return nil
}

// Service returns the registry service.
func (m *Module) Service() *Service {
	return m.service
}
