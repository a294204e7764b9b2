// Package sqlite registra el driver SQLite para el store.
// Usa database/sql con github.com/mattn/go-sqlite3. Útil para bases legadas
// embebidas y para tests de integración sin servidor.
//
// DSN format: path al archivo, o ":memory:" para una base en memoria.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dropDatabas3/userfed/internal/store"
)

func init() {
	store.RegisterDriver(&sqliteDriver{})
}

type sqliteDriver struct{}

func (d *sqliteDriver) Name() string { return "sqlite" }

func (d *sqliteDriver) Dialect() store.Dialect { return store.DialectSQLite }

func (d *sqliteDriver) Open(cfg store.DriverConfig) (*sql.DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("sqlite: DSN is required")
	}
	db, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	return db, nil
}
