// Package mysql registra el driver MySQL para el store.
// Usa database/sql con github.com/go-sql-driver/mysql.
//
// DSN format: user:password@tcp(host:port)/database?parseTime=true
package mysql

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"github.com/dropDatabas3/userfed/internal/store"
)

func init() {
	store.RegisterDriver(&mysqlDriver{})
}

type mysqlDriver struct{}

func (d *mysqlDriver) Name() string { return "mysql" }

func (d *mysqlDriver) Dialect() store.Dialect { return store.DialectMySQL }

func (d *mysqlDriver) Open(cfg store.DriverConfig) (*sql.DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("mysql: DSN is required")
	}
	db, err := sql.Open("mysql", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("mysql: open: %w", err)
	}
	return db, nil
}
