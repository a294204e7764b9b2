// Package store implementa la capa de acceso a la base legada: registry de
// drivers, paginación por dialecto, ejecutor de queries parametrizadas y la
// fachada de usuarios.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"
)

// Driver vincula un driver database/sql con su dialecto de paginación.
// Cada driver se registra en init() (blank import desde cmd).
type Driver interface {
	// Name retorna el nombre del driver (ej: "postgres", "mysql", "sqlite").
	Name() string

	// Dialect retorna el dialecto de paginación nativo del motor.
	Dialect() Dialect

	// Open abre el *sql.DB. No valida conectividad: eso es Ping.
	Open(cfg DriverConfig) (*sql.DB, error)
}

// DriverConfig configuración para abrir un data source.
type DriverConfig struct {
	// Name del driver registrado.
	Name string

	// DSN connection string del motor.
	DSN string

	// Dialect opcional: override del dialecto de paginación. Permite llegar a
	// motores como oracle o sqlserver a través de un driver genérico.
	Dialect Dialect

	// Pool settings (database/sql).
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// ─── Registry Global ───

var (
	registryMu sync.RWMutex
	drivers    = make(map[string]Driver)
)

// RegisterDriver registra un driver en el registry global.
// Llamar en init() de cada driver.
func RegisterDriver(d Driver) {
	registryMu.Lock()
	defer registryMu.Unlock()

	name := d.Name()
	if _, exists := drivers[name]; exists {
		panic(fmt.Sprintf("store: driver %q already registered", name))
	}
	drivers[name] = d
}

// GetDriver obtiene un driver por nombre.
func GetDriver(name string) (Driver, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	d, ok := drivers[name]
	return d, ok
}

// ListDrivers retorna los nombres de todos los drivers registrados.
func ListDrivers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	return names
}

// DataSource es un handle al motor legado: el *sql.DB más el dialecto con el
// que se reescriben las queries paginadas. No administra pooling propio, eso
// queda en database/sql.
type DataSource struct {
	db      *sql.DB
	dialect Dialect
}

// Open abre un data source usando el driver indicado en cfg.
func Open(cfg DriverConfig) (*DataSource, error) {
	d, ok := GetDriver(cfg.Name)
	if !ok {
		return nil, fmt.Errorf("store: driver %q not registered (have %v)", cfg.Name, ListDrivers())
	}

	db, err := d.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", cfg.Name, err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	dialect := d.Dialect()
	if cfg.Dialect != "" {
		dialect = cfg.Dialect
	}
	if !dialect.Valid() {
		db.Close()
		return nil, fmt.Errorf("store: unknown dialect %q", dialect)
	}

	return &DataSource{db: db, dialect: dialect}, nil
}

// NewDataSource arma un DataSource sobre un *sql.DB ya abierto.
// Pensado para tests y para hosts que ya administran la conexión.
func NewDataSource(db *sql.DB, dialect Dialect) (*DataSource, error) {
	if !dialect.Valid() {
		return nil, fmt.Errorf("store: unknown dialect %q", dialect)
	}
	return &DataSource{db: db, dialect: dialect}, nil
}

// Ping verifica la conexión.
func (ds *DataSource) Ping(ctx context.Context) error {
	if ds == nil || ds.db == nil {
		return fmt.Errorf("store: no database handle")
	}
	return ds.db.PingContext(ctx)
}

// Close cierra el data source.
func (ds *DataSource) Close() error {
	if ds == nil || ds.db == nil {
		return nil
	}
	return ds.db.Close()
}

// Dialect retorna el dialecto efectivo del data source.
func (ds *DataSource) Dialect() Dialect {
	return ds.dialect
}
