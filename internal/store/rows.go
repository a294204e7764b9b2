package store

import (
	"database/sql"
	"fmt"

	"github.com/dropDatabas3/userfed/internal/domain/repository"
)

// Rows es la vista mínima de un cursor de resultados que necesitan los
// transformadores. *sql.Rows la satisface; los tests usan un cursor fixture
// en memoria.
type Rows interface {
	Columns() ([]string, error)
	Next() bool
	Scan(dest ...any) error
	Err() error
}

var _ Rows = (*sql.Rows)(nil)

// ReadRecords consume el cursor completo y construye un Record por fila,
// mapeando cada etiqueta de columna descubierta a su valor string.
// Una columna NULL queda ausente del mapa.
func ReadRecords(rs Rows) ([]repository.Record, error) {
	cols, err := rs.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}
	var data []repository.Record
	vals := make([]sql.NullString, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rs.Next() {
		if err := rs.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec := make(repository.Record, len(cols))
		for i, col := range cols {
			if vals[i].Valid {
				rec[col] = vals[i].String
			}
		}
		data = append(data, rec)
	}
	return data, rs.Err()
}

// ReadInt lee la primera columna de la primera fila. ok=false si no hay
// filas: el caller distingue "sin fila" de un cero legítimo.
func ReadInt(rs Rows) (int, bool, error) {
	if !rs.Next() {
		return 0, false, rs.Err()
	}
	var v sql.NullInt64
	if err := rs.Scan(&v); err != nil {
		return 0, false, fmt.Errorf("scan int: %w", err)
	}
	return int(v.Int64), true, nil
}

// ReadBool lee la primera columna de la primera fila como booleano.
func ReadBool(rs Rows) (bool, bool, error) {
	if !rs.Next() {
		return false, false, rs.Err()
	}
	var v sql.NullBool
	if err := rs.Scan(&v); err != nil {
		return false, false, fmt.Errorf("scan bool: %w", err)
	}
	return v.Bool, true, nil
}

// ReadString lee la primera columna de la primera fila como string.
// Un NULL en fila presente reporta ok=true con string vacío.
func ReadString(rs Rows) (string, bool, error) {
	if !rs.Next() {
		return "", false, rs.Err()
	}
	var v sql.NullString
	if err := rs.Scan(&v); err != nil {
		return "", false, fmt.Errorf("scan string: %w", err)
	}
	return v.String, true, nil
}
