package store

import (
	"fmt"

	"github.com/dropDatabas3/userfed/internal/domain/repository"
)

// Dialect identifica la familia de sintaxis SQL del motor destino. Solo es
// relevante para construir la cláusula de paginación: el resto del SQL viene
// configurado tal cual y no se traduce.
type Dialect string

const (
	DialectPostgres  Dialect = "postgres"
	DialectMySQL     Dialect = "mysql"
	DialectSQLite    Dialect = "sqlite"
	DialectOracle    Dialect = "oracle"
	DialectSQLServer Dialect = "sqlserver"
)

// paginateFunc reescribe query acotándola a la ventana de page.
// Precondición: offset y limit ya validados no-negativos.
type paginateFunc func(query string, page repository.Pageable) string

// Tabla de paginadores por dialecto. Agregar un motor nuevo es agregar una
// entrada acá, no tocar la estructura.
var paginators = map[Dialect]paginateFunc{
	DialectPostgres:  paginateLimitOffset,
	DialectMySQL:     paginateLimitOffset,
	DialectSQLite:    paginateLimitOffset,
	DialectOracle:    paginateRownum,
	DialectSQLServer: paginateOffsetFetch,
}

func paginateLimitOffset(query string, page repository.Pageable) string {
	return fmt.Sprintf("%s LIMIT %d OFFSET %d", query, page.Limit, page.Offset)
}

// Oracle clásico (pre-12c): sub-select envuelto con ROWNUM.
func paginateRownum(query string, page repository.Pageable) string {
	return fmt.Sprintf(
		"SELECT * FROM (SELECT tmp.*, ROWNUM rnum FROM (%s) tmp WHERE ROWNUM <= %d) WHERE rnum > %d",
		query, page.Offset+page.Limit, page.Offset)
}

func paginateOffsetFetch(query string, page repository.Pageable) string {
	return fmt.Sprintf("%s OFFSET %d ROWS FETCH NEXT %d ROWS ONLY", query, page.Offset, page.Limit)
}

// Paginate reescribe query para que devuelva exactamente las filas
// [Offset, Offset+Limit) del resultado original, en el mismo orden.
// Un dialecto no reconocido es error de configuración: fallar fuerte acá es
// preferible a devolver silenciosamente la query sin acotar.
func (d Dialect) Paginate(query string, page repository.Pageable) (string, error) {
	if page.Offset < 0 || page.Limit < 0 {
		return "", fmt.Errorf("store: invalid page window (offset=%d, limit=%d)", page.Offset, page.Limit)
	}
	fn, ok := paginators[d]
	if !ok {
		return "", fmt.Errorf("store: unknown dialect %q", d)
	}
	return fn(query, page), nil
}

// Valid indica si el dialecto tiene paginador registrado.
func (d Dialect) Valid() bool {
	_, ok := paginators[d]
	return ok
}
