package store

import (
	"context"
	"fmt"
	"time"

	"github.com/dropDatabas3/userfed/internal/domain/repository"
	"github.com/dropDatabas3/userfed/internal/observability/logger"
)

// runQuery es el ejecutor central: adquiere UNA conexión por llamada, aplica
// paginación si corresponde, bindea los parámetros posicionales y entrega el
// cursor vivo al transformador. La conexión se libera en todo camino de
// salida (éxito, resultado vacío, error de driver).
//
// Errores: sin data source => repository.ErrUnavailable; fallo de driver =>
// repository.ErrQueryFailed envolviendo la causa. "Sin filas" NO es error:
// lo expresa el transformador (slice vacío / ok=false).
func runQuery[T any](ctx context.Context, ds *DataSource, operation, query string, page *repository.Pageable, transform func(Rows) (T, error), params ...any) (T, error) {
	var zero T

	if ds == nil || ds.db == nil {
		return zero, repository.ErrUnavailable
	}

	if page != nil {
		paged, err := ds.dialect.Paginate(query, *page)
		if err != nil {
			return zero, err
		}
		query = paged
	}

	start := time.Now()

	conn, err := ds.db.Conn(ctx)
	if err != nil {
		observeQuery(operation, "unavailable", time.Since(start))
		return zero, fmt.Errorf("%w: acquire connection: %v", repository.ErrUnavailable, err)
	}
	defer conn.Close()

	logger.From(ctx).Debug("executing query",
		logger.Operation(operation),
		logger.Query(query),
	)

	rows, err := conn.QueryContext(ctx, query, params...)
	if err != nil {
		observeQuery(operation, "error", time.Since(start))
		return zero, fmt.Errorf("%w: %w", repository.ErrQueryFailed, err)
	}
	defer rows.Close()

	out, err := transform(rows)
	if err != nil {
		observeQuery(operation, "error", time.Since(start))
		return zero, fmt.Errorf("%w: %w", repository.ErrQueryFailed, err)
	}

	observeQuery(operation, "ok", time.Since(start))
	return out, nil
}

// Wrappers con resultado opcional para los transformadores escalares, para
// poder pasarlos directo a runQuery.

type optInt struct {
	Val int
	OK  bool
}

type optString struct {
	Val string
	OK  bool
}

func readOptInt(rs Rows) (optInt, error) {
	v, ok, err := ReadInt(rs)
	return optInt{Val: v, OK: ok}, err
}

func readOptString(rs Rows) (optString, error) {
	v, ok, err := ReadString(rs)
	return optString{Val: v, OK: ok}, err
}
