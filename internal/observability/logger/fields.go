package logger

import (
	"time"

	"go.uber.org/zap"
)

// =================================================================================
// CAMPOS ESTÁNDAR - HTTP
// =================================================================================

// RequestID crea un campo para el ID del request.
func RequestID(v string) zap.Field {
	return zap.String("request_id", v)
}

// Method crea un campo para el método HTTP.
func Method(v string) zap.Field {
	return zap.String("method", v)
}

// Path crea un campo para el path del request.
func Path(v string) zap.Field {
	return zap.String("path", v)
}

// Status crea un campo para el status code HTTP.
func Status(v int) zap.Field {
	return zap.Int("status", v)
}

// Duration crea un campo para la duración del request.
func Duration(v time.Duration) zap.Field {
	return zap.Duration("duration", v)
}

// ClientIP crea un campo para la IP del cliente.
func ClientIP(v string) zap.Field {
	return zap.String("client_ip", v)
}

// =================================================================================
// CAMPOS ESTÁNDAR - FEDERACIÓN
// =================================================================================

// Username crea un campo para el username federado.
func Username(v string) zap.Field {
	return zap.String("username", v)
}

// Operation crea un campo para la operación del repositorio
// (list_all, count, find_by_id, find_password_hash, ...).
func Operation(v string) zap.Field {
	return zap.String("operation", v)
}

// Query crea un campo para el SQL ejecutado. Solo a nivel debug: las queries
// configuradas pueden revelar el esquema de la base legada.
func Query(v string) zap.Field {
	return zap.String("query", v)
}

// Driver crea un campo para el driver de base de datos.
func Driver(v string) zap.Field {
	return zap.String("driver", v)
}

// Dialect crea un campo para el dialecto de paginación.
func Dialect(v string) zap.Field {
	return zap.String("dialect", v)
}

// =================================================================================
// CAMPOS ESTÁNDAR - SISTEMA
// =================================================================================

// Component crea un campo para el componente/módulo.
func Component(v string) zap.Field {
	return zap.String("component", v)
}

// Err crea un campo para un error.
func Err(err error) zap.Field {
	return zap.Error(err)
}

// Count crea un campo para un conteo.
func Count(v int) zap.Field {
	return zap.Int("count", v)
}
