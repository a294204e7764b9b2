package repository

import "errors"

var (
	// ErrUnavailable indica que no hay data source alcanzable: sin base
	// configurada o el driver no entrega conexiones. Distinto de un
	// resultado vacío.
	ErrUnavailable = errors.New("data source unavailable")

	// ErrQueryFailed indica un fallo a nivel driver: SQL malformado, binding
	// mismatch o error de ejecución. La causa va envuelta.
	ErrQueryFailed = errors.New("query failed")

	// ErrNotImplemented indica que la operación no está soportada por el
	// puente (ej: update de credenciales).
	ErrNotImplemented = errors.New("not implemented")
)

// IsUnavailable verifica si el error es ErrUnavailable.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsQueryFailed verifica si el error es ErrQueryFailed.
func IsQueryFailed(err error) bool {
	return errors.Is(err, ErrQueryFailed)
}

// IsNotImplemented verifica si el error es ErrNotImplemented.
func IsNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}
