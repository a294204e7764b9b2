package repository

import "context"

// Record es una fila de usuario tal como la proyecta la query configurada.
// El set de columnas NO está fijado por este módulo: es lo que el SQL externo
// devuelva. Una columna con valor NULL queda ausente del mapa.
type Record map[string]string

// Pageable describe una ventana [Offset, Offset+Limit) sobre un resultado
// ordenado. Limit 0 es legal y produce una página vacía.
type Pageable struct {
	Offset int
	Limit  int
}

// Users es la fachada de lectura/verificación que consume el host.
// Este módulo nunca crea ni borra usuarios: solo lee y verifica.
type Users interface {
	// GetAllUsers retorna todos los usuarios de la query list-all, sin paginar.
	GetAllUsers(ctx context.Context) ([]Record, error)

	// GetUsersCount cuenta usuarios. Con search no vacío envuelve la query de
	// búsqueda en un COUNT(*) y filtra por %search%.
	GetUsersCount(ctx context.Context, search string) (int, error)

	// FindUserByID busca por id numérico. Record nil si no existe.
	FindUserByID(ctx context.Context, id int) (Record, error)

	// FindUserByUsername busca por username exacto. Record nil si no existe.
	FindUserByUsername(ctx context.Context, username string) (Record, error)

	// FindUserByEmail busca por email exacto. Record nil si no existe.
	FindUserByEmail(ctx context.Context, email string) (Record, error)

	// FindUsers lista usuarios, opcionalmente filtrados por %search% y
	// acotados a una página. Con search vacío equivale a list-all paginado.
	FindUsers(ctx context.Context, search string, page *Pageable) ([]Record, error)

	// ValidateCredentials verifica el password contra el hash almacenado.
	// Credencial ausente => false sin error. Un hash malformado NUNCA es
	// error: resuelve a false.
	ValidateCredentials(ctx context.Context, username, password string) (bool, error)

	// UpdateCredentials no está soportado: la rotación de credenciales es del
	// sistema dueño de la base. Siempre retorna ErrNotImplemented.
	UpdateCredentials(ctx context.Context, username, password string) error

	// RemoveUser indica si el host tiene permitido borrar usuarios.
	// Es solo el flag configurado; acá no vive lógica de borrado.
	RemoveUser() bool
}
