package store

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dropDatabas3/userfed/internal/domain/repository"
	"github.com/dropDatabas3/userfed/internal/observability/logger"
	"github.com/dropDatabas3/userfed/internal/security/password"
)

// Verificar que implementa la interfaz
var _ repository.Users = (*Users)(nil)

// Queries son los templates SQL configurados externamente, con placeholders
// posicionales del motor destino. Este módulo no valida su corrección, solo
// los ejecuta.
type Queries struct {
	ListAll          string
	Count            string
	FindByID         string
	FindByUsername   string
	FindByEmail      string
	FindBySearchTerm string
	FindPasswordHash string
}

// Users implementa repository.Users sobre un DataSource y las queries
// configuradas. Inmutable después de NewUsers; sin estado entre llamadas.
type Users struct {
	ds          *DataSource
	queries     Queries
	verifier    *password.Verifier
	allowRemove bool
	log         *zap.Logger
}

// NewUsers arma la fachada. El esquema de hash se resuelve acá, una vez;
// un identificador desconocido es error de configuración.
func NewUsers(ds *DataSource, queries Queries, verifier *password.Verifier, allowRemove bool) (*Users, error) {
	if ds == nil {
		return nil, fmt.Errorf("store: nil data source")
	}
	if verifier == nil {
		return nil, fmt.Errorf("store: nil credential verifier")
	}
	return &Users{
		ds:          ds,
		queries:     queries,
		verifier:    verifier,
		allowRemove: allowRemove,
		log:         logger.Named("store.users"),
	}, nil
}

// GetAllUsers retorna todos los usuarios de list-all, sin paginar.
func (u *Users) GetAllUsers(ctx context.Context) ([]repository.Record, error) {
	return runQuery(ctx, u.ds, "list_all", u.queries.ListAll, nil, ReadRecords)
}

// GetUsersCount cuenta usuarios. Con search no vacío envuelve la query de
// búsqueda en un COUNT(*) y filtra por %search%.
func (u *Users) GetUsersCount(ctx context.Context, search string) (int, error) {
	var (
		res optInt
		err error
	)
	if strings.TrimSpace(search) == "" {
		res, err = runQuery(ctx, u.ds, "count", u.queries.Count, nil, readOptInt)
	} else {
		query := fmt.Sprintf("SELECT COUNT(*) FROM (%s) count", u.queries.FindBySearchTerm)
		res, err = runQuery(ctx, u.ds, "count_search", query, nil, readOptInt, wildcard(search))
	}
	if err != nil {
		return 0, err
	}
	if !res.OK {
		return 0, nil
	}
	return res.Val, nil
}

// FindUserByID busca por id numérico. Record nil si no existe.
func (u *Users) FindUserByID(ctx context.Context, id int) (repository.Record, error) {
	return u.findOne(ctx, "find_by_id", u.queries.FindByID, id)
}

// FindUserByUsername busca por username exacto. Record nil si no existe.
func (u *Users) FindUserByUsername(ctx context.Context, username string) (repository.Record, error) {
	return u.findOne(ctx, "find_by_username", u.queries.FindByUsername, username)
}

// FindUserByEmail busca por email exacto. Record nil si no existe.
func (u *Users) FindUserByEmail(ctx context.Context, email string) (repository.Record, error) {
	return u.findOne(ctx, "find_by_email", u.queries.FindByEmail, email)
}

func (u *Users) findOne(ctx context.Context, operation, query string, param any) (repository.Record, error) {
	records, err := runQuery(ctx, u.ds, operation, query, nil, ReadRecords, param)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

// FindUsers lista usuarios filtrados por %search% (o list-all si no hay
// término), acotados a la página pedida.
func (u *Users) FindUsers(ctx context.Context, search string, page *repository.Pageable) ([]repository.Record, error) {
	if strings.TrimSpace(search) == "" {
		return runQuery(ctx, u.ds, "find_users", u.queries.ListAll, page, ReadRecords)
	}
	return runQuery(ctx, u.ds, "find_users_search", u.queries.FindBySearchTerm, page, ReadRecords, wildcard(search))
}

// ValidateCredentials verifica el password contra el hash almacenado para el
// username. Credencial ausente => false sin error; hash malformado => false.
func (u *Users) ValidateCredentials(ctx context.Context, username, plain string) (bool, error) {
	res, err := runQuery(ctx, u.ds, "find_password_hash", u.queries.FindPasswordHash, nil, readOptString, username)
	if err != nil {
		countValidation("error")
		return false, err
	}
	if !res.OK || res.Val == "" {
		// Usuario sin credencial almacenada: no match, nunca error.
		countValidation("no_match")
		return false, nil
	}

	ok := u.verifier.Verify(plain, res.Val)
	if ok {
		countValidation("match")
	} else {
		countValidation("no_match")
	}
	u.log.Debug("credentials validated",
		logger.Username(username),
		zap.String("scheme", u.verifier.Scheme().String()),
		zap.Bool("match", ok),
	)
	return ok, nil
}

// UpdateCredentials no está soportado: la base es de otro sistema y la
// rotación de credenciales no es función de este puente.
func (u *Users) UpdateCredentials(ctx context.Context, username, plain string) error {
	return fmt.Errorf("%w: password update", repository.ErrNotImplemented)
}

// RemoveUser retorna el flag configurado. La decisión de borrar es del host;
// acá no vive lógica de borrado.
func (u *Users) RemoveUser() bool {
	return u.allowRemove
}

func wildcard(search string) string {
	return "%" + search + "%"
}
