package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de postgres: violación de restricción de exclusión y de unicidad.
const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
)

// IsExclusionConflict reporta si err viene de la restricción de exclusión
// sobre consultas (dos inserts compitiendo por el mismo horario). El
// perdedor de la carrera recibe esto en lugar de un error de negocio.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgExclusionViolation || pgErr.Code == pgUniqueViolation
	}
	return false
}
