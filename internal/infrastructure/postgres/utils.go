package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dicri-mp/expedientes-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// wrapConn clasifica un fallo no-dominio del driver como ErrPersistencia. El
// detalle queda en la cadena para los logs; la capa HTTP responde con un
// mensaje fijo y nunca expone internals del driver.
func wrapConn(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, domain.ErrPersistencia)
}
