package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dicri-mp/expedientes-api/internal/domain"
	"github.com/dicri-mp/expedientes-api/internal/domain/entity"
	"github.com/dicri-mp/expedientes-api/internal/domain/repository"
)

var _ repository.ExpedienteRepository = (*ExpedienteRepo)(nil)

// ExpedienteRepo implementación del puerto ExpedienteRepository sobre PostgreSQL.
type ExpedienteRepo struct {
	pool *pgxpool.Pool
}

// NewExpedienteRepository construye el adaptador de persistencia para expedientes.
func NewExpedienteRepository(pool *pgxpool.Pool) *ExpedienteRepo {
	return &ExpedienteRepo{pool: pool}
}

const expedienteColumns = `id, numero_expediente, descripcion, estado, tecnico_registro,
	coordinador_asignado, justificacion_rechazo, fecha_creacion, updated_at`

// Crear persiste un expediente nuevo. El constraint único sobre
// numero_expediente convierte duplicados en ErrDuplicado.
func (r *ExpedienteRepo) Crear(ctx context.Context, e *entity.Expediente) error {
	query := `
		INSERT INTO expedientes (id, numero_expediente, descripcion, estado, tecnico_registro,
			coordinador_asignado, justificacion_rechazo, fecha_creacion, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		e.ID, e.NumeroExpediente, e.Descripcion, string(e.Estado), e.TecnicoRegistro,
		e.CoordinadorAsignado, e.JustificacionRechazo, e.FechaCreacion, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: el numero de expediente ya existe", domain.ErrDuplicado)
		}
		return wrapConn("insert expediente", err)
	}
	return nil
}

// ObtenerPorID obtiene un expediente por ID; nil, nil si no existe.
func (r *ExpedienteRepo) ObtenerPorID(ctx context.Context, id string) (*entity.Expediente, error) {
	query := `SELECT ` + expedienteColumns + ` FROM expedientes WHERE id = $1`
	var e entity.Expediente
	var estado string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.NumeroExpediente, &e.Descripcion, &estado, &e.TecnicoRegistro,
		&e.CoordinadorAsignado, &e.JustificacionRechazo, &e.FechaCreacion, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapConn("get expediente by id", err)
	}
	e.Estado = entity.EstadoExpediente(estado)
	return &e, nil
}

// Listar devuelve los expedientes que cumplen el filtro, ordenados por fecha
// de creación descendente.
func (r *ExpedienteRepo) Listar(ctx context.Context, filtro repository.ExpedienteFiltro) ([]*entity.Expediente, error) {
	query := `SELECT ` + expedienteColumns + ` FROM expedientes WHERE 1=1`
	var args []any
	if filtro.Estado != nil {
		args = append(args, string(*filtro.Estado))
		query += fmt.Sprintf(" AND estado = $%d", len(args))
	}
	if filtro.FechaInicio != nil {
		args = append(args, *filtro.FechaInicio)
		query += fmt.Sprintf(" AND fecha_creacion >= $%d", len(args))
	}
	if filtro.FechaFin != nil {
		args = append(args, *filtro.FechaFin)
		query += fmt.Sprintf(" AND fecha_creacion <= $%d", len(args))
	}
	query += " ORDER BY fecha_creacion DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapConn("list expedientes", err)
	}
	defer rows.Close()
	var list []*entity.Expediente
	for rows.Next() {
		var e entity.Expediente
		var estado string
		if err := rows.Scan(
			&e.ID, &e.NumeroExpediente, &e.Descripcion, &estado, &e.TecnicoRegistro,
			&e.CoordinadorAsignado, &e.JustificacionRechazo, &e.FechaCreacion, &e.UpdatedAt,
		); err != nil {
			return nil, wrapConn("scan expediente", err)
		}
		e.Estado = entity.EstadoExpediente(estado)
		list = append(list, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapConn("rows expedientes", err)
	}
	return list, nil
}

// ActualizarDescripcion condicional al estado En Registro.
func (r *ExpedienteRepo) ActualizarDescripcion(ctx context.Context, id, descripcion string) (bool, error) {
	query := `
		UPDATE expedientes SET descripcion = $2, updated_at = now()
		WHERE id = $1 AND estado = $3`
	tag, err := r.pool.Exec(ctx, query, id, descripcion, string(entity.EstadoEnRegistro))
	if err != nil {
		return false, wrapConn("update descripcion", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ActualizarEstado transición atómica: una sola sentencia condicional al
// estado esperado. Cero filas afectadas significa que el expediente no existe
// o que otra petición ganó la carrera; el caso de uso distingue ambos casos.
func (r *ExpedienteRepo) ActualizarEstado(ctx context.Context, id string, esperado, nuevo entity.EstadoExpediente, extra repository.CambioEstado) (bool, error) {
	query := `
		UPDATE expedientes SET estado = $3,
			coordinador_asignado = COALESCE($4, coordinador_asignado),
			justificacion_rechazo = COALESCE($5, justificacion_rechazo),
			updated_at = now()
		WHERE id = $1 AND estado = $2`
	tag, err := r.pool.Exec(ctx, query,
		id, string(esperado), string(nuevo), extra.CoordinadorAsignado, extra.JustificacionRechazo,
	)
	if err != nil {
		return false, wrapConn("update estado", err)
	}
	return tag.RowsAffected() > 0, nil
}
