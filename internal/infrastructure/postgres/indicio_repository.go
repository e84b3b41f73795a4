package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dicri-mp/expedientes-api/internal/domain/entity"
	"github.com/dicri-mp/expedientes-api/internal/domain/repository"
)

var _ repository.IndicioRepository = (*IndicioRepo)(nil)

// IndicioRepo implementación del puerto IndicioRepository sobre PostgreSQL.
type IndicioRepo struct {
	pool *pgxpool.Pool
}

// NewIndicioRepository construye el adaptador de persistencia para indicios.
func NewIndicioRepository(pool *pgxpool.Pool) *IndicioRepo {
	return &IndicioRepo{pool: pool}
}

const indicioColumns = `id, expediente_id, nombre_objeto, descripcion, color,
	tamano_cm, peso_gramos, ubicacion, tecnico_registro, created_at, updated_at`

// Crear persiste un indicio nuevo.
func (r *IndicioRepo) Crear(ctx context.Context, i *entity.Indicio) error {
	query := `
		INSERT INTO indicios (id, expediente_id, nombre_objeto, descripcion, color,
			tamano_cm, peso_gramos, ubicacion, tecnico_registro, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		i.ID, i.ExpedienteID, i.NombreObjeto, i.Descripcion, i.Color,
		i.TamanoCm, i.PesoGramos, i.Ubicacion, i.TecnicoRegistro, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		return wrapConn("insert indicio", err)
	}
	return nil
}

// ObtenerPorID obtiene un indicio por ID; nil, nil si no existe.
func (r *IndicioRepo) ObtenerPorID(ctx context.Context, id string) (*entity.Indicio, error) {
	query := `SELECT ` + indicioColumns + ` FROM indicios WHERE id = $1`
	var i entity.Indicio
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&i.ID, &i.ExpedienteID, &i.NombreObjeto, &i.Descripcion, &i.Color,
		&i.TamanoCm, &i.PesoGramos, &i.Ubicacion, &i.TecnicoRegistro, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapConn("get indicio by id", err)
	}
	return &i, nil
}

// ListarPorExpediente lista los indicios de un expediente en orden de registro.
func (r *IndicioRepo) ListarPorExpediente(ctx context.Context, expedienteID string) ([]*entity.Indicio, error) {
	query := `SELECT ` + indicioColumns + ` FROM indicios WHERE expediente_id = $1 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, expedienteID)
	if err != nil {
		return nil, wrapConn("list indicios", err)
	}
	defer rows.Close()
	var list []*entity.Indicio
	for rows.Next() {
		var i entity.Indicio
		if err := rows.Scan(
			&i.ID, &i.ExpedienteID, &i.NombreObjeto, &i.Descripcion, &i.Color,
			&i.TamanoCm, &i.PesoGramos, &i.Ubicacion, &i.TecnicoRegistro, &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, wrapConn("scan indicio", err)
		}
		list = append(list, &i)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapConn("rows indicios", err)
	}
	return list, nil
}

// ContarPorExpediente conteo de indicios del expediente.
func (r *IndicioRepo) ContarPorExpediente(ctx context.Context, expedienteID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM indicios WHERE expediente_id = $1`, expedienteID).Scan(&n)
	if err != nil {
		return 0, wrapConn("count indicios", err)
	}
	return n, nil
}

// Actualizar actualiza un indicio.
func (r *IndicioRepo) Actualizar(ctx context.Context, i *entity.Indicio) error {
	query := `
		UPDATE indicios SET nombre_objeto = $2, descripcion = $3, color = $4,
			tamano_cm = $5, peso_gramos = $6, ubicacion = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		i.ID, i.NombreObjeto, i.Descripcion, i.Color,
		i.TamanoCm, i.PesoGramos, i.Ubicacion, i.UpdatedAt,
	)
	if err != nil {
		return wrapConn("update indicio", err)
	}
	return nil
}

// Eliminar elimina un indicio por ID.
func (r *IndicioRepo) Eliminar(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM indicios WHERE id = $1`, id)
	if err != nil {
		return wrapConn("delete indicio", err)
	}
	return nil
}
