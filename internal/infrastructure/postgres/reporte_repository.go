package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dicri-mp/expedientes-api/internal/domain/entity"
	"github.com/dicri-mp/expedientes-api/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

// ReporteRepo consultas read-only de reportería sobre PostgreSQL.
type ReporteRepo struct {
	pool *pgxpool.Pool
}

// NewReporteRepository construye el adaptador de reportería.
func NewReporteRepository(pool *pgxpool.Pool) *ReporteRepo {
	return &ReporteRepo{pool: pool}
}

// BuscarReporte expedientes creados en [desde, hasta], nombres de técnico y
// coordinador resueltos y conteo de indicios por fila.
func (r *ReporteRepo) BuscarReporte(ctx context.Context, desde, hasta time.Time, estado *entity.EstadoExpediente) ([]repository.FilaReporte, error) {
	query := `
		SELECT e.id, e.numero_expediente, e.descripcion, e.fecha_creacion,
			ut.nombre AS tecnico_nombre,
			uc.nombre AS coordinador_nombre,
			e.estado, e.justificacion_rechazo,
			(SELECT COUNT(*) FROM indicios i WHERE i.expediente_id = e.id) AS total_indicios
		FROM expedientes e
		INNER JOIN usuarios ut ON e.tecnico_registro = ut.id
		LEFT JOIN usuarios uc ON e.coordinador_asignado = uc.id
		WHERE e.fecha_creacion >= $1 AND e.fecha_creacion <= $2`
	args := []any{desde, hasta}
	if estado != nil {
		args = append(args, string(*estado))
		query += ` AND e.estado = $3`
	}
	query += ` ORDER BY e.fecha_creacion DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapConn("reporte expedientes", err)
	}
	defer rows.Close()
	var filas []repository.FilaReporte
	for rows.Next() {
		var f repository.FilaReporte
		var estadoStr string
		if err := rows.Scan(
			&f.ExpedienteID, &f.NumeroExpediente, &f.Descripcion, &f.FechaCreacion,
			&f.TecnicoNombre, &f.CoordinadorNombre, &estadoStr, &f.JustificacionRechazo,
			&f.TotalIndicios,
		); err != nil {
			return nil, wrapConn("scan fila reporte", err)
		}
		f.Estado = entity.EstadoExpediente(estadoStr)
		filas = append(filas, f)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapConn("rows reporte", err)
	}
	return filas, nil
}

// ContarPorEstado conteo global por estado en una sola pasada.
func (r *ReporteRepo) ContarPorEstado(ctx context.Context) (repository.ConteoEstados, error) {
	query := `
		SELECT COUNT(*) AS total,
			COUNT(*) FILTER (WHERE estado = 'En Registro') AS en_registro,
			COUNT(*) FILTER (WHERE estado = 'En Revision') AS en_revision,
			COUNT(*) FILTER (WHERE estado = 'Aprobado') AS aprobados,
			COUNT(*) FILTER (WHERE estado = 'Rechazado') AS rechazados
		FROM expedientes`
	var c repository.ConteoEstados
	err := r.pool.QueryRow(ctx, query).Scan(&c.Total, &c.EnRegistro, &c.EnRevision, &c.Aprobados, &c.Rechazados)
	if err != nil {
		return repository.ConteoEstados{}, wrapConn("contar estados", err)
	}
	return c, nil
}

// PendientesRevision expedientes En Revision asignados al coordinador.
// updated_at marca el instante del envío a revisión: es la última transición
// aplicada sobre un expediente que sigue En Revision.
func (r *ReporteRepo) PendientesRevision(ctx context.Context, coordinadorID string) ([]repository.FilaPendiente, error) {
	query := `
		SELECT e.id, e.numero_expediente, e.descripcion, ut.nombre AS tecnico_nombre,
			e.fecha_creacion, e.updated_at,
			(SELECT COUNT(*) FROM indicios i WHERE i.expediente_id = e.id) AS total_indicios
		FROM expedientes e
		INNER JOIN usuarios ut ON e.tecnico_registro = ut.id
		WHERE e.estado = 'En Revision' AND e.coordinador_asignado = $1
		ORDER BY e.updated_at`
	rows, err := r.pool.Query(ctx, query, coordinadorID)
	if err != nil {
		return nil, wrapConn("pendientes revision", err)
	}
	defer rows.Close()
	var filas []repository.FilaPendiente
	for rows.Next() {
		var f repository.FilaPendiente
		if err := rows.Scan(
			&f.ExpedienteID, &f.NumeroExpediente, &f.Descripcion, &f.TecnicoNombre,
			&f.FechaCreacion, &f.FechaEnvioRevision, &f.TotalIndicios,
		); err != nil {
			return nil, wrapConn("scan pendiente", err)
		}
		filas = append(filas, f)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapConn("rows pendientes", err)
	}
	return filas, nil
}
