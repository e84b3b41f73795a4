package repository

import (
	"context"
	"time"

	"github.com/dicri-mp/expedientes-api/internal/domain/entity"
)

// FilaReporte fila cruda del reporte por rango de fechas.
// La produce la DB; el caso de uso la convierte en DTO.
type FilaReporte struct {
	ExpedienteID         string
	NumeroExpediente     string
	Descripcion          string
	FechaCreacion        time.Time
	TecnicoNombre        string
	CoordinadorNombre    *string
	Estado               entity.EstadoExpediente
	JustificacionRechazo *string
	TotalIndicios        int
}

// FilaPendiente expediente En Revision asignado a un coordinador.
// FechaEnvioRevision es el instante en que entró a revisión; el caso de uso
// calcula los días transcurridos.
type FilaPendiente struct {
	ExpedienteID       string
	NumeroExpediente   string
	Descripcion        string
	TecnicoNombre      string
	FechaCreacion      time.Time
	FechaEnvioRevision time.Time
	TotalIndicios      int
}

// ConteoEstados conteo global de expedientes por estado.
type ConteoEstados struct {
	Total      int
	EnRegistro int
	EnRevision int
	Aprobados  int
	Rechazados int
}

// ReporteRepository consultas read-only para reportería. No requieren ser
// linealizables con escrituras concurrentes: basta una foto puntual.
type ReporteRepository interface {
	// BuscarReporte expedientes creados dentro de [desde, hasta] inclusive,
	// opcionalmente restringidos a un estado, ordenados por fecha descendente.
	BuscarReporte(ctx context.Context, desde, hasta time.Time, estado *entity.EstadoExpediente) ([]FilaReporte, error)
	// ContarPorEstado conteo global, sin filtros.
	ContarPorEstado(ctx context.Context) (ConteoEstados, error)
	// PendientesRevision expedientes En Revision del coordinador dado.
	PendientesRevision(ctx context.Context, coordinadorID string) ([]FilaPendiente, error)
}
