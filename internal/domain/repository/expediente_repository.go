package repository

import (
	"context"
	"time"

	"github.com/dicri-mp/expedientes-api/internal/domain/entity"
)

// ExpedienteFiltro filtro de listado. Campos nulos no filtran.
type ExpedienteFiltro struct {
	Estado      *entity.EstadoExpediente
	FechaInicio *time.Time
	FechaFin    *time.Time
}

// CambioEstado datos extra que acompañan una transición de estado.
type CambioEstado struct {
	CoordinadorAsignado  *string // EnviarRevision
	JustificacionRechazo *string // Rechazar
}

// ExpedienteRepository puerto de persistencia para Expediente (DIP).
//
// Contrato de ActualizarEstado: la implementación debe aplicar la transición
// como una única actualización condicional ("estado = nuevo WHERE id = $id AND
// estado = esperado") y devolver false si ninguna fila coincidió. De dos
// transiciones concurrentes sobre el mismo expediente exactamente una recibe
// true; la otra debe tratarse como conflicto, nunca como éxito parcial.
type ExpedienteRepository interface {
	// Crear persiste un expediente nuevo. Número duplicado → domain.ErrDuplicado.
	Crear(ctx context.Context, e *entity.Expediente) error
	// ObtenerPorID devuelve nil, nil si no existe.
	ObtenerPorID(ctx context.Context, id string) (*entity.Expediente, error)
	Listar(ctx context.Context, filtro ExpedienteFiltro) ([]*entity.Expediente, error)
	// ActualizarDescripcion solo aplica si el expediente sigue En Registro;
	// devuelve false si no coincidió ninguna fila.
	ActualizarDescripcion(ctx context.Context, id, descripcion string) (bool, error)
	// ActualizarEstado transición atómica condicional (ver contrato arriba).
	ActualizarEstado(ctx context.Context, id string, esperado, nuevo entity.EstadoExpediente, extra CambioEstado) (bool, error)
}
