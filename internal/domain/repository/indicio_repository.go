package repository

import (
	"context"

	"github.com/dicri-mp/expedientes-api/internal/domain/entity"
)

// IndicioRepository puerto de persistencia para Indicio.
// El guard de estado del expediente dueño vive en el caso de uso, no aquí.
type IndicioRepository interface {
	Crear(ctx context.Context, i *entity.Indicio) error
	// ObtenerPorID devuelve nil, nil si no existe.
	ObtenerPorID(ctx context.Context, id string) (*entity.Indicio, error)
	ListarPorExpediente(ctx context.Context, expedienteID string) ([]*entity.Indicio, error)
	ContarPorExpediente(ctx context.Context, expedienteID string) (int, error)
	Actualizar(ctx context.Context, i *entity.Indicio) error
	Eliminar(ctx context.Context, id string) error
}
