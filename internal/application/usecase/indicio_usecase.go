package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dicri-mp/expedientes-api/internal/application/dto"
	"github.com/dicri-mp/expedientes-api/internal/application/validation"
	"github.com/dicri-mp/expedientes-api/internal/domain"
	"github.com/dicri-mp/expedientes-api/internal/domain/authz"
	"github.com/dicri-mp/expedientes-api/internal/domain/entity"
	"github.com/dicri-mp/expedientes-api/internal/domain/repository"
)

// IndicioUseCase registro de indicios. Toda mutación carga primero el
// expediente dueño y exige estado En Registro; una vez enviado a revisión el
// conjunto de indicios queda congelado. La lectura no tiene guardas.
type IndicioUseCase struct {
	indicios    repository.IndicioRepository
	expedientes repository.ExpedienteRepository
}

// NewIndicioUseCase construye el caso de uso.
func NewIndicioUseCase(indicios repository.IndicioRepository, expedientes repository.ExpedienteRepository) *IndicioUseCase {
	return &IndicioUseCase{indicios: indicios, expedientes: expedientes}
}

// Crear agrega un indicio a un expediente En Registro.
func (uc *IndicioUseCase) Crear(ctx context.Context, in dto.CrearIndicioRequest, actor Actor) (*dto.IndicioCreadoResponse, error) {
	if err := authz.Autorizar(actor.Rol, authz.CrearIndicio); err != nil {
		return nil, err
	}
	if err := validation.ValidarIndicio(in.NombreObjeto, in.Descripcion, in.ExpedienteID, in.TamanoCm, in.PesoGramos); err != nil {
		return nil, err
	}
	if err := uc.verificarEnRegistro(ctx, in.ExpedienteID, "agregar indicios a expedientes"); err != nil {
		return nil, err
	}
	now := time.Now()
	ind := &entity.Indicio{
		ID:              uuid.New().String(),
		ExpedienteID:    in.ExpedienteID,
		NombreObjeto:    in.NombreObjeto,
		Descripcion:     in.Descripcion,
		Color:           in.Color,
		TamanoCm:        in.TamanoCm,
		PesoGramos:      in.PesoGramos,
		Ubicacion:       in.Ubicacion,
		TecnicoRegistro: actor.UsuarioID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.indicios.Crear(ctx, ind); err != nil {
		return nil, err
	}
	return &dto.IndicioCreadoResponse{IndicioID: ind.ID}, nil
}

// ListarPorExpediente lectura sin guardas, disponible en cualquier estado.
func (uc *IndicioUseCase) ListarPorExpediente(ctx context.Context, expedienteID string) ([]dto.IndicioResponse, error) {
	list, err := uc.indicios.ListarPorExpediente(ctx, expedienteID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IndicioResponse, 0, len(list))
	for _, ind := range list {
		items = append(items, *toIndicioResponse(ind))
	}
	return items, nil
}

// Actualizar edita un indicio mientras el expediente dueño siga En Registro.
func (uc *IndicioUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarIndicioRequest, actor Actor) error {
	if err := authz.Autorizar(actor.Rol, authz.EditarIndicio); err != nil {
		return err
	}
	ind, err := uc.indicios.ObtenerPorID(ctx, id)
	if err != nil {
		return err
	}
	if ind == nil {
		return fmt.Errorf("%w: indicio", domain.ErrNoEncontrado)
	}
	if err := validation.ValidarIndicio(in.NombreObjeto, in.Descripcion, ind.ExpedienteID, in.TamanoCm, in.PesoGramos); err != nil {
		return err
	}
	if err := uc.verificarEnRegistro(ctx, ind.ExpedienteID, "editar indicios de expedientes"); err != nil {
		return err
	}
	ind.NombreObjeto = in.NombreObjeto
	ind.Descripcion = in.Descripcion
	ind.Color = in.Color
	ind.TamanoCm = in.TamanoCm
	ind.PesoGramos = in.PesoGramos
	ind.Ubicacion = in.Ubicacion
	ind.UpdatedAt = time.Now()
	return uc.indicios.Actualizar(ctx, ind)
}

// Eliminar borra un indicio mientras el expediente dueño siga En Registro.
func (uc *IndicioUseCase) Eliminar(ctx context.Context, id string, actor Actor) error {
	if err := authz.Autorizar(actor.Rol, authz.EliminarIndicio); err != nil {
		return err
	}
	ind, err := uc.indicios.ObtenerPorID(ctx, id)
	if err != nil {
		return err
	}
	if ind == nil {
		return fmt.Errorf("%w: indicio", domain.ErrNoEncontrado)
	}
	if err := uc.verificarEnRegistro(ctx, ind.ExpedienteID, "eliminar indicios de expedientes"); err != nil {
		return err
	}
	return uc.indicios.Eliminar(ctx, id)
}

func (uc *IndicioUseCase) verificarEnRegistro(ctx context.Context, expedienteID, accion string) error {
	exp, err := uc.expedientes.ObtenerPorID(ctx, expedienteID)
	if err != nil {
		return err
	}
	if exp == nil {
		return fmt.Errorf("%w: expediente", domain.ErrNoEncontrado)
	}
	if exp.Estado != entity.EstadoEnRegistro {
		return fmt.Errorf("%w: solo se pueden %s en registro", domain.ErrConflicto, accion)
	}
	return nil
}

func toIndicioResponse(i *entity.Indicio) *dto.IndicioResponse {
	return &dto.IndicioResponse{
		IndicioID:       i.ID,
		ExpedienteID:    i.ExpedienteID,
		NombreObjeto:    i.NombreObjeto,
		Descripcion:     i.Descripcion,
		Color:           i.Color,
		TamanoCm:        i.TamanoCm,
		PesoGramos:      i.PesoGramos,
		Ubicacion:       i.Ubicacion,
		TecnicoRegistro: i.TecnicoRegistro,
		CreatedAt:       i.CreatedAt,
	}
}
