// Package usecase contiene los casos de uso del flujo de expedientes: el
// ciclo de vida (creación, envío a revisión, aprobación, rechazo), el
// registro de indicios y la reportería.
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

// ExpedienteUseCase gestiona el ciclo de vida de los expedientes.
//
// Toda transición sigue el mismo esquema: autorización por rol → validación
// estructural → precondiciones de estado leídas del repositorio →
// actualización condicional atómica ("estado = nuevo WHERE estado =
// esperado"). Si la actualización no coincide con ninguna fila, la
// precondición dejó de cumplirse entre la lectura y la escritura (carrera
// perdida) y la operación termina en ErrConflicto sin ninguna mutación.
type ExpedienteUseCase struct {
	expedientes repository.ExpedienteRepository
	indicios    repository.IndicioRepository
	usuarios    repository.UsuarioRepository
}

// NewExpedienteUseCase construye el caso de uso.
func NewExpedienteUseCase(
	expedientes repository.ExpedienteRepository,
	indicios repository.IndicioRepository,
	usuarios repository.UsuarioRepository,
) *ExpedienteUseCase {
	return &ExpedienteUseCase{expedientes: expedientes, indicios: indicios, usuarios: usuarios}
}

// Crear registra un expediente nuevo En Registro a nombre del actor.
// Número duplicado → ErrDuplicado; el expediente original no se toca.
func (uc *ExpedienteUseCase) Crear(ctx context.Context, in dto.CrearExpedienteRequest, actor Actor) (*dto.ExpedienteCreadoResponse, error) {
	if err := authz.Autorizar(actor.Rol, authz.CrearExpediente); err != nil {
		return nil, err
	}
	if err := validation.ValidarExpediente(in.NumeroExpediente, in.Descripcion); err != nil {
		return nil, err
	}
	now := time.Now()
	exp := &entity.Expediente{
		ID:               uuid.New().String(),
		NumeroExpediente: in.NumeroExpediente,
		Descripcion:      in.Descripcion,
		Estado:           entity.EstadoEnRegistro,
		TecnicoRegistro:  actor.UsuarioID,
		FechaCreacion:    now,
		UpdatedAt:        now,
	}
	if err := uc.expedientes.Crear(ctx, exp); err != nil {
		return nil, err
	}
	return &dto.ExpedienteCreadoResponse{ExpedienteID: exp.ID}, nil
}

// ObtenerPorID devuelve el expediente con su conteo de indicios.
func (uc *ExpedienteUseCase) ObtenerPorID(ctx context.Context, id string) (*dto.ExpedienteResponse, error) {
	exp, err := uc.expedientes.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if exp == nil {
		return nil, fmt.Errorf("%w: expediente", domain.ErrNoEncontrado)
	}
	total, err := uc.indicios.ContarPorExpediente(ctx, exp.ID)
	if err != nil {
		return nil, err
	}
	return toExpedienteResponse(exp, total), nil
}

// Listar devuelve los expedientes que cumplen el filtro (lectura sin guardas).
func (uc *ExpedienteUseCase) Listar(ctx context.Context, filtro repository.ExpedienteFiltro) (*dto.ExpedienteListResponse, error) {
	list, err := uc.expedientes.Listar(ctx, filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpedienteResponse, 0, len(list))
	for _, exp := range list {
		total, err := uc.indicios.ContarPorExpediente(ctx, exp.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, *toExpedienteResponse(exp, total))
	}
	return &dto.ExpedienteListResponse{Items: items, Total: len(items)}, nil
}

// ActualizarDescripcion edita la descripción. Solo permitido En Registro.
func (uc *ExpedienteUseCase) ActualizarDescripcion(ctx context.Context, id string, in dto.ActualizarExpedienteRequest, actor Actor) error {
	if err := authz.Autorizar(actor.Rol, authz.EditarExpediente); err != nil {
		return err
	}
	if err := validation.ValidarDescripcion(in.Descripcion); err != nil {
		return err
	}
	exp, err := uc.expedientes.ObtenerPorID(ctx, id)
	if err != nil {
		return err
	}
	if exp == nil {
		return fmt.Errorf("%w: expediente", domain.ErrNoEncontrado)
	}
	if exp.Estado != entity.EstadoEnRegistro {
		return fmt.Errorf("%w: solo se puede editar un expediente en registro", domain.ErrConflicto)
	}
	// La actualización es condicional al estado para cubrir la carrera entre
	// la lectura y la escritura.
	ok, err := uc.expedientes.ActualizarDescripcion(ctx, id, in.Descripcion)
	if err != nil {
		return err
	}
	if !ok {
		return uc.clasificarFallo(ctx, id)
	}
	return nil
}

// EnviarRevision transición En Registro → En Revision. Requiere al menos un
// indicio y un coordinador activo con rol Coordinador, que queda asignado.
func (uc *ExpedienteUseCase) EnviarRevision(ctx context.Context, id, coordinadorID string, actor Actor) error {
	if err := authz.Autorizar(actor.Rol, authz.EnviarRevision); err != nil {
		return err
	}
	if err := validation.ValidarEnviarRevision(coordinadorID); err != nil {
		return err
	}
	exp, err := uc.expedientes.ObtenerPorID(ctx, id)
	if err != nil {
		return err
	}
	if exp == nil {
		return fmt.Errorf("%w: expediente", domain.ErrNoEncontrado)
	}
	if !exp.Estado.PuedeTransicionar(entity.EstadoEnRevision) {
		return fmt.Errorf("%w: el expediente no está en registro", domain.ErrConflicto)
	}
	total, err := uc.indicios.ContarPorExpediente(ctx, id)
	if err != nil {
		return err
	}
	if total == 0 {
		return fmt.Errorf("%w: el expediente debe tener al menos un indicio", domain.ErrConflicto)
	}
	coordinador, err := uc.usuarios.ObtenerPorID(ctx, coordinadorID)
	if err != nil {
		return err
	}
	if coordinador == nil {
		return fmt.Errorf("%w: coordinador", domain.ErrNoEncontrado)
	}
	if !coordinador.Activo || coordinador.Rol != entity.RolCoordinador {
		return fmt.Errorf("%w: el usuario asignado no es un coordinador activo", domain.ErrValidacion)
	}
	ok, err := uc.expedientes.ActualizarEstado(ctx, id, entity.EstadoEnRegistro, entity.EstadoEnRevision,
		repository.CambioEstado{CoordinadorAsignado: &coordinadorID})
	if err != nil {
		return err
	}
	if !ok {
		return uc.clasificarFallo(ctx, id)
	}
	return nil
}

// Aprobar transición En Revision → Aprobado (terminal).
func (uc *ExpedienteUseCase) Aprobar(ctx context.Context, id string, actor Actor) error {
	if err := authz.Autorizar(actor.Rol, authz.Aprobar); err != nil {
		return err
	}
	return uc.resolverRevision(ctx, id, entity.EstadoAprobado, repository.CambioEstado{})
}

// Rechazar transición En Revision → Rechazado (terminal). La justificación es
// obligatoria y queda almacenada en el expediente.
func (uc *ExpedienteUseCase) Rechazar(ctx context.Context, id, justificacion string, actor Actor) error {
	if err := authz.Autorizar(actor.Rol, authz.Rechazar); err != nil {
		return err
	}
	if err := validation.ValidarJustificacion(justificacion); err != nil {
		return err
	}
	return uc.resolverRevision(ctx, id, entity.EstadoRechazado,
		repository.CambioEstado{JustificacionRechazo: &justificacion})
}

func (uc *ExpedienteUseCase) resolverRevision(ctx context.Context, id string, destino entity.EstadoExpediente, extra repository.CambioEstado) error {
	exp, err := uc.expedientes.ObtenerPorID(ctx, id)
	if err != nil {
		return err
	}
	if exp == nil {
		return fmt.Errorf("%w: expediente", domain.ErrNoEncontrado)
	}
	if !exp.Estado.PuedeTransicionar(destino) {
		return fmt.Errorf("%w: el expediente no está en revisión", domain.ErrConflicto)
	}
	ok, err := uc.expedientes.ActualizarEstado(ctx, id, entity.EstadoEnRevision, destino, extra)
	if err != nil {
		return err
	}
	if !ok {
		return uc.clasificarFallo(ctx, id)
	}
	return nil
}

// clasificarFallo distingue, tras una actualización condicional sin filas
// afectadas, entre expediente inexistente y estado cambiado por otra petición.
func (uc *ExpedienteUseCase) clasificarFallo(ctx context.Context, id string) error {
	exp, err := uc.expedientes.ObtenerPorID(ctx, id)
	if err != nil {
		return err
	}
	if exp == nil {
		return fmt.Errorf("%w: expediente", domain.ErrNoEncontrado)
	}
	return fmt.Errorf("%w: el estado del expediente cambió, recargue e intente de nuevo", domain.ErrConflicto)
}

func toExpedienteResponse(e *entity.Expediente, totalIndicios int) *dto.ExpedienteResponse {
	return &dto.ExpedienteResponse{
		ExpedienteID:         e.ID,
		NumeroExpediente:     e.NumeroExpediente,
		Descripcion:          e.Descripcion,
		Estado:               string(e.Estado),
		TecnicoRegistro:      e.TecnicoRegistro,
		CoordinadorAsignado:  e.CoordinadorAsignado,
		JustificacionRechazo: e.JustificacionRechazo,
		FechaCreacion:        e.FechaCreacion,
		TotalIndicios:        totalIndicios,
	}
}
