package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dicri-mp/expedientes-api/internal/application/dto"
	"github.com/dicri-mp/expedientes-api/internal/application/usecase"
	"github.com/dicri-mp/expedientes-api/internal/domain/entity"
	"github.com/dicri-mp/expedientes-api/internal/domain/repository"
)

// ExpedienteHandler maneja el ciclo de vida de expedientes.
type ExpedienteHandler struct {
	uc *usecase.ExpedienteUseCase
}

// NewExpedienteHandler construye el handler de expedientes.
func NewExpedienteHandler(uc *usecase.ExpedienteUseCase) *ExpedienteHandler {
	return &ExpedienteHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear expediente
// @Tags         expedientes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearExpedienteRequest  true  "numero_expediente, descripcion"
// @Success      201   {object}  dto.ExpedienteCreadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/expedientes [post]
func (h *ExpedienteHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearExpedienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.Context(), in, GetActor(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar expedientes
// @Tags         expedientes
// @Produce      json
// @Param        estado        query  string  false  "filtro por estado"
// @Param        fecha_inicio  query  string  false  "2006-01-02"
// @Param        fecha_fin     query  string  false  "2006-01-02"
// @Success      200  {object}  dto.ExpedienteListResponse
// @Router       /api/expedientes [get]
func (h *ExpedienteHandler) Listar(c *fiber.Ctx) error {
	var filtro repository.ExpedienteFiltro
	if estado := c.Query("estado"); estado != "" && estado != entity.EstadoTodos {
		e := entity.EstadoExpediente(estado)
		filtro.Estado = &e
	}
	if desde := c.Query("fecha_inicio"); desde != "" {
		if t, err := time.ParseInLocation("2006-01-02", desde, time.Local); err == nil {
			filtro.FechaInicio = &t
		}
	}
	if hasta := c.Query("fecha_fin"); hasta != "" {
		if t, err := time.ParseInLocation("2006-01-02", hasta, time.Local); err == nil {
			fin := t.Add(24*time.Hour - time.Second)
			filtro.FechaFin = &fin
		}
	}
	out, err := h.uc.Listar(c.Context(), filtro)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ObtenerPorID godoc
// @Summary      Obtener expediente por ID
// @Tags         expedientes
// @Produce      json
// @Param        id   path      string  true  "expediente id"
// @Success      200  {object}  dto.ExpedienteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/expedientes/{id} [get]
func (h *ExpedienteHandler) ObtenerPorID(c *fiber.Ctx) error {
	out, err := h.uc.ObtenerPorID(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Actualizar godoc
// @Summary      Actualizar descripción (solo En Registro)
// @Tags         expedientes
// @Accept       json
// @Produce      json
// @Param        id    path  string                           true  "expediente id"
// @Param        body  body  dto.ActualizarExpedienteRequest  true  "descripcion"
// @Success      200   {object}  dto.MensajeResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/expedientes/{id} [put]
func (h *ExpedienteHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarExpedienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ActualizarDescripcion(c.Context(), c.Params("id"), in, GetActor(c)); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Expediente actualizado exitosamente"})
}

// EnviarRevision godoc
// @Summary      Enviar expediente a revisión
// @Tags         expedientes
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "expediente id"
// @Param        body  body  dto.EnviarRevisionRequest true  "coordinador_asignado"
// @Success      200   {object}  dto.MensajeResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/expedientes/{id}/enviar-revision [post]
func (h *ExpedienteHandler) EnviarRevision(c *fiber.Ctx) error {
	var in dto.EnviarRevisionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.EnviarRevision(c.Context(), c.Params("id"), in.CoordinadorAsignado, GetActor(c)); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Expediente enviado a revision"})
}

// Aprobar godoc
// @Summary      Aprobar expediente
// @Tags         expedientes
// @Produce      json
// @Param        id   path  string  true  "expediente id"
// @Success      200  {object}  dto.MensajeResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/expedientes/{id}/aprobar [post]
func (h *ExpedienteHandler) Aprobar(c *fiber.Ctx) error {
	if err := h.uc.Aprobar(c.Context(), c.Params("id"), GetActor(c)); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Expediente aprobado exitosamente"})
}

// Rechazar godoc
// @Summary      Rechazar expediente
// @Tags         expedientes
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "expediente id"
// @Param        body  body  dto.RechazarExpedienteRequest  true  "justificacion_rechazo (≥10 caracteres)"
// @Success      200   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/expedientes/{id}/rechazar [post]
func (h *ExpedienteHandler) Rechazar(c *fiber.Ctx) error {
	var in dto.RechazarExpedienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Rechazar(c.Context(), c.Params("id"), in.JustificacionRechazo, GetActor(c)); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Expediente rechazado"})
}
