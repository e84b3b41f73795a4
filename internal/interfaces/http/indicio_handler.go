package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dicri-mp/expedientes-api/internal/application/dto"
	"github.com/dicri-mp/expedientes-api/internal/application/usecase"
)

// IndicioHandler maneja el registro de indicios.
type IndicioHandler struct {
	uc *usecase.IndicioUseCase
}

// NewIndicioHandler construye el handler de indicios.
func NewIndicioHandler(uc *usecase.IndicioUseCase) *IndicioHandler {
	return &IndicioHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear indicio (expediente En Registro)
// @Tags         indicios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearIndicioRequest  true  "nombre_objeto, descripcion, expediente_id y atributos opcionales"
// @Success      201   {object}  dto.IndicioCreadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/indicios [post]
func (h *IndicioHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearIndicioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.Context(), in, GetActor(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListarPorExpediente godoc
// @Summary      Listar indicios de un expediente
// @Tags         indicios
// @Produce      json
// @Param        expediente_id  path  string  true  "expediente id"
// @Success      200  {array}  dto.IndicioResponse
// @Router       /api/indicios/expediente/{expediente_id} [get]
func (h *IndicioHandler) ListarPorExpediente(c *fiber.Ctx) error {
	items, err := h.uc.ListarPorExpediente(c.Context(), c.Params("expediente_id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(items)
}

// Actualizar godoc
// @Summary      Actualizar indicio (expediente En Registro)
// @Tags         indicios
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "indicio id"
// @Param        body  body  dto.ActualizarIndicioRequest true  "campos del indicio"
// @Success      200   {object}  dto.MensajeResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/indicios/{id} [put]
func (h *IndicioHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarIndicioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Actualizar(c.Context(), c.Params("id"), in, GetActor(c)); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Indicio actualizado exitosamente"})
}

// Eliminar godoc
// @Summary      Eliminar indicio (expediente En Registro)
// @Tags         indicios
// @Produce      json
// @Param        id   path  string  true  "indicio id"
// @Success      200  {object}  dto.MensajeResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/indicios/{id} [delete]
func (h *IndicioHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id"), GetActor(c)); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Indicio eliminado exitosamente"})
}
