package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dicri-mp/expedientes-api/internal/application/auth"
	"github.com/dicri-mp/expedientes-api/internal/application/dto"
)

// AuthHandler maneja login, registro y listado de usuarios.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Register godoc
// @Summary      Registrar usuario (solo Administrador)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "nombre, email, password, rol"
// @Success      201   {object}  dto.UsuarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.Registrar(c.Context(), in, GetActor(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// ListarUsuarios godoc
// @Summary      Listar usuarios
// @Tags         auth
// @Produce      json
// @Success      200   {array}   dto.UsuarioResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/usuarios [get]
func (h *AuthHandler) ListarUsuarios(c *fiber.Ctx) error {
	items, err := h.uc.ListarUsuarios(c.Context(), GetActor(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(items)
}
