package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dicri-mp/expedientes-api/internal/application/dto"
	"github.com/dicri-mp/expedientes-api/internal/application/usecase"
	"github.com/dicri-mp/expedientes-api/internal/domain/authz"
	"github.com/dicri-mp/expedientes-api/internal/domain/entity"
	"github.com/dicri-mp/expedientes-api/pkg/jwt"
)

// Locals keys para UsuarioID y Rol en Fiber.
const (
	LocalUsuarioID = "usuario_id"
	LocalRol       = "rol"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UsuarioID y Rol a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		usuarioID, rol, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUsuarioID, usuarioID)
		c.Locals(LocalRol, rol)
		return c.Next()
	}
}

// RequirePermiso autoriza la ruta contra la tabla de capacidades: el rol del
// token debe poder ejecutar la operación. Debe usarse DESPUÉS de
// AuthMiddleware. Los casos de uso vuelven a consultar la misma tabla, así
// que este middleware es un corte temprano, no la única barrera.
func RequirePermiso(op authz.Operacion) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rol := GetRol(c)
		if rol == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sin rol"})
		}
		if !authz.Puede(entity.Rol(rol), op) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "No tienes permisos para realizar esta accion"})
		}
		return c.Next()
	}
}

// GetUsuarioID devuelve el UsuarioID del contexto (después del middleware de auth).
func GetUsuarioID(c *fiber.Ctx) string {
	v := c.Locals(LocalUsuarioID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRol devuelve el Rol del contexto (después del middleware de auth).
func GetRol(c *fiber.Ctx) string {
	v := c.Locals(LocalRol)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetActor arma el Actor de los casos de uso a partir del contexto.
func GetActor(c *fiber.Ctx) usecase.Actor {
	return usecase.Actor{
		UsuarioID: GetUsuarioID(c),
		Rol:       entity.Rol(GetRol(c)),
	}
}
