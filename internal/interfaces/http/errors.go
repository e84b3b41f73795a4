package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dicri-mp/expedientes-api/internal/application/dto"
	"github.com/dicri-mp/expedientes-api/internal/application/validation"
	"github.com/dicri-mp/expedientes-api/internal/domain"
)

// responderError traduce la taxonomía de errores de dominio a HTTP. Cada
// centinela tiene un código estable; los errores no clasificados terminan en
// 500 sin filtrar detalles.
func responderError(c *fiber.Ctx, err error) error {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: vErr.Mensaje})
	}
	switch {
	case errors.Is(err, domain.ErrValidacion):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNoAutorizado):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Credenciales invalidas"})
	case errors.Is(err, domain.ErrAccesoDenegado):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "No tienes permisos para realizar esta accion"})
	case errors.Is(err, domain.ErrNoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrConflicto):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrPersistencia):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORAGE_UNAVAILABLE", Message: "almacenamiento no disponible, intente más tarde"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
