package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/faguirre1/distribuidora-api/internal/application/dto"
	"github.com/faguirre1/distribuidora-api/internal/domain"
)

// respondError mapea errores de dominio a códigos HTTP. Las violaciones de
// regla de negocio (stock, estado, exclusión de lote) responden 409: el
// request estaba bien formado, el estado actual lo rechazó.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrClienteInactivo):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CLIENTE_INACTIVO", Message: "el cliente está inactivo"})
	case errors.Is(err, domain.ErrVehiculoNoDisponible):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "VEHICULO_NO_DISPONIBLE", Message: "el vehículo no está disponible"})
	case errors.Is(err, domain.ErrGalponOcupado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "GALPON_OCUPADO", Message: "el galpón ya tiene un lote activo"})
	case errors.Is(err, domain.ErrMortalidadInvalida):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "MORTALIDAD_INVALIDA", Message: "la mortalidad supera la cantidad inicial del lote"})
	case errors.Is(err, domain.ErrLoteCerrado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LOTE_CERRADO", Message: "el lote ya está finalizado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
