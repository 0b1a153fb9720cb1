package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/faguirre1/distribuidora-api/internal/application/dto"
	"github.com/faguirre1/distribuidora-api/internal/application/ventas"
)

// VentaHandler maneja la liquidación de ventas (protegido).
type VentaHandler struct {
	uc *ventas.RegistrarVentaUseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *ventas.RegistrarVentaUseCase) *VentaHandler {
	return &VentaHandler{uc: uc}
}

// Create liquida una venta: debita el stock del vehículo, actualiza la
// cuenta del cliente y persiste la venta, todo o nada.
// POST /api/ventas
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.RegistrarVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UsuarioID == "" {
		in.UsuarioID = GetUserID(c)
	}
	out, err := h.uc.RegistrarVenta(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una venta con su detalle.
// GET /api/ventas/:id
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetVenta(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PorVehiculo devuelve las ventas de un vehículo en un día (hoy si no se
// pasa fecha).
// GET /api/ventas/vehiculo/:id?fecha=2026-08-31
func (h *VentaHandler) PorVehiculo(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	dia := time.Now()
	if s := c.Query("fecha"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida (YYYY-MM-DD)"})
		}
		dia = parsed
	}
	out, err := h.uc.VentasPorVehiculo(c.Context(), id, dia)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
