package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/faguirre1/distribuidora-api/internal/application/dto"
	"github.com/faguirre1/distribuidora-api/internal/application/inventario"
)

// InventarioHandler maneja las operaciones sobre el libro de stock:
// cargas y descargas de vehículo, mermas, compras y consultas.
type InventarioHandler struct {
	uc *inventario.InventarioUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *inventario.InventarioUseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// Cargar transfiere stock del depósito a un vehículo (todo o nada).
// POST /api/inventario/cargar
func (h *InventarioHandler) Cargar(c *fiber.Ctx) error {
	var in dto.CargaVehiculoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UsuarioID == "" {
		in.UsuarioID = GetUserID(c)
	}
	out, err := h.uc.CargarVehiculo(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Descargar devuelve stock del vehículo al depósito (todo o nada).
// POST /api/inventario/descargar
func (h *InventarioHandler) Descargar(c *fiber.Ctx) error {
	var in dto.CargaVehiculoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UsuarioID == "" {
		in.UsuarioID = GetUserID(c)
	}
	out, err := h.uc.DescargarVehiculo(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Merma registra roturas o pérdidas en un vehículo (débito sin crédito).
// POST /api/inventario/merma
func (h *InventarioHandler) Merma(c *fiber.Ctx) error {
	var in dto.MermaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UsuarioID == "" {
		in.UsuarioID = GetUserID(c)
	}
	if err := h.uc.RegistrarMerma(c.Context(), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// Compra registra un ingreso externo al depósito y actualiza el costo de
// última compra de cada producto.
// POST /api/inventario/compras
func (h *InventarioHandler) Compra(c *fiber.Ctx) error {
	var in dto.CompraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UsuarioID == "" {
		in.UsuarioID = GetUserID(c)
	}
	if err := h.uc.RegistrarCompra(c.Context(), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// StockVehiculo devuelve los saldos actuales de un vehículo.
// GET /api/inventario/vehiculo/:id
func (h *InventarioHandler) StockVehiculo(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.StockVehiculo(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Movimientos consulta el log de movimientos por producto o ubicación.
// GET /api/inventario/movimientos?productoId=&ubicacionId=&desde=&hasta=
func (h *InventarioHandler) Movimientos(c *fiber.Ctx) error {
	productoID := c.Query("productoId")
	ubicacionID := c.Query("ubicacionId")
	desde, err := parseFecha(c.Query("desde"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "desde inválido (RFC3339)"})
	}
	hasta, err := parseFecha(c.Query("hasta"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "hasta inválido (RFC3339)"})
	}
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	out, err := h.uc.Movimientos(c.Context(), productoID, ubicacionID, desde, hasta, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func parseFecha(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		// También se acepta fecha sola.
		t, err = time.Parse("2006-01-02", s)
		if err != nil {
			return nil, err
		}
	}
	return &t, nil
}
