package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/faguirre1/distribuidora-api/internal/application/dto"
	"github.com/faguirre1/distribuidora-api/internal/application/galpones"
)

// GalponHandler maneja galpones y el ciclo de vida de lotes de aves.
type GalponHandler struct {
	uc *galpones.GalponUseCase
}

// NewGalponHandler construye el handler.
func NewGalponHandler(uc *galpones.GalponUseCase) *GalponHandler {
	return &GalponHandler{uc: uc}
}

// Create crea un galpón.
// POST /api/galpones
func (h *GalponHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearGalponRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearGalpon(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista galpones con su lote activo.
// GET /api/galpones
func (h *GalponHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	out, err := h.uc.ListGalpones(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene un galpón con su lote activo.
// GET /api/galpones/:id
func (h *GalponHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetGalpon(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// IniciarLote abre un lote nuevo en el galpón (409 si ya hay uno activo).
// POST /api/galpones/:id/lotes
func (h *GalponHandler) IniciarLote(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.IniciarLoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.IniciarLote(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// HistorialLotes devuelve todos los lotes del galpón.
// GET /api/galpones/:id/lotes
func (h *GalponHandler) HistorialLotes(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.HistorialLotes(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetLote obtiene un lote.
// GET /api/lotes/:id
func (h *GalponHandler) GetLote(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetLote(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RegistrarMortalidad acumula bajas en el lote.
// POST /api/lotes/:id/mortalidad
func (h *GalponHandler) RegistrarMortalidad(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.RegistrarMortalidadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UsuarioID == "" {
		in.UsuarioID = GetUserID(c)
	}
	out, err := h.uc.RegistrarMortalidad(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// EventosMortalidad devuelve la auditoría de bajas del lote.
// GET /api/lotes/:id/mortalidad
func (h *GalponHandler) EventosMortalidad(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.EventosMortalidad(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// FinalizarLote cierra el lote (terminal).
// POST /api/lotes/:id/finalizar
func (h *GalponHandler) FinalizarLote(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.FinalizarLoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.FinalizarLote(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
