package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/faguirre1/distribuidora-api/internal/application/dto"
	"github.com/faguirre1/distribuidora-api/internal/application/usecase"
)

// EmpleadoHandler maneja las peticiones HTTP para empleados (solo admin).
type EmpleadoHandler struct {
	uc *usecase.EmpleadoUseCase
}

// NewEmpleadoHandler construye el handler.
func NewEmpleadoHandler(uc *usecase.EmpleadoUseCase) *EmpleadoHandler {
	return &EmpleadoHandler{uc: uc}
}

// Create crea un empleado (contraseña hasheada con bcrypt).
// POST /api/empleados
func (h *EmpleadoHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearEmpleadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un empleado.
// GET /api/empleados/:id
func (h *EmpleadoHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista empleados con paginación.
// GET /api/empleados
func (h *EmpleadoHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza un empleado.
// PUT /api/empleados/:id
func (h *EmpleadoHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.ActualizarEmpleadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
