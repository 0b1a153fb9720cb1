package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/faguirre1/distribuidora-api/internal/application/alertas"
)

// AlertaHandler expone el evaluador de alertas (protegido).
type AlertaHandler struct {
	evaluator *alertas.Evaluator
}

// NewAlertaHandler construye el handler.
func NewAlertaHandler(evaluator *alertas.Evaluator) *AlertaHandler {
	return &AlertaHandler{evaluator: evaluator}
}

// List evalúa y devuelve las alertas activas ahora. Sin estado: dos
// llamadas sobre el mismo stock devuelven lo mismo.
// GET /api/alertas
func (h *AlertaHandler) List(c *fiber.Ctx) error {
	out, err := h.evaluator.Evaluar(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
