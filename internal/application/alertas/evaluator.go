package alertas

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/faguirre1/distribuidora-api/internal/application/dto"
	"github.com/faguirre1/distribuidora-api/internal/domain/entity"
	"github.com/faguirre1/distribuidora-api/internal/domain/repository"
)

// Evaluator produce alertas operativas a partir del estado actual del libro
// de stock. Es stateless e idempotente: evaluar dos veces el mismo estado
// devuelve las mismas alertas, no guarda nada y no dispara notificaciones.
type Evaluator struct {
	productoRepo   repository.ProductoRepository
	stockRepo      repository.StockRepository
	umbralVehiculo decimal.Decimal
}

// NewEvaluator construye el evaluador. umbralVehiculo es el saldo mínimo
// tolerado en un vehículo antes de marcarlo crítico.
func NewEvaluator(
	productoRepo repository.ProductoRepository,
	stockRepo repository.StockRepository,
	umbralVehiculo decimal.Decimal,
) *Evaluator {
	return &Evaluator{
		productoRepo:   productoRepo,
		stockRepo:      stockRepo,
		umbralVehiculo: umbralVehiculo,
	}
}

// Evaluar devuelve las alertas activas ahora. El stock agregado por producto
// sale de una sola consulta para que la foto sea consistente: un producto
// no puede aparecer a la vez bien y mal por leer saldos en dos momentos.
func (e *Evaluator) Evaluar(ctx context.Context) ([]dto.AlertaDTO, error) {
	productos, err := e.productoRepo.List(0, 0)
	if err != nil {
		return nil, err
	}
	porID := make(map[string]*entity.Producto, len(productos))
	for _, p := range productos {
		porID[p.ID] = p
	}

	totales, err := e.stockRepo.TotalesPorProducto()
	if err != nil {
		return nil, err
	}
	porProducto := make(map[string]decimal.Decimal, len(totales))
	for _, t := range totales {
		porProducto[t.ProductoID] = t.Total
	}

	alertas := make([]dto.AlertaDTO, 0)

	// Stock bajo global: total agregado < mínimo configurado del producto.
	// Un producto sin filas en el libro cuenta como saldo cero.
	for _, p := range productos {
		if !p.StockMinimoAlerta.GreaterThan(decimal.Zero) {
			continue
		}
		total, ok := porProducto[p.ID]
		if !ok {
			total = decimal.Zero
		}
		if total.GreaterThanOrEqual(p.StockMinimoAlerta) {
			continue
		}
		deficit := p.StockMinimoAlerta.Sub(total)
		alertas = append(alertas, dto.AlertaDTO{
			Tipo:        dto.AlertaStockBajo,
			ProductoID:  p.ID,
			Producto:    p.Nombre,
			StockActual: total,
			StockMinimo: p.StockMinimoAlerta,
			Deficit:     deficit,
			Mensaje:     fmt.Sprintf("Stock bajo de %s: quedan %s (mínimo %s)", p.Nombre, total.String(), p.StockMinimoAlerta.String()),
		})
	}

	// Stock crítico en vehículo: saldo por debajo del umbral operativo.
	bajos, err := e.stockRepo.StockBajoEnVehiculos(e.umbralVehiculo)
	if err != nil {
		return nil, err
	}
	for _, s := range bajos {
		nombre := s.ProductoID
		if p, ok := porID[s.ProductoID]; ok {
			nombre = p.Nombre
		}
		alertas = append(alertas, dto.AlertaDTO{
			Tipo:        dto.AlertaStockCriticoMovil,
			ProductoID:  s.ProductoID,
			Producto:    nombre,
			UbicacionID: s.UbicacionID,
			StockActual: s.Cantidad,
			StockMinimo: e.umbralVehiculo,
			Deficit:     e.umbralVehiculo.Sub(s.Cantidad),
			Mensaje:     fmt.Sprintf("Stock crítico de %s en vehículo %s: quedan %s", nombre, s.UbicacionID, s.Cantidad.String()),
		})
	}

	return alertas, nil
}
