package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto distribuido (huevos, pollos, etc.).
// El stock agregado NO vive acá: se deriva sumando los saldos por ubicación
// en el libro de stock, para que siempre cuadre con los movimientos.
type Producto struct {
	ID                string
	Nombre            string
	EsHuevo           bool
	UnidadDeMedida    string // Maple, Cajón, Kg, Unidad
	UnidadesPorBulto  int    // ej. 30 para Maple, 360 para Cajón
	StockMinimoAlerta decimal.Decimal
	CostoUltimaCompra decimal.Decimal
	PrecioVenta       decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
