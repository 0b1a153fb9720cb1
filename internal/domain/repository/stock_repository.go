package repository

import (
	"github.com/faguirre1/distribuidora-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// StockRepository define el puerto del libro de stock por ubicación+producto.
// Las mutaciones ocurren siempre dentro de transacciones del TxRunner.
type StockRepository interface {
	Get(ubicacionID, productoID string) (*entity.StockUbicacion, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE): serializa
	// transacciones concurrentes sobre el mismo par ubicación+producto.
	GetForUpdate(ubicacionID, productoID string) (*entity.StockUbicacion, error)
	// Acreditar suma cantidad al saldo del par ubicación+producto de forma
	// atómica, creando la fila si no existe. Es la vía obligada para los
	// créditos: no depende de haber leído ni bloqueado la fila antes.
	Acreditar(ubicacionID, productoID string, cantidad decimal.Decimal) error
	Upsert(stock *entity.StockUbicacion) error
	ListByUbicacion(ubicacionID string) ([]*entity.StockUbicacion, error)
	// TotalesPorProducto suma saldos de todas las ubicaciones en una sola
	// consulta (foto consistente para el evaluador de alertas).
	TotalesPorProducto() ([]*entity.TotalProducto, error)
	// StockBajoEnVehiculos devuelve saldos de vehículos por debajo del umbral.
	StockBajoEnVehiculos(umbral decimal.Decimal) ([]*entity.StockUbicacion, error)
}
