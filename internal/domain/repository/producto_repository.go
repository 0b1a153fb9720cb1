package repository

import (
	"github.com/faguirre1/distribuidora-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductoRepository define el puerto de persistencia para Producto.
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	List(limit, offset int) ([]*entity.Producto, error)
	Update(producto *entity.Producto) error
	// UpdateCostoUltimaCompra actualiza solo el costo (lo usa el registro de compras).
	UpdateCostoUltimaCompra(productoID string, costo decimal.Decimal) error
	Delete(id string) error
}
