package repository

import (
	"time"

	"github.com/faguirre1/distribuidora-api/internal/domain/entity"
)

// VentaRepository define el puerto de persistencia para ventas comprometidas.
// Las ventas son inmutables: no hay Update ni Delete.
type VentaRepository interface {
	Create(venta *entity.Venta) error
	CreateDetalle(detalle *entity.DetalleVenta) error
	GetByID(id string) (*entity.Venta, error)
	GetDetalles(ventaID string) ([]*entity.DetalleVenta, error)
	// ListByCliente devuelve ventas comprometidas, fecha descendente.
	ListByCliente(clienteID string, limit, offset int) ([]*entity.Venta, error)
	ListByVehiculoYFecha(vehiculoID string, dia time.Time) ([]*entity.Venta, error)
}

// PagoRepository define el puerto de persistencia para pagos de clientes.
type PagoRepository interface {
	Create(pago *entity.Pago) error
	ListByCliente(clienteID string) ([]*entity.Pago, error)
}
