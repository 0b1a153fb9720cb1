package repository

import (
	"time"

	"github.com/faguirre1/distribuidora-api/internal/domain/entity"
)

// MovimientoRepository define el puerto del log de movimientos de stock.
// Solo inserta y consulta: el log es append-only, nunca se edita.
type MovimientoRepository interface {
	Create(movimiento *entity.MovimientoStock) error
	ListByProducto(productoID string, desde, hasta *time.Time, limit, offset int) ([]*entity.MovimientoStock, error)
	ListByUbicacion(ubicacionID string, desde, hasta *time.Time, limit, offset int) ([]*entity.MovimientoStock, error)
	ListByReferencia(referenciaID string) ([]*entity.MovimientoStock, error)
}
