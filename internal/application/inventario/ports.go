package inventario

import (
	"context"

	"github.com/faguirre1/distribuidora-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// inventario: o se aplican todas las líneas de una operación, o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		movRepo repository.MovimientoRepository,
		productoRepo repository.ProductoRepository,
	) error) error
}
