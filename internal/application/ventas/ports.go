package ventas

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/faguirre1/distribuidora-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye los
// repositorios del motor de ventas. La liquidación completa (débitos de
// stock + deuda del cliente + venta) comparte una única tx.
type TxRunner interface {
	RunVenta(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		movRepo repository.MovimientoRepository,
		clienteRepo repository.ClienteRepository,
		ventaRepo repository.VentaRepository,
	) error) error

	RunPago(ctx context.Context, fn func(
		clienteRepo repository.ClienteRepository,
		pagoRepo repository.PagoRepository,
	) error) error
}

// InventarioUseCase integra el motor de ventas con el libro de stock.
// DescontarVentaEnTx debita una línea usando los repositorios del caller
// (misma transacción); si retorna ErrInsufficientStock el caller hace
// rollback de la venta entera.
type InventarioUseCase interface {
	DescontarVentaEnTx(
		stockRepo repository.StockRepository,
		movRepo repository.MovimientoRepository,
		vehiculoID, productoID, usuarioID string,
		cantidad decimal.Decimal,
		now time.Time,
		ventaID string,
	) error
}
