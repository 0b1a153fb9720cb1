package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/faguirre1/distribuidora-api/internal/application/galpones"
	"github.com/faguirre1/distribuidora-api/internal/application/inventario"
	"github.com/faguirre1/distribuidora-api/internal/application/ventas"
	"github.com/faguirre1/distribuidora-api/internal/domain/repository"
)

// Ensure TxRunner implements los TxRunner de cada contexto.
var _ inventario.TxRunner = (*TxRunner)(nil)
var _ ventas.TxRunner = (*TxRunner)(nil)
var _ galpones.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con los repos del motor de inventario y hace
// Commit o Rollback según el resultado de fn.
func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	movRepo repository.MovimientoRepository,
	productoRepo repository.ProductoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockRepository(tx), NewMovimientoRepository(tx), NewProductoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunVenta inicia una transacción con los repos de la liquidación de ventas
// (stock del vehículo + cuenta del cliente + venta, todo o nada).
func (r *TxRunner) RunVenta(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	movRepo repository.MovimientoRepository,
	clienteRepo repository.ClienteRepository,
	ventaRepo repository.VentaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockRepository(tx), NewMovimientoRepository(tx), NewClienteRepository(tx), NewVentaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPago inicia una transacción para registrar un cobro contra la deuda.
func (r *TxRunner) RunPago(ctx context.Context, fn func(
	clienteRepo repository.ClienteRepository,
	pagoRepo repository.PagoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewClienteRepository(tx), NewPagoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunLote inicia una transacción para las transiciones del ciclo de lotes.
func (r *TxRunner) RunLote(ctx context.Context, fn func(
	galponRepo repository.GalponRepository,
	loteRepo repository.LoteRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewGalponRepository(tx), NewLoteRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
