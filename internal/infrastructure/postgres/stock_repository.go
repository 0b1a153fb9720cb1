package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/faguirre1/distribuidora-api/internal/domain/entity"
	"github.com/faguirre1/distribuidora-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el saldo actual de un producto en una ubicación.
// Sin fila = saldo cero, no es error.
func (r *StockRepo) Get(ubicacionID, productoID string) (*entity.StockUbicacion, error) {
	query := `
		SELECT ubicacion_id, producto_id, cantidad, updated_at
		FROM stock_ubicaciones WHERE ubicacion_id = $1 AND producto_id = $2`
	var s entity.StockUbicacion
	err := r.q.QueryRow(context.Background(), query, ubicacionID, productoID).Scan(
		&s.UbicacionID, &s.ProductoID, &s.Cantidad, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockUbicacion{UbicacionID: ubicacionID, ProductoID: productoID, Cantidad: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el saldo y bloquea la fila (SELECT FOR UPDATE):
// serializa transacciones concurrentes sobre el mismo par ubicación+producto.
func (r *StockRepo) GetForUpdate(ubicacionID, productoID string) (*entity.StockUbicacion, error) {
	query := `
		SELECT ubicacion_id, producto_id, cantidad, updated_at
		FROM stock_ubicaciones WHERE ubicacion_id = $1 AND producto_id = $2
		FOR UPDATE`
	var s entity.StockUbicacion
	err := r.q.QueryRow(context.Background(), query, ubicacionID, productoID).Scan(
		&s.UbicacionID, &s.ProductoID, &s.Cantidad, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockUbicacion{UbicacionID: ubicacionID, ProductoID: productoID, Cantidad: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Acreditar suma cantidad al saldo de forma atómica, creando la fila si no
// existe. A diferencia de GetForUpdate+Upsert no presupone una fila previa
// que bloquear: dos créditos concurrentes sobre un par sin fila se acumulan
// en vez de pisarse.
func (r *StockRepo) Acreditar(ubicacionID, productoID string, cantidad decimal.Decimal) error {
	query := `
		INSERT INTO stock_ubicaciones (ubicacion_id, producto_id, cantidad, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (ubicacion_id, producto_id)
		DO UPDATE SET cantidad = stock_ubicaciones.cantidad + EXCLUDED.cantidad, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, ubicacionID, productoID, cantidad)
	if err != nil {
		return fmt.Errorf("acreditar stock: %w", err)
	}
	return nil
}

// Upsert inserta o actualiza el saldo (por ubicación y producto).
func (r *StockRepo) Upsert(stock *entity.StockUbicacion) error {
	query := `
		INSERT INTO stock_ubicaciones (ubicacion_id, producto_id, cantidad, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (ubicacion_id, producto_id)
		DO UPDATE SET cantidad = EXCLUDED.cantidad, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, stock.UbicacionID, stock.ProductoID, stock.Cantidad)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListByUbicacion devuelve los saldos de una ubicación (depósito o vehículo).
func (r *StockRepo) ListByUbicacion(ubicacionID string) ([]*entity.StockUbicacion, error) {
	query := `
		SELECT ubicacion_id, producto_id, cantidad, updated_at
		FROM stock_ubicaciones WHERE ubicacion_id = $1 ORDER BY producto_id`
	rows, err := r.q.Query(context.Background(), query, ubicacionID)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockUbicacion
	for rows.Next() {
		var s entity.StockUbicacion
		if err := rows.Scan(&s.UbicacionID, &s.ProductoID, &s.Cantidad, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// TotalesPorProducto suma los saldos de todas las ubicaciones en una sola
// consulta (foto consistente).
func (r *StockRepo) TotalesPorProducto() ([]*entity.TotalProducto, error) {
	query := `
		SELECT producto_id, COALESCE(SUM(cantidad), 0)
		FROM stock_ubicaciones GROUP BY producto_id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("totales por producto: %w", err)
	}
	defer rows.Close()
	var list []*entity.TotalProducto
	for rows.Next() {
		var t entity.TotalProducto
		if err := rows.Scan(&t.ProductoID, &t.Total); err != nil {
			return nil, fmt.Errorf("scan total: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// StockBajoEnVehiculos devuelve saldos de vehículos por debajo del umbral.
// El depósito queda excluido: su mínimo lo gobierna el producto.
func (r *StockRepo) StockBajoEnVehiculos(umbral decimal.Decimal) ([]*entity.StockUbicacion, error) {
	query := `
		SELECT ubicacion_id, producto_id, cantidad, updated_at
		FROM stock_ubicaciones
		WHERE ubicacion_id <> $1 AND cantidad < $2
		ORDER BY ubicacion_id, producto_id`
	rows, err := r.q.Query(context.Background(), query, entity.UbicacionDeposito, umbral)
	if err != nil {
		return nil, fmt.Errorf("stock bajo en vehículos: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockUbicacion
	for rows.Next() {
		var s entity.StockUbicacion
		if err := rows.Scan(&s.UbicacionID, &s.ProductoID, &s.Cantidad, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
