package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/faguirre1/distribuidora-api/internal/domain"
	"github.com/faguirre1/distribuidora-api/internal/domain/entity"
	"github.com/faguirre1/distribuidora-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación de ProductoRepository (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoCols = `id, nombre, es_huevo, unidad_de_medida, unidades_por_bulto, stock_minimo_alerta, costo_ultima_compra, precio_venta, created_at, updated_at`

// Create persiste un producto nuevo.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (` + productoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.EsHuevo, p.UnidadDeMedida, p.UnidadesPorBulto,
		p.StockMinimoAlerta, p.CostoUltimaCompra, p.PrecioVenta, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos WHERE id = $1`
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.EsHuevo, &p.UnidadDeMedida, &p.UnidadesPorBulto,
		&p.StockMinimoAlerta, &p.CostoUltimaCompra, &p.PrecioVenta, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// List lista productos por nombre con paginación. limit <= 0 lista todo.
func (r *ProductoRepo) List(limit, offset int) ([]*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos ORDER BY nombre`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(
			&p.ID, &p.Nombre, &p.EsHuevo, &p.UnidadDeMedida, &p.UnidadesPorBulto,
			&p.StockMinimoAlerta, &p.CostoUltimaCompra, &p.PrecioVenta, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos SET nombre = $2, es_huevo = $3, unidad_de_medida = $4,
			unidades_por_bulto = $5, stock_minimo_alerta = $6, precio_venta = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.EsHuevo, p.UnidadDeMedida, p.UnidadesPorBulto,
		p.StockMinimoAlerta, p.PrecioVenta, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// UpdateCostoUltimaCompra actualiza solo el costo (lo usa el registro de compras).
func (r *ProductoRepo) UpdateCostoUltimaCompra(productoID string, costo decimal.Decimal) error {
	query := `UPDATE productos SET costo_ultima_compra = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, productoID, costo)
	if err != nil {
		return fmt.Errorf("update costo producto: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}
