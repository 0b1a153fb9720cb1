package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/faguirre1/distribuidora-api/internal/domain/entity"
	"github.com/faguirre1/distribuidora-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación del log de movimientos (append-only).
// No hay UPDATE ni DELETE sobre esta tabla.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create inserta una entrada del log.
func (r *MovimientoRepo) Create(m *entity.MovimientoStock) error {
	query := `
		INSERT INTO movimientos_stock
			(id, fecha, tipo, producto_id, origen_id, destino_id, cantidad, referencia_id, usuario_id, observaciones, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Fecha, m.Tipo, m.ProductoID, m.OrigenID, m.DestinoID,
		m.Cantidad, m.ReferenciaID, m.UsuarioID, m.Observaciones, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

const movimientoCols = `id, fecha, tipo, producto_id, origen_id, destino_id, cantidad, referencia_id, usuario_id, observaciones, created_at`

// ListByProducto devuelve movimientos de un producto, fecha descendente,
// con filtro opcional de rango.
func (r *MovimientoRepo) ListByProducto(productoID string, desde, hasta *time.Time, limit, offset int) ([]*entity.MovimientoStock, error) {
	return r.list(`producto_id = $1`, productoID, desde, hasta, limit, offset)
}

// ListByUbicacion devuelve movimientos donde la ubicación participó como
// origen o destino.
func (r *MovimientoRepo) ListByUbicacion(ubicacionID string, desde, hasta *time.Time, limit, offset int) ([]*entity.MovimientoStock, error) {
	return r.list(`(origen_id = $1 OR destino_id = $1)`, ubicacionID, desde, hasta, limit, offset)
}

// ListByReferencia devuelve los movimientos causados por una operación
// (venta, carga, compra).
func (r *MovimientoRepo) ListByReferencia(referenciaID string) ([]*entity.MovimientoStock, error) {
	query := `SELECT ` + movimientoCols + ` FROM movimientos_stock WHERE referencia_id = $1 ORDER BY fecha`
	rows, err := r.q.Query(context.Background(), query, referenciaID)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	return scanMovimientos(rows)
}

func (r *MovimientoRepo) list(cond, id string, desde, hasta *time.Time, limit, offset int) ([]*entity.MovimientoStock, error) {
	query := `SELECT ` + movimientoCols + ` FROM movimientos_stock WHERE ` + cond
	args := []any{id}
	if desde != nil {
		args = append(args, *desde)
		query += ` AND fecha >= $` + strconv.Itoa(len(args))
	}
	if hasta != nil {
		args = append(args, *hasta)
		query += ` AND fecha <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY fecha DESC`
	if limit > 0 {
		args = append(args, limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
		args = append(args, offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	return scanMovimientos(rows)
}

func scanMovimientos(rows pgx.Rows) ([]*entity.MovimientoStock, error) {
	var list []*entity.MovimientoStock
	for rows.Next() {
		var m entity.MovimientoStock
		if err := rows.Scan(
			&m.ID, &m.Fecha, &m.Tipo, &m.ProductoID, &m.OrigenID, &m.DestinoID,
			&m.Cantidad, &m.ReferenciaID, &m.UsuarioID, &m.Observaciones, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
