package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/faguirre1/distribuidora-api/internal/domain/entity"
	"github.com/faguirre1/distribuidora-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)
var _ repository.PagoRepository = (*PagoRepo)(nil)

// VentaRepo implementación de VentaRepository. Las ventas son inmutables:
// esta tabla solo recibe INSERT y SELECT.
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

const ventaCols = `id, fecha, cliente_id, usuario_id, vehiculo_id, metodo_pago, descuento_porcentaje, total, total_neto, created_at`

// Create persiste la cabecera de la venta.
func (r *VentaRepo) Create(v *entity.Venta) error {
	query := `
		INSERT INTO ventas (` + ventaCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Fecha, v.ClienteID, v.UsuarioID, v.VehiculoID, v.MetodoPago,
		v.DescuentoPorcentaje, v.Total, v.TotalNeto, v.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// CreateDetalle persiste una línea de la venta.
func (r *VentaRepo) CreateDetalle(d *entity.DetalleVenta) error {
	query := `
		INSERT INTO detalles_venta (id, venta_id, producto_id, cantidad, precio_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.VentaID, d.ProductoID, d.Cantidad, d.PrecioUnitario, d.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert detalle venta: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *VentaRepo) GetByID(id string) (*entity.Venta, error) {
	query := `SELECT ` + ventaCols + ` FROM ventas WHERE id = $1`
	var v entity.Venta
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.Fecha, &v.ClienteID, &v.UsuarioID, &v.VehiculoID, &v.MetodoPago,
		&v.DescuentoPorcentaje, &v.Total, &v.TotalNeto, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &v, nil
}

// GetDetalles devuelve las líneas de una venta.
func (r *VentaRepo) GetDetalles(ventaID string) ([]*entity.DetalleVenta, error) {
	query := `
		SELECT id, venta_id, producto_id, cantidad, precio_unitario, subtotal
		FROM detalles_venta WHERE venta_id = $1`
	rows, err := r.q.Query(context.Background(), query, ventaID)
	if err != nil {
		return nil, fmt.Errorf("get detalles venta: %w", err)
	}
	defer rows.Close()
	var list []*entity.DetalleVenta
	for rows.Next() {
		var d entity.DetalleVenta
		if err := rows.Scan(&d.ID, &d.VentaID, &d.ProductoID, &d.Cantidad, &d.PrecioUnitario, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan detalle venta: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// ListByCliente devuelve ventas de un cliente, fecha descendente.
func (r *VentaRepo) ListByCliente(clienteID string, limit, offset int) ([]*entity.Venta, error) {
	query := `SELECT ` + ventaCols + ` FROM ventas WHERE cliente_id = $1 ORDER BY fecha DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, clienteID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	return scanVentas(rows)
}

// ListByVehiculoYFecha devuelve las ventas de un vehículo dentro de un día.
func (r *VentaRepo) ListByVehiculoYFecha(vehiculoID string, dia time.Time) ([]*entity.Venta, error) {
	inicio := time.Date(dia.Year(), dia.Month(), dia.Day(), 0, 0, 0, 0, dia.Location())
	fin := inicio.Add(24 * time.Hour)
	query := `
		SELECT ` + ventaCols + ` FROM ventas
		WHERE vehiculo_id = $1 AND fecha >= $2 AND fecha < $3
		ORDER BY fecha DESC`
	rows, err := r.q.Query(context.Background(), query, vehiculoID, inicio, fin)
	if err != nil {
		return nil, fmt.Errorf("list ventas por vehiculo: %w", err)
	}
	defer rows.Close()
	return scanVentas(rows)
}

func scanVentas(rows pgx.Rows) ([]*entity.Venta, error) {
	var list []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := rows.Scan(
			&v.ID, &v.Fecha, &v.ClienteID, &v.UsuarioID, &v.VehiculoID, &v.MetodoPago,
			&v.DescuentoPorcentaje, &v.Total, &v.TotalNeto, &v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// PagoRepo implementación de PagoRepository.
type PagoRepo struct {
	q Querier
}

// NewPagoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPagoRepository(q Querier) *PagoRepo {
	return &PagoRepo{q: q}
}

// Create persiste un pago.
func (r *PagoRepo) Create(p *entity.Pago) error {
	query := `
		INSERT INTO pagos (id, cliente_id, fecha, monto, metodo_pago, observacion)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ClienteID, p.Fecha, p.Monto, p.MetodoPago, p.Observacion,
	)
	if err != nil {
		return fmt.Errorf("insert pago: %w", err)
	}
	return nil
}

// ListByCliente devuelve los pagos de un cliente, fecha descendente.
func (r *PagoRepo) ListByCliente(clienteID string) ([]*entity.Pago, error) {
	query := `
		SELECT id, cliente_id, fecha, monto, metodo_pago, observacion
		FROM pagos WHERE cliente_id = $1 ORDER BY fecha DESC`
	rows, err := r.q.Query(context.Background(), query, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list pagos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pago
	for rows.Next() {
		var p entity.Pago
		if err := rows.Scan(&p.ID, &p.ClienteID, &p.Fecha, &p.Monto, &p.MetodoPago, &p.Observacion); err != nil {
			return nil, fmt.Errorf("scan pago: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
