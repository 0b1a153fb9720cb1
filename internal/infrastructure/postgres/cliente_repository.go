package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/faguirre1/distribuidora-api/internal/domain"
	"github.com/faguirre1/distribuidora-api/internal/domain/entity"
	"github.com/faguirre1/distribuidora-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const clienteCols = `id, nombre_completo, dni, telefono, email, direccion, estado, requiere_factura, deuda, ventas_totales, ultima_compra, created_at, updated_at`

func scanCliente(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	err := row.Scan(
		&c.ID, &c.NombreCompleto, &c.DNI, &c.Telefono, &c.Email, &c.Direccion,
		&c.Estado, &c.RequiereFactura, &c.Deuda, &c.VentasTotales, &c.UltimaCompra,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan cliente: %w", err)
	}
	return &c, nil
}

// Create persiste un cliente nuevo.
func (r *ClienteRepo) Create(c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (` + clienteCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.NombreCompleto, c.DNI, c.Telefono, c.Email, c.Direccion,
		c.Estado, c.RequiereFactura, c.Deuda, c.VentasTotales, c.UltimaCompra,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteCols + ` FROM clientes WHERE id = $1`
	return scanCliente(r.q.QueryRow(context.Background(), query, id))
}

// GetByDNI obtiene un cliente por DNI.
func (r *ClienteRepo) GetByDNI(dni string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteCols + ` FROM clientes WHERE dni = $1`
	return scanCliente(r.q.QueryRow(context.Background(), query, dni))
}

// GetForUpdate obtiene un cliente y bloquea su fila: lo usan el motor de
// ventas y el registro de pagos para mutar deuda sin carreras.
func (r *ClienteRepo) GetForUpdate(id string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteCols + ` FROM clientes WHERE id = $1 FOR UPDATE`
	return scanCliente(r.q.QueryRow(context.Background(), query, id))
}

// List lista clientes por nombre con paginación.
func (r *ClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteCols + ` FROM clientes ORDER BY nombre_completo LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(
			&c.ID, &c.NombreCompleto, &c.DNI, &c.Telefono, &c.Email, &c.Direccion,
			&c.Estado, &c.RequiereFactura, &c.Deuda, &c.VentasTotales, &c.UltimaCompra,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente (datos administrativos y cuenta).
func (r *ClienteRepo) Update(c *entity.Cliente) error {
	query := `
		UPDATE clientes SET nombre_completo = $2, dni = $3, telefono = $4, email = $5,
			direccion = $6, estado = $7, requiere_factura = $8, deuda = $9,
			ventas_totales = $10, ultima_compra = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.NombreCompleto, c.DNI, c.Telefono, c.Email, c.Direccion,
		c.Estado, c.RequiereFactura, c.Deuda, c.VentasTotales, c.UltimaCompra, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *ClienteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}
