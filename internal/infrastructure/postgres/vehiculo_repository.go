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

var _ repository.VehiculoRepository = (*VehiculoRepo)(nil)

// VehiculoRepo implementación de VehiculoRepository (usable con pool o tx).
type VehiculoRepo struct {
	q Querier
}

// NewVehiculoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVehiculoRepository(q Querier) *VehiculoRepo {
	return &VehiculoRepo{q: q}
}

const vehiculoCols = `id, patente, marca, modelo, capacidad_carga, consumo_promedio_lts_100km, en_ruta, estado, created_at, updated_at`

func scanVehiculo(row pgx.Row) (*entity.Vehiculo, error) {
	var v entity.Vehiculo
	err := row.Scan(
		&v.ID, &v.Patente, &v.Marca, &v.Modelo, &v.CapacidadCarga,
		&v.ConsumoPromedioLts100Km, &v.EnRuta, &v.Estado, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan vehiculo: %w", err)
	}
	return &v, nil
}

// Create persiste un vehículo nuevo.
func (r *VehiculoRepo) Create(v *entity.Vehiculo) error {
	query := `
		INSERT INTO vehiculos (` + vehiculoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Patente, v.Marca, v.Modelo, v.CapacidadCarga,
		v.ConsumoPromedioLts100Km, v.EnRuta, v.Estado, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vehiculo: %w", err)
	}
	return nil
}

// GetByID obtiene un vehículo por ID.
func (r *VehiculoRepo) GetByID(id string) (*entity.Vehiculo, error) {
	query := `SELECT ` + vehiculoCols + ` FROM vehiculos WHERE id = $1`
	return scanVehiculo(r.q.QueryRow(context.Background(), query, id))
}

// GetByPatente obtiene un vehículo por patente.
func (r *VehiculoRepo) GetByPatente(patente string) (*entity.Vehiculo, error) {
	query := `SELECT ` + vehiculoCols + ` FROM vehiculos WHERE patente = $1`
	return scanVehiculo(r.q.QueryRow(context.Background(), query, patente))
}

// List lista vehículos por patente con paginación.
func (r *VehiculoRepo) List(limit, offset int) ([]*entity.Vehiculo, error) {
	query := `SELECT ` + vehiculoCols + ` FROM vehiculos ORDER BY patente LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vehiculos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vehiculo
	for rows.Next() {
		var v entity.Vehiculo
		if err := rows.Scan(
			&v.ID, &v.Patente, &v.Marca, &v.Modelo, &v.CapacidadCarga,
			&v.ConsumoPromedioLts100Km, &v.EnRuta, &v.Estado, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan vehiculo: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Update actualiza un vehículo.
func (r *VehiculoRepo) Update(v *entity.Vehiculo) error {
	query := `
		UPDATE vehiculos SET marca = $2, modelo = $3, capacidad_carga = $4,
			consumo_promedio_lts_100km = $5, en_ruta = $6, estado = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Marca, v.Modelo, v.CapacidadCarga, v.ConsumoPromedioLts100Km,
		v.EnRuta, v.Estado, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vehiculo: %w", err)
	}
	return nil
}
