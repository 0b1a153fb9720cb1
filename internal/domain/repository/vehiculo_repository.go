package repository

import "github.com/faguirre1/distribuidora-api/internal/domain/entity"

// VehiculoRepository define el puerto de persistencia para Vehiculo.
type VehiculoRepository interface {
	Create(vehiculo *entity.Vehiculo) error
	GetByID(id string) (*entity.Vehiculo, error)
	GetByPatente(patente string) (*entity.Vehiculo, error)
	List(limit, offset int) ([]*entity.Vehiculo, error)
	Update(vehiculo *entity.Vehiculo) error
}
