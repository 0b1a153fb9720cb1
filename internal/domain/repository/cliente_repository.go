package repository

import "github.com/faguirre1/distribuidora-api/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	GetByDNI(dni string) (*entity.Cliente, error)
	// GetForUpdate bloquea la fila del cliente: la usan el motor de ventas y
	// el registro de pagos para mutar Deuda/VentasTotales sin carreras.
	GetForUpdate(id string) (*entity.Cliente, error)
	List(limit, offset int) ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	Delete(id string) error
}
