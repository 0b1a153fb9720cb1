package repository

import "github.com/faguirre1/distribuidora-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (empleados).
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByDNI(dni string) (*entity.Usuario, error)
	List(limit, offset int) ([]*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
}
