package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/faguirre1/distribuidora-api/internal/application/dto"
	"github.com/faguirre1/distribuidora-api/internal/domain"
	"github.com/faguirre1/distribuidora-api/internal/domain/entity"
	"github.com/faguirre1/distribuidora-api/internal/domain/repository"
)

// EmpleadoUseCase es el CRUD administrativo de empleados. La contraseña se
// hashea con bcrypt en el alta y nunca sale de acá en claro ni hasheada.
type EmpleadoUseCase struct {
	usuarioRepo repository.UsuarioRepository
}

// NewEmpleadoUseCase construye el caso de uso.
func NewEmpleadoUseCase(usuarioRepo repository.UsuarioRepository) *EmpleadoUseCase {
	return &EmpleadoUseCase{usuarioRepo: usuarioRepo}
}

func rolValido(rol string) bool {
	switch rol {
	case entity.RolAdmin, entity.RolChofer, entity.RolVendedor:
		return true
	}
	return false
}

// Crear da de alta un empleado Activo.
func (uc *EmpleadoUseCase) Crear(ctx context.Context, in dto.CrearEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	if in.Nombre == "" || in.DNI == "" || in.Contrasena == "" {
		return nil, domain.ErrInvalidInput
	}
	if !rolValido(in.Rol) {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.usuarioRepo.GetByDNI(in.DNI)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usuario := &entity.Usuario{
		ID:             uuid.New().String(),
		Nombre:         in.Nombre,
		DNI:            in.DNI,
		Rol:            in.Rol,
		ContrasenaHash: string(hash),
		Telefono:       in.Telefono,
		Estado:         "Activo",
		FechaIngreso:   time.Now(),
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	return uc.toResponse(usuario), nil
}

// GetByID devuelve un empleado.
func (uc *EmpleadoUseCase) GetByID(ctx context.Context, id string) (*dto.EmpleadoResponse, error) {
	usuario, err := uc.usuarioRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(usuario), nil
}

// List devuelve empleados paginados.
func (uc *EmpleadoUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.EmpleadoListResponse, error) {
	page.DefaultPage()
	usuarios, err := uc.usuarioRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmpleadoResponse, 0, len(usuarios))
	for _, u := range usuarios {
		items = append(items, *uc.toResponse(u))
	}
	return &dto.EmpleadoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Actualizar aplica cambios parciales. El DNI y la contraseña no se tocan
// por acá.
func (uc *EmpleadoUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	usuario, err := uc.usuarioRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		usuario.Nombre = *in.Nombre
	}
	if in.Rol != nil {
		if !rolValido(*in.Rol) {
			return nil, domain.ErrInvalidInput
		}
		usuario.Rol = *in.Rol
	}
	if in.Telefono != nil {
		usuario.Telefono = *in.Telefono
	}
	if in.Estado != nil {
		if *in.Estado != "Activo" && *in.Estado != "Inactivo" {
			return nil, domain.ErrInvalidInput
		}
		usuario.Estado = *in.Estado
	}
	if err := uc.usuarioRepo.Update(usuario); err != nil {
		return nil, err
	}
	return uc.toResponse(usuario), nil
}

func (uc *EmpleadoUseCase) toResponse(u *entity.Usuario) *dto.EmpleadoResponse {
	return &dto.EmpleadoResponse{
		UsuarioID:    u.ID,
		Nombre:       u.Nombre,
		DNI:          u.DNI,
		Rol:          u.Rol,
		Telefono:     u.Telefono,
		Estado:       u.Estado,
		FechaIngreso: u.FechaIngreso,
	}
}
