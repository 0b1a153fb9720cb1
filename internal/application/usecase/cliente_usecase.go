package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/faguirre1/distribuidora-api/internal/application/dto"
	"github.com/faguirre1/distribuidora-api/internal/domain"
	"github.com/faguirre1/distribuidora-api/internal/domain/entity"
	"github.com/faguirre1/distribuidora-api/internal/domain/repository"
)

// ClienteUseCase es el CRUD administrativo de clientes. Deuda, ventas
// acumuladas y última compra no son escribibles acá: las mutan el motor de
// ventas y el registro de pagos dentro de sus transacciones.
type ClienteUseCase struct {
	clienteRepo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(clienteRepo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{clienteRepo: clienteRepo}
}

// Crear da de alta un cliente Activo con deuda cero.
func (uc *ClienteUseCase) Crear(ctx context.Context, in dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	if in.NombreCompleto == "" || in.DNI == "" {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.clienteRepo.GetByDNI(in.DNI)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	cliente := &entity.Cliente{
		ID:              uuid.New().String(),
		NombreCompleto:  in.NombreCompleto,
		DNI:             in.DNI,
		Telefono:        in.Telefono,
		Email:           in.Email,
		Direccion:       in.Direccion,
		Estado:          entity.ClienteActivo,
		RequiereFactura: in.RequiereFactura,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.clienteRepo.Create(cliente); err != nil {
		return nil, err
	}
	return uc.toResponse(cliente), nil
}

// GetByID devuelve un cliente.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(cliente), nil
}

// List devuelve clientes paginados.
func (uc *ClienteUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ClienteListResponse, error) {
	page.DefaultPage()
	clientes, err := uc.clienteRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		items = append(items, *uc.toResponse(c))
	}
	return &dto.ClienteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Actualizar aplica cambios parciales de datos administrativos.
func (uc *ClienteUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	if in.NombreCompleto != nil {
		if *in.NombreCompleto == "" {
			return nil, domain.ErrInvalidInput
		}
		cliente.NombreCompleto = *in.NombreCompleto
	}
	if in.DNI != nil && *in.DNI != cliente.DNI {
		existente, err := uc.clienteRepo.GetByDNI(*in.DNI)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, domain.ErrDuplicate
		}
		cliente.DNI = *in.DNI
	}
	if in.Telefono != nil {
		cliente.Telefono = *in.Telefono
	}
	if in.Email != nil {
		cliente.Email = *in.Email
	}
	if in.Direccion != nil {
		cliente.Direccion = *in.Direccion
	}
	if in.Estado != nil {
		if *in.Estado != entity.ClienteActivo && *in.Estado != entity.ClienteInactivo {
			return nil, domain.ErrInvalidInput
		}
		cliente.Estado = *in.Estado
	}
	if in.RequiereFactura != nil {
		cliente.RequiereFactura = *in.RequiereFactura
	}
	cliente.UpdatedAt = time.Now()
	if err := uc.clienteRepo.Update(cliente); err != nil {
		return nil, err
	}
	return uc.toResponse(cliente), nil
}

// Eliminar borra un cliente. Un cliente con deuda pendiente no se borra:
// primero se cancela la cuenta.
func (uc *ClienteUseCase) Eliminar(ctx context.Context, id string) error {
	cliente, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ErrNotFound
	}
	if !cliente.Deuda.IsZero() {
		return domain.ErrInvalidInput
	}
	return uc.clienteRepo.Delete(id)
}

func (uc *ClienteUseCase) toResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ClienteID:       c.ID,
		NombreCompleto:  c.NombreCompleto,
		DNI:             c.DNI,
		Telefono:        c.Telefono,
		Email:           c.Email,
		Direccion:       c.Direccion,
		Estado:          c.Estado,
		RequiereFactura: c.RequiereFactura,
		Deuda:           c.Deuda,
		VentasTotales:   c.VentasTotales,
		UltimaCompra:    c.UltimaCompra,
		CreatedAt:       c.CreatedAt,
	}
}
