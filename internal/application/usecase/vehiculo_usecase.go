package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/faguirre1/distribuidora-api/internal/application/dto"
	"github.com/faguirre1/distribuidora-api/internal/domain"
	"github.com/faguirre1/distribuidora-api/internal/domain/entity"
	"github.com/faguirre1/distribuidora-api/internal/domain/repository"
)

// VehiculoUseCase es el CRUD administrativo de vehículos de reparto.
// No hay Delete: un vehículo con historia de movimientos se pasa a
// Inactivo, nunca se borra.
type VehiculoUseCase struct {
	vehiculoRepo repository.VehiculoRepository
}

// NewVehiculoUseCase construye el caso de uso.
func NewVehiculoUseCase(vehiculoRepo repository.VehiculoRepository) *VehiculoUseCase {
	return &VehiculoUseCase{vehiculoRepo: vehiculoRepo}
}

// Crear da de alta un vehículo Activo, fuera de ruta.
func (uc *VehiculoUseCase) Crear(ctx context.Context, in dto.CrearVehiculoRequest) (*dto.VehiculoResponse, error) {
	if in.Patente == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CapacidadCarga.LessThan(decimal.Zero) || in.ConsumoPromedioLts100Km.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.vehiculoRepo.GetByPatente(in.Patente)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	vehiculo := &entity.Vehiculo{
		ID:                      uuid.New().String(),
		Patente:                 in.Patente,
		Marca:                   in.Marca,
		Modelo:                  in.Modelo,
		CapacidadCarga:          in.CapacidadCarga,
		ConsumoPromedioLts100Km: in.ConsumoPromedioLts100Km,
		EnRuta:                  false,
		Estado:                  "Activo",
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	if err := uc.vehiculoRepo.Create(vehiculo); err != nil {
		return nil, err
	}
	return uc.toResponse(vehiculo), nil
}

// GetByID devuelve un vehículo.
func (uc *VehiculoUseCase) GetByID(ctx context.Context, id string) (*dto.VehiculoResponse, error) {
	vehiculo, err := uc.vehiculoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vehiculo == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(vehiculo), nil
}

// List devuelve vehículos paginados.
func (uc *VehiculoUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.VehiculoListResponse, error) {
	page.DefaultPage()
	vehiculos, err := uc.vehiculoRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VehiculoResponse, 0, len(vehiculos))
	for _, v := range vehiculos {
		items = append(items, *uc.toResponse(v))
	}
	return &dto.VehiculoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Actualizar aplica cambios parciales. La patente no cambia.
func (uc *VehiculoUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarVehiculoRequest) (*dto.VehiculoResponse, error) {
	vehiculo, err := uc.vehiculoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vehiculo == nil {
		return nil, domain.ErrNotFound
	}
	if in.Marca != nil {
		vehiculo.Marca = *in.Marca
	}
	if in.Modelo != nil {
		vehiculo.Modelo = *in.Modelo
	}
	if in.CapacidadCarga != nil {
		if in.CapacidadCarga.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		vehiculo.CapacidadCarga = *in.CapacidadCarga
	}
	if in.ConsumoPromedioLts100Km != nil {
		if in.ConsumoPromedioLts100Km.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		vehiculo.ConsumoPromedioLts100Km = *in.ConsumoPromedioLts100Km
	}
	if in.EnRuta != nil {
		vehiculo.EnRuta = *in.EnRuta
	}
	if in.Estado != nil {
		switch *in.Estado {
		case "Activo", "Mantenimiento", "Inactivo":
			vehiculo.Estado = *in.Estado
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	vehiculo.UpdatedAt = time.Now()
	if err := uc.vehiculoRepo.Update(vehiculo); err != nil {
		return nil, err
	}
	return uc.toResponse(vehiculo), nil
}

func (uc *VehiculoUseCase) toResponse(v *entity.Vehiculo) *dto.VehiculoResponse {
	return &dto.VehiculoResponse{
		VehiculoID:              v.ID,
		Patente:                 v.Patente,
		Marca:                   v.Marca,
		Modelo:                  v.Modelo,
		CapacidadCarga:          v.CapacidadCarga,
		ConsumoPromedioLts100Km: v.ConsumoPromedioLts100Km,
		EnRuta:                  v.EnRuta,
		Estado:                  v.Estado,
		CreatedAt:               v.CreatedAt,
	}
}
