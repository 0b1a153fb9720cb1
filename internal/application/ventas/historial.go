package ventas

import (
	"context"
	"time"

	"github.com/faguirre1/distribuidora-api/internal/application/dto"
	"github.com/faguirre1/distribuidora-api/internal/domain"
	"github.com/faguirre1/distribuidora-api/internal/domain/entity"
)

// GetVenta devuelve una venta comprometida con su detalle completo.
func (uc *RegistrarVentaUseCase) GetVenta(ctx context.Context, id string) (*dto.VentaResponse, error) {
	venta, err := uc.ventaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrNotFound
	}
	detalles, err := uc.ventaRepo.GetDetalles(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(venta, detalles), nil
}

// HistorialVentas devuelve las ventas comprometidas de un cliente, fecha
// descendente. Solo refleja ventas con Commit: una venta revertida nunca
// aparece acá.
func (uc *RegistrarVentaUseCase) HistorialVentas(ctx context.Context, clienteID string, limit, offset int) ([]dto.HistorialVentaDTO, error) {
	cliente, err := uc.clienteRepo.GetByID(clienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	ventas, err := uc.ventaRepo.ListByCliente(clienteID, limit, offset)
	if err != nil {
		return nil, err
	}
	historial := make([]dto.HistorialVentaDTO, 0, len(ventas))
	for _, v := range ventas {
		detalles, err := uc.ventaRepo.GetDetalles(v.ID)
		if err != nil {
			return nil, err
		}
		historial = append(historial, dto.HistorialVentaDTO{
			VentaID:    v.ID,
			Fecha:      v.Fecha,
			Total:      v.Total,
			TotalNeto:  v.TotalNeto,
			MetodoPago: v.MetodoPago,
			Productos:  uc.toDetalleResponses(detalles),
		})
	}
	return historial, nil
}

// VentasPorVehiculo devuelve las ventas de un vehículo en un día dado.
func (uc *RegistrarVentaUseCase) VentasPorVehiculo(ctx context.Context, vehiculoID string, dia time.Time) ([]dto.VentaResponse, error) {
	vehiculo, err := uc.vehiculoRepo.GetByID(vehiculoID)
	if err != nil {
		return nil, err
	}
	if vehiculo == nil {
		return nil, domain.ErrNotFound
	}
	ventas, err := uc.ventaRepo.ListByVehiculoYFecha(vehiculoID, dia)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		detalles, err := uc.ventaRepo.GetDetalles(v.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *uc.toResponse(v, detalles))
	}
	return out, nil
}

func (uc *RegistrarVentaUseCase) toDetalleResponses(detalles []*entity.DetalleVenta) []dto.DetalleVentaResponse {
	out := make([]dto.DetalleVentaResponse, 0, len(detalles))
	for _, d := range detalles {
		item := dto.DetalleVentaResponse{
			ProductoID:     d.ProductoID,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		}
		if p, err := uc.productoRepo.GetByID(d.ProductoID); err == nil && p != nil {
			item.Producto = p.Nombre
		}
		out = append(out, item)
	}
	return out
}
