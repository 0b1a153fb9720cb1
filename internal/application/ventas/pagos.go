package ventas

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

// RegistrarPago descuenta un cobro de la deuda del cliente y persiste el
// pago, en una sola transacción. La fila del cliente se toma bajo bloqueo
// para que dos cobros concurrentes no se pisen la deuda.
func (uc *RegistrarVentaUseCase) RegistrarPago(ctx context.Context, clienteID string, in dto.RegistrarPagoRequest) (*dto.PagoResponse, error) {
	if !in.Monto.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.MetodoPago == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	pago := &entity.Pago{
		ID:          uuid.New().String(),
		ClienteID:   clienteID,
		Fecha:       now,
		Monto:       in.Monto,
		MetodoPago:  in.MetodoPago,
		Observacion: in.Observacion,
	}

	var deudaActual decimal.Decimal
	err := uc.txRunner.RunPago(ctx, func(
		clienteRepo repository.ClienteRepository,
		pagoRepo repository.PagoRepository,
	) error {
		cliente, err := clienteRepo.GetForUpdate(clienteID)
		if err != nil {
			return err
		}
		if cliente == nil {
			return domain.ErrNotFound
		}
		cliente.Deuda = cliente.Deuda.Sub(in.Monto)
		cliente.UpdatedAt = now
		if err := clienteRepo.Update(cliente); err != nil {
			return err
		}
		if err := pagoRepo.Create(pago); err != nil {
			return err
		}
		deudaActual = cliente.Deuda
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.PagoResponse{
		PagoID:      pago.ID,
		ClienteID:   pago.ClienteID,
		Fecha:       pago.Fecha,
		Monto:       pago.Monto,
		MetodoPago:  pago.MetodoPago,
		Observacion: pago.Observacion,
		DeudaActual: deudaActual,
	}, nil
}

// HistorialPagos devuelve los pagos registrados de un cliente.
func (uc *RegistrarVentaUseCase) HistorialPagos(ctx context.Context, clienteID string) ([]dto.PagoResponse, error) {
	cliente, err := uc.clienteRepo.GetByID(clienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	pagos, err := uc.pagoRepo.ListByCliente(clienteID)
	if err != nil {
		return nil, err
	}
	deuda := cliente.Deuda
	out := make([]dto.PagoResponse, 0, len(pagos))
	for _, p := range pagos {
		out = append(out, dto.PagoResponse{
			PagoID:      p.ID,
			ClienteID:   p.ClienteID,
			Fecha:       p.Fecha,
			Monto:       p.Monto,
			MetodoPago:  p.MetodoPago,
			Observacion: p.Observacion,
			DeudaActual: deuda,
		})
	}
	return out, nil
}
