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

// PoliticaPagos define qué métodos de pago liquidan al contado. Todo método
// fuera de la lista difiere el cobro y acumula deuda en cuenta corriente.
// Es configurable porque la semántica exacta varía por negocio.
type PoliticaPagos struct {
	MetodosContado []string
}

// EsContado indica si el método liquida en el momento (no genera deuda).
func (p PoliticaPagos) EsContado(metodo string) bool {
	for _, m := range p.MetodosContado {
		if m == metodo {
			return true
		}
	}
	return false
}

// RegistrarVentaUseCase convierte un pedido de venta en débitos de stock del
// vehículo más la actualización de deuda/ventas del cliente, como una sola
// unidad atómica. Una venta a medio aplicar corrompe a la vez el inventario
// y la cuenta corriente, así que cualquier falla revierte todo.
type RegistrarVentaUseCase struct {
	txRunner     TxRunner
	inventario   InventarioUseCase
	clienteRepo  repository.ClienteRepository
	usuarioRepo  repository.UsuarioRepository
	vehiculoRepo repository.VehiculoRepository
	productoRepo repository.ProductoRepository
	ventaRepo    repository.VentaRepository
	pagoRepo     repository.PagoRepository
	politica     PoliticaPagos
}

// NewRegistrarVentaUseCase construye el caso de uso.
func NewRegistrarVentaUseCase(
	txRunner TxRunner,
	inventario InventarioUseCase,
	clienteRepo repository.ClienteRepository,
	usuarioRepo repository.UsuarioRepository,
	vehiculoRepo repository.VehiculoRepository,
	productoRepo repository.ProductoRepository,
	ventaRepo repository.VentaRepository,
	pagoRepo repository.PagoRepository,
	politica PoliticaPagos,
) *RegistrarVentaUseCase {
	return &RegistrarVentaUseCase{
		txRunner:     txRunner,
		inventario:   inventario,
		clienteRepo:  clienteRepo,
		usuarioRepo:  usuarioRepo,
		vehiculoRepo: vehiculoRepo,
		productoRepo: productoRepo,
		ventaRepo:    ventaRepo,
		pagoRepo:     pagoRepo,
		politica:     politica,
	}
}

var cien = decimal.NewFromInt(100)

// RegistrarVenta valida el pedido, y en una transacción debita cada línea
// del stock del vehículo (re-verificando saldo bajo bloqueo de fila),
// actualiza deuda y ventas acumuladas del cliente según el método de pago,
// y persiste la venta inmutable con sus detalles.
func (uc *RegistrarVentaUseCase) RegistrarVenta(ctx context.Context, in dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	if err := uc.validar(in); err != nil {
		return nil, err
	}

	now := time.Now()
	ventaID := uuid.New().String()

	// Totales con decimal: subtotal por línea, descuento sobre el total.
	total := decimal.Zero
	detalles := make([]*entity.DetalleVenta, 0, len(in.Items))
	for _, item := range in.Items {
		subtotal := item.Cantidad.Mul(item.PrecioUnitario)
		total = total.Add(subtotal)
		detalles = append(detalles, &entity.DetalleVenta{
			ID:             uuid.New().String(),
			VentaID:        ventaID,
			ProductoID:     item.ProductoID,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
			Subtotal:       subtotal,
		})
	}
	descuento := total.Mul(in.DescuentoPorcentaje).Div(cien)
	neto := total.Sub(descuento)

	venta := &entity.Venta{
		ID:                  ventaID,
		Fecha:               now,
		ClienteID:           in.ClienteID,
		UsuarioID:           in.UsuarioID,
		VehiculoID:          in.VehiculoID,
		MetodoPago:          in.MetodoPago,
		DescuentoPorcentaje: in.DescuentoPorcentaje,
		Total:               total,
		TotalNeto:           neto,
		CreatedAt:           now,
	}

	err := uc.txRunner.RunVenta(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.MovimientoRepository,
		clienteRepo repository.ClienteRepository,
		ventaRepo repository.VentaRepository,
	) error {
		// 1) Debitar cada línea del vehículo. El saldo se re-verifica con la
		// fila bloqueada: de dos ventas concurrentes sobre el mismo producto
		// la segunda falla acá con ErrInsufficientStock y se revierte entera.
		for _, d := range detalles {
			if err := uc.inventario.DescontarVentaEnTx(
				stockRepo, movRepo,
				in.VehiculoID, d.ProductoID, in.UsuarioID,
				d.Cantidad, now, ventaID,
			); err != nil {
				return err
			}
		}

		// 2) Cuenta del cliente, bajo bloqueo de su fila. El estado se
		// re-chequea adentro por si cambió desde la validación.
		cliente, err := clienteRepo.GetForUpdate(in.ClienteID)
		if err != nil {
			return err
		}
		if cliente == nil {
			return domain.ErrNotFound
		}
		if cliente.Estado != entity.ClienteActivo {
			return domain.ErrClienteInactivo
		}
		if !uc.politica.EsContado(in.MetodoPago) {
			cliente.Deuda = cliente.Deuda.Add(neto)
		}
		cliente.VentasTotales = cliente.VentasTotales.Add(neto)
		cliente.UltimaCompra = &now
		cliente.UpdatedAt = now
		if err := clienteRepo.Update(cliente); err != nil {
			return err
		}

		// 3) Venta inmutable más sus líneas.
		if err := ventaRepo.Create(venta); err != nil {
			return err
		}
		for _, d := range detalles {
			if err := ventaRepo.CreateDetalle(d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.toResponse(venta, detalles), nil
}

// validar corre las validaciones de entrada y existencia fuera de la tx.
// La disponibilidad de stock NO se chequea acá: siempre adentro, bajo el
// bloqueo de fila, para cerrar la carrera check-then-act.
func (uc *RegistrarVentaUseCase) validar(in dto.RegistrarVentaRequest) error {
	if in.ClienteID == "" || in.UsuarioID == "" || in.VehiculoID == "" || len(in.Items) == 0 {
		return domain.ErrInvalidInput
	}
	if in.DescuentoPorcentaje.LessThan(decimal.Zero) || in.DescuentoPorcentaje.GreaterThan(cien) {
		return domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if !item.Cantidad.GreaterThan(decimal.Zero) || item.PrecioUnitario.LessThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
		producto, err := uc.productoRepo.GetByID(item.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}
	}
	vehiculo, err := uc.vehiculoRepo.GetByID(in.VehiculoID)
	if err != nil {
		return err
	}
	if vehiculo == nil {
		return domain.ErrNotFound
	}
	if vehiculo.Estado != "" && vehiculo.Estado != "Activo" {
		return domain.ErrVehiculoNoDisponible
	}
	usuario, err := uc.usuarioRepo.GetByID(in.UsuarioID)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrNotFound
	}
	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ErrNotFound
	}
	if cliente.Estado != entity.ClienteActivo {
		return domain.ErrClienteInactivo
	}
	return nil
}

func (uc *RegistrarVentaUseCase) toResponse(v *entity.Venta, detalles []*entity.DetalleVenta) *dto.VentaResponse {
	resp := &dto.VentaResponse{
		VentaID:             v.ID,
		Fecha:               v.Fecha,
		ClienteID:           v.ClienteID,
		UsuarioID:           v.UsuarioID,
		VehiculoID:          v.VehiculoID,
		MetodoPago:          v.MetodoPago,
		DescuentoPorcentaje: v.DescuentoPorcentaje,
		Total:               v.Total,
		TotalNeto:           v.TotalNeto,
		Items:               uc.toDetalleResponses(detalles),
	}
	return resp
}
