package inventario

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/faguirre1/distribuidora-api/internal/application/dto"
	"github.com/faguirre1/distribuidora-api/internal/domain"
	"github.com/faguirre1/distribuidora-api/internal/domain/entity"
	"github.com/faguirre1/distribuidora-api/internal/domain/repository"
)

// InventarioUseCase es el motor de transferencias sobre el libro de stock:
// cargas y descargas de vehículos, mermas y compras a proveedor. Cada
// operación corre en una transacción con bloqueo de fila (SELECT FOR UPDATE)
// y Commit/Rollback; las validaciones de disponibilidad se re-verifican
// dentro de la misma transacción que aplica el débito.
type InventarioUseCase struct {
	txRunner       TxRunner
	productoRepo   repository.ProductoRepository
	vehiculoRepo   repository.VehiculoRepository
	stockRepo      repository.StockRepository
	movimientoRepo repository.MovimientoRepository
}

// NewInventarioUseCase construye el caso de uso.
func NewInventarioUseCase(
	txRunner TxRunner,
	productoRepo repository.ProductoRepository,
	vehiculoRepo repository.VehiculoRepository,
	stockRepo repository.StockRepository,
	movimientoRepo repository.MovimientoRepository,
) *InventarioUseCase {
	return &InventarioUseCase{
		txRunner:       txRunner,
		productoRepo:   productoRepo,
		vehiculoRepo:   vehiculoRepo,
		stockRepo:      stockRepo,
		movimientoRepo: movimientoRepo,
	}
}

// CargarVehiculo transfiere stock del depósito a un vehículo. Todas las
// líneas son una sola transacción: si alguna falla (stock insuficiente en
// depósito, producto desconocido) ninguna tiene efecto. Devuelve los saldos
// actualizados del vehículo.
func (uc *InventarioUseCase) CargarVehiculo(ctx context.Context, in dto.CargaVehiculoRequest) (*dto.StockVehiculoResponse, error) {
	if err := uc.validarLote(in); err != nil {
		return nil, err
	}
	now := time.Now()
	refID := uuid.New().String()

	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.MovimientoRepository,
		_ repository.ProductoRepository,
	) error {
		for _, item := range in.Items {
			if err := aplicarTransferencia(stockRepo, movRepo, transferencia{
				Tipo:          entity.MovimientoCargaVehiculo,
				ProductoID:    item.ProductoID,
				OrigenID:      entity.UbicacionDeposito,
				DestinoID:     in.VehiculoID,
				Cantidad:      item.Cantidad,
				ReferenciaID:  refID,
				UsuarioID:     in.UsuarioID,
				Observaciones: "Carga de vehículo desde depósito central",
				Fecha:         now,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.StockVehiculo(ctx, in.VehiculoID)
}

// DescargarVehiculo es el espejo estructural de CargarVehiculo: devuelve
// stock del vehículo al depósito con el mismo contrato de atomicidad.
func (uc *InventarioUseCase) DescargarVehiculo(ctx context.Context, in dto.CargaVehiculoRequest) (*dto.StockVehiculoResponse, error) {
	if err := uc.validarLote(in); err != nil {
		return nil, err
	}
	now := time.Now()
	refID := uuid.New().String()

	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.MovimientoRepository,
		_ repository.ProductoRepository,
	) error {
		for _, item := range in.Items {
			if err := aplicarTransferencia(stockRepo, movRepo, transferencia{
				Tipo:          entity.MovimientoDescargaVehiculo,
				ProductoID:    item.ProductoID,
				OrigenID:      in.VehiculoID,
				DestinoID:     entity.UbicacionDeposito,
				Cantidad:      item.Cantidad,
				ReferenciaID:  refID,
				UsuarioID:     in.UsuarioID,
				Observaciones: "Descarga de vehículo al depósito central",
				Fecha:         now,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.StockVehiculo(ctx, in.VehiculoID)
}

// RegistrarMerma descuenta una pérdida (rotura, vencimiento) del stock del
// vehículo. Sin saldo suficiente la merma se rechaza: el libro no admite
// saldos negativos ni siquiera por pérdidas.
func (uc *InventarioUseCase) RegistrarMerma(ctx context.Context, in dto.MermaRequest) error {
	if !in.Cantidad.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if err := uc.existeVehiculoYProducto(in.VehiculoID, in.ProductoID); err != nil {
		return err
	}
	now := time.Now()
	refID := uuid.New().String()

	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.MovimientoRepository,
		_ repository.ProductoRepository,
	) error {
		return aplicarConsumo(stockRepo, movRepo, consumo{
			Tipo:          entity.MovimientoMerma,
			ProductoID:    in.ProductoID,
			OrigenID:      in.VehiculoID,
			Cantidad:      in.Cantidad,
			ReferenciaID:  refID,
			UsuarioID:     in.UsuarioID,
			Observaciones: in.Motivo,
			Fecha:         now,
		})
	})
}

// RegistrarCompra ingresa mercadería de proveedor al depósito (origen nulo:
// recepción externa) y actualiza el costo de última compra de cada producto.
// Atómica sobre todas sus líneas.
func (uc *InventarioUseCase) RegistrarCompra(ctx context.Context, in dto.CompraRequest) error {
	if len(in.Items) == 0 {
		return domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if !item.Cantidad.GreaterThan(decimal.Zero) || item.CostoUnitario.LessThan(decimal.Zero) {
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
	now := time.Now()
	refID := uuid.New().String()
	obs := "Compra a proveedor"
	if in.Proveedor != "" {
		obs = fmt.Sprintf("Compra a proveedor %s", in.Proveedor)
	}

	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.MovimientoRepository,
		productoRepo repository.ProductoRepository,
	) error {
		for _, item := range in.Items {
			// Ingreso externo: sin origen, destino depósito. El crédito es
			// atómico en la base: dos compras concurrentes del mismo producto
			// se acumulan aunque la fila de depósito todavía no exista.
			if err := stockRepo.Acreditar(entity.UbicacionDeposito, item.ProductoID, item.Cantidad); err != nil {
				return err
			}
			if err := productoRepo.UpdateCostoUltimaCompra(item.ProductoID, item.CostoUnitario); err != nil {
				return err
			}
			destino := entity.UbicacionDeposito
			mov := &entity.MovimientoStock{
				ID:            uuid.New().String(),
				Fecha:         now,
				Tipo:          entity.MovimientoCompra,
				ProductoID:    item.ProductoID,
				OrigenID:      nil,
				DestinoID:     &destino,
				Cantidad:      item.Cantidad,
				ReferenciaID:  refID,
				UsuarioID:     in.UsuarioID,
				Observaciones: obs,
				CreatedAt:     now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}
		return nil
	})
}

// DescontarVentaEnTx debita una línea de venta del stock del vehículo usando
// los repositorios del caller (misma transacción). Consumo: origen vehículo,
// sin destino. Si retorna ErrInsufficientStock el caller debe hacer rollback.
func (uc *InventarioUseCase) DescontarVentaEnTx(
	stockRepo repository.StockRepository,
	movRepo repository.MovimientoRepository,
	vehiculoID, productoID, usuarioID string,
	cantidad decimal.Decimal,
	now time.Time,
	ventaID string,
) error {
	return aplicarConsumo(stockRepo, movRepo, consumo{
		Tipo:          entity.MovimientoVenta,
		ProductoID:    productoID,
		OrigenID:      vehiculoID,
		Cantidad:      cantidad,
		ReferenciaID:  ventaID,
		UsuarioID:     usuarioID,
		Observaciones: fmt.Sprintf("Venta %s", ventaID),
		Fecha:         now,
	})
}

// StockVehiculo devuelve los saldos actuales de un vehículo.
func (uc *InventarioUseCase) StockVehiculo(ctx context.Context, vehiculoID string) (*dto.StockVehiculoResponse, error) {
	vehiculo, err := uc.vehiculoRepo.GetByID(vehiculoID)
	if err != nil {
		return nil, err
	}
	if vehiculo == nil {
		return nil, domain.ErrNotFound
	}
	saldos, err := uc.stockRepo.ListByUbicacion(vehiculoID)
	if err != nil {
		return nil, err
	}
	resp := &dto.StockVehiculoResponse{VehiculoID: vehiculoID, Items: make([]dto.StockUbicacionDTO, 0, len(saldos))}
	for _, s := range saldos {
		item := dto.StockUbicacionDTO{
			ProductoID: s.ProductoID,
			Cantidad:   s.Cantidad,
			UpdatedAt:  s.UpdatedAt,
		}
		if p, err := uc.productoRepo.GetByID(s.ProductoID); err == nil && p != nil {
			item.Nombre = p.Nombre
			item.UnidadDeMedida = p.UnidadDeMedida
		}
		resp.Items = append(resp.Items, item)
	}
	return resp, nil
}

// Movimientos consulta el log append-only, filtrando por producto o por
// ubicación (excluyentes; ubicación gana si vienen ambos).
func (uc *InventarioUseCase) Movimientos(ctx context.Context, productoID, ubicacionID string, desde, hasta *time.Time, limit, offset int) ([]dto.MovimientoDTO, error) {
	if productoID == "" && ubicacionID == "" {
		return nil, domain.ErrInvalidInput
	}
	var (
		movs []*entity.MovimientoStock
		err  error
	)
	if ubicacionID != "" {
		movs, err = uc.movimientoRepo.ListByUbicacion(ubicacionID, desde, hasta, limit, offset)
	} else {
		movs, err = uc.movimientoRepo.ListByProducto(productoID, desde, hasta, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoDTO, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.MovimientoDTO{
			MovimientoID:  m.ID,
			Fecha:         m.Fecha,
			Tipo:          m.Tipo,
			ProductoID:    m.ProductoID,
			OrigenID:      m.OrigenID,
			DestinoID:     m.DestinoID,
			Cantidad:      m.Cantidad,
			ReferenciaID:  m.ReferenciaID,
			Observaciones: m.Observaciones,
		})
	}
	return out, nil
}

// validarLote valida la forma de un request de carga/descarga y la
// existencia de vehículo y productos (lecturas fuera de la tx; la
// disponibilidad se re-verifica adentro con la fila bloqueada).
func (uc *InventarioUseCase) validarLote(in dto.CargaVehiculoRequest) error {
	if in.VehiculoID == "" || len(in.Items) == 0 {
		return domain.ErrInvalidInput
	}
	vehiculo, err := uc.vehiculoRepo.GetByID(in.VehiculoID)
	if err != nil {
		return err
	}
	if vehiculo == nil {
		return domain.ErrNotFound
	}
	for _, item := range in.Items {
		if !item.Cantidad.GreaterThan(decimal.Zero) {
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
	return nil
}

func (uc *InventarioUseCase) existeVehiculoYProducto(vehiculoID, productoID string) error {
	vehiculo, err := uc.vehiculoRepo.GetByID(vehiculoID)
	if err != nil {
		return err
	}
	if vehiculo == nil {
		return domain.ErrNotFound
	}
	producto, err := uc.productoRepo.GetByID(productoID)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	return nil
}

// transferencia es un movimiento con origen y destino: débito y crédito
// ocurren juntos, nunca uno sin el otro.
type transferencia struct {
	Tipo          string
	ProductoID    string
	OrigenID      string
	DestinoID     string
	Cantidad      decimal.Decimal
	ReferenciaID  string
	UsuarioID     string
	Observaciones string
	Fecha         time.Time
}

// aplicarTransferencia debita el origen con su fila bloqueada y re-verificando
// saldo, acredita el destino de forma atómica y deja exactamente un registro
// en el log. Las dos filas se tocan en orden lexicográfico de ubicación:
// cargas y descargas concurrentes del mismo producto toman los locks en el
// mismo orden y no pueden abrazarse en cruz. Cuando el crédito va primero y
// el débito después falla, el rollback de la transacción lo deshace.
func aplicarTransferencia(stockRepo repository.StockRepository, movRepo repository.MovimientoRepository, t transferencia) error {
	debitar := func() error {
		origen, err := stockRepo.GetForUpdate(t.OrigenID, t.ProductoID)
		if err != nil {
			return err
		}
		if origen.Cantidad.LessThan(t.Cantidad) {
			return domain.ErrInsufficientStock
		}
		origen.Cantidad = origen.Cantidad.Sub(t.Cantidad)
		origen.UpdatedAt = t.Fecha
		return stockRepo.Upsert(origen)
	}
	acreditar := func() error {
		return stockRepo.Acreditar(t.DestinoID, t.ProductoID, t.Cantidad)
	}
	if t.DestinoID < t.OrigenID {
		if err := acreditar(); err != nil {
			return err
		}
		if err := debitar(); err != nil {
			return err
		}
	} else {
		if err := debitar(); err != nil {
			return err
		}
		if err := acreditar(); err != nil {
			return err
		}
	}
	origenID, destinoID := t.OrigenID, t.DestinoID
	return movRepo.Create(&entity.MovimientoStock{
		ID:            uuid.New().String(),
		Fecha:         t.Fecha,
		Tipo:          t.Tipo,
		ProductoID:    t.ProductoID,
		OrigenID:      &origenID,
		DestinoID:     &destinoID,
		Cantidad:      t.Cantidad,
		ReferenciaID:  t.ReferenciaID,
		UsuarioID:     t.UsuarioID,
		Observaciones: t.Observaciones,
		CreatedAt:     t.Fecha,
	})
}

// consumo es un movimiento con origen y sin destino (venta o merma).
type consumo struct {
	Tipo          string
	ProductoID    string
	OrigenID      string
	Cantidad      decimal.Decimal
	ReferenciaID  string
	UsuarioID     string
	Observaciones string
	Fecha         time.Time
}

// aplicarConsumo bloquea la fila, re-verifica saldo y debita. La
// verificación corre bajo el mismo bloqueo que el débito: dos consumos
// concurrentes sobre el mismo par no pueden dejar saldo negativo.
func aplicarConsumo(stockRepo repository.StockRepository, movRepo repository.MovimientoRepository, c consumo) error {
	if !c.Cantidad.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	stock, err := stockRepo.GetForUpdate(c.OrigenID, c.ProductoID)
	if err != nil {
		return err
	}
	if stock.Cantidad.LessThan(c.Cantidad) {
		return domain.ErrInsufficientStock
	}
	stock.Cantidad = stock.Cantidad.Sub(c.Cantidad)
	stock.UpdatedAt = c.Fecha
	if err := stockRepo.Upsert(stock); err != nil {
		return err
	}
	origenID := c.OrigenID
	return movRepo.Create(&entity.MovimientoStock{
		ID:            uuid.New().String(),
		Fecha:         c.Fecha,
		Tipo:          c.Tipo,
		ProductoID:    c.ProductoID,
		OrigenID:      &origenID,
		DestinoID:     nil,
		Cantidad:      c.Cantidad,
		ReferenciaID:  c.ReferenciaID,
		UsuarioID:     c.UsuarioID,
		Observaciones: c.Observaciones,
		CreatedAt:     c.Fecha,
	})
}
