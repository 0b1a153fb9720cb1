package ventas_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faguirre1/distribuidora-api/internal/application/apptest"
	"github.com/faguirre1/distribuidora-api/internal/application/dto"
	"github.com/faguirre1/distribuidora-api/internal/application/inventario"
	"github.com/faguirre1/distribuidora-api/internal/application/ventas"
	"github.com/faguirre1/distribuidora-api/internal/domain"
	"github.com/faguirre1/distribuidora-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	prodMaple  = "prod-maple"
	vehReparto = "veh-reparto"
	usrVend    = "usr-vendedor"
	cliKiosco  = "cli-kiosco"
)

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// buildVentas arma el motor de ventas completo sobre un Store en memoria:
// un producto, un vehículo activo con 100 maples cargados, un vendedor y
// un cliente activo sin deuda.
func buildVentas(t *testing.T) (*ventas.RegistrarVentaUseCase, *apptest.Store) {
	t.Helper()
	store := apptest.NewStore()
	store.Productos[prodMaple] = entity.Producto{ID: prodMaple, Nombre: "Maple de huevos", UnidadDeMedida: "Maple"}
	store.Vehiculos[vehReparto] = entity.Vehiculo{ID: vehReparto, Patente: "AB123CD", Estado: "Activo"}
	store.Usuarios[usrVend] = entity.Usuario{ID: usrVend, Nombre: "Carlos", Rol: entity.RolVendedor, Estado: "Activo"}
	store.Clientes[cliKiosco] = entity.Cliente{ID: cliKiosco, NombreCompleto: "Kiosco La Esquina", DNI: "30111222", Estado: entity.ClienteActivo}
	store.SetStock(vehReparto, prodMaple, d(100))

	txRunner := &apptest.TxRunner{S: store}
	inv := inventario.NewInventarioUseCase(
		txRunner,
		&apptest.ProductoRepo{S: store},
		&apptest.VehiculoRepo{S: store},
		&apptest.StockRepo{S: store},
		&apptest.MovimientoRepo{S: store},
	)
	uc := ventas.NewRegistrarVentaUseCase(
		txRunner,
		inv,
		&apptest.ClienteRepo{S: store},
		&apptest.UsuarioRepo{S: store},
		&apptest.VehiculoRepo{S: store},
		&apptest.ProductoRepo{S: store},
		&apptest.VentaRepo{S: store},
		&apptest.PagoRepo{S: store},
		ventas.PoliticaPagos{MetodosContado: []string{entity.MetodoEfectivo, entity.MetodoMercadoPago}},
	)
	return uc, store
}

func ventaDe(cantidad, precio int64, metodo string) dto.RegistrarVentaRequest {
	return dto.RegistrarVentaRequest{
		ClienteID:  cliKiosco,
		UsuarioID:  usrVend,
		VehiculoID: vehReparto,
		MetodoPago: metodo,
		Items: []dto.ItemVentaDTO{
			{ProductoID: prodMaple, Cantidad: d(cantidad), PrecioUnitario: d(precio)},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Liquidación de ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarVenta_ContadoNoGeneraDeuda(t *testing.T) {
	uc, store := buildVentas(t)

	resp, err := uc.RegistrarVenta(context.Background(), ventaDe(50, 450, entity.MetodoEfectivo))
	require.NoError(t, err)

	assert.True(t, resp.Total.Equal(d(22500)), "total = 50 * 450")
	assert.True(t, resp.TotalNeto.Equal(d(22500)), "sin descuento, neto = total")

	assert.True(t, store.GetStock(vehReparto, prodMaple).Equal(d(50)),
		"la venta debe debitar el stock del vehículo")

	cliente := store.Clientes[cliKiosco]
	assert.True(t, cliente.Deuda.IsZero(), "venta al contado no acumula deuda")
	assert.True(t, cliente.VentasTotales.Equal(d(22500)),
		"ventas totales acumulan el neto sin importar el método")
	require.NotNil(t, cliente.UltimaCompra, "la venta registra la última compra")

	// Un débito de stock en el log, referenciando la venta.
	require.Len(t, store.Movimientos, 1)
	assert.Equal(t, entity.MovimientoVenta, store.Movimientos[0].Tipo)
	assert.Equal(t, resp.VentaID, store.Movimientos[0].ReferenciaID)

	// La venta quedó persistida con su detalle.
	require.Len(t, store.Ventas, 1)
	require.Len(t, store.Detalles, 1)
	assert.True(t, store.Detalles[0].Subtotal.Equal(d(22500)))
}

func TestRegistrarVenta_CuentaCorrienteAcumulaDeuda(t *testing.T) {
	uc, store := buildVentas(t)

	_, err := uc.RegistrarVenta(context.Background(), ventaDe(10, 450, entity.MetodoCuentaCorriente))
	require.NoError(t, err)

	cliente := store.Clientes[cliKiosco]
	assert.True(t, cliente.Deuda.Equal(d(4500)),
		"cuenta corriente difiere el cobro: la deuda sube por el neto")
	assert.True(t, cliente.VentasTotales.Equal(d(4500)))
}

func TestRegistrarVenta_DescuentoSobreElTotal(t *testing.T) {
	uc, store := buildVentas(t)

	in := ventaDe(50, 450, entity.MetodoCuentaCorriente)
	in.DescuentoPorcentaje = d(10)

	resp, err := uc.RegistrarVenta(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, resp.Total.Equal(d(22500)), "el total no incluye el descuento")
	assert.True(t, resp.TotalNeto.Equal(d(20250)), "neto = 22500 - 10%")
	assert.True(t, store.Clientes[cliKiosco].Deuda.Equal(d(20250)),
		"la deuda acumula el neto, no el total bruto")
}

func TestRegistrarVenta_FallaDejaTodoIntacto(t *testing.T) {
	uc, store := buildVentas(t)

	// Segunda línea excede el stock del vehículo: ni el débito de la
	// primera, ni la deuda, ni la venta deben quedar aplicados.
	in := ventaDe(10, 450, entity.MetodoCuentaCorriente)
	in.Items = append(in.Items, dto.ItemVentaDTO{
		ProductoID: prodMaple, Cantidad: d(95), PrecioUnitario: d(450),
	})

	_, err := uc.RegistrarVenta(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, store.GetStock(vehReparto, prodMaple).Equal(d(100)),
		"una venta fallida no debe dejar débitos parciales")
	cliente := store.Clientes[cliKiosco]
	assert.True(t, cliente.Deuda.IsZero())
	assert.True(t, cliente.VentasTotales.IsZero())
	assert.Empty(t, store.Ventas, "una venta fallida no se persiste")
	assert.Empty(t, store.Movimientos, "una venta fallida no deja rastro en el log")
}

func TestRegistrarVenta_ConcurrentesSoloUnaEntra(t *testing.T) {
	uc, store := buildVentas(t)
	store.SetStock(vehReparto, prodMaple, d(30))

	// Dos ventas de 20 sobre un saldo de 30: exactamente una debe entrar.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.RegistrarVenta(context.Background(), ventaDe(20, 450, entity.MetodoEfectivo))
		}(i)
	}
	wg.Wait()

	fallas := 0
	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
			fallas++
		}
	}
	assert.Equal(t, 1, fallas, "de dos ventas concurrentes que no entran juntas, exactamente una falla")
	assert.True(t, store.GetStock(vehReparto, prodMaple).Equal(d(10)),
		"el saldo final refleja una sola venta aplicada")
	assert.Len(t, store.Ventas, 1)
}

func TestRegistrarVenta_ClienteInactivo(t *testing.T) {
	uc, store := buildVentas(t)
	cli := store.Clientes[cliKiosco]
	cli.Estado = entity.ClienteInactivo
	store.Clientes[cliKiosco] = cli

	_, err := uc.RegistrarVenta(context.Background(), ventaDe(1, 450, entity.MetodoEfectivo))
	assert.ErrorIs(t, err, domain.ErrClienteInactivo)
}

func TestRegistrarVenta_VehiculoEnMantenimiento(t *testing.T) {
	uc, store := buildVentas(t)
	veh := store.Vehiculos[vehReparto]
	veh.Estado = "Mantenimiento"
	store.Vehiculos[vehReparto] = veh

	_, err := uc.RegistrarVenta(context.Background(), ventaDe(1, 450, entity.MetodoEfectivo))
	assert.ErrorIs(t, err, domain.ErrVehiculoNoDisponible)
}

func TestRegistrarVenta_ValidaDescuento(t *testing.T) {
	uc, _ := buildVentas(t)

	in := ventaDe(1, 450, entity.MetodoEfectivo)
	in.DescuentoPorcentaje = d(101)
	_, err := uc.RegistrarVenta(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el descuento está acotado a 0-100")

	in.DescuentoPorcentaje = d(-1)
	_, err = uc.RegistrarVenta(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pagos y cuenta corriente
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarPago_DescuentaDeuda(t *testing.T) {
	uc, store := buildVentas(t)
	ctx := context.Background()

	_, err := uc.RegistrarVenta(ctx, ventaDe(10, 450, entity.MetodoCuentaCorriente))
	require.NoError(t, err)
	require.True(t, store.Clientes[cliKiosco].Deuda.Equal(d(4500)))

	resp, err := uc.RegistrarPago(ctx, cliKiosco, dto.RegistrarPagoRequest{
		Monto:      d(3000),
		MetodoPago: entity.MetodoEfectivo,
	})
	require.NoError(t, err)

	assert.True(t, resp.DeudaActual.Equal(d(1500)), "la respuesta informa la deuda resultante")
	assert.True(t, store.Clientes[cliKiosco].Deuda.Equal(d(1500)))
	require.Len(t, store.Pagos, 1)
}

func TestRegistrarPago_ValidaEntrada(t *testing.T) {
	uc, _ := buildVentas(t)
	ctx := context.Background()

	_, err := uc.RegistrarPago(ctx, cliKiosco, dto.RegistrarPagoRequest{Monto: decimal.Zero, MetodoPago: entity.MetodoEfectivo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto no positivo debe rechazarse")

	_, err = uc.RegistrarPago(ctx, cliKiosco, dto.RegistrarPagoRequest{Monto: d(100)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "método de pago vacío debe rechazarse")

	_, err = uc.RegistrarPago(ctx, "cli-fantasma", dto.RegistrarPagoRequest{Monto: d(100), MetodoPago: entity.MetodoEfectivo})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistorialVentas_SoloVentasComprometidas(t *testing.T) {
	uc, store := buildVentas(t)
	ctx := context.Background()

	_, err := uc.RegistrarVenta(ctx, ventaDe(5, 450, entity.MetodoEfectivo))
	require.NoError(t, err)

	// Una venta fallida no debe aparecer en el historial.
	store.SetStock(vehReparto, prodMaple, d(1))
	_, err = uc.RegistrarVenta(ctx, ventaDe(50, 450, entity.MetodoEfectivo))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	historial, err := uc.HistorialVentas(ctx, cliKiosco, 0, 0)
	require.NoError(t, err)
	require.Len(t, historial, 1, "el historial solo refleja ventas con commit")
	assert.True(t, historial[0].TotalNeto.Equal(d(2250)))
	require.Len(t, historial[0].Productos, 1)
	assert.Equal(t, "Maple de huevos", historial[0].Productos[0].Producto)
}

func TestGetVenta_Inexistente(t *testing.T) {
	uc, _ := buildVentas(t)
	_, err := uc.GetVenta(context.Background(), "venta-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
