package inventario_test

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
	"github.com/faguirre1/distribuidora-api/internal/domain"
	"github.com/faguirre1/distribuidora-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	prodMaple    = "prod-maple"
	prodCajon    = "prod-cajon"
	vehCamioneta = "veh-camioneta"
	usrChofer    = "usr-chofer"
)

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// buildInventario arma un caso de uso sobre un Store en memoria con un
// vehículo y dos productos, y stock inicial de depósito 100/50.
func buildInventario(t *testing.T) (*inventario.InventarioUseCase, *apptest.Store) {
	t.Helper()
	store := apptest.NewStore()
	store.Productos[prodMaple] = entity.Producto{ID: prodMaple, Nombre: "Maple de huevos", EsHuevo: true, UnidadDeMedida: "Maple"}
	store.Productos[prodCajon] = entity.Producto{ID: prodCajon, Nombre: "Cajón de huevos", EsHuevo: true, UnidadDeMedida: "Cajón"}
	store.Vehiculos[vehCamioneta] = entity.Vehiculo{ID: vehCamioneta, Patente: "AB123CD", Estado: "Activo"}
	store.SetStock(entity.UbicacionDeposito, prodMaple, d(100))
	store.SetStock(entity.UbicacionDeposito, prodCajon, d(50))

	uc := inventario.NewInventarioUseCase(
		&apptest.TxRunner{S: store},
		&apptest.ProductoRepo{S: store},
		&apptest.VehiculoRepo{S: store},
		&apptest.StockRepo{S: store},
		&apptest.MovimientoRepo{S: store},
	)
	return uc, store
}

// ──────────────────────────────────────────────────────────────────────────────
// Carga y descarga de vehículos
// ──────────────────────────────────────────────────────────────────────────────

func TestCargarVehiculo_TransfiereYConserva(t *testing.T) {
	uc, store := buildInventario(t)

	resp, err := uc.CargarVehiculo(context.Background(), dto.CargaVehiculoRequest{
		VehiculoID: vehCamioneta,
		UsuarioID:  usrChofer,
		Items: []dto.ItemCarga{
			{ProductoID: prodMaple, Cantidad: d(30)},
			{ProductoID: prodCajon, Cantidad: d(10)},
		},
	})
	require.NoError(t, err)

	assert.True(t, store.GetStock(entity.UbicacionDeposito, prodMaple).Equal(d(70)),
		"la carga debe debitar el depósito")
	assert.True(t, store.GetStock(vehCamioneta, prodMaple).Equal(d(30)),
		"la carga debe acreditar el vehículo")
	assert.True(t, store.TotalStock(prodMaple).Equal(d(100)),
		"una transferencia no crea ni destruye stock")
	assert.True(t, store.TotalStock(prodCajon).Equal(d(50)))

	// Un registro en el log por cada línea, con origen y destino.
	require.Len(t, store.Movimientos, 2)
	for _, m := range store.Movimientos {
		assert.Equal(t, entity.MovimientoCargaVehiculo, m.Tipo)
		require.NotNil(t, m.OrigenID)
		require.NotNil(t, m.DestinoID)
		assert.Equal(t, entity.UbicacionDeposito, *m.OrigenID)
		assert.Equal(t, vehCamioneta, *m.DestinoID)
	}

	// La respuesta refleja los saldos actualizados del vehículo.
	require.Len(t, resp.Items, 2)
}

func TestCargarVehiculo_LoteAtomico(t *testing.T) {
	uc, store := buildInventario(t)

	// Segunda línea excede el stock del depósito: la primera tampoco debe
	// tener efecto (todo o nada).
	_, err := uc.CargarVehiculo(context.Background(), dto.CargaVehiculoRequest{
		VehiculoID: vehCamioneta,
		UsuarioID:  usrChofer,
		Items: []dto.ItemCarga{
			{ProductoID: prodMaple, Cantidad: d(30)},
			{ProductoID: prodCajon, Cantidad: d(51)},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, store.GetStock(entity.UbicacionDeposito, prodMaple).Equal(d(100)),
		"un lote fallido no debe dejar líneas aplicadas")
	assert.True(t, store.GetStock(vehCamioneta, prodMaple).Equal(decimal.Zero))
	assert.Empty(t, store.Movimientos, "un lote fallido no deja rastro en el log")
}

func TestCargarVehiculo_ValidaEntrada(t *testing.T) {
	uc, _ := buildInventario(t)
	ctx := context.Background()

	_, err := uc.CargarVehiculo(ctx, dto.CargaVehiculoRequest{VehiculoID: vehCamioneta, UsuarioID: usrChofer})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin items debe rechazarse")

	_, err = uc.CargarVehiculo(ctx, dto.CargaVehiculoRequest{
		VehiculoID: "veh-inexistente",
		UsuarioID:  usrChofer,
		Items:      []dto.ItemCarga{{ProductoID: prodMaple, Cantidad: d(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "vehículo desconocido debe rechazarse")

	_, err = uc.CargarVehiculo(ctx, dto.CargaVehiculoRequest{
		VehiculoID: vehCamioneta,
		UsuarioID:  usrChofer,
		Items:      []dto.ItemCarga{{ProductoID: prodMaple, Cantidad: d(-3)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad no positiva debe rechazarse")
}

func TestDescargarVehiculo_DevuelveAlDeposito(t *testing.T) {
	uc, store := buildInventario(t)
	store.SetStock(vehCamioneta, prodMaple, d(20))

	_, err := uc.DescargarVehiculo(context.Background(), dto.CargaVehiculoRequest{
		VehiculoID: vehCamioneta,
		UsuarioID:  usrChofer,
		Items:      []dto.ItemCarga{{ProductoID: prodMaple, Cantidad: d(15)}},
	})
	require.NoError(t, err)

	assert.True(t, store.GetStock(vehCamioneta, prodMaple).Equal(d(5)))
	assert.True(t, store.GetStock(entity.UbicacionDeposito, prodMaple).Equal(d(115)))
	require.Len(t, store.Movimientos, 1)
	assert.Equal(t, entity.MovimientoDescargaVehiculo, store.Movimientos[0].Tipo)
}

func TestDescargarVehiculo_RechazaMasDeLoCargado(t *testing.T) {
	uc, store := buildInventario(t)
	store.SetStock(vehCamioneta, prodMaple, d(20))

	_, err := uc.DescargarVehiculo(context.Background(), dto.CargaVehiculoRequest{
		VehiculoID: vehCamioneta,
		UsuarioID:  usrChofer,
		Items:      []dto.ItemCarga{{ProductoID: prodMaple, Cantidad: d(21)}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, store.GetStock(vehCamioneta, prodMaple).Equal(d(20)))
	assert.True(t, store.GetStock(entity.UbicacionDeposito, prodMaple).Equal(d(100)),
		"el rollback deshace el crédito al depósito de la descarga fallida")
}

// ──────────────────────────────────────────────────────────────────────────────
// Mermas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarMerma_DescuentaDelVehiculo(t *testing.T) {
	uc, store := buildInventario(t)
	store.SetStock(vehCamioneta, prodMaple, d(10))

	err := uc.RegistrarMerma(context.Background(), dto.MermaRequest{
		VehiculoID: vehCamioneta,
		ProductoID: prodMaple,
		Cantidad:   d(3),
		UsuarioID:  usrChofer,
		Motivo:     "Maples rotos en el reparto",
	})
	require.NoError(t, err)

	assert.True(t, store.GetStock(vehCamioneta, prodMaple).Equal(d(7)))
	require.Len(t, store.Movimientos, 1)
	m := store.Movimientos[0]
	assert.Equal(t, entity.MovimientoMerma, m.Tipo)
	assert.Nil(t, m.DestinoID, "la merma es consumo: no acredita en ningún lado")
	assert.Equal(t, "Maples rotos en el reparto", m.Observaciones)
}

func TestRegistrarMerma_RechazaSinSaldo(t *testing.T) {
	uc, store := buildInventario(t)
	store.SetStock(vehCamioneta, prodMaple, d(2))

	err := uc.RegistrarMerma(context.Background(), dto.MermaRequest{
		VehiculoID: vehCamioneta,
		ProductoID: prodMaple,
		Cantidad:   d(3),
		UsuarioID:  usrChofer,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"el libro no admite saldos negativos ni por pérdidas")
	assert.True(t, store.GetStock(vehCamioneta, prodMaple).Equal(d(2)))
}

func TestRegistrarMerma_RechazaCantidadNoPositiva(t *testing.T) {
	uc, _ := buildInventario(t)
	err := uc.RegistrarMerma(context.Background(), dto.MermaRequest{
		VehiculoID: vehCamioneta,
		ProductoID: prodMaple,
		Cantidad:   decimal.Zero,
		UsuarioID:  usrChofer,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Compras a proveedor
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarCompra_IngresaAlDepositoYActualizaCosto(t *testing.T) {
	uc, store := buildInventario(t)

	err := uc.RegistrarCompra(context.Background(), dto.CompraRequest{
		UsuarioID: usrChofer,
		Proveedor: "Granja El Amanecer",
		Items: []dto.ItemCompra{
			{ProductoID: prodMaple, Cantidad: d(200), CostoUnitario: decimal.NewFromFloat(3500.50)},
		},
	})
	require.NoError(t, err)

	assert.True(t, store.GetStock(entity.UbicacionDeposito, prodMaple).Equal(d(300)))
	assert.True(t, store.Productos[prodMaple].CostoUltimaCompra.Equal(decimal.NewFromFloat(3500.50)),
		"la compra debe actualizar el costo de última compra")

	require.Len(t, store.Movimientos, 1)
	m := store.Movimientos[0]
	assert.Equal(t, entity.MovimientoCompra, m.Tipo)
	assert.Nil(t, m.OrigenID, "la compra es ingreso externo: sin origen")
	require.NotNil(t, m.DestinoID)
	assert.Equal(t, entity.UbicacionDeposito, *m.DestinoID)
	assert.Contains(t, m.Observaciones, "Granja El Amanecer")
}

func TestRegistrarCompra_ConcurrentesSinFilaPrevia(t *testing.T) {
	uc, store := buildInventario(t)
	const prodBandeja = "prod-bandeja"
	store.Productos[prodBandeja] = entity.Producto{ID: prodBandeja, Nombre: "Bandeja de huevos", EsHuevo: true, UnidadDeMedida: "Bandeja"}

	// Producto sin fila de stock en el depósito: dos compras simultáneas
	// deben acumularse, no pisarse entre sí.
	var wg sync.WaitGroup
	for _, cantidad := range []decimal.Decimal{d(30), d(50)} {
		wg.Add(1)
		go func(cantidad decimal.Decimal) {
			defer wg.Done()
			err := uc.RegistrarCompra(context.Background(), dto.CompraRequest{
				UsuarioID: usrChofer,
				Items:     []dto.ItemCompra{{ProductoID: prodBandeja, Cantidad: cantidad, CostoUnitario: d(1200)}},
			})
			assert.NoError(t, err)
		}(cantidad)
	}
	wg.Wait()

	assert.True(t, store.GetStock(entity.UbicacionDeposito, prodBandeja).Equal(d(80)),
		"el saldo debe reflejar la suma de ambas compras")
	assert.Len(t, store.Movimientos, 2, "cada compra deja su registro en el log")
}

func TestRegistrarCompra_RechazaProductoDesconocido(t *testing.T) {
	uc, store := buildInventario(t)

	err := uc.RegistrarCompra(context.Background(), dto.CompraRequest{
		UsuarioID: usrChofer,
		Items: []dto.ItemCompra{
			{ProductoID: "prod-fantasma", Cantidad: d(10), CostoUnitario: d(100)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, store.Movimientos)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestStockVehiculo_VehiculoDesconocido(t *testing.T) {
	uc, _ := buildInventario(t)
	_, err := uc.StockVehiculo(context.Background(), "veh-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMovimientos_RequiereFiltro(t *testing.T) {
	uc, _ := buildInventario(t)
	_, err := uc.Movimientos(context.Background(), "", "", nil, nil, 0, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"la consulta del log exige filtrar por producto o por ubicación")
}

func TestMovimientos_FiltraPorProducto(t *testing.T) {
	uc, _ := buildInventario(t)
	ctx := context.Background()

	_, err := uc.CargarVehiculo(ctx, dto.CargaVehiculoRequest{
		VehiculoID: vehCamioneta,
		UsuarioID:  usrChofer,
		Items: []dto.ItemCarga{
			{ProductoID: prodMaple, Cantidad: d(10)},
			{ProductoID: prodCajon, Cantidad: d(5)},
		},
	})
	require.NoError(t, err)

	movs, err := uc.Movimientos(ctx, prodMaple, "", nil, nil, 0, 0)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, prodMaple, movs[0].ProductoID)

	// Por ubicación aparecen ambos (el vehículo fue destino de los dos).
	movs, err = uc.Movimientos(ctx, "", vehCamioneta, nil, nil, 0, 0)
	require.NoError(t, err)
	assert.Len(t, movs, 2)
}
