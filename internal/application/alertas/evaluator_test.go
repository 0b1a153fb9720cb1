package alertas_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faguirre1/distribuidora-api/internal/application/alertas"
	"github.com/faguirre1/distribuidora-api/internal/application/apptest"
	"github.com/faguirre1/distribuidora-api/internal/application/dto"
	"github.com/faguirre1/distribuidora-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	prodMaple = "prod-maple"
	prodCajon = "prod-cajon"
	vehRuta   = "veh-ruta"
)

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// buildEvaluator arma un evaluador con umbral de vehículo 5 y dos productos:
// maple con mínimo 50 y cajón sin mínimo configurado.
func buildEvaluator(t *testing.T) (*alertas.Evaluator, *apptest.Store) {
	t.Helper()
	store := apptest.NewStore()
	store.Productos[prodMaple] = entity.Producto{
		ID: prodMaple, Nombre: "Maple de huevos", StockMinimoAlerta: d(50),
	}
	store.Productos[prodCajon] = entity.Producto{
		ID: prodCajon, Nombre: "Cajón de huevos", StockMinimoAlerta: decimal.Zero,
	}
	ev := alertas.NewEvaluator(
		&apptest.ProductoRepo{S: store},
		&apptest.StockRepo{S: store},
		d(5),
	)
	return ev, store
}

func soloTipo(alertasList []dto.AlertaDTO, tipo string) []dto.AlertaDTO {
	var out []dto.AlertaDTO
	for _, a := range alertasList {
		if a.Tipo == tipo {
			out = append(out, a)
		}
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock bajo global
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluar_StockBajoConDeficit(t *testing.T) {
	ev, store := buildEvaluator(t)
	store.SetStock(entity.UbicacionDeposito, prodMaple, d(30))
	store.SetStock(vehRuta, prodMaple, d(8))

	out, err := ev.Evaluar(context.Background())
	require.NoError(t, err)

	bajas := soloTipo(out, dto.AlertaStockBajo)
	require.Len(t, bajas, 1)
	a := bajas[0]
	assert.Equal(t, prodMaple, a.ProductoID)
	assert.True(t, a.StockActual.Equal(d(38)), "el stock actual agrega todas las ubicaciones")
	assert.True(t, a.StockMinimo.Equal(d(50)))
	assert.True(t, a.Deficit.Equal(d(12)), "déficit = mínimo - actual")
	assert.Contains(t, a.Mensaje, "Maple de huevos")
}

func TestEvaluar_SinAlertaEnElUmbral(t *testing.T) {
	ev, store := buildEvaluator(t)
	// Exactamente en el mínimo: todavía no es alerta.
	store.SetStock(entity.UbicacionDeposito, prodMaple, d(50))

	out, err := ev.Evaluar(context.Background())
	require.NoError(t, err)
	assert.Empty(t, soloTipo(out, dto.AlertaStockBajo))
}

func TestEvaluar_ProductoSinMinimoNoAlerta(t *testing.T) {
	ev, store := buildEvaluator(t)
	// Cajón sin mínimo configurado y sin stock: no debe alertar jamás.
	store.SetStock(entity.UbicacionDeposito, prodMaple, d(100))

	out, err := ev.Evaluar(context.Background())
	require.NoError(t, err)
	for _, a := range out {
		assert.NotEqual(t, prodCajon, a.ProductoID)
	}
}

func TestEvaluar_ProductoSinFilasCuentaComoCero(t *testing.T) {
	ev, _ := buildEvaluator(t)
	// Maple sin ninguna fila en el libro: saldo cero, déficit completo.
	out, err := ev.Evaluar(context.Background())
	require.NoError(t, err)

	bajas := soloTipo(out, dto.AlertaStockBajo)
	require.Len(t, bajas, 1)
	assert.True(t, bajas[0].StockActual.IsZero())
	assert.True(t, bajas[0].Deficit.Equal(d(50)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock crítico en vehículo
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluar_StockCriticoEnVehiculo(t *testing.T) {
	ev, store := buildEvaluator(t)
	store.SetStock(entity.UbicacionDeposito, prodMaple, d(100))
	store.SetStock(vehRuta, prodMaple, d(3))

	out, err := ev.Evaluar(context.Background())
	require.NoError(t, err)

	criticas := soloTipo(out, dto.AlertaStockCriticoMovil)
	require.Len(t, criticas, 1)
	a := criticas[0]
	assert.Equal(t, vehRuta, a.UbicacionID)
	assert.True(t, a.StockActual.Equal(d(3)))
	assert.True(t, a.Deficit.Equal(d(2)))
}

func TestEvaluar_DepositoNuncaEsCritico(t *testing.T) {
	ev, store := buildEvaluator(t)
	// Saldo bajo en el depósito: dispara stock bajo global, no crítico móvil.
	store.SetStock(entity.UbicacionDeposito, prodMaple, d(2))

	out, err := ev.Evaluar(context.Background())
	require.NoError(t, err)
	assert.Empty(t, soloTipo(out, dto.AlertaStockCriticoMovil))
	assert.Len(t, soloTipo(out, dto.AlertaStockBajo), 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Idempotencia
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluar_EsIdempotente(t *testing.T) {
	ev, store := buildEvaluator(t)
	store.SetStock(entity.UbicacionDeposito, prodMaple, d(10))
	store.SetStock(vehRuta, prodMaple, d(2))
	ctx := context.Background()

	primera, err := ev.Evaluar(ctx)
	require.NoError(t, err)
	segunda, err := ev.Evaluar(ctx)
	require.NoError(t, err)

	assert.Equal(t, primera, segunda,
		"evaluar el mismo estado dos veces devuelve las mismas alertas")
}
