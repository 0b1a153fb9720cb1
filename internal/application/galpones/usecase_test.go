package galpones_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faguirre1/distribuidora-api/internal/application/apptest"
	"github.com/faguirre1/distribuidora-api/internal/application/dto"
	"github.com/faguirre1/distribuidora-api/internal/application/galpones"
	"github.com/faguirre1/distribuidora-api/internal/domain"
	"github.com/faguirre1/distribuidora-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const galponNorte = "galpon-norte"

func buildGalpones(t *testing.T) (*galpones.GalponUseCase, *apptest.Store) {
	t.Helper()
	store := apptest.NewStore()
	store.Galpones[galponNorte] = entity.Galpon{ID: galponNorte, Nombre: "Galpón Norte", Capacidad: 1000}
	uc := galpones.NewGalponUseCase(
		&apptest.TxRunner{S: store},
		&apptest.GalponRepo{S: store},
		&apptest.LoteRepo{S: store},
	)
	return uc, store
}

func iniciarLote(t *testing.T, uc *galpones.GalponUseCase, cantidad int) *dto.LoteResponse {
	t.Helper()
	lote, err := uc.IniciarLote(context.Background(), galponNorte, dto.IniciarLoteRequest{CantidadInicial: cantidad})
	require.NoError(t, err)
	return lote
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta de lotes y exclusión por galpón
// ──────────────────────────────────────────────────────────────────────────────

func TestIniciarLote_AltaOk(t *testing.T) {
	uc, _ := buildGalpones(t)

	lote := iniciarLote(t, uc, 800)
	assert.Equal(t, galponNorte, lote.GalponID)
	assert.Equal(t, 800, lote.CantidadInicial)
	assert.Equal(t, 800, lote.CantidadActual)
	assert.Equal(t, entity.LoteActivo, lote.Estado)

	// El galpón reporta su lote activo colgado.
	galpon, err := uc.GetGalpon(context.Background(), galponNorte)
	require.NoError(t, err)
	require.NotNil(t, galpon.LoteActivo)
	assert.Equal(t, lote.LoteID, galpon.LoteActivo.LoteID)
}

func TestIniciarLote_GalponOcupado(t *testing.T) {
	uc, _ := buildGalpones(t)
	iniciarLote(t, uc, 500)

	_, err := uc.IniciarLote(context.Background(), galponNorte, dto.IniciarLoteRequest{CantidadInicial: 100})
	assert.ErrorIs(t, err, domain.ErrGalponOcupado,
		"un galpón aloja a lo sumo un lote activo")
}

func TestIniciarLote_ConcurrentesSobreElMismoGalpon(t *testing.T) {
	uc, store := buildGalpones(t)

	// Dos altas simultáneas sobre el mismo galpón libre: la fila del galpón
	// se bloquea antes de chequear la exclusión, así que exactamente una
	// gana y la otra recibe el conflicto.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.IniciarLote(context.Background(), galponNorte, dto.IniciarLoteRequest{CantidadInicial: 400})
		}(i)
	}
	wg.Wait()

	ocupados := 0
	for _, err := range errs {
		if err != nil {
			require.ErrorIs(t, err, domain.ErrGalponOcupado)
			ocupados++
		}
	}
	assert.Equal(t, 1, ocupados, "exactamente una de las dos altas debe ser rechazada")

	activos := 0
	for _, l := range store.Lotes {
		if l.Estado == entity.LoteActivo {
			activos++
		}
	}
	assert.Equal(t, 1, activos, "el galpón nunca queda con más de un lote activo")
}

func TestIniciarLote_ValidaCapacidad(t *testing.T) {
	uc, _ := buildGalpones(t)
	ctx := context.Background()

	_, err := uc.IniciarLote(ctx, galponNorte, dto.IniciarLoteRequest{CantidadInicial: 1001})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el lote no puede superar la capacidad del galpón")

	_, err = uc.IniciarLote(ctx, galponNorte, dto.IniciarLoteRequest{CantidadInicial: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.IniciarLote(ctx, "galpon-fantasma", dto.IniciarLoteRequest{CantidadInicial: 100})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mortalidad
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarMortalidad_AcumulaYAudita(t *testing.T) {
	uc, store := buildGalpones(t)
	lote := iniciarLote(t, uc, 500)
	ctx := context.Background()

	resp, err := uc.RegistrarMortalidad(ctx, lote.LoteID, dto.RegistrarMortalidadRequest{
		Cantidad: 12, Motivo: "Golpe de calor", UsuarioID: "usr-encargado",
	})
	require.NoError(t, err)
	assert.Equal(t, 12, resp.Mortalidad)
	assert.Equal(t, 488, resp.CantidadActual)

	resp, err = uc.RegistrarMortalidad(ctx, lote.LoteID, dto.RegistrarMortalidadRequest{Cantidad: 3})
	require.NoError(t, err)
	assert.Equal(t, 15, resp.Mortalidad)

	// Cada registro deja su evento de auditoría.
	require.Len(t, store.Eventos, 2)
	assert.Equal(t, "Golpe de calor", store.Eventos[0].Motivo)

	eventos, err := uc.EventosMortalidad(ctx, lote.LoteID)
	require.NoError(t, err)
	assert.Len(t, eventos, 2)
}

func TestRegistrarMortalidad_ExcesoNoMutaNiAudita(t *testing.T) {
	uc, store := buildGalpones(t)
	lote := iniciarLote(t, uc, 100)
	ctx := context.Background()

	_, err := uc.RegistrarMortalidad(ctx, lote.LoteID, dto.RegistrarMortalidadRequest{Cantidad: 101})
	require.ErrorIs(t, err, domain.ErrMortalidadInvalida)

	actual, err := uc.GetLote(ctx, lote.LoteID)
	require.NoError(t, err)
	assert.Equal(t, 0, actual.Mortalidad, "un registro rechazado no muta el acumulado")
	assert.Empty(t, store.Eventos, "un registro rechazado no deja evento")
}

// ──────────────────────────────────────────────────────────────────────────────
// Finalización
// ──────────────────────────────────────────────────────────────────────────────

func TestFinalizarLote_LiberaElGalpon(t *testing.T) {
	uc, _ := buildGalpones(t)
	lote := iniciarLote(t, uc, 500)
	ctx := context.Background()

	fin := time.Now()
	resp, err := uc.FinalizarLote(ctx, lote.LoteID, dto.FinalizarLoteRequest{FechaFin: &fin})
	require.NoError(t, err)
	assert.Equal(t, entity.LoteFinalizado, resp.Estado)
	require.NotNil(t, resp.FechaFin)

	// El galpón queda libre: puede alojar un lote nuevo.
	galpon, err := uc.GetGalpon(ctx, galponNorte)
	require.NoError(t, err)
	assert.Nil(t, galpon.LoteActivo)

	nuevo := iniciarLote(t, uc, 300)
	assert.NotEqual(t, lote.LoteID, nuevo.LoteID)
}

func TestFinalizarLote_EsTerminal(t *testing.T) {
	uc, _ := buildGalpones(t)
	lote := iniciarLote(t, uc, 500)
	ctx := context.Background()

	_, err := uc.FinalizarLote(ctx, lote.LoteID, dto.FinalizarLoteRequest{})
	require.NoError(t, err)

	_, err = uc.FinalizarLote(ctx, lote.LoteID, dto.FinalizarLoteRequest{})
	assert.ErrorIs(t, err, domain.ErrLoteCerrado, "la finalización no se repite")

	_, err = uc.RegistrarMortalidad(ctx, lote.LoteID, dto.RegistrarMortalidadRequest{Cantidad: 1})
	assert.ErrorIs(t, err, domain.ErrLoteCerrado, "un lote finalizado rechaza mortalidades")
}

func TestHistorialLotes_IncluyeFinalizados(t *testing.T) {
	uc, _ := buildGalpones(t)
	ctx := context.Background()

	primero := iniciarLote(t, uc, 500)
	_, err := uc.FinalizarLote(ctx, primero.LoteID, dto.FinalizarLoteRequest{})
	require.NoError(t, err)
	iniciarLote(t, uc, 300)

	historial, err := uc.HistorialLotes(ctx, galponNorte)
	require.NoError(t, err)
	assert.Len(t, historial, 2, "el historial cubre lotes activos y finalizados")
}

func TestHistorialLotes_OrdenadoPorFechaDeInicio(t *testing.T) {
	uc, _ := buildGalpones(t)
	ctx := context.Background()

	enero := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	marzo := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)

	viejo, err := uc.IniciarLote(ctx, galponNorte, dto.IniciarLoteRequest{CantidadInicial: 500, FechaInicio: &enero})
	require.NoError(t, err)
	_, err = uc.FinalizarLote(ctx, viejo.LoteID, dto.FinalizarLoteRequest{})
	require.NoError(t, err)
	nuevo, err := uc.IniciarLote(ctx, galponNorte, dto.IniciarLoteRequest{CantidadInicial: 300, FechaInicio: &marzo})
	require.NoError(t, err)

	historial, err := uc.HistorialLotes(ctx, galponNorte)
	require.NoError(t, err)
	require.Len(t, historial, 2)
	assert.Equal(t, viejo.LoteID, historial[0].LoteID, "el historial va del lote más antiguo al más reciente")
	assert.Equal(t, nuevo.LoteID, historial[1].LoteID)
}
