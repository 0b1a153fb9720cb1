package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faguirre1/distribuidora-api/internal/application/apptest"
	"github.com/faguirre1/distribuidora-api/internal/application/dto"
	"github.com/faguirre1/distribuidora-api/internal/application/usecase"
	"github.com/faguirre1/distribuidora-api/internal/domain"
	"github.com/faguirre1/distribuidora-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// CRUD administrativo de clientes
// ──────────────────────────────────────────────────────────────────────────────

func buildClientes(t *testing.T) (*usecase.ClienteUseCase, *apptest.Store) {
	t.Helper()
	store := apptest.NewStore()
	return usecase.NewClienteUseCase(&apptest.ClienteRepo{S: store}), store
}

func TestClienteCrear_AltaActivoSinDeuda(t *testing.T) {
	uc, _ := buildClientes(t)

	resp, err := uc.Crear(context.Background(), dto.CrearClienteRequest{
		NombreCompleto: "Kiosco La Esquina",
		DNI:            "30111222",
		Telefono:       "11-5555-0001",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ClienteActivo, resp.Estado, "el alta arranca Activo")
	assert.True(t, resp.Deuda.IsZero(), "el alta arranca sin deuda")
	assert.NotEmpty(t, resp.ClienteID)
}

func TestClienteCrear_DNIDuplicado(t *testing.T) {
	uc, _ := buildClientes(t)
	ctx := context.Background()

	_, err := uc.Crear(ctx, dto.CrearClienteRequest{NombreCompleto: "Kiosco A", DNI: "30111222"})
	require.NoError(t, err)

	_, err = uc.Crear(ctx, dto.CrearClienteRequest{NombreCompleto: "Kiosco B", DNI: "30111222"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el DNI es único entre clientes")
}

func TestClienteActualizar_ParcialYValidaEstado(t *testing.T) {
	uc, _ := buildClientes(t)
	ctx := context.Background()

	creado, err := uc.Crear(ctx, dto.CrearClienteRequest{NombreCompleto: "Kiosco A", DNI: "30111222"})
	require.NoError(t, err)

	telefono := "11-5555-9999"
	resp, err := uc.Actualizar(ctx, creado.ClienteID, dto.ActualizarClienteRequest{Telefono: &telefono})
	require.NoError(t, err)
	assert.Equal(t, telefono, resp.Telefono)
	assert.Equal(t, "Kiosco A", resp.NombreCompleto, "los campos no enviados no cambian")

	estadoInvalido := "Suspendido"
	_, err = uc.Actualizar(ctx, creado.ClienteID, dto.ActualizarClienteRequest{Estado: &estadoInvalido})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClienteEliminar_RechazaConDeuda(t *testing.T) {
	uc, store := buildClientes(t)
	ctx := context.Background()

	creado, err := uc.Crear(ctx, dto.CrearClienteRequest{NombreCompleto: "Kiosco A", DNI: "30111222"})
	require.NoError(t, err)

	// Cliente con cuenta corriente pendiente: no se borra.
	cli := store.Clientes[creado.ClienteID]
	cli.Deuda = decimal.NewFromInt(4500)
	store.Clientes[creado.ClienteID] = cli

	err = uc.Eliminar(ctx, creado.ClienteID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un cliente con deuda no puede borrarse")

	// Deuda cancelada: ahora sí.
	cli.Deuda = decimal.Zero
	store.Clientes[creado.ClienteID] = cli
	require.NoError(t, uc.Eliminar(ctx, creado.ClienteID))

	_, err = uc.GetByID(ctx, creado.ClienteID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
