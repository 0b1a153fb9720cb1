package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/faguirre1/distribuidora-api/internal/application/apptest"
	"github.com/faguirre1/distribuidora-api/internal/application/auth"
	"github.com/faguirre1/distribuidora-api/internal/application/dto"
	"github.com/faguirre1/distribuidora-api/internal/domain"
	"github.com/faguirre1/distribuidora-api/internal/domain/entity"
	pkgjwt "github.com/faguirre1/distribuidora-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Login de empleados
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret = "test-secret-key-for-unit-tests"
	testDNI    = "28999888"
	testPass   = "contrasena-segura"
)

func buildAuth(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPass), bcrypt.MinCost)
	require.NoError(t, err)

	store := apptest.NewStore()
	store.Usuarios["usr-1"] = entity.Usuario{
		ID:             "usr-1",
		Nombre:         "Marta",
		DNI:            testDNI,
		Rol:            entity.RolChofer,
		ContrasenaHash: string(hash),
		Estado:         "Activo",
	}
	store.Usuarios["usr-2"] = entity.Usuario{
		ID:             "usr-2",
		Nombre:         "Raúl",
		DNI:            "20111222",
		Rol:            entity.RolVendedor,
		ContrasenaHash: string(hash),
		Estado:         "Inactivo",
	}
	return auth.NewAuthUseCase(&apptest.UsuarioRepo{S: store}, testSecret, "distribuidora-api-test", 60)
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc := buildAuth(t)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{DNI: testDNI, Contrasena: testPass})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "Marta", resp.Empleado.Nombre)
	assert.Equal(t, entity.RolChofer, resp.Empleado.Rol)

	// El token emitido carga el user id y el rol del empleado.
	userID, role, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "usr-1", userID)
	assert.Equal(t, entity.RolChofer, role)
}

func TestLogin_NoFiltraCualCredencialFallo(t *testing.T) {
	uc := buildAuth(t)
	ctx := context.Background()

	// DNI inexistente y contraseña incorrecta responden con el mismo error.
	_, errDNI := uc.Login(ctx, dto.LoginRequest{DNI: "00000000", Contrasena: testPass})
	_, errPass := uc.Login(ctx, dto.LoginRequest{DNI: testDNI, Contrasena: "incorrecta"})

	assert.ErrorIs(t, errDNI, domain.ErrUnauthorized)
	assert.ErrorIs(t, errPass, domain.ErrUnauthorized)
}

func TestLogin_EmpleadoInactivo(t *testing.T) {
	uc := buildAuth(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{DNI: "20111222", Contrasena: testPass})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"un empleado dado de baja no puede autenticarse aunque la contraseña sea correcta")
}

func TestLogin_ValidaEntrada(t *testing.T) {
	uc := buildAuth(t)
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{DNI: "", Contrasena: testPass})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(ctx, dto.LoginRequest{DNI: testDNI, Contrasena: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
