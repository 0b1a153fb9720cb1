package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/faguirre1/distribuidora-api/internal/application/dto"
	"github.com/faguirre1/distribuidora-api/internal/domain"
	"github.com/faguirre1/distribuidora-api/internal/domain/repository"
	"github.com/faguirre1/distribuidora-api/pkg/jwt"
)

// AuthUseCase autentica empleados por DNI + contraseña y emite tokens JWT.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtSecret   string
	jwtIssuer   string
	jwtExpMin   int
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtSecret, jwtIssuer string, jwtExpMin int) *AuthUseCase {
	return &AuthUseCase{
		usuarioRepo: usuarioRepo,
		jwtSecret:   jwtSecret,
		jwtIssuer:   jwtIssuer,
		jwtExpMin:   jwtExpMin,
	}
}

// Login valida las credenciales y devuelve token + datos del empleado.
// DNI inexistente y contraseña incorrecta responden igual: no se filtra
// cuál de los dos falló.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.DNI == "" || in.Contrasena == "" {
		return nil, domain.ErrInvalidInput
	}
	usuario, err := uc.usuarioRepo.GetByDNI(in.DNI)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUnauthorized
	}
	if usuario.Estado != "Activo" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.ContrasenaHash), []byte(in.Contrasena)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtSecret, usuario.ID, usuario.Rol, uc.jwtIssuer, uc.jwtExpMin)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Empleado: dto.EmpleadoResponse{
			UsuarioID:    usuario.ID,
			Nombre:       usuario.Nombre,
			DNI:          usuario.DNI,
			Rol:          usuario.Rol,
			Telefono:     usuario.Telefono,
			Estado:       usuario.Estado,
			FechaIngreso: usuario.FechaIngreso,
		},
	}, nil
}
