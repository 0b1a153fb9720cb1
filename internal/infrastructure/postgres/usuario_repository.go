package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/faguirre1/distribuidora-api/internal/domain"
	"github.com/faguirre1/distribuidora-api/internal/domain/entity"
	"github.com/faguirre1/distribuidora-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación de UsuarioRepository (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const usuarioCols = `id, nombre, dni, rol, contrasena_hash, telefono, estado, fecha_ingreso`

func scanUsuario(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(&u.ID, &u.Nombre, &u.DNI, &u.Rol, &u.ContrasenaHash, &u.Telefono, &u.Estado, &u.FechaIngreso)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan usuario: %w", err)
	}
	return &u, nil
}

// Create persiste un usuario nuevo.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (` + usuarioCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Nombre, u.DNI, u.Rol, u.ContrasenaHash, u.Telefono, u.Estado, u.FechaIngreso,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios WHERE id = $1`
	return scanUsuario(r.q.QueryRow(context.Background(), query, id))
}

// GetByDNI obtiene un usuario por DNI (login).
func (r *UsuarioRepo) GetByDNI(dni string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios WHERE dni = $1`
	return scanUsuario(r.q.QueryRow(context.Background(), query, dni))
}

// List lista usuarios por nombre con paginación.
func (r *UsuarioRepo) List(limit, offset int) ([]*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nombre, &u.DNI, &u.Rol, &u.ContrasenaHash, &u.Telefono, &u.Estado, &u.FechaIngreso); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update actualiza un usuario.
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	query := `
		UPDATE usuarios SET nombre = $2, rol = $3, contrasena_hash = $4, telefono = $5, estado = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Nombre, u.Rol, u.ContrasenaHash, u.Telefono, u.Estado,
	)
	if err != nil {
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}
