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

var _ repository.GalponRepository = (*GalponRepo)(nil)
var _ repository.LoteRepository = (*LoteRepo)(nil)

// GalponRepo implementación de GalponRepository (usable con pool o tx).
type GalponRepo struct {
	q Querier
}

// NewGalponRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGalponRepository(q Querier) *GalponRepo {
	return &GalponRepo{q: q}
}

// Create persiste un galpón nuevo.
func (r *GalponRepo) Create(g *entity.Galpon) error {
	query := `
		INSERT INTO galpones (id, nombre, capacidad, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, g.ID, g.Nombre, g.Capacidad, g.CreatedAt, g.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert galpon: %w", err)
	}
	return nil
}

// GetByID obtiene un galpón por ID.
func (r *GalponRepo) GetByID(id string) (*entity.Galpon, error) {
	query := `SELECT id, nombre, capacidad, created_at, updated_at FROM galpones WHERE id = $1`
	var g entity.Galpon
	err := r.q.QueryRow(context.Background(), query, id).Scan(&g.ID, &g.Nombre, &g.Capacidad, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get galpon: %w", err)
	}
	return &g, nil
}

// GetForUpdate obtiene un galpón y bloquea su fila. El alta de lotes lo usa
// para que dos altas concurrentes sobre el mismo galpón se serialicen antes
// de chequear si ya hay un lote Activo.
func (r *GalponRepo) GetForUpdate(id string) (*entity.Galpon, error) {
	query := `SELECT id, nombre, capacidad, created_at, updated_at FROM galpones WHERE id = $1 FOR UPDATE`
	var g entity.Galpon
	err := r.q.QueryRow(context.Background(), query, id).Scan(&g.ID, &g.Nombre, &g.Capacidad, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get galpon for update: %w", err)
	}
	return &g, nil
}

// List lista galpones por nombre con paginación.
func (r *GalponRepo) List(limit, offset int) ([]*entity.Galpon, error) {
	query := `SELECT id, nombre, capacidad, created_at, updated_at FROM galpones ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list galpones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Galpon
	for rows.Next() {
		var g entity.Galpon
		if err := rows.Scan(&g.ID, &g.Nombre, &g.Capacidad, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan galpon: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// Update actualiza un galpón.
func (r *GalponRepo) Update(g *entity.Galpon) error {
	query := `UPDATE galpones SET nombre = $2, capacidad = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, g.ID, g.Nombre, g.Capacidad, g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update galpon: %w", err)
	}
	return nil
}

// LoteRepo implementación de LoteRepository (usable con pool o tx).
type LoteRepo struct {
	q Querier
}

// NewLoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLoteRepository(q Querier) *LoteRepo {
	return &LoteRepo{q: q}
}

const loteCols = `id, galpon_id, fecha_inicio, cantidad_inicial, mortalidad, estado, fecha_fin, created_at, updated_at`

func scanLote(row pgx.Row) (*entity.Lote, error) {
	var l entity.Lote
	err := row.Scan(
		&l.ID, &l.GalponID, &l.FechaInicio, &l.CantidadInicial, &l.Mortalidad,
		&l.Estado, &l.FechaFin, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan lote: %w", err)
	}
	return &l, nil
}

// Create persiste un lote nuevo.
func (r *LoteRepo) Create(l *entity.Lote) error {
	query := `
		INSERT INTO lotes (` + loteCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.GalponID, l.FechaInicio, l.CantidadInicial, l.Mortalidad,
		l.Estado, l.FechaFin, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lote: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *LoteRepo) GetByID(id string) (*entity.Lote, error) {
	query := `SELECT ` + loteCols + ` FROM lotes WHERE id = $1`
	return scanLote(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene un lote y bloquea su fila para transiciones de estado.
func (r *LoteRepo) GetForUpdate(id string) (*entity.Lote, error) {
	query := `SELECT ` + loteCols + ` FROM lotes WHERE id = $1 FOR UPDATE`
	return scanLote(r.q.QueryRow(context.Background(), query, id))
}

// GetActivoByGalpon devuelve el lote Activo del galpón, o nil si está libre.
func (r *LoteRepo) GetActivoByGalpon(galponID string) (*entity.Lote, error) {
	query := `SELECT ` + loteCols + ` FROM lotes WHERE galpon_id = $1 AND estado = $2`
	return scanLote(r.q.QueryRow(context.Background(), query, galponID, entity.LoteActivo))
}

// Update actualiza un lote (mortalidad acumulada, estado, cierre).
func (r *LoteRepo) Update(l *entity.Lote) error {
	query := `
		UPDATE lotes SET mortalidad = $2, estado = $3, fecha_fin = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, l.ID, l.Mortalidad, l.Estado, l.FechaFin, l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update lote: %w", err)
	}
	return nil
}

// ListByGalpon devuelve el historial de lotes del galpón, del más antiguo
// al más reciente según fecha de inicio.
func (r *LoteRepo) ListByGalpon(galponID string) ([]*entity.Lote, error) {
	query := `SELECT ` + loteCols + ` FROM lotes WHERE galpon_id = $1 ORDER BY fecha_inicio ASC`
	rows, err := r.q.Query(context.Background(), query, galponID)
	if err != nil {
		return nil, fmt.Errorf("list lotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lote
	for rows.Next() {
		var l entity.Lote
		if err := rows.Scan(
			&l.ID, &l.GalponID, &l.FechaInicio, &l.CantidadInicial, &l.Mortalidad,
			&l.Estado, &l.FechaFin, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan lote: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// CreateEventoMortalidad inserta un evento de mortalidad (append-only).
func (r *LoteRepo) CreateEventoMortalidad(e *entity.EventoMortalidad) error {
	query := `
		INSERT INTO eventos_mortalidad (id, lote_id, fecha, cantidad, motivo, usuario_id)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query, e.ID, e.LoteID, e.Fecha, e.Cantidad, e.Motivo, e.UsuarioID)
	if err != nil {
		return fmt.Errorf("insert evento mortalidad: %w", err)
	}
	return nil
}

// ListEventosByLote devuelve los eventos de mortalidad del lote en orden.
func (r *LoteRepo) ListEventosByLote(loteID string) ([]*entity.EventoMortalidad, error) {
	query := `
		SELECT id, lote_id, fecha, cantidad, motivo, usuario_id
		FROM eventos_mortalidad WHERE lote_id = $1 ORDER BY fecha`
	rows, err := r.q.Query(context.Background(), query, loteID)
	if err != nil {
		return nil, fmt.Errorf("list eventos mortalidad: %w", err)
	}
	defer rows.Close()
	var list []*entity.EventoMortalidad
	for rows.Next() {
		var e entity.EventoMortalidad
		if err := rows.Scan(&e.ID, &e.LoteID, &e.Fecha, &e.Cantidad, &e.Motivo, &e.UsuarioID); err != nil {
			return nil, fmt.Errorf("scan evento mortalidad: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
