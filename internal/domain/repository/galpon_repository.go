package repository

import "github.com/faguirre1/distribuidora-api/internal/domain/entity"

// GalponRepository define el puerto de persistencia para galpones.
type GalponRepository interface {
	Create(galpon *entity.Galpon) error
	GetByID(id string) (*entity.Galpon, error)
	// GetForUpdate bloquea la fila del galpón: el alta de lotes lo usa para
	// serializar la exclusión "un solo lote Activo por galpón".
	GetForUpdate(id string) (*entity.Galpon, error)
	List(limit, offset int) ([]*entity.Galpon, error)
	Update(galpon *entity.Galpon) error
}

// LoteRepository define el puerto de persistencia para lotes de aves y sus
// eventos de mortalidad.
type LoteRepository interface {
	Create(lote *entity.Lote) error
	GetByID(id string) (*entity.Lote, error)
	// GetForUpdate bloquea la fila del lote para transiciones de estado.
	GetForUpdate(id string) (*entity.Lote, error)
	// GetActivoByGalpon devuelve el lote Activo del galpón, o nil.
	GetActivoByGalpon(galponID string) (*entity.Lote, error)
	Update(lote *entity.Lote) error
	// ListByGalpon devuelve el historial de lotes ordenado por fecha de inicio.
	ListByGalpon(galponID string) ([]*entity.Lote, error)
	CreateEventoMortalidad(evento *entity.EventoMortalidad) error
	ListEventosByLote(loteID string) ([]*entity.EventoMortalidad, error)
}
