package galpones

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/faguirre1/distribuidora-api/internal/application/dto"
	"github.com/faguirre1/distribuidora-api/internal/domain"
	"github.com/faguirre1/distribuidora-api/internal/domain/entity"
	"github.com/faguirre1/distribuidora-api/internal/domain/repository"
)

// GalponUseCase administra galpones y el ciclo de vida de sus lotes:
// un galpón aloja a lo sumo un lote Activo, la mortalidad se acumula por
// eventos auditables y el cierre de lote es terminal.
type GalponUseCase struct {
	txRunner   TxRunner
	galponRepo repository.GalponRepository
	loteRepo   repository.LoteRepository
}

// NewGalponUseCase construye el caso de uso.
func NewGalponUseCase(
	txRunner TxRunner,
	galponRepo repository.GalponRepository,
	loteRepo repository.LoteRepository,
) *GalponUseCase {
	return &GalponUseCase{
		txRunner:   txRunner,
		galponRepo: galponRepo,
		loteRepo:   loteRepo,
	}
}

// CrearGalpon da de alta un galpón vacío.
func (uc *GalponUseCase) CrearGalpon(ctx context.Context, in dto.CrearGalponRequest) (*dto.GalponResponse, error) {
	if in.Nombre == "" || in.Capacidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	galpon := &entity.Galpon{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Capacidad: in.Capacidad,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.galponRepo.Create(galpon); err != nil {
		return nil, err
	}
	return uc.toGalponResponse(galpon, nil), nil
}

// GetGalpon devuelve un galpón con su lote activo, si lo hay.
func (uc *GalponUseCase) GetGalpon(ctx context.Context, id string) (*dto.GalponResponse, error) {
	galpon, err := uc.galponRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if galpon == nil {
		return nil, domain.ErrNotFound
	}
	activo, err := uc.loteRepo.GetActivoByGalpon(id)
	if err != nil {
		return nil, err
	}
	return uc.toGalponResponse(galpon, activo), nil
}

// ListGalpones devuelve los galpones con su lote activo colgado.
func (uc *GalponUseCase) ListGalpones(ctx context.Context, limit, offset int) ([]dto.GalponResponse, error) {
	galpones, err := uc.galponRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GalponResponse, 0, len(galpones))
	for _, g := range galpones {
		activo, err := uc.loteRepo.GetActivoByGalpon(g.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *uc.toGalponResponse(g, activo))
	}
	return out, nil
}

// IniciarLote abre un lote nuevo en el galpón. La fila del galpón se bloquea
// adentro de la transacción antes de verificar la exclusión "un solo lote
// Activo por galpón": dos altas concurrentes se serializan sobre ese lock y
// la segunda ve el lote que la primera acaba de crear.
func (uc *GalponUseCase) IniciarLote(ctx context.Context, galponID string, in dto.IniciarLoteRequest) (*dto.LoteResponse, error) {
	if in.CantidadInicial <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	inicio := now
	if in.FechaInicio != nil {
		inicio = *in.FechaInicio
	}
	lote := &entity.Lote{
		ID:              uuid.New().String(),
		GalponID:        galponID,
		FechaInicio:     inicio,
		CantidadInicial: in.CantidadInicial,
		Estado:          entity.LoteActivo,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := uc.txRunner.RunLote(ctx, func(
		galponRepo repository.GalponRepository,
		loteRepo repository.LoteRepository,
	) error {
		galpon, err := galponRepo.GetForUpdate(galponID)
		if err != nil {
			return err
		}
		if galpon == nil {
			return domain.ErrNotFound
		}
		if in.CantidadInicial > galpon.Capacidad {
			return domain.ErrInvalidInput
		}
		activo, err := loteRepo.GetActivoByGalpon(galponID)
		if err != nil {
			return err
		}
		if activo != nil {
			return domain.ErrGalponOcupado
		}
		return loteRepo.Create(lote)
	})
	if err != nil {
		return nil, err
	}
	return uc.toLoteResponse(lote), nil
}

// RegistrarMortalidad acumula bajas en el lote y deja el evento de
// auditoría, con la fila del lote bloqueada. El acumulado nunca puede
// superar la cantidad inicial ni tocarse en un lote Finalizado.
func (uc *GalponUseCase) RegistrarMortalidad(ctx context.Context, loteID string, in dto.RegistrarMortalidadRequest) (*dto.LoteResponse, error) {
	var actualizado *entity.Lote
	err := uc.txRunner.RunLote(ctx, func(
		galponRepo repository.GalponRepository,
		loteRepo repository.LoteRepository,
	) error {
		lote, err := loteRepo.GetForUpdate(loteID)
		if err != nil {
			return err
		}
		if lote == nil {
			return domain.ErrNotFound
		}
		if err := lote.RegistrarMortalidad(in.Cantidad); err != nil {
			return err
		}
		lote.UpdatedAt = time.Now()
		if err := loteRepo.Update(lote); err != nil {
			return err
		}
		evento := &entity.EventoMortalidad{
			ID:        uuid.New().String(),
			LoteID:    loteID,
			Fecha:     time.Now(),
			Cantidad:  in.Cantidad,
			Motivo:    in.Motivo,
			UsuarioID: in.UsuarioID,
		}
		if err := loteRepo.CreateEventoMortalidad(evento); err != nil {
			return err
		}
		actualizado = lote
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toLoteResponse(actualizado), nil
}

// FinalizarLote cierra el lote. Finalizado es terminal: el galpón queda
// libre para alojar un lote nuevo y el lote rechaza nuevas mortalidades.
func (uc *GalponUseCase) FinalizarLote(ctx context.Context, loteID string, in dto.FinalizarLoteRequest) (*dto.LoteResponse, error) {
	var actualizado *entity.Lote
	err := uc.txRunner.RunLote(ctx, func(
		galponRepo repository.GalponRepository,
		loteRepo repository.LoteRepository,
	) error {
		lote, err := loteRepo.GetForUpdate(loteID)
		if err != nil {
			return err
		}
		if lote == nil {
			return domain.ErrNotFound
		}
		fin := time.Now()
		if in.FechaFin != nil {
			fin = *in.FechaFin
		}
		if err := lote.Finalizar(fin); err != nil {
			return err
		}
		lote.UpdatedAt = time.Now()
		if err := loteRepo.Update(lote); err != nil {
			return err
		}
		actualizado = lote
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toLoteResponse(actualizado), nil
}

// GetLote devuelve un lote por id.
func (uc *GalponUseCase) GetLote(ctx context.Context, id string) (*dto.LoteResponse, error) {
	lote, err := uc.loteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lote == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toLoteResponse(lote), nil
}

// HistorialLotes devuelve los lotes del galpón, activos y finalizados.
func (uc *GalponUseCase) HistorialLotes(ctx context.Context, galponID string) ([]dto.LoteResponse, error) {
	galpon, err := uc.galponRepo.GetByID(galponID)
	if err != nil {
		return nil, err
	}
	if galpon == nil {
		return nil, domain.ErrNotFound
	}
	lotes, err := uc.loteRepo.ListByGalpon(galponID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LoteResponse, 0, len(lotes))
	for _, l := range lotes {
		out = append(out, *uc.toLoteResponse(l))
	}
	return out, nil
}

// EventosMortalidad devuelve la auditoría de bajas del lote.
func (uc *GalponUseCase) EventosMortalidad(ctx context.Context, loteID string) ([]dto.EventoMortalidadDTO, error) {
	lote, err := uc.loteRepo.GetByID(loteID)
	if err != nil {
		return nil, err
	}
	if lote == nil {
		return nil, domain.ErrNotFound
	}
	eventos, err := uc.loteRepo.ListEventosByLote(loteID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EventoMortalidadDTO, 0, len(eventos))
	for _, e := range eventos {
		out = append(out, dto.EventoMortalidadDTO{
			EventoID: e.ID,
			Fecha:    e.Fecha,
			Cantidad: e.Cantidad,
			Motivo:   e.Motivo,
		})
	}
	return out, nil
}

func (uc *GalponUseCase) toGalponResponse(g *entity.Galpon, activo *entity.Lote) *dto.GalponResponse {
	resp := &dto.GalponResponse{
		GalponID:  g.ID,
		Nombre:    g.Nombre,
		Capacidad: g.Capacidad,
		CreatedAt: g.CreatedAt,
	}
	if activo != nil {
		resp.LoteActivo = uc.toLoteResponse(activo)
	}
	return resp
}

func (uc *GalponUseCase) toLoteResponse(l *entity.Lote) *dto.LoteResponse {
	return &dto.LoteResponse{
		LoteID:          l.ID,
		GalponID:        l.GalponID,
		FechaInicio:     l.FechaInicio,
		CantidadInicial: l.CantidadInicial,
		Mortalidad:      l.Mortalidad,
		CantidadActual:  l.CantidadActual(),
		Estado:          l.Estado,
		FechaFin:        l.FechaFin,
	}
}
