package entity

import (
	"time"

	"github.com/faguirre1/distribuidora-api/internal/domain"
)

// Estados de lote. La transición Activo -> Finalizado ocurre exactamente
// una vez; Finalizado es terminal.
const (
	LoteActivo     = "Activo"
	LoteFinalizado = "Finalizado"
)

// Lote es una camada de aves alojada en un galpón, con ciclo de vida
// acotado desde el alta hasta la finalización.
type Lote struct {
	ID              string
	GalponID        string
	FechaInicio     time.Time
	CantidadInicial int
	Mortalidad      int // acumulada, monótona no decreciente
	Estado          string
	FechaFin        *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CantidadActual devuelve las aves vivas del lote.
func (l *Lote) CantidadActual() int {
	return l.CantidadInicial - l.Mortalidad
}

// RegistrarMortalidad acumula bajas. No existe operación de descuento:
// las correcciones se registran como ajustes compensatorios explícitos.
func (l *Lote) RegistrarMortalidad(cantidad int) error {
	if l.Estado == LoteFinalizado {
		return domain.ErrLoteCerrado
	}
	if cantidad <= 0 {
		return domain.ErrInvalidInput
	}
	if l.Mortalidad+cantidad > l.CantidadInicial {
		return domain.ErrMortalidadInvalida
	}
	l.Mortalidad += cantidad
	return nil
}

// Finalizar transiciona el lote a Finalizado. Un lote finalizado rechaza
// nuevas mortalidades y finalizaciones repetidas.
func (l *Lote) Finalizar(fechaFin time.Time) error {
	if l.Estado == LoteFinalizado {
		return domain.ErrLoteCerrado
	}
	l.Estado = LoteFinalizado
	l.FechaFin = &fechaFin
	return nil
}

// EventoMortalidad es el registro append-only de cada baja informada,
// auditoría del contador acumulado del lote.
type EventoMortalidad struct {
	ID        string
	LoteID    string
	Fecha     time.Time
	Cantidad  int
	Motivo    string
	UsuarioID string
}
