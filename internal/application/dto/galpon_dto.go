package dto

import "time"

// CrearGalponRequest body para POST /api/galpones.
type CrearGalponRequest struct {
	Nombre    string `json:"nombre"`
	Capacidad int    `json:"capacidad"`
}

// GalponResponse representación de un galpón con su lote activo (si hay).
type GalponResponse struct {
	GalponID   string        `json:"galponId"`
	Nombre     string        `json:"nombre"`
	Capacidad  int           `json:"capacidad"`
	LoteActivo *LoteResponse `json:"loteActivo,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// IniciarLoteRequest body para POST /api/galpones/:id/lotes.
type IniciarLoteRequest struct {
	CantidadInicial int        `json:"cantidadInicial"`
	FechaInicio     *time.Time `json:"fechaInicio,omitempty"`
}

// RegistrarMortalidadRequest body para POST /api/lotes/:id/mortalidad.
type RegistrarMortalidadRequest struct {
	Cantidad  int    `json:"cantidad"`
	Motivo    string `json:"motivo"`
	UsuarioID string `json:"usuarioId"`
}

// FinalizarLoteRequest body para POST /api/lotes/:id/finalizar.
type FinalizarLoteRequest struct {
	FechaFin *time.Time `json:"fechaFin,omitempty"`
}

// LoteResponse representación de un lote.
type LoteResponse struct {
	LoteID          string     `json:"loteId"`
	GalponID        string     `json:"galponId"`
	FechaInicio     time.Time  `json:"fechaInicio"`
	CantidadInicial int        `json:"cantidadInicial"`
	Mortalidad      int        `json:"mortalidad"`
	CantidadActual  int        `json:"cantidadActual"`
	Estado          string     `json:"estado"`
	FechaFin        *time.Time `json:"fechaFin,omitempty"`
}

// EventoMortalidadDTO un evento de mortalidad registrado.
type EventoMortalidadDTO struct {
	EventoID string    `json:"eventoId"`
	Fecha    time.Time `json:"fecha"`
	Cantidad int       `json:"cantidad"`
	Motivo   string    `json:"motivo,omitempty"`
}
