package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Las violaciones de regla de negocio se distinguen de la entrada malformada
// para que la capa HTTP pueda elegir el código 4xx apropiado.
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrClienteInactivo      = errors.New("el cliente está inactivo")
	ErrVehiculoNoDisponible = errors.New("el vehículo no está disponible")
	ErrGalponOcupado        = errors.New("el galpón ya tiene un lote activo")
	ErrMortalidadInvalida   = errors.New("la mortalidad supera la cantidad inicial del lote")
	ErrLoteCerrado          = errors.New("el lote ya está finalizado")
)
