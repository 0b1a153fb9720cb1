package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de cliente.
const (
	ClienteActivo   = "Activo"
	ClienteInactivo = "Inactivo"
)

// Cliente representa un cliente de la distribuidora.
// Deuda y VentasTotales se mutan únicamente desde el motor de ventas y el
// registro de pagos; el CRUD administrativo no los toca.
type Cliente struct {
	ID              string
	NombreCompleto  string
	DNI             string
	Telefono        string
	Email           string
	Direccion       string
	Estado          string // Activo, Inactivo
	RequiereFactura bool
	Deuda           decimal.Decimal
	VentasTotales   decimal.Decimal
	UltimaCompra    *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
