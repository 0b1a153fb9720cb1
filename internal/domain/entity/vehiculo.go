package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vehiculo representa un vehículo de reparto. Su stock solo puede cargarse
// desde el depósito y solo se consume por ventas atribuidas al vehículo.
type Vehiculo struct {
	ID                      string
	Patente                 string
	Marca                   string
	Modelo                  string
	CapacidadCarga          decimal.Decimal
	ConsumoPromedioLts100Km decimal.Decimal
	EnRuta                  bool
	Estado                  string // Activo, Mantenimiento, Inactivo
	CreatedAt               time.Time
	UpdatedAt               time.Time
}
