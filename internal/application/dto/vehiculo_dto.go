package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearVehiculoRequest body para POST /api/vehiculos.
type CrearVehiculoRequest struct {
	Patente                 string          `json:"patente"`
	Marca                   string          `json:"marca"`
	Modelo                  string          `json:"modelo"`
	CapacidadCarga          decimal.Decimal `json:"capacidadCarga"`
	ConsumoPromedioLts100Km decimal.Decimal `json:"consumoPromedioLts100Km"`
}

// ActualizarVehiculoRequest body para PUT /api/vehiculos/:id.
type ActualizarVehiculoRequest struct {
	Marca                   *string          `json:"marca,omitempty"`
	Modelo                  *string          `json:"modelo,omitempty"`
	CapacidadCarga          *decimal.Decimal `json:"capacidadCarga,omitempty"`
	ConsumoPromedioLts100Km *decimal.Decimal `json:"consumoPromedioLts100Km,omitempty"`
	EnRuta                  *bool            `json:"enRuta,omitempty"`
	Estado                  *string          `json:"estado,omitempty"`
}

// VehiculoResponse representación de un vehículo.
type VehiculoResponse struct {
	VehiculoID              string          `json:"vehiculoId"`
	Patente                 string          `json:"patente"`
	Marca                   string          `json:"marca"`
	Modelo                  string          `json:"modelo"`
	CapacidadCarga          decimal.Decimal `json:"capacidadCarga"`
	ConsumoPromedioLts100Km decimal.Decimal `json:"consumoPromedioLts100Km"`
	EnRuta                  bool            `json:"enRuta"`
	Estado                  string          `json:"estado"`
	CreatedAt               time.Time       `json:"createdAt"`
}

// VehiculoListResponse respuesta de listado.
type VehiculoListResponse struct {
	Items []VehiculoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
