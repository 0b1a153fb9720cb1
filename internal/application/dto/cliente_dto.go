package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearClienteRequest body para POST /api/clientes.
type CrearClienteRequest struct {
	NombreCompleto  string `json:"nombreCompleto"`
	DNI             string `json:"dni"`
	Telefono        string `json:"telefono"`
	Email           string `json:"email"`
	Direccion       string `json:"direccion"`
	RequiereFactura bool   `json:"requiereFactura"`
}

// ActualizarClienteRequest body para PUT /api/clientes/:id.
// Deuda y VentasTotales no son escribibles por CRUD.
type ActualizarClienteRequest struct {
	NombreCompleto  *string `json:"nombreCompleto,omitempty"`
	DNI             *string `json:"dni,omitempty"`
	Telefono        *string `json:"telefono,omitempty"`
	Email           *string `json:"email,omitempty"`
	Direccion       *string `json:"direccion,omitempty"`
	Estado          *string `json:"estado,omitempty"`
	RequiereFactura *bool   `json:"requiereFactura,omitempty"`
}

// ClienteResponse representación de un cliente.
type ClienteResponse struct {
	ClienteID       string          `json:"clienteId"`
	NombreCompleto  string          `json:"nombreCompleto"`
	DNI             string          `json:"dni"`
	Telefono        string          `json:"telefono"`
	Email           string          `json:"email"`
	Direccion       string          `json:"direccion"`
	Estado          string          `json:"estado"`
	RequiereFactura bool            `json:"requiereFactura"`
	Deuda           decimal.Decimal `json:"deuda"`
	VentasTotales   decimal.Decimal `json:"ventasTotales"`
	UltimaCompra    *time.Time      `json:"ultimaCompra,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ClienteListResponse respuesta de listado.
type ClienteListResponse struct {
	Items []ClienteResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// RegistrarPagoRequest body para POST /api/clientes/:id/pagos.
type RegistrarPagoRequest struct {
	Monto       decimal.Decimal `json:"monto"`
	MetodoPago  string          `json:"metodoPago"`
	Observacion string          `json:"observacion"`
}

// PagoResponse un pago registrado.
type PagoResponse struct {
	PagoID      string          `json:"pagoId"`
	ClienteID   string          `json:"clienteId"`
	Fecha       time.Time       `json:"fecha"`
	Monto       decimal.Decimal `json:"monto"`
	MetodoPago  string          `json:"metodoPago"`
	Observacion string          `json:"observacion,omitempty"`
	DeudaActual decimal.Decimal `json:"deudaActual"`
}
