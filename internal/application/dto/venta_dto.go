package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemVentaDTO una línea de venta.
type ItemVentaDTO struct {
	ProductoID     string          `json:"productoId"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}

// RegistrarVentaRequest body para POST /api/ventas.
type RegistrarVentaRequest struct {
	ClienteID           string          `json:"clienteId"`
	UsuarioID           string          `json:"usuarioId"`
	VehiculoID          string          `json:"vehiculoId"`
	MetodoPago          string          `json:"metodoPago"`
	DescuentoPorcentaje decimal.Decimal `json:"descuentoPorcentaje"`
	Items               []ItemVentaDTO  `json:"items"`
}

// DetalleVentaResponse una línea de venta comprometida.
type DetalleVentaResponse struct {
	ProductoID     string          `json:"productoId"`
	Producto       string          `json:"producto,omitempty"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// VentaResponse una venta comprometida con sus líneas.
type VentaResponse struct {
	VentaID             string                 `json:"ventaId"`
	Fecha               time.Time              `json:"fecha"`
	ClienteID           string                 `json:"clienteId"`
	UsuarioID           string                 `json:"usuarioId"`
	VehiculoID          string                 `json:"vehiculoId"`
	MetodoPago          string                 `json:"metodoPago"`
	DescuentoPorcentaje decimal.Decimal        `json:"descuentoPorcentaje"`
	Total               decimal.Decimal        `json:"total"`
	TotalNeto           decimal.Decimal        `json:"totalNeto"`
	Items               []DetalleVentaResponse `json:"items"`
}

// HistorialVentaDTO entrada del historial de ventas de un cliente
// (GET /api/clientes/:id/historial-ventas), fecha descendente.
type HistorialVentaDTO struct {
	VentaID    string                 `json:"ventaId"`
	Fecha      time.Time              `json:"fecha"`
	Total      decimal.Decimal        `json:"total"`
	TotalNeto  decimal.Decimal        `json:"totalNeto"`
	MetodoPago string                 `json:"metodoPago"`
	Productos  []DetalleVentaResponse `json:"productos"`
}
