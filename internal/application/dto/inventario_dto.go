package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemCarga una línea de carga/descarga de vehículo.
type ItemCarga struct {
	ProductoID string          `json:"productoId"`
	Cantidad   decimal.Decimal `json:"cantidad"`
}

// CargaVehiculoRequest body para POST /api/inventario/cargar y
// POST /api/inventario/descargar. El lote completo es una sola transacción.
type CargaVehiculoRequest struct {
	VehiculoID string      `json:"vehiculoId"`
	UsuarioID  string      `json:"usuarioId"`
	Items      []ItemCarga `json:"items"`
}

// MermaRequest body para POST /api/inventario/merma.
type MermaRequest struct {
	VehiculoID string          `json:"vehiculoId"`
	ProductoID string          `json:"productoId"`
	Cantidad   decimal.Decimal `json:"cantidad"`
	UsuarioID  string          `json:"usuarioId"`
	Motivo     string          `json:"motivo"`
}

// ItemCompra una línea de compra a proveedor.
type ItemCompra struct {
	ProductoID    string          `json:"productoId"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costoUnitario"`
}

// CompraRequest body para POST /api/inventario/compras (ingreso externo
// al depósito; actualiza el costo de última compra de cada producto).
type CompraRequest struct {
	UsuarioID     string       `json:"usuarioId"`
	Proveedor     string       `json:"proveedor"`
	Observaciones string       `json:"observaciones"`
	Items         []ItemCompra `json:"items"`
}

// StockUbicacionDTO saldo de un producto en una ubicación.
type StockUbicacionDTO struct {
	ProductoID     string          `json:"productoId"`
	Nombre         string          `json:"nombre,omitempty"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	UnidadDeMedida string          `json:"unidadDeMedida,omitempty"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// StockVehiculoResponse saldos actuales de un vehículo tras una operación
// o consulta.
type StockVehiculoResponse struct {
	VehiculoID string              `json:"vehiculoId"`
	Items      []StockUbicacionDTO `json:"items"`
}

// MovimientoDTO una entrada del log de movimientos.
type MovimientoDTO struct {
	MovimientoID  string          `json:"movimientoId"`
	Fecha         time.Time       `json:"fecha"`
	Tipo          string          `json:"tipo"`
	ProductoID    string          `json:"productoId"`
	OrigenID      *string         `json:"origenId,omitempty"`
	DestinoID     *string         `json:"destinoId,omitempty"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	ReferenciaID  string          `json:"referenciaId,omitempty"`
	Observaciones string          `json:"observaciones,omitempty"`
}
