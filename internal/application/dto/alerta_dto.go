package dto

import "github.com/shopspring/decimal"

// Tipos de alerta operativa.
const (
	AlertaStockBajo         = "StockBajo"
	AlertaStockCriticoMovil = "StockCriticoVehiculo"
)

// AlertaDTO una alerta operativa producida por el evaluador.
type AlertaDTO struct {
	Tipo        string          `json:"tipo"`
	ProductoID  string          `json:"productoId"`
	Producto    string          `json:"producto"`
	UbicacionID string          `json:"ubicacionId,omitempty"` // solo stock crítico en vehículo
	StockActual decimal.Decimal `json:"stockActual"`
	StockMinimo decimal.Decimal `json:"stockMinimo"`
	Deficit     decimal.Decimal `json:"deficit"`
	Mensaje     string          `json:"mensaje"`
}
