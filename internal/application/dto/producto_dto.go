package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearProductoRequest body para POST /api/productos.
type CrearProductoRequest struct {
	Nombre            string          `json:"nombre"`
	EsHuevo           bool            `json:"esHuevo"`
	UnidadDeMedida    string          `json:"unidadDeMedida"`
	UnidadesPorBulto  int             `json:"unidadesPorBulto"`
	StockMinimoAlerta decimal.Decimal `json:"stockMinimoAlerta"`
	PrecioVenta       decimal.Decimal `json:"precioVenta"`
}

// ActualizarProductoRequest body para PUT /api/productos/:id.
// Campos nil = sin cambios. El stock no es escribible: se deriva del libro.
type ActualizarProductoRequest struct {
	Nombre            *string          `json:"nombre,omitempty"`
	UnidadDeMedida    *string          `json:"unidadDeMedida,omitempty"`
	UnidadesPorBulto  *int             `json:"unidadesPorBulto,omitempty"`
	StockMinimoAlerta *decimal.Decimal `json:"stockMinimoAlerta,omitempty"`
	PrecioVenta       *decimal.Decimal `json:"precioVenta,omitempty"`
}

// ProductoResponse representación de un producto. StockActual es el agregado
// de todas las ubicaciones al momento de la consulta.
type ProductoResponse struct {
	ProductoID        string          `json:"productoId"`
	Nombre            string          `json:"nombre"`
	EsHuevo           bool            `json:"esHuevo"`
	UnidadDeMedida    string          `json:"unidadDeMedida"`
	UnidadesPorBulto  int             `json:"unidadesPorBulto"`
	StockActual       decimal.Decimal `json:"stockActual"`
	StockMinimoAlerta decimal.Decimal `json:"stockMinimoAlerta"`
	CostoUltimaCompra decimal.Decimal `json:"costoUltimaCompra"`
	PrecioVenta       decimal.Decimal `json:"precioVenta"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// ProductoListResponse respuesta de listado con paginación.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
