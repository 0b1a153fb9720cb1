package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago conocidos. Cuáles liquidan al contado y cuáles acumulan
// deuda en cuenta corriente es política configurable, no se asume acá.
const (
	MetodoEfectivo        = "Efectivo"
	MetodoMercadoPago     = "MercadoPago"
	MetodoCuentaCorriente = "CuentaCorriente"
)

// Venta es la cabecera de una venta comprometida. Inmutable una vez
// persistida: las correcciones se hacen con asientos compensatorios.
type Venta struct {
	ID                  string
	Fecha               time.Time
	ClienteID           string
	UsuarioID           string // vendedor
	VehiculoID          string
	MetodoPago          string
	DescuentoPorcentaje decimal.Decimal // 0–100, aplicado sobre el total
	Total               decimal.Decimal // suma de subtotales, sin descuento
	TotalNeto           decimal.Decimal // Total - descuento
	CreatedAt           time.Time
}

// DetalleVenta es una línea de venta: producto, cantidad y precio pactado.
type DetalleVenta struct {
	ID             string
	VentaID        string
	ProductoID     string
	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
}

// Pago es un cobro registrado a un cliente; reduce su deuda.
type Pago struct {
	ID          string
	ClienteID   string
	Fecha       time.Time
	Monto       decimal.Decimal
	MetodoPago  string
	Observacion string
}
