package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovimientoCargaVehiculo    = "carga_vehiculo"    // depósito -> vehículo
	MovimientoDescargaVehiculo = "descarga_vehiculo" // vehículo -> depósito
	MovimientoVenta            = "venta"             // salida por venta (consumo)
	MovimientoMerma            = "merma"             // roturas o pérdidas en vehículo
	MovimientoCompra           = "compra"            // ingreso externo al depósito
)

// MovimientoStock es una entrada inmutable del libro de movimientos
// (append-only). Origen nulo = ingreso externo; Destino nulo = consumo.
// Los saldos por ubicación son derivables reproduciendo este log.
type MovimientoStock struct {
	ID            string
	Fecha         time.Time
	Tipo          string
	ProductoID    string
	OrigenID      *string // ubicación que se debita (nil en compras)
	DestinoID     *string // ubicación que se acredita (nil en ventas y mermas)
	Cantidad      decimal.Decimal // siempre positiva; el sentido lo dan origen/destino
	ReferenciaID  string          // venta, carga o compra que lo causó
	UsuarioID     string
	Observaciones string
	CreatedAt     time.Time
}
