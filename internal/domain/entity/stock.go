package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UbicacionDeposito es el identificador fijo del depósito central.
// Las demás ubicaciones del libro de stock son IDs de vehículo.
const UbicacionDeposito = "deposito"

// StockUbicacion representa el saldo actual de un producto en una ubicación
// (depósito o vehículo). Se muta únicamente dentro de transacciones del
// motor de inventario o del motor de ventas; nunca por escritura directa.
type StockUbicacion struct {
	UbicacionID string
	ProductoID  string
	Cantidad    decimal.Decimal
	UpdatedAt   time.Time
}

// TotalProducto es el stock agregado de un producto sumando todas las
// ubicaciones (foto consistente tomada en una sola consulta).
type TotalProducto struct {
	ProductoID string
	Total      decimal.Decimal
}
