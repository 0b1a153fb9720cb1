package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin    = "admin"
	RolChofer   = "chofer"
	RolVendedor = "vendedor"
)

// Usuario representa un empleado del sistema. El núcleo lo referencia
// (vendedor de una venta, autor de un movimiento) pero no lo muta.
type Usuario struct {
	ID             string
	Nombre         string
	DNI            string
	Rol            string // admin, chofer, vendedor
	ContrasenaHash string // bcrypt, nunca plano después de persistir
	Telefono       string
	Estado         string // Activo, Inactivo
	FechaIngreso   time.Time
}
