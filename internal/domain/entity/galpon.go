package entity

import "time"

// Galpon es un galpón físico. Aloja a lo sumo un lote activo a la vez;
// esa exclusión la garantiza el caso de uso dentro de la transacción.
type Galpon struct {
	ID        string
	Nombre    string
	Capacidad int // aves que admite
	CreatedAt time.Time
	UpdatedAt time.Time
}
