package dto

import "time"

// CrearEmpleadoRequest body para POST /api/empleados. La contraseña llega
// en claro y se hashea con bcrypt antes de persistir.
type CrearEmpleadoRequest struct {
	Nombre     string `json:"nombre"`
	DNI        string `json:"dni"`
	Rol        string `json:"rol"`
	Contrasena string `json:"contrasena"`
	Telefono   string `json:"telefono"`
}

// ActualizarEmpleadoRequest body para PUT /api/empleados/:id.
type ActualizarEmpleadoRequest struct {
	Nombre   *string `json:"nombre,omitempty"`
	Rol      *string `json:"rol,omitempty"`
	Telefono *string `json:"telefono,omitempty"`
	Estado   *string `json:"estado,omitempty"`
}

// EmpleadoResponse representación de un empleado. Nunca expone el hash.
type EmpleadoResponse struct {
	UsuarioID    string    `json:"usuarioId"`
	Nombre       string    `json:"nombre"`
	DNI          string    `json:"dni"`
	Rol          string    `json:"rol"`
	Telefono     string    `json:"telefono,omitempty"`
	Estado       string    `json:"estado"`
	FechaIngreso time.Time `json:"fechaIngreso"`
}

// EmpleadoListResponse respuesta de listado.
type EmpleadoListResponse struct {
	Items []EmpleadoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	DNI        string `json:"dni"`
	Contrasena string `json:"contrasena"`
}

// LoginResponse token JWT más los datos del empleado autenticado.
type LoginResponse struct {
	Token    string           `json:"token"`
	Empleado EmpleadoResponse `json:"empleado"`
}
