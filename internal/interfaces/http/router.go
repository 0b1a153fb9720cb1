package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/faguirre1/distribuidora-api/internal/application/alertas"
	"github.com/faguirre1/distribuidora-api/internal/application/auth"
	"github.com/faguirre1/distribuidora-api/internal/application/galpones"
	"github.com/faguirre1/distribuidora-api/internal/application/inventario"
	"github.com/faguirre1/distribuidora-api/internal/application/usecase"
	"github.com/faguirre1/distribuidora-api/internal/application/ventas"
	"github.com/faguirre1/distribuidora-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC   *usecase.ProductoUseCase
	ClienteUC    *usecase.ClienteUseCase
	VehiculoUC   *usecase.VehiculoUseCase
	EmpleadoUC   *usecase.EmpleadoUseCase
	InventarioUC *inventario.InventarioUseCase
	VentasUC     *ventas.RegistrarVentaUseCase
	GalponUC     *galpones.GalponUseCase
	AlertasEval  *alertas.Evaluator
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	soloAdmin := RequireRole(entity.RolAdmin)

	// Productos
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", soloAdmin, productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", soloAdmin, productoHandler.Update)
	productos.Delete("/:id", soloAdmin, productoHandler.Delete)

	// Clientes (incluye cuenta corriente)
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC, deps.VentasUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", soloAdmin, clienteHandler.Delete)
	clientes.Get("/:id/historial-ventas", clienteHandler.HistorialVentas)
	clientes.Post("/:id/pagos", clienteHandler.RegistrarPago)
	clientes.Get("/:id/historial-pagos", clienteHandler.HistorialPagos)

	// Vehículos
	vehiculos := protected.Group("/vehiculos")
	vehiculoHandler := NewVehiculoHandler(deps.VehiculoUC)
	vehiculos.Post("/", soloAdmin, vehiculoHandler.Create)
	vehiculos.Get("/", vehiculoHandler.List)
	vehiculos.Get("/:id", vehiculoHandler.GetByID)
	vehiculos.Put("/:id", soloAdmin, vehiculoHandler.Update)

	// Empleados (solo admin)
	empleados := protected.Group("/empleados", soloAdmin)
	empleadoHandler := NewEmpleadoHandler(deps.EmpleadoUC)
	empleados.Post("/", empleadoHandler.Create)
	empleados.Get("/", empleadoHandler.List)
	empleados.Get("/:id", empleadoHandler.GetByID)
	empleados.Put("/:id", empleadoHandler.Update)

	// Inventario (libro de stock)
	inv := protected.Group("/inventario")
	inventarioHandler := NewInventarioHandler(deps.InventarioUC)
	inv.Post("/cargar", inventarioHandler.Cargar)
	inv.Post("/descargar", inventarioHandler.Descargar)
	inv.Post("/merma", inventarioHandler.Merma)
	inv.Post("/compras", inventarioHandler.Compra)
	inv.Get("/vehiculo/:id", inventarioHandler.StockVehiculo)
	inv.Get("/movimientos", inventarioHandler.Movimientos)

	// Ventas
	ventasGroup := protected.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.VentasUC)
	ventasGroup.Post("/", ventaHandler.Create)
	ventasGroup.Get("/vehiculo/:id", ventaHandler.PorVehiculo)
	ventasGroup.Get("/:id", ventaHandler.GetByID)

	// Galpones y lotes
	galponHandler := NewGalponHandler(deps.GalponUC)
	galponesGroup := protected.Group("/galpones")
	galponesGroup.Post("/", galponHandler.Create)
	galponesGroup.Get("/", galponHandler.List)
	galponesGroup.Get("/:id", galponHandler.GetByID)
	galponesGroup.Post("/:id/lotes", galponHandler.IniciarLote)
	galponesGroup.Get("/:id/lotes", galponHandler.HistorialLotes)
	lotes := protected.Group("/lotes")
	lotes.Get("/:id", galponHandler.GetLote)
	lotes.Post("/:id/mortalidad", galponHandler.RegistrarMortalidad)
	lotes.Get("/:id/mortalidad", galponHandler.EventosMortalidad)
	lotes.Post("/:id/finalizar", galponHandler.FinalizarLote)

	// Alertas
	alertaHandler := NewAlertaHandler(deps.AlertasEval)
	protected.Get("/alertas", alertaHandler.List)
}
