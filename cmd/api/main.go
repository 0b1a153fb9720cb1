package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/faguirre1/distribuidora-api/internal/application/alertas"
	"github.com/faguirre1/distribuidora-api/internal/application/auth"
	"github.com/faguirre1/distribuidora-api/internal/application/galpones"
	"github.com/faguirre1/distribuidora-api/internal/application/inventario"
	"github.com/faguirre1/distribuidora-api/internal/application/usecase"
	"github.com/faguirre1/distribuidora-api/internal/application/ventas"
	"github.com/faguirre1/distribuidora-api/internal/infrastructure/postgres"
	httpRouter "github.com/faguirre1/distribuidora-api/internal/interfaces/http"
	"github.com/faguirre1/distribuidora-api/pkg/config"
	"github.com/faguirre1/distribuidora-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productoRepo := postgres.NewProductoRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	vehiculoRepo := postgres.NewVehiculoRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	pagoRepo := postgres.NewPagoRepository(pool)
	galponRepo := postgres.NewGalponRepository(pool)
	loteRepo := postgres.NewLoteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	inventarioUC := inventario.NewInventarioUseCase(txRunner, productoRepo, vehiculoRepo, stockRepo, movimientoRepo)
	ventasUC := ventas.NewRegistrarVentaUseCase(
		txRunner, inventarioUC,
		clienteRepo, usuarioRepo, vehiculoRepo, productoRepo, ventaRepo, pagoRepo,
		ventas.PoliticaPagos{MetodosContado: cfg.Ventas.MetodosContado},
	)
	galponUC := galpones.NewGalponUseCase(txRunner, galponRepo, loteRepo)

	umbral, err := decimal.NewFromString(cfg.Alertas.UmbralVehiculo)
	if err != nil {
		log.Fatal().Err(err).Str("valor", cfg.Alertas.UmbralVehiculo).Msg("umbral de alertas inválido")
	}
	alertasEval := alertas.NewEvaluator(productoRepo, stockRepo, umbral)

	productoUC := usecase.NewProductoUseCase(productoRepo, stockRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	vehiculoUC := usecase.NewVehiculoUseCase(vehiculoRepo)
	empleadoUC := usecase.NewEmpleadoUseCase(usuarioRepo)
	authUC := auth.NewAuthUseCase(usuarioRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Distribuidora API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductoUC:   productoUC,
		ClienteUC:    clienteUC,
		VehiculoUC:   vehiculoUC,
		EmpleadoUC:   empleadoUC,
		InventarioUC: inventarioUC,
		VentasUC:     ventasUC,
		GalponUC:     galponUC,
		AlertasEval:  alertasEval,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
