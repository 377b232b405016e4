package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/inventario-oracle-api/internal/application/inventory"
	"github.com/jhoicas/inventario-oracle-api/internal/infrastructure/oracle"
	httpRouter "github.com/jhoicas/inventario-oracle-api/internal/interfaces/http"
	"github.com/jhoicas/inventario-oracle-api/pkg/config"
	"github.com/jhoicas/inventario-oracle-api/pkg/logger"
	"github.com/jhoicas/inventario-oracle-api/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	shutdownTracing, err := tracing.Init(ctx, cfg.App.Name, cfg.Tracing.OTLPEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar trazas")
	}

	db, err := oracle.Open(cfg.Oracle)
	if err != nil {
		log.Fatal().Err(err).Msg("driver Oracle")
	}
	defer db.Close()

	// Cada petición abre su propia sesión; si Oracle no responde ahora solo se avisa.
	if err := oracle.Ping(ctx, db, cfg.Oracle.CallTimeout); err != nil {
		log.Warn().Err(err).Int("ora_code", oracle.OracleErrorCode(err)).Msg("Oracle no disponible al iniciar")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	sessions := oracle.NewSessionRunner(db, cfg.Oracle.CallTimeout)
	procedureRepo := oracle.NewInstrumentedRepository(oracle.NewInventoryProcedureRepository(sessions), reg)
	procedureUC := inventory.NewProcedureUseCase(procedureRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(httpRouter.NewHTTPMetrics(reg).Middleware())
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    "Inventario Oracle API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProcedureUC: procedureUC,
		Logger:      log,
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
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado de trazas")
	}

	log.Info().Msg("aplicación detenida")
}
