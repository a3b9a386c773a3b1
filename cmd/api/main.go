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
	"github.com/tu-usuario/inventario-tienda/internal/application/auth"
	"github.com/tu-usuario/inventario-tienda/internal/application/inventory"
	"github.com/tu-usuario/inventario-tienda/internal/domain/repository"
	"github.com/tu-usuario/inventario-tienda/internal/infrastructure/jsonfile"
	infrapdf "github.com/tu-usuario/inventario-tienda/internal/infrastructure/pdf"
	"github.com/tu-usuario/inventario-tienda/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/inventario-tienda/internal/interfaces/http"
	"github.com/tu-usuario/inventario-tienda/pkg/config"
	"github.com/tu-usuario/inventario-tienda/pkg/logger"
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
		Str("driver", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Puerto de persistencia: archivo JSON local o una fila por tienda en
	// PostgreSQL (el papel que jugaba la hoja de cálculo remota).
	var repo repository.SnapshotRepository
	storeRef := cfg.Store.Ref
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		pgRepo := postgres.NewSnapshotRepository(pool)
		if err := pgRepo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("preparar esquema de snapshots")
		}
		repo = pgRepo
	default:
		repo = jsonfile.NewSnapshotRepository()
		storeRef = cfg.Store.FilePath
	}

	store, err := inventory.Open(ctx, repo, storeRef, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir la tienda")
	}

	authUC := auth.NewAuthUseCase(cfg.Admin.PasswordHash, cfg.Store.Ref, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	pdfGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name)

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
		Title:    "Inventario Tienda API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:     store,
		AuthUC:    authUC,
		PDF:       pdfGenerator,
		JWTSecret: cfg.JWT.Secret,
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

	// Último guardado antes de salir; el estado en memoria es la verdad.
	if err := store.Flush(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("flush final")
	}

	log.Info().Msg("aplicación detenida")
}
