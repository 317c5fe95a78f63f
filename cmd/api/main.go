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

	"github.com/jhoicas/joyeria-api/internal/application/auth"
	"github.com/jhoicas/joyeria-api/internal/application/inventory"
	"github.com/jhoicas/joyeria-api/internal/application/pricing"
	"github.com/jhoicas/joyeria-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/joyeria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/joyeria-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/joyeria-api/internal/interfaces/http"
	"github.com/jhoicas/joyeria-api/pkg/config"
	"github.com/jhoicas/joyeria-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	if err := postgres.Migrate(pool, cfg.DB.MigrationsDir); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// PDF: desglose de precio de una pieza
	pdfGenerator := infrapdf.NewMarotoBreakdownGenerator()

	quoteUC := pricing.NewQuoteUseCase()
	itemUC := usecase.NewItemUseCase(itemRepo, pdfGenerator, log)
	materialUC := usecase.NewMaterialUseCase(materialRepo, log)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, itemRepo, movementRepo, log)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	admin, err := authUC.BootstrapAdmin(cfg.Admin.CompanyID, cfg.Admin.Email, cfg.Admin.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("crear admin inicial")
	}
	if admin != nil {
		log.Info().
			Str("user_id", admin.ID).
			Str("company_id", admin.CompanyID).
			Str("email", admin.Email).
			Msg("admin inicial creado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs (requiere docs/swagger.json generado con swag)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Joyería API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		QuoteUC:          quoteUC,
		ItemUC:           itemUC,
		MaterialUC:       materialUC,
		RegisterMovement: registerMovementUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.JWT.Secret,
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
