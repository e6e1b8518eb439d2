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

	"github.com/avicampo/avicola-api/internal/application/analytics"
	appauth "github.com/avicampo/avicola-api/internal/application/auth"
	"github.com/avicampo/avicola-api/internal/application/cycles"
	"github.com/avicampo/avicola-api/internal/application/farmers"
	"github.com/avicampo/avicola-api/internal/application/invalidate"
	"github.com/avicampo/avicola-api/internal/application/orders"
	"github.com/avicampo/avicola-api/internal/application/reports"
	"github.com/avicampo/avicola-api/internal/application/sales"
	"github.com/avicampo/avicola-api/internal/application/session"
	"github.com/avicampo/avicola-api/internal/application/stockledger"
	"github.com/avicampo/avicola-api/internal/domain/remote"
	"github.com/avicampo/avicola-api/internal/infrastructure/cache"
	"github.com/avicampo/avicola-api/internal/infrastructure/collaborator"
	infrapdf "github.com/avicampo/avicola-api/internal/infrastructure/pdf"
	httpRouter "github.com/avicampo/avicola-api/internal/interfaces/http"
	"github.com/avicampo/avicola-api/pkg/config"
	"github.com/avicampo/avicola-api/pkg/logger"
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

	// Caché de queries: Redis en cualquier entorno con REDIS_ADDR; si no llega,
	// el caché en memoria mantiene la misma semántica de invalidación.
	var queryCache remote.QueryCache
	redisCache, err := cache.NewRedisCache(ctx, cfg.Redis, log)
	if err != nil {
		log.Warn().Err(err).Msg("Redis no disponible, usando caché en memoria")
		queryCache = cache.NewMemoryCache()
	} else {
		defer redisCache.Close()
		queryCache = redisCache
	}

	// Colaborador remoto: fuentes por alcance, mutaciones y auth
	client := collaborator.NewClient(cfg.Remote, queryCache, log)
	officerSources := collaborator.NewOfficerSources(client)
	managementSources := collaborator.NewManagementSources(client)
	mutator := collaborator.NewMutator(client)
	authGateway := collaborator.NewAuthGateway(client)

	inv := invalidate.New(queryCache, log)
	resolver := session.NewResolver(authGateway)
	filters := session.NewOfficerFilter()

	farmerUC := farmers.NewUseCase(officerSources, managementSources, mutator, inv)
	cycleUC := cycles.NewUseCase(officerSources, managementSources, mutator, inv)
	stockUC := stockledger.NewUseCase(officerSources, managementSources, mutator, inv)
	salesUC := sales.NewUseCase(officerSources, managementSources, mutator, inv)
	orderUC := orders.NewUseCase(officerSources, managementSources, mutator, inv)
	analyticsUC := analytics.NewUseCase(managementSources, mutator, inv)

	pdfGenerator := infrapdf.NewMarotoPerformanceGenerator()
	reportUC := reports.NewUseCase(managementSources, pdfGenerator, cfg.Export.Dir, log)

	authUC := appauth.NewUseCase(authGateway, filters, cfg.JWT, log)
	guard := httpRouter.NewCallbackGuard(cfg.Remote.CallbackGrace)

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
		Title:    "Avícola Campo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		FarmerUC:    farmerUC,
		CycleUC:     cycleUC,
		StockUC:     stockUC,
		SalesUC:     salesUC,
		OrderUC:     orderUC,
		AnalyticsUC: analyticsUC,
		ReportUC:    reportUC,
		AuthUC:      authUC,
		Resolver:    resolver,
		Filters:     filters,
		Guard:       guard,
		JWTSecret:   cfg.JWT.Secret,
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
