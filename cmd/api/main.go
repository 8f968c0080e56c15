package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	_ "github.com/jhoicas/ecommerce-admin-api/docs"
	appanalytics "github.com/jhoicas/ecommerce-admin-api/internal/application/analytics"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/ports"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/usecase"
	"github.com/jhoicas/ecommerce-admin-api/internal/infrastructure/kafka"
	infrapdf "github.com/jhoicas/ecommerce-admin-api/internal/infrastructure/pdf"
	"github.com/jhoicas/ecommerce-admin-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ecommerce-admin-api/internal/infrastructure/redisx"
	httpRouter "github.com/jhoicas/ecommerce-admin-api/internal/interfaces/http"
	"github.com/jhoicas/ecommerce-admin-api/pkg/config"
	"github.com/jhoicas/ecommerce-admin-api/pkg/logger"
)

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
	pool, err := postgres.NewPool(ctx, cfg.DB, log.Component("postgres"))
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	for _, name := range applied {
		log.Info().Str("migration", name).Msg("migración aplicada")
	}

	// Eventos de dominio: sin brokers se descartan.
	var events ports.EventPublisher = kafka.NopPublisher{}
	if cfg.Kafka.Enabled() {
		events = kafka.NewPublisher(cfg.Kafka.Brokers, cfg.App.Name)
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Msg("publicación de eventos en Kafka")
	}
	defer func() {
		if err := events.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar publicador de eventos")
		}
	}()

	var idem ports.IdempotencyStore
	if cfg.Redis.Enabled() {
		rdb := redisx.New(cfg.Redis.Addr)
		defer rdb.Close()
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible; las claves de idempotencia se ignorarán hasta que responda")
		}
		cancel()
		idem = redisx.NewIdempotencyStore(rdb)
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, txRunner)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo, txRunner, events, log.Component("inventory"))
	saleUC := usecase.NewSaleUseCase(saleRepo, txRunner, idem, events, log.Component("sales"))
	analyticsUC := usecase.NewAnalyticsUseCase(analyticsRepo, infrapdf.NewMarotoReportRenderer())
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:        cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Log:         log.Component("http"),
	})

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "E-commerce Admin API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Categories: categoryUC,
		Products:   productUC,
		Inventory:  inventoryUC,
		Sales:      saleUC,
		Analytics:  analyticsUC,
		Dashboard:  dashboardUC,
		DB:         pool,
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
