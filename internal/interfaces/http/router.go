package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/ecommerce-admin-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Categories CategoryService
	Products   ProductService
	Inventory  InventoryService
	Sales      SaleService
	Analytics  AnalyticsService
	Dashboard  DashboardService
	DB         Pinger
}

// AppConfig opciones de la aplicación Fiber.
type AppConfig struct {
	Name        string
	CORSOrigins string
	Log         *logger.Logger
}

// NewApp crea la app Fiber con los middlewares comunes (request id, access log, recover, CORS).
// AccessLog envuelve a recover para que un panic quede registrado como 500 con su request id.
// Las rutas se registran aparte con Router.
func NewApp(cfg AppConfig) *fiber.App {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(requestid.New())
	app.Use(AccessLog(log))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  normalizeOrigins(cfg.CORSOrigins),
		AllowHeaders:  "Origin, Content-Type, Accept, " + HeaderIdempotencyKey,
		ExposeHeaders: HeaderReplayed + ", Content-Disposition",
	}))
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", Health(deps.DB))

	api := app.Group("/api")

	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.Categories)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.Products)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	inventory := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Inventory)
	inventory.Get("/", inventoryHandler.List)
	inventory.Put("/:product_id", inventoryHandler.Update)

	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.Sales)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Create)
	sales.Get("/:id", saleHandler.GetByID)

	analytics := api.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.Analytics)
	dashboardHandler := NewDashboardHandler(deps.Dashboard)
	analytics.Get("/summary", dashboardHandler.GetSummary)
	analytics.Get("/revenue/:period", analyticsHandler.Revenue)
	analytics.Get("/revenue/:period/pdf", analyticsHandler.RevenuePDF)
}

// normalizeOrigins limpia la lista separada por comas; vacía equivale a "*".
func normalizeOrigins(s string) string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return "*"
	}
	return strings.Join(out, ",")
}
