// seed carga datos de demo: categorías, productos con inventario, ~6 meses de ventas
// y algunos productos con stock bajo.
//
// Uso: go run ./cmd/seed [-days 180] [-low-stock 5] [-seed 42] [-reset]
// Lee la misma configuración que la API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"errors"
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/analytics"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ecommerce-admin-api/pkg/config"
	"github.com/jhoicas/ecommerce-admin-api/pkg/logger"
)

// options flags de la línea de comandos.
type options struct {
	days     int
	lowStock int
	seed     int64
	reset    bool
}

// parseFlags lee los flags. Sin -reset los datos existentes se conservan.
func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.IntVar(&o.days, "days", 180, "días de historial de ventas")
	fs.IntVar(&o.lowStock, "low-stock", 5, "productos a dejar con stock bajo")
	fs.Int64Var(&o.seed, "seed", 0, "semilla aleatoria (0 = reloj)")
	fs.BoolVar(&o.reset, "reset", false, "vaciar las tablas antes de cargar")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return o, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	base := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	log := base.Component("seed")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, base.Component("postgres"))
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if _, err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(opts.seed))
	now := time.Now().UTC()

	cat, err := buildCatalog(rng, now)
	if err != nil {
		log.Fatal().Err(err).Msg("catálogo de demo")
	}
	sales := generateSales(rng, cat.products, now, opts.days)
	low := forceLowStock(rng, cat.inventory, opts.lowStock, now)

	if err := load(ctx, pool, opts.reset, cat, sales); err != nil {
		log.Fatal().Err(err).Msg("carga de datos de demo")
	}

	log.Info().
		Int64("seed", opts.seed).
		Int("categories", len(cat.categories)).
		Int("products", len(cat.products)).
		Int("sales", len(sales)).
		Int("low_stock", len(low)).
		Msg("datos de demo creados")

	amounts := make([]analytics.SaleAmount, 0, len(sales))
	for _, s := range sales {
		amounts = append(amounts, analytics.SaleAmount{Date: s.SaleDate, Quantity: s.Quantity, Amount: s.TotalAmount})
	}
	for _, b := range analytics.Aggregate(analytics.Monthly, amounts) {
		log.Info().
			Str("month", b.Start.Format("2006-01")).
			Str("revenue", b.Revenue.StringFixed(2)).
			Int("orders", b.Orders).
			Int("units", b.Units).
			Str("aov", b.AverageOrderValue().StringFixed(2)).
			Msg("resumen mensual")
	}
}

// load inserta todo en una sola transacción: o queda el dataset completo o nada.
func load(ctx context.Context, pool *pgxpool.Pool, reset bool, cat *catalog, sales []entity.Sale) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if reset {
		if _, err := tx.Exec(ctx, `TRUNCATE sales, inventory, products, categories`); err != nil {
			return err
		}
	}

	categories := postgres.NewCategoryRepository(tx)
	for i := range cat.categories {
		if err := categories.Create(ctx, &cat.categories[i]); err != nil {
			return err
		}
	}
	products := postgres.NewProductRepository(tx)
	inventory := postgres.NewInventoryRepository(tx)
	for i := range cat.products {
		if err := products.Create(ctx, &cat.products[i]); err != nil {
			return err
		}
		if err := inventory.Create(ctx, &cat.inventory[i]); err != nil {
			return err
		}
	}
	if _, err := postgres.CopySales(ctx, tx, sales); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
